package flagkit

// Filter is a secondary hash-based gate applied before the primary
// coverage or namespace test, used for mutual exclusion between
// experiments.
type Filter struct {
	Attribute   string        `json:"attribute"`
	Seed        string        `json:"seed"`
	HashVersion int           `json:"hashVersion"`
	Ranges      []BucketRange `json:"ranges"`
}
