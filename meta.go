package flagkit

// VariationMeta carries info about one experiment variation.
type VariationMeta struct {
	// Key is a unique key for this variation.
	Key string `json:"key"`
	// Name is a human-readable name for this variation.
	Name string `json:"name"`
	// Passthrough is used to implement holdout groups.
	Passthrough bool `json:"passthrough"`
}
