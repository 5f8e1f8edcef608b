package flagkit

import "github.com/flagkit/flagkit-golang/internal/condition"

// FeatureRule overrides the default value of a Feature. A rule with a
// Force value is a force/rollout rule; a rule with Variations is an
// experiment rule.
type FeatureRule struct {
	ID                     string            `json:"id"`
	Condition              condition.Base    `json:"condition"`
	ParentConditions       []ParentCondition `json:"parentConditions"`
	Force                  FeatureValue      `json:"force"`
	Variations             []FeatureValue    `json:"variations"`
	Weights                []float64         `json:"weights"`
	Key                    string            `json:"key"`
	HashAttribute          string            `json:"hashAttribute"`
	FallbackAttribute      string            `json:"fallbackAttribute"`
	HashVersion            int               `json:"hashVersion"`
	Range                  *BucketRange      `json:"range"`
	Coverage               *float64          `json:"coverage"`
	Namespace              *Namespace        `json:"namespace"`
	Ranges                 []BucketRange     `json:"ranges"`
	Meta                   []VariationMeta   `json:"meta"`
	Filters                []Filter          `json:"filters"`
	Seed                   string            `json:"seed"`
	Name                   string            `json:"name"`
	Phase                  string            `json:"phase"`
	BucketVersion          int               `json:"bucketVersion"`
	MinBucketVersion       int               `json:"minBucketVersion"`
	DisableStickyBucketing bool              `json:"disableStickyBucketing"`
}
