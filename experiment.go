package flagkit

import "github.com/flagkit/flagkit-golang/internal/condition"

// Experiment defines one experiment: the variations, how traffic is
// split between them, and who is eligible.
type Experiment struct {
	Key                    string            `json:"key"`
	Variations             []FeatureValue    `json:"variations"`
	Ranges                 []BucketRange     `json:"ranges"`
	Meta                   []VariationMeta   `json:"meta"`
	Filters                []Filter          `json:"filters"`
	Seed                   string            `json:"seed"`
	Name                   string            `json:"name"`
	Phase                  string            `json:"phase"`
	Weights                []float64         `json:"weights"`
	Condition              condition.Base    `json:"condition"`
	ParentConditions       []ParentCondition `json:"parentConditions"`
	Coverage               *float64          `json:"coverage"`
	Namespace              *Namespace        `json:"namespace"`
	Force                  *int              `json:"force"`
	HashAttribute          string            `json:"hashAttribute"`
	FallbackAttribute      string            `json:"fallbackAttribute"`
	HashVersion            int               `json:"hashVersion"`
	BucketVersion          int               `json:"bucketVersion"`
	MinBucketVersion       int               `json:"minBucketVersion"`
	DisableStickyBucketing bool              `json:"disableStickyBucketing"`
	Active                 *bool             `json:"active"`
}

// NewExperiment creates an experiment with default settings: just a
// key, everything else empty.
func NewExperiment(key string) *Experiment {
	return &Experiment{Key: key}
}

// WithVariations sets the feature variations for an experiment.
func (exp *Experiment) WithVariations(variations ...FeatureValue) *Experiment {
	exp.Variations = variations
	return exp
}

// WithRanges sets the bucket ranges for an experiment.
func (exp *Experiment) WithRanges(ranges ...BucketRange) *Experiment {
	exp.Ranges = ranges
	return exp
}

// WithMeta sets the variation meta information for an experiment.
func (exp *Experiment) WithMeta(meta ...VariationMeta) *Experiment {
	exp.Meta = meta
	return exp
}

// WithWeights sets the variation weights for an experiment.
func (exp *Experiment) WithWeights(weights ...float64) *Experiment {
	exp.Weights = weights
	return exp
}

// WithSeed sets the hash seed for an experiment.
func (exp *Experiment) WithSeed(seed string) *Experiment {
	exp.Seed = seed
	return exp
}

// WithName sets the name for an experiment.
func (exp *Experiment) WithName(name string) *Experiment {
	exp.Name = name
	return exp
}

// WithPhase sets the phase for an experiment.
func (exp *Experiment) WithPhase(phase string) *Experiment {
	exp.Phase = phase
	return exp
}

// WithActive sets the active flag for an experiment.
func (exp *Experiment) WithActive(active bool) *Experiment {
	exp.Active = &active
	return exp
}

// WithCoverage sets the coverage for an experiment.
func (exp *Experiment) WithCoverage(coverage float64) *Experiment {
	exp.Coverage = &coverage
	return exp
}

// WithCondition sets the targeting condition for an experiment.
func (exp *Experiment) WithCondition(cond condition.Base) *Experiment {
	exp.Condition = cond
	return exp
}

// WithNamespace sets the namespace for an experiment.
func (exp *Experiment) WithNamespace(namespace *Namespace) *Experiment {
	exp.Namespace = namespace
	return exp
}

// WithForce sets the forced variation index for an experiment.
func (exp *Experiment) WithForce(force int) *Experiment {
	exp.Force = &force
	return exp
}

// WithHashAttribute sets the hash attribute for an experiment.
func (exp *Experiment) WithHashAttribute(hashAttribute string) *Experiment {
	exp.HashAttribute = hashAttribute
	return exp
}

func (exp *Experiment) getActive() bool {
	return exp.Active == nil || *exp.Active
}

func (exp *Experiment) getCoverage() float64 {
	if exp.Coverage == nil {
		return 1.0
	}
	return *exp.Coverage
}

func (exp *Experiment) getSeed() string {
	if exp.Seed == "" {
		return exp.Key
	}
	return exp.Seed
}

// experimentFromFeatureRule turns an experiment rule into a
// standalone experiment keyed by the rule key or the feature id.
func experimentFromFeatureRule(featureId string, rule *FeatureRule) *Experiment {
	key := rule.Key
	if key == "" {
		key = featureId
	}
	return &Experiment{
		Key:                    key,
		Variations:             rule.Variations,
		Ranges:                 rule.Ranges,
		Meta:                   rule.Meta,
		Filters:                rule.Filters,
		Seed:                   rule.Seed,
		Name:                   rule.Name,
		Phase:                  rule.Phase,
		Weights:                rule.Weights,
		Condition:              rule.Condition,
		Coverage:               rule.Coverage,
		Namespace:              rule.Namespace,
		HashAttribute:          rule.HashAttribute,
		FallbackAttribute:      rule.FallbackAttribute,
		HashVersion:            rule.HashVersion,
		BucketVersion:          rule.BucketVersion,
		MinBucketVersion:       rule.MinBucketVersion,
		DisableStickyBucketing: rule.DisableStickyBucketing,
	}
}
