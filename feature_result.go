package flagkit

// FeatureResultSource is an enumerated type representing the source
// of a FeatureResult.
type FeatureResultSource string

// FeatureResultSource values.
const (
	UnknownFeatureResultSource     FeatureResultSource = "unknownFeature"
	DefaultValueResultSource       FeatureResultSource = "defaultValue"
	ForceResultSource              FeatureResultSource = "force"
	ExperimentResultSource         FeatureResultSource = "experiment"
	OverrideResultSource           FeatureResultSource = "override"
	PrerequisiteResultSource       FeatureResultSource = "prerequisite"
	CyclicPrerequisiteResultSource FeatureResultSource = "cyclicPrerequisite"
)

// FeatureResult is the result of evaluating a feature.
type FeatureResult struct {
	Value            FeatureValue        `json:"value"`
	On               bool                `json:"on"`
	Off              bool                `json:"off"`
	Source           FeatureResultSource `json:"source"`
	RuleId           string              `json:"ruleId,omitempty"`
	Experiment       *Experiment         `json:"experiment,omitempty"`
	ExperimentResult *ExperimentResult   `json:"experimentResult,omitempty"`
}

func getFeatureResult(
	v FeatureValue,
	source FeatureResultSource,
	ruleId string,
	experiment *Experiment,
	experimentResult *ExperimentResult,
) *FeatureResult {
	on := truthy(v)
	return &FeatureResult{
		Value:            v,
		On:               on,
		Off:              !on,
		Source:           source,
		RuleId:           ruleId,
		Experiment:       experiment,
		ExperimentResult: experimentResult,
	}
}
