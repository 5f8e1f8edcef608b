package flagkit

import "github.com/flagkit/flagkit-golang/internal/condition"

// ParentCondition names a prerequisite feature. The parent is
// evaluated, its value is wrapped in {"value": ...} and tested
// against Condition. When Gate is set a failing condition blocks the
// whole dependent feature instead of just skipping the rule.
type ParentCondition struct {
	Id        string         `json:"id"`
	Condition condition.Base `json:"condition"`
	Gate      bool           `json:"gate"`
}
