package condition

import "github.com/flagkit/flagkit-golang/internal/value"

// ExistsCond checks attribute presence. An explicit null attribute
// counts as present.
type ExistsCond struct {
	expected bool
}

func NewExistsCond(arg value.Value) Condition {
	b, ok := arg.(value.BoolValue)
	if !ok {
		return True{}
	}
	return ExistsCond{bool(b)}
}

func (c ExistsCond) Eval(actual value.Value, _ SavedGroups) bool {
	if c.expected {
		return !value.IsMissing(actual)
	}
	return value.IsMissing(actual)
}
