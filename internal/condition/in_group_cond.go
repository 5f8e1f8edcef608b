package condition

import "github.com/flagkit/flagkit-golang/internal/value"

// InGroupCond checks membership of the attribute in a saved group.
type InGroupCond struct {
	group string
}

func NewInGroupCond(group string) InGroupCond {
	return InGroupCond{group}
}

func NewNotInGroupCond(group string) Condition {
	return NotCond{NewInGroupCond(group)}
}

func (c InGroupCond) Eval(actual value.Value, groups SavedGroups) bool {
	arr, ok := groups[c.group]
	if !ok {
		return false
	}
	for _, ev := range arr {
		if value.Equal(actual, ev) {
			return true
		}
	}
	return false
}
