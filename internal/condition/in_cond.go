package condition

import "github.com/flagkit/flagkit-golang/internal/value"

// InCond checks membership of the attribute in the expected array,
// with any-element overlap when the attribute itself is an array.
type InCond struct {
	expected value.ArrValue
}

func NewInCond(arg value.ArrValue) InCond {
	return InCond{arg}
}

func (c InCond) Eval(actual value.Value, _ SavedGroups) bool {
	if value.IsMissing(actual) {
		return false
	}
	return c.overlaps(actual)
}

// NotInCond is $nin. A missing attribute fails it.
type NotInCond struct {
	expected value.ArrValue
}

func NewNotInCond(arg value.ArrValue) NotInCond {
	return NotInCond{arg}
}

func (c NotInCond) Eval(actual value.Value, groups SavedGroups) bool {
	if value.IsMissing(actual) {
		return false
	}
	return !InCond(c).overlaps(actual)
}

func (c InCond) overlaps(actual value.Value) bool {
	for _, ev := range c.expected {
		switch av := actual.(type) {
		case value.ArrValue:
			for _, item := range av {
				if ev.String() == item.String() {
					return true
				}
			}
		case value.NullValue:
			// explicit null never overlaps
		default:
			if ev.String() == actual.String() {
				return true
			}
		}
	}
	return false
}
