package condition

import "github.com/flagkit/flagkit-golang/internal/value"

// ValueCond is used when a field is compared with a value directly,
// without an operator.
type ValueCond struct {
	expected value.Value
}

func NewValueCond(arg value.Value) ValueCond {
	return ValueCond{arg}
}

func (c ValueCond) Eval(actual value.Value, _ SavedGroups) bool {
	switch expected := c.expected.(type) {
	case value.NullValue:
		// null matches only missing or explicitly-null attributes.
		return value.IsMissing(actual) || value.IsNull(actual)
	case value.ArrValue:
		arr, ok := actual.(value.ArrValue)
		return ok && value.Equal(arr, expected)
	case value.ObjValue:
		// The empty object matches an absent attribute; any other
		// object compares by deep equality.
		if len(expected) == 0 {
			return value.IsMissing(actual)
		}
		return !value.IsMissing(actual) && value.Equal(actual, expected)
	default:
		return scalarEqual(actual, c.expected)
	}
}

// scalarEqual compares an attribute against a scalar: arrays match if
// any element is equal, null and missing never match, anything else
// compares by stringified form.
func scalarEqual(actual, expected value.Value) bool {
	switch av := actual.(type) {
	case value.MissingValue, value.NullValue:
		return false
	case value.ArrValue:
		for _, item := range av {
			if value.Equal(item, expected) {
				return true
			}
		}
		return false
	default:
		return actual.String() == expected.String()
	}
}
