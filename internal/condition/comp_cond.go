package condition

import "github.com/flagkit/flagkit-golang/internal/value"

// EqCond is the explicit $eq operator. Unlike direct value
// comparison it never matches a missing attribute.
type EqCond struct {
	expected value.Value
}

func (c EqCond) Eval(actual value.Value, _ SavedGroups) bool {
	if value.IsMissing(actual) {
		return false
	}
	return scalarMatch(actual, c.expected)
}

// NeCond is $ne. A missing attribute satisfies it; an explicitly
// null one does not.
type NeCond struct {
	expected value.Value
}

func (c NeCond) Eval(actual value.Value, _ SavedGroups) bool {
	if value.IsMissing(actual) {
		return true
	}
	if value.IsNull(actual) {
		return false
	}
	return !scalarMatch(actual, c.expected)
}

func scalarMatch(actual, expected value.Value) bool {
	if arr, ok := actual.(value.ArrValue); ok {
		for _, item := range arr {
			if value.Equal(item, expected) {
				return true
			}
		}
		return false
	}
	return scalarEqual(actual, expected)
}

// CompCond implements the ordered comparisons $lt, $lte, $gt, $gte.
// An argument that reads as a number (including numeric strings)
// coerces the attribute to a number; any other argument compares
// string-wise. Missing attributes satisfy every ordered comparison.
type CompCond struct {
	op  Operator
	arg value.Value
}

func NewCompCond(op Operator, arg value.Value) CompCond {
	return CompCond{op, arg}
}

func (c CompCond) Eval(actual value.Value, _ SavedGroups) bool {
	if value.IsMissing(actual) {
		return true
	}
	if arg, ok := parseNumber(c.arg); ok {
		return c.evalNumber(actual, arg)
	}
	return c.evalString(actual)
}

func (c CompCond) evalNumber(actual value.Value, arg float64) bool {
	if arr, ok := actual.(value.ArrValue); ok {
		for _, item := range arr {
			if n, ok := value.AsFloat(item); ok && c.holdsNumber(n, arg) {
				return true
			}
		}
		return false
	}
	n, ok := parseNumber(actual)
	if !ok {
		return false
	}
	return c.holdsNumber(n, arg)
}

func (c CompCond) evalString(actual value.Value) bool {
	arg := c.arg.String()
	if arr, ok := actual.(value.ArrValue); ok {
		for _, item := range arr {
			if c.holdsString(item.String(), arg) {
				return true
			}
		}
		return false
	}
	return c.holdsString(actual.String(), arg)
}

func (c CompCond) holdsNumber(actual, arg float64) bool {
	switch c.op {
	case ltOp:
		return actual < arg
	case lteOp:
		return actual <= arg
	case gtOp:
		return actual > arg
	case gteOp:
		return actual >= arg
	}
	return false
}

func (c CompCond) holdsString(actual, arg string) bool {
	switch c.op {
	case ltOp:
		return actual < arg
	case lteOp:
		return actual <= arg
	case gtOp:
		return actual > arg
	case gteOp:
		return actual >= arg
	}
	return false
}
