package condition

import "github.com/flagkit/flagkit-golang/internal/value"

type AndConds []Condition

func (cs AndConds) Eval(actual value.Value, groups SavedGroups) bool {
	return evalAll(cs, actual, groups)
}

type OrConds []Condition

func (cs OrConds) Eval(actual value.Value, groups SavedGroups) bool {
	return evalAny(cs, actual, groups)
}

// NorConds is the negation of $or, including the degenerate empty
// case.
type NorConds []Condition

func (cs NorConds) Eval(actual value.Value, groups SavedGroups) bool {
	return !evalAny(cs, actual, groups)
}

type NotCond struct {
	cond Condition
}

func (c NotCond) Eval(actual value.Value, groups SavedGroups) bool {
	return !c.cond.Eval(actual, groups)
}
