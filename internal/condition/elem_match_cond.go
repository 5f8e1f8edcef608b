package condition

import "github.com/flagkit/flagkit-golang/internal/value"

// ElemMatchCond checks that at least one element of an array
// attribute matches the nested condition.
type ElemMatchCond struct {
	cond Condition
}

func NewElemMatchCond(cond Condition) ElemMatchCond {
	return ElemMatchCond{cond}
}

func (c ElemMatchCond) Eval(actual value.Value, groups SavedGroups) bool {
	arr, ok := actual.(value.ArrValue)
	if !ok {
		return false
	}
	return anyElem(c.cond, arr, groups)
}
