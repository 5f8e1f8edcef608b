package condition

import "github.com/flagkit/flagkit-golang/internal/value"

// SizeCond applies a condition to the length of an array attribute.
type SizeCond struct {
	cond Condition
}

func NewSizeCond(cond Condition) SizeCond {
	return SizeCond{cond}
}

func (c SizeCond) Eval(actual value.Value, groups SavedGroups) bool {
	arr, ok := actual.(value.ArrValue)
	if !ok {
		return false
	}
	return c.cond.Eval(value.Int(int64(len(arr))), groups)
}
