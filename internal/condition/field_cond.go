package condition

import (
	"strings"

	"github.com/flagkit/flagkit-golang/internal/value"
)

// FieldCond attaches a condition to a (possibly dotted) field path.
type FieldCond struct {
	path []string
	cond Condition
}

func NewFieldCond(pathStr string, cond Condition) FieldCond {
	return FieldCond{strings.Split(pathStr, "."), cond}
}

func (c FieldCond) Eval(actual value.Value, groups SavedGroups) bool {
	return c.cond.Eval(value.PathOf(actual, c.path...), groups)
}
