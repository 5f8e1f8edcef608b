package condition

import "github.com/flagkit/flagkit-golang/internal/value"

// TypeCond checks the attribute's JSON type name. Missing
// attributes and empty objects both read as "null".
type TypeCond struct {
	name string
}

func NewTypeCond(arg string) TypeCond {
	return TypeCond{arg}
}

func (c TypeCond) Eval(actual value.Value, _ SavedGroups) bool {
	return typeName(actual) == c.name
}

func typeName(v value.Value) string {
	switch tv := v.(type) {
	case value.MissingValue, value.NullValue:
		return "null"
	case value.BoolValue:
		return "boolean"
	case value.IntValue, value.FloatValue:
		return "number"
	case value.StrValue:
		return "string"
	case value.ArrValue:
		return "array"
	case value.ObjValue:
		if len(tv) == 0 {
			return "null"
		}
		return "object"
	}
	return ""
}
