package value

import "strings"

type ArrValue []Value

func Arr(args ...any) ArrValue {
	res := make(ArrValue, len(args))
	for i, arg := range args {
		res[i] = New(arg)
	}
	return res
}

func (a ArrValue) Type() ValueType {
	return ArrType
}

// Arrays stringify as the concatenation of their elements, with no
// separator. This feeds hashing, so the form is normative.
func (a ArrValue) String() string {
	var sb strings.Builder
	for _, v := range a {
		sb.WriteString(v.String())
	}
	return sb.String()
}

func IsArr(v Value) bool {
	return v.Type() == ArrType
}
