package value

// NullValue is an explicit JSON null.
type NullValue struct{}

func Null() Value {
	return NullValue{}
}

func (n NullValue) Type() ValueType {
	return NullType
}

func (n NullValue) String() string {
	return ""
}

func IsNull(v Value) bool {
	return v.Type() == NullType
}

// MissingValue marks an attribute that is not present at all. Several
// operators treat missing and explicit null differently, so the two
// must not be conflated.
type MissingValue struct{}

func Missing() Value {
	return MissingValue{}
}

func (m MissingValue) Type() ValueType {
	return MissingType
}

func (m MissingValue) String() string {
	return ""
}

func IsMissing(v Value) bool {
	return v.Type() == MissingType
}
