package value

type BoolValue bool

func Bool(b bool) BoolValue {
	return BoolValue(b)
}

func True() BoolValue {
	return BoolValue(true)
}

func False() BoolValue {
	return BoolValue(false)
}

func (v BoolValue) Type() ValueType {
	return BoolType
}

func (v BoolValue) String() string {
	if v {
		return "true"
	}
	return "false"
}

func IsBool(v Value) bool {
	return v.Type() == BoolType
}
