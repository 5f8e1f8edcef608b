package value

// Equal implements deep equality. Arrays are ordered and
// length-sensitive; objects require the same key set; ints and floats
// compare numerically. Missing equals only Missing.
func Equal(a, b Value) bool {
	if IsNum(a) && IsNum(b) {
		fa, _ := AsFloat(a)
		fb, _ := AsFloat(b)
		return fa == fb
	}
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case ArrValue:
		bv := b.(ArrValue)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case ObjValue:
		bv := b.(ObjValue)
		if len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			w, ok := bv[k]
			if !ok || !Equal(v, w) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
