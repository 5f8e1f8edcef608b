package value

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type ObjValue map[string]Value

func Obj(args map[string]any) ObjValue {
	res := make(ObjValue, len(args))
	for k, v := range args {
		res[k] = New(v)
	}
	return res
}

func (o ObjValue) Type() ValueType {
	return ObjType
}

// Objects stringify as the concatenation of their values over sorted
// keys. Sorting keeps the form deterministic in Go and matches the
// sorted maps the wire format is produced from.
func (o ObjValue) String() string {
	keys := maps.Keys(o)
	slices.Sort(keys)
	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(o[k].String())
	}
	return sb.String()
}

func IsObj(v Value) bool {
	return v.Type() == ObjType
}

// Path descends into nested objects following the given segments. A
// missing key, or a non-object intermediate value, yields Missing.
func (o ObjValue) Path(segments ...string) Value {
	var cur Value = o
	for _, seg := range segments {
		obj, ok := cur.(ObjValue)
		if !ok {
			return Missing()
		}
		next, ok := obj[seg]
		if !ok {
			return Missing()
		}
		cur = next
	}
	return cur
}

// PathOf is Path generalised to any starting value.
func PathOf(v Value, segments ...string) Value {
	obj, ok := v.(ObjValue)
	if !ok {
		if len(segments) == 0 {
			return v
		}
		return Missing()
	}
	return obj.Path(segments...)
}
