package value

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
)

// Value is the internal representation of attribute and condition
// data. It mirrors the JSON data model with two extra refinements the
// evaluator depends on: integers and floats are separate tags, and a
// Missing sentinel is distinct from an explicit Null. Stringification
// and casting follow the behaviour of the reference SDKs so that hash
// inputs and comparisons are identical across implementations.
type Value interface {
	// Type simplifies type switches.
	Type() ValueType
	// String returns the canonical string form used for hashing and
	// string-wise comparison.
	String() string
}

type ValueType int

const (
	MissingType ValueType = iota
	NullType
	BoolType
	IntType
	FloatType
	StrType
	ArrType
	ObjType
)

// New converts an arbitrary Go value into a Value. Unconvertible
// values become Null.
func New(a any) Value {
	if a == nil {
		return Null()
	}
	switch v := a.(type) {
	case Value:
		return v
	case json.Number:
		return fromNumber(v)
	case map[string]any:
		return Obj(v)
	case []any:
		return Arr(v...)
	default:
		return fromAny(a)
	}
}

// JSON numbers decoded with UseNumber keep the int/float distinction.
func fromNumber(n json.Number) Value {
	if i, err := n.Int64(); err == nil {
		return Int(i)
	}
	if f, err := n.Float64(); err == nil {
		return Float(f)
	}
	return Null()
}

func fromAny(a any) Value {
	ref := reflect.ValueOf(a)
	switch {
	case ref.CanInt():
		return Int(ref.Int())
	case ref.CanUint():
		return Int(int64(ref.Uint()))
	case ref.CanFloat():
		return Float(ref.Float())
	case ref.Kind() == reflect.Bool:
		return Bool(ref.Bool())
	case ref.Kind() == reflect.String:
		return Str(ref.String())
	case ref.Kind() == reflect.Slice || ref.Kind() == reflect.Array:
		res := make(ArrValue, ref.Len())
		for i := 0; i < ref.Len(); i++ {
			res[i] = New(ref.Index(i).Interface())
		}
		return res
	case ref.Kind() == reflect.Map && ref.Type().Key().Kind() == reflect.String:
		res := make(ObjValue, ref.Len())
		iter := ref.MapRange()
		for iter.Next() {
			res[iter.Key().String()] = New(iter.Value().Interface())
		}
		return res
	default:
		return Null()
	}
}

// ParseJSON decodes JSON data into a Value, preserving the int/float
// distinction.
func ParseJSON(data []byte) (Value, error) {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return New(raw), nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
