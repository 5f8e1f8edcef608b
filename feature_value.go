package flagkit

import "reflect"

// FeatureValue is a wrapper around an arbitrary type representing the
// value of a feature.
type FeatureValue = any

// A feature is "on" unless its value is null, false, zero, the empty
// string or the string "0".
func truthy(v FeatureValue) bool {
	if v == nil {
		return false
	}
	switch r := v.(type) {
	case string:
		return r != "" && r != "0"
	case bool:
		return r
	}
	ref := reflect.ValueOf(v)
	switch {
	case ref.CanInt():
		return ref.Int() != 0
	case ref.CanUint():
		return ref.Uint() != 0
	case ref.CanFloat():
		return ref.Float() != 0
	}
	return true
}
