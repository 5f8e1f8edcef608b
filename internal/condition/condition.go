// Package condition implements the MongoDB-like predicate language
// used by targeting conditions. Conditions are parsed into typed
// trees at unmarshal time and evaluated against attribute values.
// Faults inside a condition (unknown operators, invalid regexes,
// unparseable numbers) evaluate to false instead of failing the
// evaluation.
package condition

import (
	"github.com/flagkit/flagkit-golang/internal/value"
)

// Condition evaluates one node of a parsed condition tree against the
// actual value of the field it is attached to.
type Condition interface {
	Eval(actual value.Value, groups SavedGroups) bool
}

func evalAll(cs []Condition, actual value.Value, groups SavedGroups) bool {
	for _, c := range cs {
		if !c.Eval(actual, groups) {
			return false
		}
	}
	return true
}

func evalAny(cs []Condition, actual value.Value, groups SavedGroups) bool {
	if len(cs) == 0 {
		return true
	}
	for _, c := range cs {
		if c.Eval(actual, groups) {
			return true
		}
	}
	return false
}
