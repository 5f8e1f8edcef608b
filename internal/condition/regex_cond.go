package condition

import (
	"regexp"

	"github.com/flagkit/flagkit-golang/internal/value"
)

// RegexCond matches the stringified attribute, or any element of an
// array attribute, against a compiled pattern.
type RegexCond struct {
	rx *regexp.Regexp
}

func NewRegexCond(rx *regexp.Regexp) RegexCond {
	return RegexCond{rx}
}

func (c RegexCond) Eval(actual value.Value, _ SavedGroups) bool {
	switch av := actual.(type) {
	case value.MissingValue:
		return false
	case value.ArrValue:
		for _, item := range av {
			if c.rx.MatchString(item.String()) {
				return true
			}
		}
		return false
	default:
		return c.rx.MatchString(actual.String())
	}
}
