package condition

import (
	"regexp"
	"strings"

	"github.com/flagkit/flagkit-golang/internal/value"
)

// VersionCond compares semantic version strings. Non-string and
// missing attributes satisfy every version comparison.
type VersionCond struct {
	op      Operator
	version string
}

func NewVersionCond(op Operator, arg value.Value) VersionCond {
	return VersionCond{op, paddedVersionString(arg.String())}
}

func (c VersionCond) Eval(actual value.Value, _ SavedGroups) bool {
	s, ok := actual.(value.StrValue)
	if !ok {
		return true
	}
	v := paddedVersionString(string(s))
	switch c.op {
	case veqOp:
		return v == c.version
	case vneOp:
		return v != c.version
	case vgtOp:
		return v > c.version
	case vgteOp:
		return v >= c.version
	case vltOp:
		return v < c.version
	case vlteOp:
		return v <= c.version
	}
	return false
}

var (
	versionStripRe = regexp.MustCompile(`(^v|\+.*$)`)
	versionSplitRe = regexp.MustCompile(`[-.]`)
	versionNumRe   = regexp.MustCompile(`^[0-9]+$`)
)

// paddedVersionString canonicalises a version so byte-lexicographic
// comparison reproduces SemVer precedence. Numeric parts are
// zero-padded to five digits; a release version gets a trailing "~",
// which sorts after any prerelease tag.
func paddedVersionString(input string) string {
	stripped := versionStripRe.ReplaceAllLiteralString(input, "")
	split := versionSplitRe.Split(stripped, -1)
	parts := make([]string, 0, len(split)+1)
	for _, p := range split {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 3 {
		parts = append(parts, "~")
	}
	for i, p := range parts {
		if versionNumRe.MatchString(p) && len(p) < 5 {
			parts[i] = strings.Repeat("0", 5-len(p)) + p
		}
	}
	return strings.Join(parts, "-")
}
