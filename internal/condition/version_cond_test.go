package condition

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCond(t *testing.T) {
	runEvalCases(t, []evalCase{
		{"vgt and vlt", `{"version": {"$vgt": "9.99.8", "$vlt": "11.0.1"}}`, `{"version": "10.12.13"}`, true},
		{"outside range", `{"version": {"$vgt": "30.0.0", "$vlt": "50.0.0"}}`, `{"version": "60.0.0"}`, false},
		{"veq strips leading v", `{"version": {"$veq": "1.2.3"}}`, `{"version": "v1.2.3"}`, true},
		{"veq ignores build metadata", `{"version": {"$veq": "1.2.3"}}`, `{"version": "1.2.3+build123"}`, true},
		{"vne", `{"version": {"$vne": "1.2.3"}}`, `{"version": "1.2.4"}`, true},
		{"release beats prerelease", `{"version": {"$vlt": "1.0.0"}}`, `{"version": "1.0.0-rc.1"}`, true},
		{"numeric prerelease parts", `{"version": {"$vgt": "1.2.3-a.5"}}`, `{"version": "1.2.3-a.10"}`, true},
		{"case-sensitive prerelease", `{"version": {"$vlt": "1.2.3-r100"}}`, `{"version": "1.2.3-R2"}`, true},
		{"large numeric part", `{"version": {"$vgt": "9999.0.0"}}`, `{"version": "10000.0.0"}`, true},
		{"missing attribute", `{"version": {"$vgt": "1.0.0"}}`, `{}`, true},
		{"non-string attribute", `{"version": {"$vgt": "1.0.0"}}`, `{"version": 2}`, true},
	})
}

func TestPaddedVersionString(t *testing.T) {
	tests := []struct {
		raw string
		res string
	}{
		{"1.2.3", "00001-00002-00003-~"},
		{"v1.2.3", "00001-00002-00003-~"},
		{"1.2.3+build", "00001-00002-00003-~"},
		{"1.2.3-rc.1", "00001-00002-00003-rc-00001"},
		{"1.2", "00001-00002"},
		{"10000.0.0", "10000-00000-00000-~"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.res, paddedVersionString(tt.raw), "paddedVersionString(%q)", tt.raw)
	}

	// Precedence pairs from SemVer must survive normalization.
	ordered := []string{"1.0.0-alpha", "1.0.0-alpha.1", "1.0.0-beta", "1.0.0-rc.1", "1.0.0", "1.0.1", "1.2.0", "10.0.0"}
	for i := 0; i < len(ordered)-1; i++ {
		a, b := paddedVersionString(ordered[i]), paddedVersionString(ordered[i+1])
		require.Less(t, a, b, "%s < %s", ordered[i], ordered[i+1])
	}
}
