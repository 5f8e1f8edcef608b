package flagkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	tests := []struct {
		seed     string
		value    string
		version  int
		expected *float64
	}{
		{"", "a", 1, f(0.22)},
		{"", "b", 1, f(0.077)},
		{"seed", "a", 2, f(0.0505)},
		{"seed", "b", 2, f(0.2696)},
		{"abc", "def", 99, nil},
	}
	for _, tt := range tests {
		res := hash(tt.seed, tt.value, tt.version)
		if tt.expected == nil {
			require.Nil(t, res)
			continue
		}
		require.NotNil(t, res)
		require.InDelta(t, *tt.expected, *res, 1e-9, "hash(%q, %q, %d)", tt.seed, tt.value, tt.version)
	}
}

func TestHashVersionZeroDefaultsToOne(t *testing.T) {
	require.Equal(t, *hash("s", "v", 1), *hash("s", "v", 0))
}

func TestIf0(t *testing.T) {
	require.Equal(t, 1, if0(0, 1))
	require.Equal(t, 2, if0(2, 1))
}

func f(v float64) *float64 { return &v }
