package flagkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		value FeatureValue
		on    bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{0, false},
		{0.0, false},
		{1, true},
		{"", false},
		{"0", false},
		{"false", true},
		{"anything", true},
		{[]any{}, true},
		{map[string]any{}, true},
	}
	for _, tt := range tests {
		require.Equal(t, tt.on, truthy(tt.value), "truthy(%v)", tt.value)
	}
}
