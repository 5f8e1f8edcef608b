package flagkit

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetQueryStringOverride(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		url      string
		numVars  int
		expected *int
	}{
		{"no query", "my-test", "http://example.com/", 2, nil},
		{"hit", "my-test", "http://example.com/?my-test=1", 2, i(1)},
		{"zero", "my-test", "http://example.com/?my-test=0", 2, i(0)},
		{"out of range", "my-test", "http://example.com/?my-test=2", 2, nil},
		{"negative", "my-test", "http://example.com/?my-test=-1", 2, nil},
		{"not an int", "my-test", "http://example.com/?my-test=foo", 2, nil},
		{"repeated param", "my-test", "http://example.com/?my-test=1&my-test=0", 2, nil},
		{"other params", "my-test", "http://example.com/?other=x&my-test=1#anchor", 2, i(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.url)
			require.NoError(t, err)
			res, ok := getQueryStringOverride(tt.id, u, tt.numVars)
			if tt.expected == nil {
				require.False(t, ok)
			} else {
				require.True(t, ok)
				require.Equal(t, *tt.expected, res)
			}
		})
	}

	_, ok := getQueryStringOverride("my-test", nil, 2)
	require.False(t, ok)
}

func i(v int) *int { return &v }
