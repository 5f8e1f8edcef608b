package condition

import (
	"encoding/json"
	"testing"

	"github.com/flagkit/flagkit-golang/internal/value"
	"github.com/stretchr/testify/require"
)

func mustCond(t *testing.T, src string) Base {
	t.Helper()
	var base Base
	require.NoError(t, json.Unmarshal([]byte(src), &base))
	return base
}

func mustAttrs(t *testing.T, src string) value.ObjValue {
	t.Helper()
	v, err := value.ParseJSON([]byte(src))
	require.NoError(t, err)
	obj, ok := v.(value.ObjValue)
	require.True(t, ok)
	return obj
}

// evalCase drives one condition against one attribute bag.
type evalCase struct {
	name  string
	cond  string
	attrs string
	res   bool
}

func runEvalCases(t *testing.T, tests []evalCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond := mustCond(t, tt.cond)
			attrs := mustAttrs(t, tt.attrs)
			require.Equal(t, tt.res, cond.Eval(attrs, nil))
		})
	}
}
