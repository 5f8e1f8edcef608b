package flagkit

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// Concurrent evaluations must never observe a torn catalog while the
// datasource swaps it.
func TestConcurrentEvalAndSwap(t *testing.T) {
	ctx := context.TODO()
	client, err := NewClient(ctx,
		WithAttributes(Attributes{"id": "1"}),
		WithFeatures(FeatureMap{"feature": {DefaultValue: "v0"}}),
	)
	require.NoError(t, err)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				res := client.EvalFeature(ctx, "feature")
				if res.Value == nil {
					t.Error("evaluation observed missing feature")
					return
				}
			}
		}()
	}

	for i := 0; i < 500; i++ {
		err := client.SetFeatures(FeatureMap{"feature": {DefaultValue: fmt.Sprintf("v%d", i)}})
		require.NoError(t, err)
	}
	close(stop)
	wg.Wait()
}
