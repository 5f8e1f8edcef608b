package flagkit

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPollDataSource(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		fmt.Fprintf(w, `{"features": {"feature": {"defaultValue": %d}}}`, n)
	}))
	defer server.Close()

	client, err := NewClient(ctx,
		WithApiHost(server.URL),
		WithClientKey("k"),
		WithPollDataSource(10*time.Millisecond),
	)
	require.NoError(t, err)
	require.NoError(t, client.EnsureLoaded(ctx))

	// The first load happens synchronously on start.
	require.Equal(t, 1.0, client.EvalFeature(ctx, "feature").Value)

	// Polling picks up new catalog versions.
	require.Eventually(t, func() bool {
		return client.EvalFeature(ctx, "feature").Value.(float64) > 1
	}, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, client.Close())
}

func TestPollDataSourceStartFailure(t *testing.T) {
	ctx := context.Background()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client, err := NewClient(ctx,
		WithApiHost(server.URL),
		WithClientKey("k"),
		WithPollDataSource(10*time.Millisecond),
	)
	require.NoError(t, err)
	require.Error(t, client.EnsureLoaded(ctx))
	require.Error(t, client.Close())
}

func TestPollDataSourceRetainsCatalogOnFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) > 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"features": {"feature": {"defaultValue": "good"}}}`)
	}))
	defer server.Close()

	client, err := NewClient(ctx,
		WithApiHost(server.URL),
		WithClientKey("k"),
		WithPollDataSource(5*time.Millisecond),
	)
	require.NoError(t, err)
	require.NoError(t, client.EnsureLoaded(ctx))

	require.Eventually(t, func() bool { return calls.Load() > 2 }, 2*time.Second, 5*time.Millisecond)
	require.Equal(t, "good", client.EvalFeature(ctx, "feature").Value)
}
