package flagkit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpdateFromApiResponseJSON(t *testing.T) {
	ctx := context.TODO()
	client, err := NewClient(ctx)
	require.NoError(t, err)

	payload := `{
		"features": {"feature": {"defaultValue": true}},
		"savedGroups": {"admins": ["1"]},
		"dateUpdated": "2024-03-01T10:00:00Z"
	}`
	require.NoError(t, client.UpdateFromApiResponseJSON(payload))
	require.True(t, client.EvalFeature(ctx, "feature").On)
	require.Len(t, client.SavedGroups(), 1)
	require.Equal(t, 2024, client.LatestFeatureUpdate().Year())

	require.Error(t, client.UpdateFromApiResponseJSON("{not json"))
}

func TestUpdateRetainsCatalogOnBadEncryptedPayload(t *testing.T) {
	ctx := context.TODO()
	client, err := NewClient(ctx,
		WithDecryptionKey("Zvwv/+uhpFDznZ6SX28Yjg=="),
		WithFeatures(FeatureMap{"feature": {DefaultValue: "keep"}}),
	)
	require.NoError(t, err)

	err = client.UpdateFromApiResponse(&FeatureApiResponse{EncryptedFeatures: "not.valid"})
	require.Error(t, err)
	require.Equal(t, "keep", client.EvalFeature(ctx, "feature").Value)
}

func TestUpdateRequiresDecryptionKey(t *testing.T) {
	client, err := NewClient(context.TODO())
	require.NoError(t, err)

	err = client.UpdateFromApiResponse(&FeatureApiResponse{EncryptedFeatures: "aa.bb"})
	require.ErrorIs(t, err, ErrNoDecryptionKey)
}

func TestCallFeatureApi(t *testing.T) {
	ctx := context.TODO()

	var gotPath, gotEtag string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotEtag = r.Header.Get("If-None-Match")
		if gotEtag == "v1" {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("etag", "v1")
		w.Header().Set("x-sse-support", "enabled")
		w.Write([]byte(`{"features": {"feature": {"defaultValue": 1}}}`))
	}))
	defer server.Close()

	client, err := NewClient(ctx,
		WithApiHost(server.URL),
		WithClientKey("sdk-key"),
	)
	require.NoError(t, err)

	resp, err := client.CallFeatureApi(ctx, "")
	require.NoError(t, err)
	require.Equal(t, "/api/features/sdk-key", gotPath)
	require.Equal(t, "v1", resp.Etag)
	require.True(t, resp.SseSupport)
	require.Len(t, resp.Features, 1)

	resp, err = client.CallFeatureApi(ctx, "v1")
	require.NoError(t, err)
	require.Equal(t, "v1", gotEtag)
	require.Equal(t, http.StatusNotModified, resp.Status)
	require.Nil(t, resp.Features)
}

func TestCallFeatureApiServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(context.TODO(), WithApiHost(server.URL), WithClientKey("k"))
	require.NoError(t, err)

	_, err = client.CallFeatureApi(context.TODO(), "")
	require.Error(t, err)
}
