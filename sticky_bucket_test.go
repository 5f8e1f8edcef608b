package flagkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func stickyTestClient(t *testing.T, service StickyBucketService, attrs Attributes) *Client {
	t.Helper()
	client, err := NewClient(context.TODO(),
		WithAttributes(attrs),
		WithStickyBucketService(service),
		WithFeatures(FeatureMap{
			"feature": {
				DefaultValue: 0,
				Rules: []FeatureRule{{
					Key:        "my-test",
					Variations: []FeatureValue{0.0, 1.0},
				}},
			},
		}),
	)
	require.NoError(t, err)
	return client
}

func TestInMemoryStickyBucketService(t *testing.T) {
	service := NewInMemoryStickyBucketService()

	doc, err := service.GetAssignments("id", "1")
	require.NoError(t, err)
	require.Nil(t, doc)

	saved := &StickyBucketAssignmentDoc{
		AttributeName:  "id",
		AttributeValue: "1",
		Assignments:    map[string]string{"exp__0": "1"},
	}
	require.NoError(t, service.SaveAssignments(saved))

	doc, err = service.GetAssignments("id", "1")
	require.NoError(t, err)
	require.Equal(t, saved, doc)

	all, err := service.GetAllAssignments(map[string]string{"id": "1", "deviceId": "d1"})
	require.NoError(t, err)
	require.Equal(t, StickyBucketAssignments{"id||1": saved}, all)

	service.Destroy()
	doc, err = service.GetAssignments("id", "1")
	require.NoError(t, err)
	require.Nil(t, doc)
}

func TestStickyBucketAssignmentSaved(t *testing.T) {
	ctx := context.TODO()
	service := NewInMemoryStickyBucketService()
	client := stickyTestClient(t, service, Attributes{"id": "1"})

	res := client.EvalFeature(ctx, "feature")
	require.Equal(t, 1.0, res.Value)
	require.False(t, res.ExperimentResult.StickyBucketUsed)

	doc, err := service.GetAssignments("id", "1")
	require.NoError(t, err)
	require.NotNil(t, doc)
	require.Equal(t, map[string]string{"my-test__0": "1"}, doc.Assignments)
}

func TestStickyBucketIdempotence(t *testing.T) {
	ctx := context.TODO()
	service := NewInMemoryStickyBucketService()
	client := stickyTestClient(t, service, Attributes{"id": "1"})

	first := client.EvalFeature(ctx, "feature")
	second := client.EvalFeature(ctx, "feature")
	require.Equal(t, first.Value, second.Value)
	require.Equal(t, first.ExperimentResult.VariationId, second.ExperimentResult.VariationId)
	require.True(t, second.ExperimentResult.StickyBucketUsed)
	require.Len(t, service.docs, 1)
}

func TestStickyBucketOverridesBucketing(t *testing.T) {
	ctx := context.TODO()
	service := NewInMemoryStickyBucketService()
	require.NoError(t, service.SaveAssignments(&StickyBucketAssignmentDoc{
		AttributeName:  "id",
		AttributeValue: "1",
		Assignments:    map[string]string{"my-test__0": "0"},
	}))
	client := stickyTestClient(t, service, Attributes{"id": "1"})

	// Natural bucketing would pick variation 1; the stored
	// assignment wins.
	res := client.EvalFeature(ctx, "feature")
	require.Equal(t, 0.0, res.Value)
	require.True(t, res.ExperimentResult.StickyBucketUsed)
	require.True(t, res.ExperimentResult.HashUsed)
}

func TestStickyBucketExperimentKey(t *testing.T) {
	require.Equal(t, "exp__0", stickyBucketExperimentKey("exp", 0))
	require.Equal(t, "exp__3", stickyBucketExperimentKey("exp", 3))
}

func TestIsVersionBlocked(t *testing.T) {
	assignments := map[string]string{"exp__1": "2"}
	require.False(t, isVersionBlocked(assignments, "exp", 0))
	require.False(t, isVersionBlocked(assignments, "exp", 1))
	require.True(t, isVersionBlocked(assignments, "exp", 2))
	require.False(t, isVersionBlocked(map[string]string{}, "exp", 5))
}

func TestMergeAssignments(t *testing.T) {
	fallback := &StickyBucketAssignmentDoc{Assignments: map[string]string{"a__0": "1", "b__0": "2"}}
	primary := &StickyBucketAssignmentDoc{Assignments: map[string]string{"a__0": "0"}}

	merged := mergeAssignments(fallback, primary)
	require.Equal(t, map[string]string{"a__0": "0", "b__0": "2"}, merged)
	require.Equal(t, map[string]string{}, mergeAssignments(nil, nil))
}
