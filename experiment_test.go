package flagkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExperimentBuilder(t *testing.T) {
	exp := NewExperiment("my-test").
		WithVariations(0, 1).
		WithWeights(0.4, 0.6).
		WithCoverage(0.5).
		WithSeed("seed").
		WithName("My test").
		WithPhase("2").
		WithHashAttribute("deviceId").
		WithForce(1).
		WithActive(false)

	require.Equal(t, "my-test", exp.Key)
	require.Equal(t, []FeatureValue{0, 1}, exp.Variations)
	require.Equal(t, []float64{0.4, 0.6}, exp.Weights)
	require.Equal(t, 0.5, exp.getCoverage())
	require.Equal(t, "seed", exp.getSeed())
	require.Equal(t, "My test", exp.Name)
	require.Equal(t, "deviceId", exp.HashAttribute)
	require.Equal(t, 1, *exp.Force)
	require.False(t, exp.getActive())
}

func TestExperimentDefaults(t *testing.T) {
	exp := NewExperiment("key")
	require.True(t, exp.getActive())
	require.Equal(t, 1.0, exp.getCoverage())
	require.Equal(t, "key", exp.getSeed())
}

func TestExperimentFromFeatureRule(t *testing.T) {
	coverage := 0.5
	rule := &FeatureRule{
		Variations:    []FeatureValue{"a", "b"},
		Weights:       []float64{0.3, 0.7},
		Coverage:      &coverage,
		HashAttribute: "deviceId",
		HashVersion:   2,
		Seed:          "seed",
	}

	exp := experimentFromFeatureRule("my-feature", rule)
	require.Equal(t, "my-feature", exp.Key)
	require.Equal(t, rule.Variations, exp.Variations)
	require.Equal(t, rule.Weights, exp.Weights)
	require.Equal(t, 0.5, exp.getCoverage())
	require.Equal(t, "deviceId", exp.HashAttribute)
	require.Equal(t, 2, exp.HashVersion)

	rule.Key = "custom-key"
	require.Equal(t, "custom-key", experimentFromFeatureRule("my-feature", rule).Key)
}

func TestRunExperimentCallback(t *testing.T) {
	var gotExp *Experiment
	var gotRes *ExperimentResult
	client, err := NewClient(context.TODO(),
		WithAttributes(Attributes{"id": "1"}),
		WithExperimentCallback(func(exp *Experiment, res *ExperimentResult) {
			gotExp, gotRes = exp, res
		}),
	)
	require.NoError(t, err)

	exp := NewExperiment("my-test").WithVariations(0, 1)
	res := client.RunExperiment(context.TODO(), exp)
	require.True(t, res.InExperiment)
	require.Equal(t, exp, gotExp)
	require.Equal(t, res, gotRes)

	// Not-in-experiment results don't fire the callback.
	gotExp = nil
	disabled, err := client.WithEnabled(false)
	require.NoError(t, err)
	disabled.RunExperiment(context.TODO(), exp)
	require.Nil(t, gotExp)
}
