// Package flagkit is a client-side feature flag and A/B testing
// library. A Client holds a catalog of feature definitions, usually
// fetched from a remote endpoint and refreshed in the background, and
// evaluates features against a bag of user attributes: targeting
// conditions, gradual rollouts, experiments with deterministic
// bucketing, prerequisite features and sticky bucket assignments.
//
// Evaluation never returns errors: every call yields a FeatureResult
// whose Source field explains the outcome. Only catalog loading and
// the typed convenience accessors (BoolFeature, StringFeature,
// ObjectFeature) report errors.
package flagkit
