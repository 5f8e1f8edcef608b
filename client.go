package flagkit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"

	"github.com/flagkit/flagkit-golang/internal/value"
)

// ForcedVariationsMap forces experiments to always assign a specific
// variation. Useful for QA. Keys are experiment keys, values are the
// array index of the variation.
type ForcedVariationsMap map[string]int

// ExperimentCallback is executed every time a user is included in an
// experiment.
type ExperimentCallback func(experiment *Experiment, result *ExperimentResult)

// FeatureUsageCallback is executed every time a feature is evaluated.
type FeatureUsageCallback func(key string, result *FeatureResult)

// Client evaluates features and runs experiments against a catalog of
// feature definitions. Clients are cheap to copy: child clients
// created with the With* methods share the catalog and datasource with
// their parent.
type Client struct {
	data                 *data
	logger               *slog.Logger
	enabled              bool
	attributes           value.ObjValue
	rawAttributes        Attributes
	url                  *url.URL
	qaMode               bool
	forcedVariations     ForcedVariationsMap
	stickyBucketService  StickyBucketService
	experimentCallback   ExperimentCallback
	featureUsageCallback FeatureUsageCallback
}

// NewClient creates a client configured by the given options. If a
// datasource option was used, its startup begins in the background;
// use EnsureLoaded to wait for the first catalog load.
func NewClient(ctx context.Context, opts ...ClientOption) (*Client, error) {
	c := &Client{
		data:             newData(),
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		enabled:          true,
		attributes:       value.ObjValue{},
		forcedVariations: ForcedVariationsMap{},
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.data.dataSource != nil {
		go c.startDataSource(ctx)
	}

	return c, nil
}

func (c *Client) clone() *Client {
	cp := *c
	return &cp
}

// WithEnabled returns a child client with the enabled switch set.
func (c *Client) WithEnabled(enabled bool) (*Client, error) {
	child := c.clone()
	child.enabled = enabled
	return child, nil
}

// WithQaMode returns a child client with QA mode set.
func (c *Client) WithQaMode(qaMode bool) (*Client, error) {
	child := c.clone()
	child.qaMode = qaMode
	return child, nil
}

// WithAttributes returns a child client with new user attributes.
func (c *Client) WithAttributes(attributes Attributes) (*Client, error) {
	child := c.clone()
	child.rawAttributes = attributes.clone()
	child.attributes = value.Obj(attributes)
	return child, nil
}

// WithUrl returns a child client with a new current page URL.
func (c *Client) WithUrl(rawUrl string) (*Client, error) {
	u, err := url.Parse(rawUrl)
	if err != nil {
		return nil, err
	}
	child := c.clone()
	child.url = u
	return child, nil
}

// WithForcedVariations returns a child client with new forced
// variations.
func (c *Client) WithForcedVariations(forcedVariations ForcedVariationsMap) (*Client, error) {
	if forcedVariations == nil {
		forcedVariations = ForcedVariationsMap{}
	}
	child := c.clone()
	child.forcedVariations = forcedVariations
	return child, nil
}

// WithStickyBucketService returns a child client using the given
// sticky bucket store.
func (c *Client) WithStickyBucketService(service StickyBucketService) (*Client, error) {
	child := c.clone()
	child.stickyBucketService = service
	return child, nil
}

// Attributes returns a copy of the client's user attributes.
func (c *Client) Attributes() Attributes {
	return c.rawAttributes.clone()
}

// ForceVariation forces a variation for an experiment key. The change
// is visible to child clients sharing the map.
func (c *Client) ForceVariation(key string, variation int) {
	c.forcedVariations[key] = variation
}

// UnforceVariation removes a forced variation.
func (c *Client) UnforceVariation(key string) {
	delete(c.forcedVariations, key)
}

func (c *Client) newEvaluator() *evaluator {
	features, savedGroups := c.data.snapshot()
	return &evaluator{
		features:          features,
		savedGroups:       savedGroups,
		client:            c,
		stickyAssignments: StickyBucketAssignments{},
	}
}

// EvalFeature evaluates a feature. It never fails: the result's
// Source field explains the outcome.
func (c *Client) EvalFeature(ctx context.Context, key string) *FeatureResult {
	res := c.newEvaluator().evalFeature(key)

	if c.featureUsageCallback != nil {
		c.featureUsageCallback(key, res)
	}
	if c.experimentCallback != nil && res.ExperimentResult != nil && res.ExperimentResult.InExperiment {
		c.experimentCallback(res.Experiment, res.ExperimentResult)
	}
	return res
}

// RunExperiment runs an inline experiment definition.
func (c *Client) RunExperiment(ctx context.Context, exp *Experiment) *ExperimentResult {
	res := c.newEvaluator().runExperiment(exp, "")

	if c.experimentCallback != nil && res.InExperiment {
		c.experimentCallback(exp, res)
	}
	return res
}

// IsOn reports whether a feature is on.
func (c *Client) IsOn(ctx context.Context, key string) bool {
	return c.EvalFeature(ctx, key).On
}

// IsOff reports whether a feature is off.
func (c *Client) IsOff(ctx context.Context, key string) bool {
	return c.EvalFeature(ctx, key).Off
}

// GetFeatureValue returns the evaluated feature value, or fallback
// when the value is null.
func (c *Client) GetFeatureValue(ctx context.Context, key string, fallback FeatureValue) FeatureValue {
	res := c.EvalFeature(ctx, key)
	if res.Value == nil {
		return fallback
	}
	return res.Value
}

// BoolFeature returns a boolean feature value. When the evaluated
// value is not a boolean the default is returned together with
// ErrInvalidResponseValueType.
func (c *Client) BoolFeature(ctx context.Context, key string, def bool) (bool, error) {
	res := c.EvalFeature(ctx, key)
	if res.Value == nil {
		return def, nil
	}
	b, ok := res.Value.(bool)
	if !ok {
		return def, fmt.Errorf("%w: feature %q expected boolean, got %T", ErrInvalidResponseValueType, key, res.Value)
	}
	return b, nil
}

// StringFeature returns a string feature value. When the evaluated
// value is not a string the default is returned together with
// ErrInvalidResponseValueType.
func (c *Client) StringFeature(ctx context.Context, key string, def string) (string, error) {
	res := c.EvalFeature(ctx, key)
	if res.Value == nil {
		return def, nil
	}
	s, ok := res.Value.(string)
	if !ok {
		return def, fmt.Errorf("%w: feature %q expected string, got %T", ErrInvalidResponseValueType, key, res.Value)
	}
	return s, nil
}

// ObjectFeature returns an object feature value. When the evaluated
// value is not an object the default is returned together with
// ErrInvalidResponseValueType.
func (c *Client) ObjectFeature(ctx context.Context, key string, def map[string]any) (map[string]any, error) {
	res := c.EvalFeature(ctx, key)
	if res.Value == nil {
		return def, nil
	}
	obj, ok := res.Value.(map[string]any)
	if !ok {
		return def, fmt.Errorf("%w: feature %q expected object, got %T", ErrInvalidResponseValueType, key, res.Value)
	}
	return obj, nil
}
