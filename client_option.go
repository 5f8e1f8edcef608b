package flagkit

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/flagkit/flagkit-golang/internal/condition"
	"github.com/flagkit/flagkit-golang/internal/value"
)

type ClientOption func(*Client) error

// WithEnabled switches all experiments globally. Default true.
func WithEnabled(enabled bool) ClientOption {
	return func(c *Client) error {
		c.enabled = enabled
		return nil
	}
}

// WithApiHost sets the API host the catalog is fetched from.
func WithApiHost(apiHost string) ClientOption {
	return func(c *Client) error {
		c.data.apiHost = apiHost
		return nil
	}
}

// WithClientKey sets the SDK key used to fetch features from the API.
func WithClientKey(clientKey string) ClientOption {
	return func(c *Client) error {
		c.data.clientKey = clientKey
		return nil
	}
}

// WithDecryptionKey sets the key used to decrypt encrypted feature
// payloads. Optional.
func WithDecryptionKey(decryptionKey string) ClientOption {
	return func(c *Client) error {
		c.data.decryptionKey = decryptionKey
		return nil
	}
}

// WithAttributes sets the user attributes used to assign variations.
func WithAttributes(attributes Attributes) ClientOption {
	return func(c *Client) error {
		c.rawAttributes = attributes.clone()
		c.attributes = value.Obj(attributes)
		return nil
	}
}

// WithSavedGroups sets shared attribute lists targeted across
// multiple features and experiments.
func WithSavedGroups(savedGroups condition.SavedGroups) ClientOption {
	return func(c *Client) error {
		c.data.savedGroups = savedGroups
		return nil
	}
}

// WithUrl sets the URL of the current page.
func WithUrl(rawUrl string) ClientOption {
	return func(c *Client) error {
		u, err := url.Parse(rawUrl)
		if err != nil {
			return err
		}
		c.url = u
		return nil
	}
}

// WithFeatures sets feature definitions (usually pulled from an API
// or cache).
func WithFeatures(features FeatureMap) ClientOption {
	return func(c *Client) error {
		return c.SetFeatures(features)
	}
}

// WithJsonFeatures sets feature definitions from their JSON form.
func WithJsonFeatures(featuresJSON string) ClientOption {
	return func(c *Client) error {
		return c.SetJSONFeatures(featuresJSON)
	}
}

// WithEncryptedJsonFeatures sets feature definitions from an
// encrypted payload. Requires WithDecryptionKey to be applied first.
func WithEncryptedJsonFeatures(encrypted string) ClientOption {
	return func(c *Client) error {
		return c.SetEncryptedJSONFeatures(encrypted)
	}
}

// WithForcedVariations forces specific experiments to always assign a
// specific variation (used for QA).
func WithForcedVariations(forcedVariations ForcedVariationsMap) ClientOption {
	return func(c *Client) error {
		if forcedVariations == nil {
			forcedVariations = ForcedVariationsMap{}
		}
		c.forcedVariations = forcedVariations
		return nil
	}
}

// WithQaMode disables random assignment; only explicitly forced
// variations apply.
func WithQaMode(qaMode bool) ClientOption {
	return func(c *Client) error {
		c.qaMode = qaMode
		return nil
	}
}

// WithHttpClient sets the HTTP client used for API calls.
func WithHttpClient(httpClient *http.Client) ClientOption {
	return func(c *Client) error {
		c.data.httpClient = httpClient
		return nil
	}
}

// WithLogger sets the client logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}

// WithStickyBucketService sets the store used to persist sticky
// bucket assignments.
func WithStickyBucketService(service StickyBucketService) ClientOption {
	return func(c *Client) error {
		c.stickyBucketService = service
		return nil
	}
}

// WithExperimentCallback sets a callback fired every time a user is
// included in an experiment.
func WithExperimentCallback(callback ExperimentCallback) ClientOption {
	return func(c *Client) error {
		c.experimentCallback = callback
		return nil
	}
}

// WithFeatureUsageCallback sets a callback fired every time a feature
// is evaluated.
func WithFeatureUsageCallback(callback FeatureUsageCallback) ClientOption {
	return func(c *Client) error {
		c.featureUsageCallback = callback
		return nil
	}
}
