package flagkit

import (
	"encoding/json"
	"time"

	"github.com/flagkit/flagkit-golang/internal/condition"
)

// Features returns the current feature catalog.
func (c *Client) Features() FeatureMap {
	features, _ := c.data.snapshot()
	return features
}

// SavedGroups returns the current saved groups.
func (c *Client) SavedGroups() condition.SavedGroups {
	_, savedGroups := c.data.snapshot()
	return savedGroups
}

// LatestFeatureUpdate returns the time of the last catalog update.
func (c *Client) LatestFeatureUpdate() time.Time {
	return c.data.getDateUpdated()
}

// SetFeatures replaces the feature catalog.
func (c *Client) SetFeatures(features FeatureMap) error {
	return c.data.withLock(func(d *data) error {
		d.features = features
		d.dateUpdated = time.Now()
		return nil
	})
}

// SetJSONFeatures replaces the feature catalog from its JSON form: an
// object mapping feature ids to definitions.
func (c *Client) SetJSONFeatures(featuresJSON string) error {
	var features FeatureMap
	if err := json.Unmarshal([]byte(featuresJSON), &features); err != nil {
		return err
	}
	return c.SetFeatures(features)
}

// SetEncryptedJSONFeatures replaces the feature catalog from an
// encrypted payload. On any decryption or parse failure the previous
// catalog is retained.
func (c *Client) SetEncryptedJSONFeatures(encrypted string) error {
	featuresJSON, err := c.data.decrypt(encrypted)
	if err != nil {
		return err
	}
	return c.SetJSONFeatures(featuresJSON)
}
