package flagkit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/flagkit/flagkit-golang/internal/condition"
)

// FeatureApiResponse is the catalog wire format returned from
// "<apiHost>/api/features/<clientKey>". Features may arrive encrypted.
type FeatureApiResponse struct {
	Status            int                   `json:"status"`
	Features          FeatureMap            `json:"features"`
	DateUpdated       time.Time             `json:"dateUpdated"`
	SavedGroups       condition.SavedGroups `json:"savedGroups"`
	EncryptedFeatures string                `json:"encryptedFeatures"`
	SseSupport        bool                  `json:"-"`
	Etag              string                `json:"-"`
}

const userAgent = "flagkit Go SDK client"

// CallFeatureApi fetches the catalog, honoring etags: a 304 yields a
// response with no features.
func (c *Client) CallFeatureApi(ctx context.Context, etag string) (*FeatureApiResponse, error) {
	apiResp := FeatureApiResponse{}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.data.getApiUrl(), nil)
	if err != nil {
		return nil, err
	}

	setReqHeaders(req, etag)
	resp, err := c.data.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	apiResp.Status = resp.StatusCode
	apiResp.Etag = resp.Header.Get("etag")
	apiResp.SseSupport = resp.Header.Get("x-sse-support") == "enabled"

	if resp.StatusCode == http.StatusNotModified {
		return &apiResp, nil
	}

	if resp.StatusCode != http.StatusOK {
		return &apiResp, fmt.Errorf("error loading features, code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apiResp, err
	}

	c.logger.InfoContext(ctx, "Loading features")
	if err := json.Unmarshal(body, &apiResp); err != nil {
		c.logger.ErrorContext(ctx, "Error parsing features response", "error", err)
		return &apiResp, err
	}

	return &apiResp, nil
}

// UpdateFromApiResponse swaps the catalog for the one in the
// response, decrypting it first when necessary. On any failure the
// previous catalog is retained.
func (c *Client) UpdateFromApiResponse(resp *FeatureApiResponse) error {
	features := resp.Features
	if resp.EncryptedFeatures != "" {
		decrypted, err := c.data.decrypt(resp.EncryptedFeatures)
		if err != nil {
			return err
		}
		features = nil
		if err := json.Unmarshal([]byte(decrypted), &features); err != nil {
			return err
		}
	}

	return c.data.withLock(func(d *data) error {
		d.features = features
		if resp.SavedGroups != nil {
			d.savedGroups = resp.SavedGroups
		}
		d.dateUpdated = resp.DateUpdated
		return nil
	})
}

// UpdateFromApiResponseJSON is UpdateFromApiResponse for a raw JSON
// payload, as delivered by the SSE datasource.
func (c *Client) UpdateFromApiResponseJSON(data string) error {
	var resp FeatureApiResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		return err
	}
	return c.UpdateFromApiResponse(&resp)
}

func setReqHeaders(req *http.Request, etag string) {
	req.Header.Set("User-Agent", userAgent)
	if etag != "" {
		req.Header.Add("If-None-Match", etag)
	}
}
