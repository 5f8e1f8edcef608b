package flagkit

import (
	"net/http"
	"sync"
	"time"

	"github.com/flagkit/flagkit-golang/internal/condition"
)

const defaultApiHost = "https://cdn.flagkit.io"

// data is the catalog state shared between a client, its children and
// the background datasource. The feature map is replaced wholesale
// under the write lock and never mutated, so readers holding a
// snapshot observe consistent state.
type data struct {
	mu            sync.RWMutex
	features      FeatureMap
	savedGroups   condition.SavedGroups
	dateUpdated   time.Time
	apiHost       string
	clientKey     string
	decryptionKey string
	httpClient    *http.Client
	dataSource    DataSource
	dsStarted     bool
	dsStartWait   chan struct{}
	dsStartErr    error
}

func newData() *data {
	return &data{
		dsStartWait: make(chan struct{}),
		apiHost:     defaultApiHost,
		httpClient:  &http.Client{Timeout: envDuration("GB_HTTP_CLIENT_TIMEOUT", 10*time.Second)},
	}
}

// snapshot returns the catalog state for a single evaluation.
func (d *data) snapshot() (FeatureMap, condition.SavedGroups) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.features, d.savedGroups
}

func (d *data) getDateUpdated() time.Time {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.dateUpdated
}

func (d *data) getApiUrl() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.apiHost + "/api/features/" + d.clientKey
}

func (d *data) getSseUrl() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.apiHost + "/sub/" + d.clientKey
}

func (d *data) getDsStartErr() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.dsStartErr
}

type dataUpdate func(*data) error

func (d *data) withLock(f dataUpdate) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return f(d)
}

func (d *data) decrypt(encrypted string) (string, error) {
	d.mu.RLock()
	key := d.decryptionKey
	d.mu.RUnlock()
	if key == "" {
		return "", ErrNoDecryptionKey
	}
	return decrypt(encrypted, key)
}
