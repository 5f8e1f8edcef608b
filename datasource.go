package flagkit

import "context"

// DataSource keeps the catalog up to date in the background.
type DataSource interface {
	Start(context.Context) error
	Close() error
}

func (c *Client) startDataSource(ctx context.Context) {
	defer close(c.data.dsStartWait)
	ds := c.data.dataSource

	err := ds.Start(ctx)

	c.data.mu.Lock()
	c.data.dsStartErr = err
	c.data.dsStarted = err == nil
	c.data.mu.Unlock()
}

// EnsureLoaded blocks until the datasource has finished its first
// catalog load, or the context is done.
func (c *Client) EnsureLoaded(ctx context.Context) error {
	select {
	case <-c.data.dsStartWait:
		return c.data.getDsStartErr()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close shuts down the background datasource, if any.
func (c *Client) Close() error {
	if c.data.dataSource == nil {
		return nil
	}
	return c.data.dataSource.Close()
}
