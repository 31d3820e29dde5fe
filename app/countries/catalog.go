package countries

import (
	"context"
	"sync"

	"github.com/joefazee/atlas/internal/logger"
	"github.com/joefazee/atlas/models"
)

// Status is the lifecycle stage of the catalog
type Status int32

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// Catalog holds the full country collection. It is fetched once, on the
// first Activate, and shared by every request afterwards. A failed fetch
// leaves the catalog loaded and empty.
type Catalog struct {
	client Client
	logger logger.Logger

	once sync.Once
	done chan struct{}

	mu        sync.RWMutex
	status    Status
	countries []models.Country
}

// NewCatalog creates an idle catalog
func NewCatalog(client Client, log logger.Logger) *Catalog {
	return &Catalog{
		client: client,
		logger: log,
		done:   make(chan struct{}),
	}
}

// Activate starts the one and only fetch. Later calls do nothing. The fetch
// outlives ctx's cancellation so an aborted request does not abort it.
func (c *Catalog) Activate(ctx context.Context) {
	c.once.Do(func() {
		c.mu.Lock()
		c.status = StatusLoading
		c.mu.Unlock()

		go c.load(context.WithoutCancel(ctx))
	})
}

func (c *Catalog) load(ctx context.Context) {
	defer close(c.done)

	countries, err := c.client.All(ctx)
	if err != nil {
		c.logger.Error(err, map[string]interface{}{"op": "catalog.load"})
		countries = nil
	} else {
		c.logger.Info("country catalog loaded", map[string]interface{}{"count": len(countries)})
	}

	c.mu.Lock()
	c.countries = countries
	c.status = StatusLoaded
	c.mu.Unlock()
}

// Status returns the current lifecycle stage
func (c *Catalog) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Snapshot returns the stage and, once loaded, the collection. The slice is
// shared and must not be modified.
func (c *Catalog) Snapshot() (Status, []models.Country) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status, c.countries
}

// Wait blocks until the fetch has finished or ctx is done
func (c *Catalog) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
