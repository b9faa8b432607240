package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/celestiaorg/jobtracker/internal/db/models"
	"github.com/celestiaorg/jobtracker/internal/logger"
	"github.com/celestiaorg/jobtracker/internal/types"
	"github.com/celestiaorg/jobtracker/pkg/api/v1/client"
)

// ErrRefreshFailed is joined to the re-fetch error when a mutation succeeded
// but the snapshot could not be refreshed afterwards
var ErrRefreshFailed = errors.New("mutation succeeded but refresh failed")

// Store is the part of the API client the cache depends on
type Store interface {
	ListJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, id uint) (models.Job, error)
	CreateJob(ctx context.Context, req types.CreateJobRequest) (models.Job, error)
	UpdateJob(ctx context.Context, id uint, req types.UpdateJobRequest) (models.Job, error)
	DeleteJob(ctx context.Context, id uint) error
}

var _ Store = client.Client(nil)

// Snapshot is the cached view of the whole collection. Version increases by
// one with every installed fetch, so a zero Version means nothing has been
// fetched yet.
type Snapshot struct {
	Jobs      []models.Job `json:"jobs"`
	Version   uint64       `json:"version"`
	FetchedAt time.Time    `json:"fetchedAt"`
}

// Find returns the job with the given id
func (s Snapshot) Find(id uint) (models.Job, bool) {
	for _, job := range s.Jobs {
		if job.ID == id {
			return job, true
		}
	}
	return models.Job{}, false
}

func (s Snapshot) clone() Snapshot {
	jobs := make([]models.Job, len(s.Jobs))
	copy(jobs, s.Jobs)
	s.Jobs = jobs
	return s
}

// Option configures a Cache
type Option func(*Cache)

// WithOnChange registers fn to be called after every installed snapshot
func WithOnChange(fn func(Snapshot)) Option {
	return func(c *Cache) {
		c.onChange = fn
	}
}

// WithClock overrides the clock used to stamp FetchedAt
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// Cache holds the client-side job snapshot for one session
type Cache struct {
	store    Store
	onChange func(Snapshot)
	now      func() time.Time

	mu       sync.RWMutex
	snapshot Snapshot

	pending atomic.Int64
}

// NewCache creates an empty cache on top of store
func NewCache(store Store, opts ...Option) *Cache {
	c := &Cache{
		store:    store,
		now:      time.Now,
		snapshot: Snapshot{Jobs: []models.Job{}},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns a copy of the current snapshot. It may be stale while a
// fetch is in flight.
func (c *Cache) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot.clone()
}

// Loading reports whether any fetch is in flight
func (c *Cache) Loading() bool {
	return c.pending.Load() > 0
}

// FetchAll loads the full collection and installs it as the new snapshot.
// On failure the previous snapshot is kept and returned with the error.
func (c *Cache) FetchAll(ctx context.Context) (Snapshot, error) {
	c.pending.Add(1)
	defer c.pending.Add(-1)

	jobs, err := c.store.ListJobs(ctx)
	if err == nil {
		err = checkUnique(jobs)
	}
	if err != nil {
		logger.WarnWithFields("job fetch failed", map[string]interface{}{
			"error": err.Error(),
		})
		return c.Snapshot(), err
	}

	return c.install(jobs), nil
}

// Get returns a single job straight from the store. The snapshot is not touched.
func (c *Cache) Get(ctx context.Context, id uint) (models.Job, error) {
	return c.store.GetJob(ctx, id)
}

// Create stores a new job and refreshes the snapshot
func (c *Cache) Create(ctx context.Context, req types.CreateJobRequest) (models.Job, error) {
	job, err := c.store.CreateJob(ctx, req)
	if err != nil {
		return models.Job{}, err
	}
	return job, c.refresh(ctx, "create")
}

// Update changes the present fields of a job and refreshes the snapshot
func (c *Cache) Update(ctx context.Context, id uint, req types.UpdateJobRequest) (models.Job, error) {
	job, err := c.store.UpdateJob(ctx, id, req)
	if err != nil {
		return models.Job{}, err
	}
	return job, c.refresh(ctx, "update")
}

// Remove deletes a job and refreshes the snapshot
func (c *Cache) Remove(ctx context.Context, id uint) error {
	if err := c.store.DeleteJob(ctx, id); err != nil {
		return err
	}
	return c.refresh(ctx, "delete")
}

// refresh runs the re-fetch that follows every successful mutation
func (c *Cache) refresh(ctx context.Context, op string) error {
	if _, err := c.FetchAll(ctx); err != nil {
		return fmt.Errorf("%w after %s: %w", ErrRefreshFailed, op, err)
	}
	return nil
}

// install replaces the snapshot. Whichever fetch reaches this point last wins.
func (c *Cache) install(jobs []models.Job) Snapshot {
	c.mu.Lock()
	c.snapshot = Snapshot{
		Jobs:      jobs,
		Version:   c.snapshot.Version + 1,
		FetchedAt: c.now(),
	}
	installed := c.snapshot.clone()
	c.mu.Unlock()

	logger.DebugWithFields("job snapshot installed", map[string]interface{}{
		"version": installed.Version,
		"jobs":    len(installed.Jobs),
	})

	if c.onChange != nil {
		c.onChange(installed.clone())
	}
	return installed
}

func checkUnique(jobs []models.Job) error {
	seen := make(map[uint]struct{}, len(jobs))
	for _, job := range jobs {
		if _, ok := seen[job.ID]; ok {
			return &client.RemoteError{
				Op:      "list jobs",
				Message: fmt.Sprintf("duplicate job id %d in response", job.ID),
			}
		}
		seen[job.ID] = struct{}{}
	}
	return nil
}
