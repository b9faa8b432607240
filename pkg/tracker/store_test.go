package tracker

import (
	"context"
	"sync"
	"time"

	"github.com/celestiaorg/jobtracker/internal/db/models"
	"github.com/celestiaorg/jobtracker/internal/types"
	"github.com/celestiaorg/jobtracker/pkg/api/v1/client"
)

// memoryStore is an in-memory Store that behaves like the API client:
// it validates before "sending" and assigns id and createdAt itself.
type memoryStore struct {
	mu     sync.Mutex
	jobs   []models.Job
	nextID uint
	calls  int

	// listHook, when set, runs before ListJobs returns and may replace the result
	listHook func(ctx context.Context, jobs []models.Job) ([]models.Job, error)
}

func newMemoryStore(seed ...models.Job) *memoryStore {
	s := &memoryStore{nextID: 1}
	for _, job := range seed {
		job.ID = s.nextID
		s.nextID++
		s.jobs = append(s.jobs, job)
	}
	return s
}

func (s *memoryStore) networkCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *memoryStore) ListJobs(ctx context.Context) ([]models.Job, error) {
	s.mu.Lock()
	s.calls++
	jobs := make([]models.Job, len(s.jobs))
	copy(jobs, s.jobs)
	hook := s.listHook
	s.mu.Unlock()

	if hook != nil {
		return hook(ctx, jobs)
	}
	return jobs, nil
}

func (s *memoryStore) GetJob(_ context.Context, id uint) (models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	for _, job := range s.jobs {
		if job.ID == id {
			return job, nil
		}
	}
	return models.Job{}, &client.NotFoundError{ID: id}
}

func (s *memoryStore) CreateJob(_ context.Context, req types.CreateJobRequest) (models.Job, error) {
	if err := req.Validate(); err != nil {
		return models.Job{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	job := *req.ToJob()
	job.ID = s.nextID
	job.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(s.nextID) * time.Hour)
	s.nextID++
	s.jobs = append(s.jobs, job)
	return job, nil
}

func (s *memoryStore) UpdateJob(_ context.Context, id uint, req types.UpdateJobRequest) (models.Job, error) {
	if err := req.Validate(); err != nil {
		return models.Job{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			req.Apply(&s.jobs[i])
			return s.jobs[i], nil
		}
	}
	return models.Job{}, &client.NotFoundError{ID: id}
}

func (s *memoryStore) DeleteJob(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
			return nil
		}
	}
	return &client.NotFoundError{ID: id}
}
