package services

import (
	"context"
	"errors"
	"time"

	"github.com/celestiaorg/jobtracker/internal/db/models"
	"github.com/celestiaorg/jobtracker/internal/db/repos"
	"github.com/celestiaorg/jobtracker/internal/logger"
	"github.com/celestiaorg/jobtracker/internal/types"
)

// Job service errors
var (
	ErrJobNotFound     = errors.New("job not found")
	ErrJobCreateFailed = errors.New("failed to create job")
	ErrJobUpdateFailed = errors.New("failed to update job")
	ErrJobDeleteFailed = errors.New("failed to delete job")
)

// Job provides business logic for job application records
type Job struct {
	repo *repos.JobRepository
	now  func() time.Time
}

// NewJobService creates a new job service instance
func NewJobService(repo *repos.JobRepository) *Job {
	return &Job{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// ListJobs returns every stored job
func (s *Job) ListJobs(ctx context.Context) ([]models.Job, error) {
	return s.repo.List(ctx)
}

// GetJob returns the job with the given id
func (s *Job) GetJob(ctx context.Context, id uint) (*models.Job, error) {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, err)
	}
	return job, nil
}

// CreateJob validates the request and stores a new job. The id and creation
// time are assigned here, never taken from the caller.
func (s *Job) CreateJob(ctx context.Context, req types.CreateJobRequest) (*models.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	job := req.ToJob()
	// postgres stores microseconds
	job.CreatedAt = s.now().UTC().Truncate(time.Microsecond)
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, errors.Join(ErrJobCreateFailed, err)
	}

	logger.DebugWithFields("job created", map[string]interface{}{
		"id":      job.ID,
		"company": job.Company,
		"status":  job.Status.String(),
	})
	return job, nil
}

// UpdateJob applies the fields present in req to an existing job
func (s *Job) UpdateJob(ctx context.Context, id uint, req types.UpdateJobRequest) (*models.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, err)
	}
	if req.IsEmpty() {
		return job, nil
	}

	req.Apply(job)
	if err := s.repo.Update(ctx, job); err != nil {
		return nil, notFoundOr(err, errors.Join(ErrJobUpdateFailed, err))
	}

	logger.DebugWithFields("job updated", map[string]interface{}{
		"id":     job.ID,
		"status": job.Status.String(),
	})
	return job, nil
}

// DeleteJob removes a job permanently
func (s *Job) DeleteJob(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundOr(err, errors.Join(ErrJobDeleteFailed, err))
	}
	logger.DebugWithFields("job deleted", map[string]interface{}{"id": id})
	return nil
}

// notFoundOr maps repository misses to ErrJobNotFound and returns fallback otherwise
func notFoundOr(err, fallback error) error {
	if errors.Is(err, repos.ErrNotFound) {
		return errors.Join(ErrJobNotFound, err)
	}
	return fallback
}
