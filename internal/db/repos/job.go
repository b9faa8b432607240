package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/celestiaorg/jobtracker/internal/db/models"
)

// ErrNotFound is returned when no job exists with the requested id
var ErrNotFound = errors.New("job not found")

// JobRepository provides access to job-related database operations
type JobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository instance
func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create creates a new job in the database
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	if job.ID != 0 {
		return fmt.Errorf("job id is server-assigned, got %d", job.ID)
	}
	return r.db.WithContext(ctx).Create(job).Error
}

// GetByID retrieves a job by its ID
func (r *JobRepository) GetByID(ctx context.Context, ID uint) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).First(&job, ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}

// List returns every job ordered by id, which is also creation order
func (r *JobRepository) List(ctx context.Context) ([]models.Job, error) {
	jobs := []models.Job{}
	err := r.db.WithContext(ctx).
		Order(models.JobIDField + " ASC").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// Update saves every column of an existing job
func (r *JobRepository) Update(ctx context.Context, job *models.Job) error {
	if job.ID == 0 {
		return fmt.Errorf("%w: missing id", ErrNotFound)
	}
	result := r.db.WithContext(ctx).Model(&models.Job{}).
		Where(models.JobIDField+" = ?", job.ID).
		Select("*").
		Omit(models.JobIDField, models.JobCreatedAtField).
		Updates(job)
	if result.Error != nil {
		return fmt.Errorf("failed to update job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, job.ID)
	}
	return nil
}

// Delete removes a job permanently
func (r *JobRepository) Delete(ctx context.Context, ID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Job{}, ID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, ID)
	}
	return nil
}

// Count returns the number of stored jobs
func (r *JobRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Job{}).Count(&count).Error
	return count, err
}
