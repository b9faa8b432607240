// Package mock provides a function-field implementation of client.Client for tests
package mock

import (
	"context"
	"sync"

	"github.com/celestiaorg/jobtracker/internal/db/models"
	"github.com/celestiaorg/jobtracker/internal/types"
	"github.com/celestiaorg/jobtracker/pkg/api/v1/client"
)

var _ client.Client = &MockClient{}

// MockClient implements the Client interface for testing
type MockClient struct {
	// Function fields that can be set to mock behavior
	HealthCheckFn func(ctx context.Context) (map[string]string, error)
	ListJobsFn    func(ctx context.Context) ([]models.Job, error)
	GetJobFn      func(ctx context.Context, id uint) (models.Job, error)
	CreateJobFn   func(ctx context.Context, req types.CreateJobRequest) (models.Job, error)
	UpdateJobFn   func(ctx context.Context, id uint, req types.UpdateJobRequest) (models.Job, error)
	DeleteJobFn   func(ctx context.Context, id uint) error

	mu sync.Mutex

	// Call tracking for verification
	HealthCheckCalls int
	ListJobsCalls    int
	GetJobCalls      []uint
	CreateJobCalls   []types.CreateJobRequest
	UpdateJobCalls   []struct {
		ID  uint
		Req types.UpdateJobRequest
	}
	DeleteJobCalls []uint
}

// HealthCheck implements the Client interface
func (m *MockClient) HealthCheck(ctx context.Context) (map[string]string, error) {
	m.mu.Lock()
	m.HealthCheckCalls++
	m.mu.Unlock()
	if m.HealthCheckFn != nil {
		return m.HealthCheckFn(ctx)
	}
	return map[string]string{"status": "healthy"}, nil
}

// ListJobs implements the Client interface
func (m *MockClient) ListJobs(ctx context.Context) ([]models.Job, error) {
	m.mu.Lock()
	m.ListJobsCalls++
	m.mu.Unlock()
	if m.ListJobsFn != nil {
		return m.ListJobsFn(ctx)
	}
	return []models.Job{}, nil
}

// GetJob implements the Client interface
func (m *MockClient) GetJob(ctx context.Context, id uint) (models.Job, error) {
	m.mu.Lock()
	m.GetJobCalls = append(m.GetJobCalls, id)
	m.mu.Unlock()
	if m.GetJobFn != nil {
		return m.GetJobFn(ctx, id)
	}
	return models.Job{}, &client.NotFoundError{ID: id}
}

// CreateJob implements the Client interface
func (m *MockClient) CreateJob(ctx context.Context, req types.CreateJobRequest) (models.Job, error) {
	m.mu.Lock()
	m.CreateJobCalls = append(m.CreateJobCalls, req)
	m.mu.Unlock()
	if m.CreateJobFn != nil {
		return m.CreateJobFn(ctx, req)
	}
	return *req.ToJob(), nil
}

// UpdateJob implements the Client interface
func (m *MockClient) UpdateJob(ctx context.Context, id uint, req types.UpdateJobRequest) (models.Job, error) {
	m.mu.Lock()
	m.UpdateJobCalls = append(m.UpdateJobCalls, struct {
		ID  uint
		Req types.UpdateJobRequest
	}{ID: id, Req: req})
	m.mu.Unlock()
	if m.UpdateJobFn != nil {
		return m.UpdateJobFn(ctx, id, req)
	}
	job := models.Job{ID: id}
	req.Apply(&job)
	return job, nil
}

// DeleteJob implements the Client interface
func (m *MockClient) DeleteJob(ctx context.Context, id uint) error {
	m.mu.Lock()
	m.DeleteJobCalls = append(m.DeleteJobCalls, id)
	m.mu.Unlock()
	if m.DeleteJobFn != nil {
		return m.DeleteJobFn(ctx, id)
	}
	return nil
}

// ListJobsCallCount returns the number of ListJobs calls seen so far
func (m *MockClient) ListJobsCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ListJobsCalls
}
