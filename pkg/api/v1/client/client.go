// Package client provides the API client for the job tracker server
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/celestiaorg/jobtracker/internal/db/models"
	"github.com/celestiaorg/jobtracker/internal/types"
	"github.com/celestiaorg/jobtracker/pkg/api/v1/routes"
)

// DefaultTimeout is the default timeout for API requests
const DefaultTimeout = 30 * time.Second

// Client is the interface for API client
type Client interface {
	// Health Check
	HealthCheck(ctx context.Context) (map[string]string, error)

	// Job Endpoints
	ListJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, id uint) (models.Job, error)
	CreateJob(ctx context.Context, req types.CreateJobRequest) (models.Job, error)
	UpdateJob(ctx context.Context, id uint, req types.UpdateJobRequest) (models.Job, error)
	DeleteJob(ctx context.Context, id uint) error
}

var _ Client = &APIClient{}

// Options contains configuration options for the API client
type Options struct {
	// BaseURL is the base URL of the API
	BaseURL string

	// Timeout is the request timeout
	Timeout time.Duration
}

// DefaultOptions returns the default client options
func DefaultOptions() *Options {
	return &Options{
		BaseURL: routes.DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// APIClient implements the Client interface
type APIClient struct {
	baseURL string
	timeout time.Duration
}

// NewClient creates a new API client with the given options
func NewClient(opts *Options) (Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	u, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: expected http(s)://host[:port]", opts.BaseURL)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &APIClient{
		baseURL: strings.TrimSuffix(opts.BaseURL, "/"),
		timeout: timeout,
	}, nil
}

// createAgent creates a new Fiber Agent for the given method and endpoint
func (c *APIClient) createAgent(ctx context.Context, method, endpoint string, body interface{}) (*fiber.Agent, error) {
	fullURL := c.baseURL + endpoint

	var agent *fiber.Agent
	switch method {
	case http.MethodGet:
		agent = fiber.Get(fullURL)
	case http.MethodPost:
		agent = fiber.Post(fullURL)
	case http.MethodPut:
		agent = fiber.Put(fullURL)
	case http.MethodDelete:
		agent = fiber.Delete(fullURL)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	// Set timeout from context or client default
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	} else {
		agent.Timeout(c.timeout)
	}

	agent.Set("Accept", "application/json")

	if body != nil {
		agent.JSON(body)
	}

	return agent, nil
}

// doRequest sends the HTTP request and decodes a successful response into v
func (c *APIClient) doRequest(ctx context.Context, op string, agent *fiber.Agent, v interface{}) error {
	if err := ctx.Err(); err != nil {
		return &RemoteError{Op: op, Message: err.Error(), Err: err}
	}

	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 {
		err := errors.Join(errs...)
		return &RemoteError{Op: op, Message: fmt.Sprintf("error sending request: %v", err), Err: err}
	}

	if statusCode < 200 || statusCode >= 300 {
		fErr := &fiber.Error{
			Code:    statusCode,
			Message: errorMessage(body),
		}
		return &RemoteError{Op: op, StatusCode: statusCode, Message: fErr.Message, Err: fErr}
	}

	if v != nil {
		if err := json.Unmarshal(body, v); err != nil {
			return &RemoteError{Op: op, StatusCode: statusCode, Message: fmt.Sprintf("error decoding response: %v", err), Err: err}
		}
	}

	return nil
}

// executeRequest creates an agent, sends the request, and processes the response
func (c *APIClient) executeRequest(ctx context.Context, op, method, endpoint string, body, response interface{}) error {
	agent, err := c.createAgent(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	return c.doRequest(ctx, op, agent, response)
}

// errorMessage pulls the message out of an ErrorResponse body, falling back to the raw body
func errorMessage(body []byte) string {
	var resp types.ErrorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error != "" {
		return resp.Error
	}
	return strings.TrimSpace(string(body))
}

// notFound converts a 404 from the server into a *NotFoundError
func notFound(err error, id uint) error {
	var re *RemoteError
	if errors.As(err, &re) && re.StatusCode == http.StatusNotFound {
		return &NotFoundError{ID: id}
	}
	return err
}

// Health Check

// HealthCheck checks the health of the API
func (c *APIClient) HealthCheck(ctx context.Context) (map[string]string, error) {
	var response map[string]string
	if err := c.executeRequest(ctx, "health check", http.MethodGet, routes.HealthCheckURL(), nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}

// Job Endpoints

// ListJobs retrieves every job from the server
func (c *APIClient) ListJobs(ctx context.Context) ([]models.Job, error) {
	var response []models.Job
	if err := c.executeRequest(ctx, "list jobs", http.MethodGet, routes.GetJobsURL(), nil, &response); err != nil {
		return nil, err
	}
	if response == nil {
		response = []models.Job{}
	}
	return response, nil
}

// GetJob retrieves a single job by id
func (c *APIClient) GetJob(ctx context.Context, id uint) (models.Job, error) {
	var response models.Job
	if err := c.executeRequest(ctx, "get job", http.MethodGet, routes.GetJobURL(id), nil, &response); err != nil {
		return models.Job{}, notFound(err, id)
	}
	return response, nil
}

// CreateJob validates req and stores it as a new job
func (c *APIClient) CreateJob(ctx context.Context, req types.CreateJobRequest) (models.Job, error) {
	if err := req.Validate(); err != nil {
		return models.Job{}, err
	}

	var response models.Job
	if err := c.executeRequest(ctx, "create job", http.MethodPost, routes.CreateJobURL(), req, &response); err != nil {
		return models.Job{}, err
	}
	return response, nil
}

// UpdateJob validates the present fields of req and sends them to the server
func (c *APIClient) UpdateJob(ctx context.Context, id uint, req types.UpdateJobRequest) (models.Job, error) {
	if err := req.Validate(); err != nil {
		return models.Job{}, err
	}

	var response models.Job
	if err := c.executeRequest(ctx, "update job", http.MethodPut, routes.UpdateJobURL(id), req, &response); err != nil {
		return models.Job{}, notFound(err, id)
	}
	return response, nil
}

// DeleteJob removes a job. Deleting a job that is already gone is an error.
func (c *APIClient) DeleteJob(ctx context.Context, id uint) error {
	if err := c.executeRequest(ctx, "delete job", http.MethodDelete, routes.DeleteJobURL(id), nil, nil); err != nil {
		return notFound(err, id)
	}
	return nil
}
