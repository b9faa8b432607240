package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celestiaorg/jobtracker/internal/db/models"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func statusPtr(s models.JobStatus) *models.JobStatus { return &s }

func validCreateRequest() CreateJobRequest {
	return CreateJobRequest{
		Title:    "Backend Engineer",
		Company:  "Acme Corp",
		Status:   models.JobStatusApplied,
		Location: "Remote",
		Salary:   90000,
	}
}

func TestCreateJobRequest_Validate(t *testing.T) {
	tests := []struct {
		name       string
		modify     func(r *CreateJobRequest)
		wantErr    bool
		wantFields []string
	}{
		{
			name:   "valid request",
			modify: func(_ *CreateJobRequest) {},
		},
		{
			name:   "empty notes are allowed",
			modify: func(r *CreateJobRequest) { r.Notes = "" },
		},
		{
			name:   "zero salary is allowed",
			modify: func(r *CreateJobRequest) { r.Salary = 0 },
		},
		{
			name:       "missing title",
			modify:     func(r *CreateJobRequest) { r.Title = "" },
			wantErr:    true,
			wantFields: []string{"title"},
		},
		{
			name:       "whitespace company",
			modify:     func(r *CreateJobRequest) { r.Company = "   \t" },
			wantErr:    true,
			wantFields: []string{"company"},
		},
		{
			name:       "missing location",
			modify:     func(r *CreateJobRequest) { r.Location = "" },
			wantErr:    true,
			wantFields: []string{"location"},
		},
		{
			name:       "negative salary",
			modify:     func(r *CreateJobRequest) { r.Salary = -1 },
			wantErr:    true,
			wantFields: []string{"salary"},
		},
		{
			name:       "NaN salary",
			modify:     func(r *CreateJobRequest) { r.Salary = math.NaN() },
			wantErr:    true,
			wantFields: []string{"salary"},
		},
		{
			name:       "unknown status",
			modify:     func(r *CreateJobRequest) { r.Status = models.JobStatusUnknown },
			wantErr:    true,
			wantFields: []string{"status"},
		},
		{
			name: "every violation is reported",
			modify: func(r *CreateJobRequest) {
				*r = CreateJobRequest{Salary: -5}
			},
			wantErr:    true,
			wantFields: []string{"title", "company", "status", "location", "salary"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.modify(&req)

			err := req.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			require.Len(t, vErr.Fields, len(tt.wantFields))
			for i, field := range tt.wantFields {
				assert.Equal(t, field, vErr.Fields[i].Field)
				assert.NotEmpty(t, vErr.Fields[i].Message)
			}
		})
	}
}

func TestCreateJobRequest_ValidateMessages(t *testing.T) {
	err := CreateJobRequest{Status: models.JobStatusSaved}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgTitleRequired)
	assert.Contains(t, err.Error(), ErrMsgCompanyRequired)
	assert.Contains(t, err.Error(), ErrMsgLocationRequired)
	assert.NotContains(t, err.Error(), ErrMsgStatusInvalid)
}

func TestUpdateJobRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       UpdateJobRequest
		wantField string
	}{
		{name: "empty request", req: UpdateJobRequest{}},
		{name: "salary only", req: UpdateJobRequest{Salary: floatPtr(90000)}},
		{name: "empty notes", req: UpdateJobRequest{Notes: strPtr("")}},
		{name: "blank title", req: UpdateJobRequest{Title: strPtr(" ")}, wantField: "title"},
		{name: "negative salary", req: UpdateJobRequest{Salary: floatPtr(-10)}, wantField: "salary"},
		{name: "invalid status", req: UpdateJobRequest{Status: statusPtr(models.JobStatus(99))}, wantField: "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.True(t, vErr.Has(tt.wantField))
			assert.Len(t, vErr.Fields, 1)
		})
	}
}

func TestUpdateJobRequest_Apply(t *testing.T) {
	created := time.Now().UTC()
	job := &models.Job{
		ID:        3,
		Title:     "Engineer",
		Company:   "Acme",
		Status:    models.JobStatusApplied,
		Location:  "Paris",
		Salary:    70000,
		Notes:     "referral",
		CreatedAt: created,
	}

	UpdateJobRequest{Salary: floatPtr(90000)}.Apply(job)

	assert.Equal(t, uint(3), job.ID)
	assert.Equal(t, "Engineer", job.Title)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, models.JobStatusApplied, job.Status)
	assert.Equal(t, "Paris", job.Location)
	assert.Equal(t, 90000.0, job.Salary)
	assert.Equal(t, "referral", job.Notes)
	assert.Equal(t, created, job.CreatedAt)

	UpdateJobRequest{Status: statusPtr(models.JobStatusOffer), Notes: strPtr("")}.Apply(job)
	assert.Equal(t, models.JobStatusOffer, job.Status)
	assert.Empty(t, job.Notes)
}

func TestUpdateJobRequest_JSONOmitsAbsentFields(t *testing.T) {
	data, err := json.Marshal(UpdateJobRequest{Salary: floatPtr(90000)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"salary":90000}`, string(data))

	assert.True(t, UpdateJobRequest{}.IsEmpty())
	assert.False(t, UpdateJobRequest{Notes: strPtr("")}.IsEmpty())
}

func TestCreateJobRequest_ToJob(t *testing.T) {
	job := validCreateRequest().ToJob()
	assert.Zero(t, job.ID)
	assert.True(t, job.CreatedAt.IsZero())
	assert.Equal(t, "Acme Corp", job.Company)
}

func TestIsValidation(t *testing.T) {
	err := CreateJobRequest{}.Validate()
	assert.True(t, IsValidation(err))
	assert.True(t, IsValidation(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsValidation(errors.New("boom")))
	assert.False(t, IsValidation(nil))
}
