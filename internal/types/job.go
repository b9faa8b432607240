// Package types holds the request payloads and error bodies shared by the server and the client.
package types

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/celestiaorg/jobtracker/internal/db/models"
)

// Validation messages
const (
	ErrMsgTitleRequired    = "Title is required"
	ErrMsgCompanyRequired  = "Company is required"
	ErrMsgLocationRequired = "Location is required"
	ErrMsgSalaryNegative   = "Salary must be positive"
	ErrMsgSalaryNotFinite  = "Salary must be a finite number"
	ErrMsgStatusInvalid    = "Invalid status"
)

// FieldError describes one rule violation on a request field
type FieldError struct {
	// JSON name of the offending field
	Field string `json:"field"`

	// Human readable description of the violation
	Message string `json:"message"`
}

// ValidationError is returned when a job payload does not satisfy the schema rules.
// It carries every violation found, not just the first.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Has reports whether a violation was recorded for the given field
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func (e *ValidationError) add(field, msg string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

func (e *ValidationError) errOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// IsValidation reports whether err is, or wraps, a *ValidationError
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// CreateJobRequest is the payload for creating a job. It is a Job without the
// server-assigned id and createdAt.
type CreateJobRequest struct {
	Title    string           `json:"title"`
	Company  string           `json:"company"`
	Status   models.JobStatus `json:"status"`
	Location string           `json:"location"`
	Salary   float64          `json:"salary"`
	Notes    string           `json:"notes"`
}

// Validate checks every field of the request
func (r CreateJobRequest) Validate() error {
	vErr := &ValidationError{}
	validateRequired(vErr, "title", r.Title, ErrMsgTitleRequired)
	validateRequired(vErr, "company", r.Company, ErrMsgCompanyRequired)
	validateStatus(vErr, r.Status)
	validateRequired(vErr, "location", r.Location, ErrMsgLocationRequired)
	validateSalary(vErr, r.Salary)
	return vErr.errOrNil()
}

// ToJob builds an unsaved job from the request
func (r CreateJobRequest) ToJob() *models.Job {
	return &models.Job{
		Title:    r.Title,
		Company:  r.Company,
		Status:   r.Status,
		Location: r.Location,
		Salary:   r.Salary,
		Notes:    r.Notes,
	}
}

// UpdateJobRequest is a partial CreateJobRequest. Nil fields are left untouched.
type UpdateJobRequest struct {
	Title    *string           `json:"title,omitempty"`
	Company  *string           `json:"company,omitempty"`
	Status   *models.JobStatus `json:"status,omitempty"`
	Location *string           `json:"location,omitempty"`
	Salary   *float64          `json:"salary,omitempty"`
	Notes    *string           `json:"notes,omitempty"`
}

// Validate checks only the fields present in the request
func (r UpdateJobRequest) Validate() error {
	vErr := &ValidationError{}
	if r.Title != nil {
		validateRequired(vErr, "title", *r.Title, ErrMsgTitleRequired)
	}
	if r.Company != nil {
		validateRequired(vErr, "company", *r.Company, ErrMsgCompanyRequired)
	}
	if r.Status != nil {
		validateStatus(vErr, *r.Status)
	}
	if r.Location != nil {
		validateRequired(vErr, "location", *r.Location, ErrMsgLocationRequired)
	}
	if r.Salary != nil {
		validateSalary(vErr, *r.Salary)
	}
	return vErr.errOrNil()
}

// IsEmpty reports whether no field is set
func (r UpdateJobRequest) IsEmpty() bool {
	return r.Title == nil && r.Company == nil && r.Status == nil &&
		r.Location == nil && r.Salary == nil && r.Notes == nil
}

// Apply copies the present fields onto job. ID and CreatedAt are never touched.
func (r UpdateJobRequest) Apply(job *models.Job) {
	if r.Title != nil {
		job.Title = *r.Title
	}
	if r.Company != nil {
		job.Company = *r.Company
	}
	if r.Status != nil {
		job.Status = *r.Status
	}
	if r.Location != nil {
		job.Location = *r.Location
	}
	if r.Salary != nil {
		job.Salary = *r.Salary
	}
	if r.Notes != nil {
		job.Notes = *r.Notes
	}
}

func validateRequired(vErr *ValidationError, field, value, msg string) {
	if strings.TrimSpace(value) == "" {
		vErr.add(field, msg)
	}
}

func validateSalary(vErr *ValidationError, salary float64) {
	if math.IsNaN(salary) || math.IsInf(salary, 0) {
		vErr.add("salary", ErrMsgSalaryNotFinite)
		return
	}
	if salary < 0 {
		vErr.add("salary", ErrMsgSalaryNegative)
	}
}

func validateStatus(vErr *ValidationError, status models.JobStatus) {
	if !status.IsValid() {
		vErr.add("status", ErrMsgStatusInvalid)
	}
}

// ErrorResponse is the body the server sends with a non-2xx status
type ErrorResponse struct {
	// Error message
	Error string `json:"error"`

	// Field level violations, present on validation failures
	Fields []FieldError `json:"fields,omitempty"`
}
