// Package types contains PUBLIC aliases for internal request/response structs.
package types

import (
	internaltypes "github.com/celestiaorg/jobtracker/internal/types"
)

// CreateJobRequest is the payload for creating a job (public alias).
type CreateJobRequest = internaltypes.CreateJobRequest

// UpdateJobRequest is a partial job payload (public alias).
type UpdateJobRequest = internaltypes.UpdateJobRequest

// ValidationError is returned when a payload fails the schema rules (public alias).
type ValidationError = internaltypes.ValidationError

// FieldError describes one violation inside a ValidationError (public alias).
type FieldError = internaltypes.FieldError

// ErrorResponse is the body the server sends with a non-2xx status (public alias).
type ErrorResponse = internaltypes.ErrorResponse

// IsValidation reports whether err is, or wraps, a *ValidationError.
var IsValidation = internaltypes.IsValidation
