package client

import (
	"errors"
	"fmt"

	"github.com/celestiaorg/jobtracker/internal/types"
)

// NotFoundError is returned when the server has no job with the requested id
type NotFoundError struct {
	ID uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("job %d not found", e.ID)
}

// RemoteError reports a failed exchange with the server. StatusCode is 0 when
// no response was received.
type RemoteError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: server returned %d: %s", e.Op, e.StatusCode, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is or wraps a *NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is a local validation failure
func IsValidation(err error) bool {
	return types.IsValidation(err)
}

// IsRemote reports whether err is or wraps a *RemoteError
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}
