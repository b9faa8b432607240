// Package handlers provides HTTP request handling for the jobs API
package handlers

import (
	"errors"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/celestiaorg/jobtracker/internal/types"
)

// Common error messages
const (
	ErrMsgInvalidReqBody = "Invalid request body"
	ErrMsgInvalidJobID   = "Invalid job id"
)

// Job error messages
const (
	ErrMsgJobNotFound     = "Job not found"
	ErrMsgJobListFailed   = "Failed to list jobs"
	ErrMsgJobGetFailed    = "Failed to get job"
	ErrMsgJobCreateFailed = "Failed to create job"
	ErrMsgJobUpdateFailed = "Failed to update job"
	ErrMsgJobDeleteFailed = "Failed to delete job"
)

// ErrorHandler renders errors returned from handlers as an ErrorResponse body
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(types.ErrorResponse{Error: err.Error()})
}
