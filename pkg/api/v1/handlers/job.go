package handlers

import (
	"errors"
	"strconv"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/celestiaorg/jobtracker/internal/db/models"
	"github.com/celestiaorg/jobtracker/internal/logger"
	"github.com/celestiaorg/jobtracker/internal/services"
	"github.com/celestiaorg/jobtracker/internal/types"
)

// JobHandler handles HTTP requests for the jobs resource
type JobHandler struct {
	jobService *services.Job
}

// NewJobHandler creates a new job handler instance
func NewJobHandler(s *services.Job) *JobHandler {
	return &JobHandler{
		jobService: s,
	}
}

// ListJobs godoc
// @Summary List jobs
// @Description Returns every stored job application in creation order
// @Tags jobs
// @Produce json
// @Success 200 {array} models.Job
// @Failure 500 {object} types.ErrorResponse
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c *fiber.Ctx) error {
	jobs, err := h.jobService.ListJobs(c.Context())
	if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgJobListFailed, err)
	}
	return c.JSON(jobs)
}

// GetJob godoc
// @Summary Get a job
// @Description Returns a single job application by id
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} models.Job
// @Failure 400 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c *fiber.Ctx) error {
	jobID, err := parseJobID(c)
	if err != nil {
		return err
	}

	job, err := h.jobService.GetJob(c.Context(), jobID)
	if err != nil {
		return respondWithServiceError(c, ErrMsgJobGetFailed, err)
	}
	return c.JSON(job)
}

// CreateJob godoc
// @Summary Create a job
// @Description Stores a new job application. The server assigns id and createdAt.
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body types.CreateJobRequest true "Job to create"
// @Success 201 {object} models.Job
// @Failure 400 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c *fiber.Ctx) error {
	var req types.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return respondWithBodyError(c, err)
	}

	job, err := h.jobService.CreateJob(c.Context(), req)
	if err != nil {
		return respondWithServiceError(c, ErrMsgJobCreateFailed, err)
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

// UpdateJob godoc
// @Summary Update a job
// @Description Replaces the fields present in the body. Absent fields, id and createdAt are kept.
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param request body types.UpdateJobRequest true "Fields to change"
// @Success 200 {object} models.Job
// @Failure 400 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *fiber.Ctx) error {
	jobID, err := parseJobID(c)
	if err != nil {
		return err
	}

	var req types.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return respondWithBodyError(c, err)
	}

	job, err := h.jobService.UpdateJob(c.Context(), jobID, req)
	if err != nil {
		return respondWithServiceError(c, ErrMsgJobUpdateFailed, err)
	}
	return c.JSON(job)
}

// DeleteJob godoc
// @Summary Delete a job
// @Description Removes a job application. Deleting a missing id is a 404.
// @Tags jobs
// @Param id path int true "Job ID"
// @Success 204
// @Failure 400 {object} types.ErrorResponse
// @Failure 404 {object} types.ErrorResponse
// @Failure 500 {object} types.ErrorResponse
// @Router /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *fiber.Ctx) error {
	jobID, err := parseJobID(c)
	if err != nil {
		return err
	}

	if err := h.jobService.DeleteJob(c.Context(), jobID); err != nil {
		return respondWithServiceError(c, ErrMsgJobDeleteFailed, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseJobID reads the :id param
func parseJobID(c *fiber.Ctx) (uint, error) {
	jobID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || jobID == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, ErrMsgInvalidJobID)
	}
	return uint(jobID), nil
}

// respondWithBodyError answers a body that could not be decoded. An unknown
// status name is reported against the status field like any other rule.
func respondWithBodyError(c *fiber.Ctx, err error) error {
	if errors.Is(err, models.ErrInvalidJobStatus) {
		return respondWithServiceError(c, ErrMsgInvalidReqBody, &types.ValidationError{
			Fields: []types.FieldError{{Field: "status", Message: types.ErrMsgStatusInvalid}},
		})
	}
	return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody, err)
}

// respondWithServiceError maps service errors onto status codes
func respondWithServiceError(c *fiber.Ctx, msg string, err error) error {
	var vErr *types.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Error:  vErr.Error(),
			Fields: vErr.Fields,
		})
	case errors.Is(err, services.ErrJobNotFound):
		return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{Error: ErrMsgJobNotFound})
	default:
		return respondWithError(c, fiber.StatusInternalServerError, msg, err)
	}
}

func respondWithError(c *fiber.Ctx, code int, msg string, err error) error {
	if code >= fiber.StatusInternalServerError {
		logger.ErrorWithFields(msg, map[string]interface{}{
			"path":  c.Path(),
			"error": err.Error(),
		})
	}
	return c.Status(code).JSON(types.ErrorResponse{Error: msg + ": " + err.Error()})
}
