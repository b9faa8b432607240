package logger

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request id on both the request and the response
const RequestIDHeader = fiber.HeaderXRequestID

// RequestID returns a middleware that tags every request with a UUID,
// reusing the caller's X-Request-ID when one is sent
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     RequestIDHeader,
		Generator:  uuid.NewString,
		ContextKey: "requestid",
	})
}

// APILogger returns a middleware that logs HTTP requests
func APILogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Continue chain
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// The error handler has not run yet, so take the code from the error
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		fields := map[string]interface{}{
			"status":     status,
			"latency":    time.Since(start).String(),
			"ip":         c.IP(),
			"method":     c.Method(),
			"path":       c.Path(),
			"handler":    c.Route().Name,
			"request_id": c.GetRespHeader(RequestIDHeader),
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			ErrorWithFields("Request", fields)
		case status >= fiber.StatusBadRequest:
			WarnWithFields("Request", fields)
		default:
			InfoWithFields("Request", fields)
		}

		return err
	}
}
