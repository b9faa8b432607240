// Package app wires the jobs API server together
package app

import (
	fiber "github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/celestiaorg/jobtracker/internal/db/repos"
	"github.com/celestiaorg/jobtracker/internal/logger"
	"github.com/celestiaorg/jobtracker/internal/services"
	"github.com/celestiaorg/jobtracker/pkg/api/v1/handlers"
	"github.com/celestiaorg/jobtracker/pkg/api/v1/routes"
)

// NewApp builds the fiber app serving the jobs API on top of db
func NewApp(db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "jobtracker",
		DisableStartupMessage: true,
		ErrorHandler:          handlers.ErrorHandler,
	})

	// Middleware
	app.Use(logger.RequestID())
	app.Use(logger.APILogger())

	jobService := services.NewJobService(repos.NewJobRepository(db))
	routes.RegisterRoutes(app, handlers.NewJobHandler(jobService))
	routes.RegisterSwaggerRoutes(app)

	return app
}
