package routes

import (
	_ "embed"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"

	_ "github.com/celestiaorg/jobtracker/docs/swagger" // registers the API doc
)

//go:embed swagger-ui.html
var swaggerUI []byte

// RegisterSwaggerRoutes registers the Swagger UI routes
func RegisterSwaggerRoutes(app *fiber.App) {
	app.Get("/swagger", func(c *fiber.Ctx) error {
		return c.Type("html").Send(swaggerUI)
	})

	app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		}
		return c.Type("json").Send([]byte(doc))
	})
}
