package routes

import (
	"Backend-HazardAssessment/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App, formController *controllers.HazardFormController) {
	hazardFormRoutes(app, formController)

	// Probes for the hosting platform and the calling front-end.
	app.Get("/health", controllers.Health)
	app.Get("/ping", controllers.Ping)
}
