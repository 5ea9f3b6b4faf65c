package routes

import (
	"Backend-HazardAssessment/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// hazardFormRoutes กำหนด route สำหรับ form intake
func hazardFormRoutes(app *fiber.App, controller *controllers.HazardFormController) {
	app.Post("/submit-form", controller.SubmitForm)
}
