package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	_ "Backend-HazardAssessment/docs"
	"Backend-HazardAssessment/src/controllers"
	"Backend-HazardAssessment/src/database"
	"Backend-HazardAssessment/src/middleware"
	"Backend-HazardAssessment/src/routes"
	"Backend-HazardAssessment/src/services/hazardforms"
	"Backend-HazardAssessment/src/services/hazardforms/email"
)

// @title Hazard Assessment API
// @version 1.0
// @description Intake service for site specific hazard assessment forms.
// @BasePath /
func main() {

	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Notification transport and destination are process configuration.
	// Payloads can never redirect where the form gets emailed.
	mailer, err := email.NewSenderFromEnv()
	if err != nil {
		log.Fatalf("❌ Mail transport not configured: %v", err)
	}

	notifyTo := os.Getenv("NOTIFY_TO")
	if notifyTo == "" {
		log.Fatal("❌ NOTIFY_TO environment variable not set")
	}

	formService := hazardforms.NewService(hazardforms.NewMongoFormStore(), mailer, notifyTo)
	formController := controllers.NewHazardFormController(formService)

	// Signature images arrive inline as data URIs, so the body limit is
	// well above Fiber's 4 MB default.
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(middleware.RequestLogger())

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "*"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: false,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app, formController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Println("🚀 Server is running on port " + port)
	err = app.Listen(fmt.Sprintf(":%s", port))
	if err != nil {
		log.Fatal(err)
	}
}
