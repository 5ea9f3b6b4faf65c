package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router /health [get]
func Health(c *fiber.Ctx) error {
	return c.SendString("✅ Backend is running")
}

// Ping godoc
// @Summary Reachability probe for the front-end
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /ping [get]
func Ping(c *fiber.Ctx) error {
	log.Println("✅ Ping received from frontend")
	return c.JSON(fiber.Map{
		"message": "Backend is reachable",
	})
}
