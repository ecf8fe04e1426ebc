package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware is wide open; the API carries no credentials or cookies.
func CorsMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS,HEAD",
		AllowHeaders: "Origin,Content-Type,Accept,X-Request-ID",
	})
}
