package middleware

import (
	"DishCraft-Backend/domain"
	"DishCraft-Backend/internal/api/presenters"
	"DishCraft-Backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		IdentityMiddleware() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	frontendURL := utils.GetConfig("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}
	return cors.New(cors.Config{
		AllowOrigins: frontendURL,
		AllowHeaders: "Origin, Content-Type, Accept, " + domain.UserIDHeader,
	})
}

// IdentityMiddleware reads the opaque user id from the request header. The id
// is trusted as-is (see domain.UserIDHeader for why this is a documented
// weakness inherited from the original service).
func (m *middleware) IdentityMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get(domain.UserIDHeader)
		if userID == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageMissingUserID, domain.ErrUserIDMissing)
		}
		c.Locals("user_id", userID)
		return c.Next()
	}
}
