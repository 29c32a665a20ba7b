package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/globaledge/consult-api/utils/auth"
	"github.com/globaledge/consult-api/utils/response"
)

// RequireAdmin validates the Bearer token and ensures the caller holds
// the admin role before any /api/admin route runs.
func RequireAdmin(jwtManager *auth.JWTManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return response.Unauthorized(c, "Authentication required")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return response.Unauthorized(c, "Invalid authorization header")
		}

		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			if err == auth.ErrExpiredToken {
				return response.Unauthorized(c, "Token has expired")
			}
			return response.Unauthorized(c, "Invalid token")
		}

		if claims.Role != "admin" {
			return response.Forbidden(c, "Admin access required")
		}

		c.Locals("userID", claims.UserID)
		c.Locals("userEmail", claims.Email)

		return c.Next()
	}
}
