package handler

import (
	"strings"

	"github.com/dev-charan/Digi-Locker/internal/auth/domain"
	"github.com/dev-charan/Digi-Locker/internal/auth/service"
	autherror "github.com/dev-charan/Digi-Locker/internal/errors"
	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the request-local key under which RequireAuth stores the
// validated user id.
const UserIDKey = "userID"

// RequireAuth is the single session check for protected routes. It verifies
// the bearer token, then re-fetches the user and compares token_version: a
// token minted before the last password reset carries the old version and is
// rejected even though its signature and expiry are still good.
func RequireAuth(tokens service.TokenGenerator, users domain.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": autherror.ErrMissingToken.Error(),
			})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": autherror.ErrMissingToken.Error(),
			})
		}

		claims, err := tokens.VerifyAccessToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": autherror.ErrInvalidOrExpiredToken.Error(),
			})
		}

		user, err := users.GetByID(c.Context(), claims.UserID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "server error",
			})
		}
		if user == nil || user.TokenVersion != claims.TokenVersion {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": autherror.ErrStaleToken.Error(),
			})
		}

		c.Locals(UserIDKey, user.ID)

		return c.Next()
	}
}
