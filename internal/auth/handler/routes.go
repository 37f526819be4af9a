package handler

import (
	"time"

	"github.com/dev-charan/Digi-Locker/internal/auth/domain"
	"github.com/dev-charan/Digi-Locker/internal/auth/service"
	autherror "github.com/dev-charan/Digi-Locker/internal/errors"
	authconstant "github.com/dev-charan/Digi-Locker/pkg/constant"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler, tokens service.TokenGenerator, users domain.UserRepository) {
	auth := app.Group("/auth")

	auth.Post("/signup", h.Signup)
	auth.Get("/verify", h.Verify)
	auth.Post("/login", loginLimiter(), h.Login)
	auth.Post("/refresh", h.Refresh)
	auth.Post("/forgot-password", h.ForgotPassword)
	auth.Post("/reset-password", h.ResetPassword)
	auth.Post("/logout", h.Logout)
	auth.Get("/dashboard", RequireAuth(tokens, users), h.Dashboard)
}

// loginLimiter caps login attempts at 5 per 15 minutes per client IP.
func loginLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        authconstant.LoginRateLimitMax,
		Expiration: authconstant.LoginRateLimitWindowMinutes * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": autherror.ErrTooManyLoginAttempts.Error(),
			})
		},
	})
}
