package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dev-charan/Digi-Locker/internal/auth/dto"
	"github.com/dev-charan/Digi-Locker/internal/auth/service"
	autherror "github.com/dev-charan/Digi-Locker/internal/errors"
	authconstant "github.com/dev-charan/Digi-Locker/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	userService   *service.UserService
	secureCookies bool
	logger        *slog.Logger
}

func NewAuthHandler(userService *service.UserService, secureCookies bool, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		userService:   userService,
		secureCookies: secureCookies,
		logger:        logger,
	}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}
	if input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "email and password required",
		})
	}

	if _, err := h.userService.Signup(c.Context(), input); err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created, verification email sent",
	})
}

func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": autherror.ErrMissingToken.Error(),
		})
	}

	if err := h.userService.VerifyEmail(c.Context(), token); err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "Email verified"})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}
	if input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "email and password required",
		})
	}

	// Capture metadata for the login audit trail.
	input.IP = c.IP()
	input.Device = string(c.Request().Header.UserAgent())

	pair, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return h.errorResponse(c, err)
	}

	h.setRefreshCookie(c, pair.RefreshToken, pair.RefreshExpiresAt)

	return c.JSON(fiber.Map{"accessToken": pair.AccessToken})
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	rawToken := c.Cookies(authconstant.RefreshTokenCookie)
	if rawToken == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "no refresh token",
		})
	}

	pair, err := h.userService.Refresh(c.Context(), rawToken)
	if err != nil {
		return h.errorResponse(c, err)
	}

	h.setRefreshCookie(c, pair.RefreshToken, pair.RefreshExpiresAt)

	return c.JSON(fiber.Map{"accessToken": pair.AccessToken})
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input dto.ForgotPasswordInput
	if err := c.BodyParser(&input); err != nil || input.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "email required",
		})
	}

	if err := h.userService.ForgotPassword(c.Context(), input.Email); err != nil {
		return h.errorResponse(c, err)
	}

	// Same body whether or not the account exists.
	return c.JSON(fiber.Map{"message": "Password reset link sent"})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}
	if input.Token == "" || input.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "token and new password required",
		})
	}

	if err := h.userService.ResetPassword(c.Context(), input); err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "Password reset successfully"})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if rawToken := c.Cookies(authconstant.RefreshTokenCookie); rawToken != "" {
		if err := h.userService.Logout(c.Context(), rawToken); err != nil {
			h.logger.Error("failed to revoke refresh token on logout", "error", err)
		}
	}

	h.clearRefreshCookie(c)

	return c.JSON(fiber.Map{"message": "Logged out"})
}

func (h *AuthHandler) Dashboard(c *fiber.Ctx) error {
	userID, _ := c.Locals(UserIDKey).(string)
	return c.JSON(fiber.Map{"message": fmt.Sprintf("Welcome user %s", userID)})
}

func (h *AuthHandler) setRefreshCookie(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     authconstant.RefreshTokenCookie,
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})
}

func (h *AuthHandler) clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authconstant.RefreshTokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})
}

// errorResponse maps service errors to the HTTP taxonomy. Anything outside
// the known set is logged and hidden behind a generic 500.
func (h *AuthHandler) errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, autherror.ErrInvalidEmail),
		errors.Is(err, autherror.ErrWeakPassword):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherror.ErrEmailAlreadyInUse):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherror.ErrInvalidCredentials),
		errors.Is(err, autherror.ErrInvalidOrExpiredToken),
		errors.Is(err, autherror.ErrMissingToken):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherror.ErrStaleToken):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, autherror.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		h.logger.Error("unexpected error", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "server error"})
	}
}
