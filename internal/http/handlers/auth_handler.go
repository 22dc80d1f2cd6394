package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/campaign-tracker/backend/internal/auth"
	"github.com/campaign-tracker/backend/internal/config"
	"github.com/campaign-tracker/backend/internal/http/dto"
	"github.com/campaign-tracker/backend/internal/middleware"
	"github.com/campaign-tracker/backend/internal/models"
	"github.com/campaign-tracker/backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
	log         *zap.Logger
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg, log: log}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	if err := h.authService.Register(req.Email, req.Password, req.Name); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "User registered successfully"})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	user, err := h.authService.Authenticate(req.Email, req.Password)
	if err != nil {
		return err
	}

	token, err := auth.SignSession(h.cfg.SessionSecret, user.ID, user.Email, user.Name)
	if err != nil {
		h.log.Error("failed to sign session", zap.Error(err))
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(dto.LoginResponse{Message: "Login successful", User: user.Info()})
}

// Logout clears the session cookie unconditionally; there is no failure
// mode, with or without a session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(dto.MessageResponse{Message: "Logout successful"})
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	// The token goes straight back to the caller; there is no email
	// transport in this deployment.
	token, err := h.authService.RequestReset(req.Email)
	if err != nil {
		return err
	}

	return c.JSON(dto.ResetTokenResponse{Message: "Password reset token generated", ResetToken: token})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	if err := h.authService.ResetWithToken(req.Token, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(dto.MessageResponse{Message: "Password reset successfully"})
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	email := middleware.GetUserEmail(c)
	if err := h.authService.ChangePassword(email, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(dto.MessageResponse{Message: "Password changed successfully"})
}

// Me returns the identity from the session itself; no store lookup.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(models.UserInfo{
		ID:    middleware.GetUserID(c),
		Email: middleware.GetUserEmail(c),
		Name:  middleware.GetUserName(c),
	})
}
