package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/campaign-tracker/backend/internal/apperr"
	"github.com/campaign-tracker/backend/internal/config"
	"github.com/campaign-tracker/backend/internal/http/dto"
	"github.com/campaign-tracker/backend/internal/http/handlers"
	"github.com/campaign-tracker/backend/internal/middleware"
)

// ErrorHandler maps domain errors to status codes and {"error": msg} bodies.
// Internal failures are logged and their detail hidden from the caller.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var appErr *apperr.Error
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &appErr):
			code = apperr.StatusCode(err)
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
		}

		msg := err.Error()
		if code == fiber.StatusInternalServerError {
			log.Error("internal error", zap.Error(err))
			msg = "Internal server error"
		}
		return c.Status(code).JSON(dto.ErrorResponse{Error: msg})
	}
}

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	authHandler *handlers.AuthHandler,
	campaignHandler *handlers.CampaignHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORSOrigins, ", "),
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().Format(time.RFC3339),
		})
	})

	api := app.Group("/api")

	// Auth (public)
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/logout", authHandler.Logout)
	api.Post("/auth/forgot-password", authHandler.ForgotPassword)
	api.Post("/auth/reset-password", authHandler.ResetPassword)

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))

	protected.Post("/auth/change-password", authHandler.ChangePassword)
	protected.Get("/auth/me", authHandler.Me)

	// Campaigns
	protected.Get("/campaigns", campaignHandler.ListCampaigns)
	protected.Post("/campaigns", campaignHandler.CreateCampaign)
	protected.Put("/campaigns/:id", campaignHandler.UpdateCampaign)
	protected.Delete("/campaigns/:id", campaignHandler.DeleteCampaign)

	// Dashboard
	protected.Get("/dashboard", dashboardHandler.GetSummary)
}
