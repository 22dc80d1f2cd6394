package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/campaign-tracker/backend/internal/config"
	apphttp "github.com/campaign-tracker/backend/internal/http"
	"github.com/campaign-tracker/backend/internal/http/handlers"
	"github.com/campaign-tracker/backend/internal/repositories"
	"github.com/campaign-tracker/backend/internal/services"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	// Repositories
	userRepo := repositories.NewUserRepo(cfg.DataDir)
	campaignRepo := repositories.NewCampaignRepo(cfg.DataDir)

	// Services
	authService := services.NewAuthService(userRepo, log)
	campaignService := services.NewCampaignService(campaignRepo, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, cfg, log)
	campaignHandler := handlers.NewCampaignHandler(campaignService, log)
	dashboardHandler := handlers.NewDashboardHandler(campaignService, log)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: apphttp.ErrorHandler(log),
	})

	apphttp.SetupRouter(app, cfg, log, authHandler, campaignHandler, dashboardHandler)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr), zap.String("data_dir", cfg.DataDir))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
