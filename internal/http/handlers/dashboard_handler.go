package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/campaign-tracker/backend/internal/middleware"
	"github.com/campaign-tracker/backend/internal/services"
)

type DashboardHandler struct {
	campaignService *services.CampaignService
	log             *zap.Logger
}

func NewDashboardHandler(campaignService *services.CampaignService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{campaignService: campaignService, log: log}
}

func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	summary, err := h.campaignService.Summary(userID)
	if err != nil {
		h.log.Error("dashboard summary failed", zap.Error(err))
		return err
	}

	return c.JSON(summary)
}
