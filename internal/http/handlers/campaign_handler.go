package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/campaign-tracker/backend/internal/http/dto"
	"github.com/campaign-tracker/backend/internal/middleware"
	"github.com/campaign-tracker/backend/internal/services"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
	log             *zap.Logger
}

func NewCampaignHandler(campaignService *services.CampaignService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, log: log}
}

func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	campaigns, err := h.campaignService.List(userID)
	if err != nil {
		h.log.Error("list campaigns failed", zap.Error(err))
		return err
	}

	return c.JSON(campaigns)
}

func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	userID := middleware.GetUserID(c)
	campaign, err := h.campaignService.Create(userID, req.Name, req.Client, req.StartDate, req.Status)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(campaign)
}

func (h *CampaignHandler) UpdateCampaign(c *fiber.Ctx) error {
	var req dto.UpdateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	userID := middleware.GetUserID(c)
	campaign, err := h.campaignService.UpdateStatus(userID, c.Params("id"), req.Status)
	if err != nil {
		return err
	}

	return c.JSON(campaign)
}

func (h *CampaignHandler) DeleteCampaign(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	if err := h.campaignService.Delete(userID, c.Params("id")); err != nil {
		return err
	}

	return c.JSON(dto.MessageResponse{Message: "Campaign deleted successfully"})
}
