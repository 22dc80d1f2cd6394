package services

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campaign-tracker/backend/internal/apperr"
	"github.com/campaign-tracker/backend/internal/models"
	"github.com/campaign-tracker/backend/internal/repositories"
)

type CampaignService struct {
	campaigns *repositories.CampaignRepo
	log       *zap.Logger
}

func NewCampaignService(campaigns *repositories.CampaignRepo, log *zap.Logger) *CampaignService {
	return &CampaignService{campaigns: campaigns, log: log}
}

// List returns the user's campaigns in insertion order.
func (s *CampaignService) List(userID string) ([]models.Campaign, error) {
	return s.campaigns.Load(userID)
}

// Create appends a new campaign to the user's collection.
func (s *CampaignService) Create(userID, name, client, startDate, status string) (*models.Campaign, error) {
	for _, f := range []struct{ name, value string }{
		{"name", name},
		{"client", client},
		{"start_date", startDate},
		{"status", status},
	} {
		if f.value == "" {
			return nil, apperr.Validation("Missing required field: " + f.name)
		}
	}

	if !models.IsValidCampaignStatus(status) {
		return nil, apperr.Validation("Invalid status. Must be Active, Paused, or Completed")
	}

	campaigns, err := s.campaigns.Load(userID)
	if err != nil {
		return nil, err
	}

	campaign := models.Campaign{
		ID:        uuid.NewString(),
		Name:      name,
		Client:    client,
		StartDate: startDate,
		Status:    status,
		CreatedAt: time.Now(),
		UserID:    userID,
	}
	campaigns = append(campaigns, campaign)

	if err := s.campaigns.Save(userID, campaigns); err != nil {
		return nil, err
	}

	s.log.Info("campaign created",
		zap.String("campaign_id", campaign.ID),
		zap.String("user_id", userID),
	)
	return &campaign, nil
}

// UpdateStatus changes a campaign's status in place. A campaign that does
// not exist and one owned by another user are both reported as not found.
func (s *CampaignService) UpdateStatus(userID, campaignID, status string) (*models.Campaign, error) {
	if status == "" {
		return nil, apperr.Validation("Missing status field")
	}
	if !models.IsValidCampaignStatus(status) {
		return nil, apperr.Validation("Invalid status. Must be Active, Paused, or Completed")
	}

	campaigns, err := s.campaigns.Load(userID)
	if err != nil {
		return nil, err
	}

	campaign := s.campaigns.FindByID(campaigns, campaignID)
	if campaign == nil || campaign.UserID != userID {
		return nil, apperr.NotFound("Campaign not found")
	}

	campaign.Status = status
	if err := s.campaigns.Save(userID, campaigns); err != nil {
		return nil, err
	}

	c := *campaign
	return &c, nil
}

// Delete removes a campaign, with the same not-found semantics as
// UpdateStatus.
func (s *CampaignService) Delete(userID, campaignID string) error {
	campaigns, err := s.campaigns.Load(userID)
	if err != nil {
		return err
	}

	idx := -1
	for i := range campaigns {
		if campaigns[i].ID == campaignID && campaigns[i].UserID == userID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperr.NotFound("Campaign not found")
	}

	campaigns = append(campaigns[:idx], campaigns[idx+1:]...)
	if err := s.campaigns.Save(userID, campaigns); err != nil {
		return err
	}

	s.log.Info("campaign deleted",
		zap.String("campaign_id", campaignID),
		zap.String("user_id", userID),
	)
	return nil
}

// DashboardSummary holds per-status counts over a user's campaigns.
type DashboardSummary struct {
	Total     int `json:"total_campaigns"`
	Active    int `json:"active_campaigns"`
	Paused    int `json:"paused_campaigns"`
	Completed int `json:"completed_campaigns"`
}

// Summary computes counts by scanning the full collection.
func (s *CampaignService) Summary(userID string) (*DashboardSummary, error) {
	campaigns, err := s.campaigns.Load(userID)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{Total: len(campaigns)}
	for _, c := range campaigns {
		switch c.Status {
		case models.CampaignStatusActive:
			summary.Active++
		case models.CampaignStatusPaused:
			summary.Paused++
		case models.CampaignStatusCompleted:
			summary.Completed++
		}
	}
	return summary, nil
}
