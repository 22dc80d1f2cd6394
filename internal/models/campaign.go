package models

import "time"

const (
	CampaignStatusActive    = "Active"
	CampaignStatusPaused    = "Paused"
	CampaignStatusCompleted = "Completed"
)

var ValidCampaignStatuses = map[string]bool{
	CampaignStatusActive:    true,
	CampaignStatusPaused:    true,
	CampaignStatusCompleted: true,
}

func IsValidCampaignStatus(status string) bool {
	return ValidCampaignStatuses[status]
}

type Campaign struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Client    string    `json:"client"`
	StartDate string    `json:"start_date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id"`
}
