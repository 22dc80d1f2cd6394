package models

import "testing"

func TestIsValidCampaignStatus(t *testing.T) {
	tests := []struct {
		status   string
		expected bool
	}{
		{CampaignStatusActive, true},
		{CampaignStatusPaused, true},
		{CampaignStatusCompleted, true},
		{"Bogus", false},
		{"active", false},
		{"ACTIVE", false},
		{"", false},
		{" Active", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			result := IsValidCampaignStatus(tt.status)
			if result != tt.expected {
				t.Errorf("IsValidCampaignStatus(%q) = %v, want %v", tt.status, result, tt.expected)
			}
		})
	}
}
