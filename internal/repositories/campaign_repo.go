package repositories

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/campaign-tracker/backend/internal/models"
)

const campaignsDir = "campaigns"

// CampaignRepo persists one JSON file of campaigns per user under
// <dataDir>/campaigns/<user_id>.json. Same whole-file rewrite discipline as
// UserRepo.
type CampaignRepo struct {
	dataDir string
}

func NewCampaignRepo(dataDir string) *CampaignRepo {
	return &CampaignRepo{dataDir: dataDir}
}

func (r *CampaignRepo) path(userID string) string {
	return filepath.Join(r.dataDir, campaignsDir, userID+".json")
}

// Load reads the user's campaigns. A user with no file yet has none.
func (r *CampaignRepo) Load(userID string) ([]models.Campaign, error) {
	data, err := os.ReadFile(r.path(userID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Campaign{}, nil
		}
		return nil, err
	}

	var campaigns []models.Campaign
	if err := json.Unmarshal(data, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// Save overwrites the user's file with the full collection, creating the
// campaigns directory on first write.
func (r *CampaignRepo) Save(userID string, campaigns []models.Campaign) error {
	if err := os.MkdirAll(filepath.Join(r.dataDir, campaignsDir), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(campaigns, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path(userID), data, 0o644)
}

// FindByID returns a pointer into campaigns for the first id match, or nil.
func (r *CampaignRepo) FindByID(campaigns []models.Campaign, id string) *models.Campaign {
	for i := range campaigns {
		if campaigns[i].ID == id {
			return &campaigns[i]
		}
	}
	return nil
}
