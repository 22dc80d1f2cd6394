package repositories

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/campaign-tracker/backend/internal/models"
)

const usersFile = "login.json"

// UserRepo persists the full user collection in a single JSON file. Writes
// rewrite the whole file in place: not atomic, not locked, last write wins.
type UserRepo struct {
	dataDir string
}

func NewUserRepo(dataDir string) *UserRepo {
	return &UserRepo{dataDir: dataDir}
}

func (r *UserRepo) path() string {
	return filepath.Join(r.dataDir, usersFile)
}

// Load reads every user from disk. A missing file is an empty collection.
func (r *UserRepo) Load() ([]models.User, error) {
	data, err := os.ReadFile(r.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.User{}, nil
		}
		return nil, err
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Save overwrites the backing file with the full collection.
func (r *UserRepo) Save(users []models.User) error {
	if err := os.MkdirAll(r.dataDir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path(), data, 0o644)
}

// FindByEmail returns a pointer into users for the first match, or nil.
func (r *UserRepo) FindByEmail(users []models.User, email string) *models.User {
	for i := range users {
		if users[i].Email == email {
			return &users[i]
		}
	}
	return nil
}

// FindByResetToken returns a pointer into users for the holder of token, or
// nil. Empty tokens never match.
func (r *UserRepo) FindByResetToken(users []models.User, token string) *models.User {
	if token == "" {
		return nil
	}
	for i := range users {
		if users[i].ResetToken == token {
			return &users[i]
		}
	}
	return nil
}
