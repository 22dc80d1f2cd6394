package repositories

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/campaign-tracker/backend/internal/models"
)

func TestUserRepoLoadMissingFile(t *testing.T) {
	repo := NewUserRepo(t.TempDir())

	users, err := repo.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("expected empty collection, got %d users", len(users))
	}
}

func TestUserRepoRoundTrip(t *testing.T) {
	repo := NewUserRepo(t.TempDir())
	now := time.Now()

	saved := []models.User{
		{ID: "u1", Email: "alice@example.com", Password: "digest1", Name: "Alice", CreatedAt: now},
		{ID: "u2", Email: "bob@example.com", Password: "digest2", Name: "Bob", CreatedAt: now,
			ResetToken: "tok", ResetTokenExpires: now.Unix() + 3600},
		{ID: "u3", Email: "carol@example.com", Password: "digest3", Name: "Carol", CreatedAt: now},
	}
	if err := repo.Save(saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != len(saved) {
		t.Fatalf("loaded %d users, want %d", len(loaded), len(saved))
	}
	for i := range saved {
		if loaded[i].ID != saved[i].ID {
			t.Errorf("user %d: ID = %q, want %q (order must be preserved)", i, loaded[i].ID, saved[i].ID)
		}
		if loaded[i].Email != saved[i].Email ||
			loaded[i].Password != saved[i].Password ||
			loaded[i].Name != saved[i].Name {
			t.Errorf("user %d: fields changed across round trip: %+v", i, loaded[i])
		}
		if !loaded[i].CreatedAt.Equal(saved[i].CreatedAt) {
			t.Errorf("user %d: CreatedAt = %v, want %v", i, loaded[i].CreatedAt, saved[i].CreatedAt)
		}
	}
	if loaded[1].ResetToken != "tok" || loaded[1].ResetTokenExpires != saved[1].ResetTokenExpires {
		t.Errorf("reset token fields lost: %+v", loaded[1])
	}
}

func TestUserRepoSaveOverwrites(t *testing.T) {
	repo := NewUserRepo(t.TempDir())

	if err := repo.Save([]models.User{{ID: "u1"}, {ID: "u2"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Save([]models.User{{ID: "u3"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "u3" {
		t.Errorf("expected only u3 after overwrite, got %+v", loaded)
	}
}

func TestUserRepoResetTokenOmittedWhenEmpty(t *testing.T) {
	dir := t.TempDir()
	repo := NewUserRepo(dir)

	if err := repo.Save([]models.User{{ID: "u1", Email: "a@b", Password: "d", Name: "A", CreatedAt: time.Now()}}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "login.json"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got := string(data); strings.Contains(got, "reset_token") {
		t.Errorf("empty reset token fields should be omitted from the file:\n%s", got)
	}
}

func TestUserRepoFindByEmail(t *testing.T) {
	repo := NewUserRepo(t.TempDir())
	users := []models.User{
		{ID: "u1", Email: "alice@example.com"},
		{ID: "u2", Email: "bob@example.com"},
	}

	if u := repo.FindByEmail(users, "bob@example.com"); u == nil || u.ID != "u2" {
		t.Errorf("FindByEmail(bob) = %+v, want u2", u)
	}
	if u := repo.FindByEmail(users, "nobody@example.com"); u != nil {
		t.Errorf("FindByEmail(nobody) = %+v, want nil", u)
	}

	// Returned pointer must alias the slice so in-place mutation persists.
	repo.FindByEmail(users, "alice@example.com").Name = "Alice"
	if users[0].Name != "Alice" {
		t.Error("FindByEmail result does not alias the collection")
	}
}

func TestUserRepoFindByResetToken(t *testing.T) {
	repo := NewUserRepo(t.TempDir())
	users := []models.User{
		{ID: "u1", Email: "alice@example.com"},
		{ID: "u2", Email: "bob@example.com", ResetToken: "tok-b"},
	}

	if u := repo.FindByResetToken(users, "tok-b"); u == nil || u.ID != "u2" {
		t.Errorf("FindByResetToken(tok-b) = %+v, want u2", u)
	}
	if u := repo.FindByResetToken(users, "missing"); u != nil {
		t.Errorf("FindByResetToken(missing) = %+v, want nil", u)
	}
	// An empty token must never match users that have no token set.
	if u := repo.FindByResetToken(users, ""); u != nil {
		t.Errorf("FindByResetToken(\"\") = %+v, want nil", u)
	}
}
