package config

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	// Storage
	DataDir string

	// Auth
	SessionSecret string

	// Server
	APIPort     string
	CORSOrigins []string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DataDir:       getEnv("DATA_DIR", "data"),
		SessionSecret: getEnv("SESSION_SECRET", ""),
		APIPort:       getEnv("API_PORT", "5000"),
		CORSOrigins:   parseOriginList(getEnv("CORS_ORIGINS", "http://localhost:5000")),
	}
}

// Validate fills insecure or missing values and warns about them. A missing
// SESSION_SECRET gets a random per-process secret, which invalidates all
// sessions on restart.
func (c *Config) Validate(log *zap.Logger) {
	if c.SessionSecret == "" {
		c.SessionSecret = randomSecret()
		log.Warn("SESSION_SECRET is not set, using a generated temporary secret; sessions will not survive restarts")
	}
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseOriginList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var origins []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
