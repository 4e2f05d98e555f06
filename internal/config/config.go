package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken   string
	AdminIDs   []int64
	DataDir    string
	WebhookURL string
	Port       string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:   os.Getenv("BOT_TOKEN"),
		DataDir:    getEnv("DATA_DIR", "data"),
		WebhookURL: os.Getenv("WEBHOOK_URL"),
		Port:       getEnv("PORT", "8080"),
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}

	adminIDs, err := parseAdminIDs(os.Getenv("ADMIN_IDS"))
	if err != nil {
		return nil, err
	}
	cfg.AdminIDs = adminIDs

	return cfg, nil
}

// PrefsPath returns the language preference document path
func (c *Config) PrefsPath() string {
	return filepath.Join(c.DataDir, "user_lang.json")
}

// StatsPath returns the usage counter document path
func (c *Config) StatsPath() string {
	return filepath.Join(c.DataDir, "bot_stats.json")
}

// RequestsPath returns the service request log path
func (c *Config) RequestsPath() string {
	return filepath.Join(c.DataDir, "service_requests.json")
}

// IsAdmin reports whether userID is a configured admin
func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// parseAdminIDs parses a comma-separated list of Telegram user IDs
func parseAdminIDs(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid admin ID %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
