package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_WithDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("ADMIN_IDS", "")
	t.Setenv("DATA_DIR", "")
	t.Setenv("WEBHOOK_URL", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Empty(t, cfg.AdminIDs)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "", cfg.WebhookURL)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoad_AdminIDs(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		expected    []int64
		expectError bool
	}{
		{
			name:     "single admin",
			raw:      "123",
			expected: []int64{123},
		},
		{
			name:     "multiple admins with spaces",
			raw:      "123, 456 ,789",
			expected: []int64{123, 456, 789},
		},
		{
			name:     "trailing comma",
			raw:      "123,",
			expected: []int64{123},
		},
		{
			name:        "non-numeric entry",
			raw:         "123,abc",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BOT_TOKEN", "test_token")
			t.Setenv("ADMIN_IDS", tt.raw)

			cfg, err := Load()

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, cfg.AdminIDs)
			}
		})
	}
}

func TestConfig_IsAdmin(t *testing.T) {
	cfg := &Config{AdminIDs: []int64{1, 2}}

	assert.True(t, cfg.IsAdmin(1))
	assert.True(t, cfg.IsAdmin(2))
	assert.False(t, cfg.IsAdmin(3))
}

func TestConfig_Paths(t *testing.T) {
	cfg := &Config{DataDir: os.TempDir()}

	assert.Equal(t, filepath.Join(os.TempDir(), "user_lang.json"), cfg.PrefsPath())
	assert.Equal(t, filepath.Join(os.TempDir(), "bot_stats.json"), cfg.StatsPath())
	assert.Equal(t, filepath.Join(os.TempDir(), "service_requests.json"), cfg.RequestsPath())
}
