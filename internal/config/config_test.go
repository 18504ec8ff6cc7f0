package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// setRequired fills every required variable with a valid value
func setRequired(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("CHANNEL_ID", "-1001234567890")
	t.Setenv("LOTTERY_NAME", "Projector2024")
	t.Setenv("ADMIN_TOKEN", "admin_secret")
	t.Setenv("DB_PASSWORD", "test_db_password")
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			envValue:     "",
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.envValue)
			assert.Equal(t, tt.expected, getEnv(tt.key, tt.defaultValue))
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_WithDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("DB_USER", "")
	t.Setenv("ADMIN_ADDR", "")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, int64(-1001234567890), cfg.ChannelID)
	assert.Equal(t, "Projector2024", cfg.LotteryName)
	assert.Equal(t, ":8080", cfg.AdminAddr)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "raffle", cfg.Database.Name)
	assert.Equal(t, "raffle", cfg.Database.User)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		missing string
	}{
		{name: "missing bot token", missing: "BOT_TOKEN"},
		{name: "missing channel id", missing: "CHANNEL_ID"},
		{name: "missing lottery name", missing: "LOTTERY_NAME"},
		{name: "missing admin token", missing: "ADMIN_TOKEN"},
		{name: "missing db password", missing: "DB_PASSWORD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.missing, "")

			cfg, err := Load()

			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}

func TestLoad_InvalidChannelID(t *testing.T) {
	setRequired(t)
	t.Setenv("CHANNEL_ID", "not-a-number")

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}
