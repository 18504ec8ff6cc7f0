package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	ChannelID   int64
	ChannelLink string
	LotteryName string
	AdminAddr   string
	AdminToken  string
	Database    DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		ChannelLink: os.Getenv("CHANNEL_LINK"),
		LotteryName: os.Getenv("LOTTERY_NAME"),
		AdminAddr:   getEnv("ADMIN_ADDR", ":8080"),
		AdminToken:  os.Getenv("ADMIN_TOKEN"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "raffle"),
			User:     getEnv("DB_USER", "raffle"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.LotteryName == "" {
		return nil, fmt.Errorf("LOTTERY_NAME is required")
	}
	if cfg.AdminToken == "" {
		return nil, fmt.Errorf("ADMIN_TOKEN is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	rawChannelID := os.Getenv("CHANNEL_ID")
	if rawChannelID == "" {
		return nil, fmt.Errorf("CHANNEL_ID is required")
	}
	channelID, err := strconv.ParseInt(rawChannelID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("CHANNEL_ID must be a chat id: %w", err)
	}
	cfg.ChannelID = channelID

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
