package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type DiscordConfig struct {
	BotToken string
}

// IsConfigured returns true if all required Discord configuration is present
func (c DiscordConfig) IsConfigured() bool {
	return c.BotToken != ""
}

type SlackConfig struct {
	BotToken string
	AppToken string
}

// IsConfigured returns true if all required Slack configuration is present
func (c SlackConfig) IsConfigured() bool {
	return c.BotToken != "" && c.AppToken != ""
}

type AppConfig struct {
	// Core configuration (always required)
	DatabaseURL     string
	DatabaseSchema  string
	Port            string // Optional with default "8080"
	Environment     string
	UseStrictConfig bool // If true, error when any transport is not fully configured

	// Transport configurations (at least one must be configured)
	DiscordConfig DiscordConfig
	SlackConfig   SlackConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	databaseURL, err := getEnvRequired("DB_URL")
	if err != nil {
		return nil, err
	}

	databaseSchema, err := getEnvRequired("DB_SCHEMA")
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		DatabaseURL:     databaseURL,
		DatabaseSchema:  databaseSchema,
		Port:            getEnvWithDefault("PORT", "8080"),
		Environment:     getEnvWithDefault("ENVIRONMENT", "dev"),
		UseStrictConfig: getEnvWithDefault("USE_STRICT_CONFIG", "false") == "true",

		DiscordConfig: DiscordConfig{
			BotToken: os.Getenv("DISCORD_BOT_TOKEN"),
		},

		SlackConfig: SlackConfig{
			BotToken: os.Getenv("SLACK_BOT_TOKEN"),
			AppToken: os.Getenv("SLACK_APP_TOKEN"),
		},
	}

	if config.DiscordConfig.IsConfigured() {
		log.Printf("✅ Discord transport configured")
	} else {
		log.Printf("⚠️ Discord transport not configured - Discord features will be disabled")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("discord transport is not fully configured (USE_STRICT_CONFIG=true)")
		}
	}

	if config.SlackConfig.IsConfigured() {
		log.Printf("✅ Slack transport configured")
	} else {
		log.Printf("⚠️ Slack transport not configured - Slack features will be disabled")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("slack transport is not fully configured (USE_STRICT_CONFIG=true)")
		}
	}

	if !config.DiscordConfig.IsConfigured() && !config.SlackConfig.IsConfigured() {
		return nil, fmt.Errorf("no chat transport is configured")
	}

	return config, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
