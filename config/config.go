package config

import (
	"fmt"
	"log"
	"strings"

	"onboarding-bot/models"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configuration from a .env file, an optional config.yaml, and the
// environment, then materializes it into a Config struct. Environment
// variables override file values.
//
// TOKEN, channel_ID_welcome and channel_ID_rules are required; Load returns
// an error when any of them is missing so the process fails at startup
// instead of limping along without a channel to post to.
func Load() (*models.Config, error) {
	// .env is optional; a missing file just means the environment is already
	// populated.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, skipping.")
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("No config.yaml found, using environment variables and defaults.")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// The platform channel IDs use mixed-case env names, which AutomaticEnv's
	// upper-casing would miss; bind them explicitly.
	viper.BindEnv("token", "TOKEN")
	viper.BindEnv("welcome_channel_id", "channel_ID_welcome")
	viper.BindEnv("rules_channel_id", "channel_ID_rules")

	viper.SetDefault("provisional_role_name", "Unnamed")
	viper.SetDefault("admin_role_name", "admin")
	viper.SetDefault("stats_db_path", "data/onboarding_stats.db")

	cfg := &models.Config{
		Token:               viper.GetString("token"),
		WelcomeChannelID:    viper.GetString("welcome_channel_id"),
		RulesChannelID:      viper.GetString("rules_channel_id"),
		ProvisionalRoleName: viper.GetString("provisional_role_name"),
		AdminRoleName:       viper.GetString("admin_role_name"),
		LogChannelID:        viper.GetString("log_channel_id"),
		StatsDBPath:         viper.GetString("stats_db_path"),
	}

	if cfg.Token == "" {
		return nil, fmt.Errorf("no bot token provided, set TOKEN in the environment or .env")
	}
	if cfg.WelcomeChannelID == "" {
		return nil, fmt.Errorf("channel_ID_welcome is not set")
	}
	if cfg.RulesChannelID == "" {
		return nil, fmt.Errorf("channel_ID_rules is not set")
	}

	return cfg, nil
}
