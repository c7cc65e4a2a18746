package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

type AppConfigTwitter struct {
	ApiKey            string `mapstructure:"api_key"`
	ApiSecret         string `mapstructure:"api_secret"`
	AccessToken       string `mapstructure:"access_token"`
	AccessTokenSecret string `mapstructure:"access_token_secret"`
}

type AppConfigEnergyPrice struct {
	Area string `mapstructure:"area"` // "ee", "fi", "lv", "lt"
}

type AppConfigSchedule struct {
	// Cron spec for daemon mode. When empty the bot posts once and exits,
	// leaving the scheduling to cron/systemd.
	RunAt string `mapstructure:"run_at"`
}

type AppConfigLogging struct {
	// Min log level for console: "DEBUG", "INFO", "WARN", "ERROR", default: "INFO"
	ConsoleLevel string `mapstructure:"console_level"`
}

func (l AppConfigLogging) GetConsoleLevel() slog.Level {
	return levelFromString(l.ConsoleLevel)
}

type AppConfig struct {
	Twitter     AppConfigTwitter     `mapstructure:"twitter"`
	EnergyPrice AppConfigEnergyPrice `mapstructure:"energy_price"`
	Schedule    AppConfigSchedule    `mapstructure:"schedule"`
	Logging     AppConfigLogging     `mapstructure:"logging"`
}

// Load reads configuration from an optional yaml file and the environment.
// The Twitter secrets are normally supplied as TWITTER_API_KEY,
// TWITTER_API_SECRET, TWITTER_ACCESS_TOKEN and TWITTER_ACCESS_TOKEN_SECRET.
// A missing secret is not an error here, it surfaces as an authentication
// failure at publish time.
func Load(path string) (*AppConfig, error) {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.AddConfigPath("config")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Defaults register the keys so environment overrides are picked up
	// even when no config file is present.
	viper.SetDefault("twitter.api_key", "")
	viper.SetDefault("twitter.api_secret", "")
	viper.SetDefault("twitter.access_token", "")
	viper.SetDefault("twitter.access_token_secret", "")
	viper.SetDefault("energy_price.area", "ee")
	viper.SetDefault("schedule.run_at", "")
	viper.SetDefault("logging.console_level", "INFO")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	var c AppConfig
	if err := viper.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config file: %w", err)
	}

	return &c, nil
}

func levelFromString(str string) slog.Level {
	switch strings.ToUpper(str) {
	case slog.LevelDebug.String():
		return slog.LevelDebug
	case slog.LevelInfo.String():
		return slog.LevelInfo
	case slog.LevelWarn.String():
		return slog.LevelWarn
	case slog.LevelError.String():
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
