package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Fantasy game shape
	Budget           float64 `mapstructure:"BUDGET"`
	DriverCount      int     `mapstructure:"DRIVER_COUNT"`
	ConstructorCount int     `mapstructure:"CONSTRUCTOR_COUNT"`
	MaxPerTeam       int     `mapstructure:"MAX_PER_TEAM"`

	// Optimizer
	MaxExhaustiveCombos int64 `mapstructure:"MAX_EXHAUSTIVE_COMBOS"`

	// Season
	RacesPerSeason int `mapstructure:"RACES_PER_SEASON"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("BUDGET", 100.0)
	viper.SetDefault("DRIVER_COUNT", 5)
	viper.SetDefault("CONSTRUCTOR_COUNT", 2)
	viper.SetDefault("MAX_PER_TEAM", 0)
	viper.SetDefault("MAX_EXHAUSTIVE_COMBOS", 100000000)
	viper.SetDefault("RACES_PER_SEASON", 24)

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
