package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Chart  ChartConfig
	Input  InputConfig
	Output OutputConfig
}

// ServerConfig holds HTTP serve-mode configuration
type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
}

// ChartConfig holds chart rendering configuration
type ChartConfig struct {
	WidthInches  float64
	HeightInches float64
	DPI          int
}

// InputConfig holds interactive input configuration
type InputConfig struct {
	// LegacyDropNegative restores the historical behavior of silently
	// skipping a band when a negative level is entered.
	LegacyDropNegative bool
}

// OutputConfig holds artifact output configuration
type OutputConfig struct {
	Dir string
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "dev")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("NC_OUTPUT_DIR", ".")
	viper.SetDefault("NC_CHART_WIDTH_IN", 6.0)
	viper.SetDefault("NC_CHART_HEIGHT_IN", 4.5)
	viper.SetDefault("NC_CHART_DPI", 300)
	viper.SetDefault("NC_LEGACY_INPUT", false)

	// Read from .env files based on environment
	env := viper.GetString("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	viper.SetConfigName(".env." + env)
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Read .env file (ignore error if file doesn't exist)
	_ = viper.ReadInConfig()

	// Environment variables override .env file values
	viper.AutomaticEnv()

	viper.BindEnv("PORT")
	viper.BindEnv("ENVIRONMENT")
	viper.BindEnv("ALLOWED_ORIGINS")
	viper.BindEnv("NC_OUTPUT_DIR")
	viper.BindEnv("NC_CHART_WIDTH_IN")
	viper.BindEnv("NC_CHART_HEIGHT_IN")
	viper.BindEnv("NC_CHART_DPI")
	viper.BindEnv("NC_LEGACY_INPUT")

	var config Config
	config.Server.Port = viper.GetString("PORT")
	config.Server.Env = viper.GetString("ENVIRONMENT")
	config.Server.AllowedOrigins = strings.Split(viper.GetString("ALLOWED_ORIGINS"), ",")
	config.Output.Dir = viper.GetString("NC_OUTPUT_DIR")
	config.Chart.WidthInches = viper.GetFloat64("NC_CHART_WIDTH_IN")
	config.Chart.HeightInches = viper.GetFloat64("NC_CHART_HEIGHT_IN")
	config.Chart.DPI = viper.GetInt("NC_CHART_DPI")
	config.Input.LegacyDropNegative = viper.GetBool("NC_LEGACY_INPUT")

	return &config, nil
}
