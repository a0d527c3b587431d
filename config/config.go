// Package config loads runtime settings from the environment. A .env
// file is honored when present; every key has a sensible default.
package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the runtime settings for the API.
type Config struct {
	Addr               string
	RedisAddr          string
	Environment        string
	Region             string
	LogLevel           string
	MetricsNamespace   string
	RateLimitPerMinute int
}

// Load reads configuration from the environment, loading a local .env
// file first when one exists.
func Load() *Config {
	godotenv.Load()

	v := viper.New()
	v.SetDefault("ADDR", ":8080")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("REGION", "local")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("METRICS_NAMESPACE", "RealEstateObservability")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	v.AutomaticEnv()

	return &Config{
		Addr:               v.GetString("ADDR"),
		RedisAddr:          v.GetString("REDIS_ADDR"),
		Environment:        v.GetString("ENVIRONMENT"),
		Region:             v.GetString("REGION"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		MetricsNamespace:   v.GetString("METRICS_NAMESPACE"),
		RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
	}
}
