package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime settings, sourced from environment variables.
type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	JWTSecret      string
	JWTIssuer      string
	AccessTokenTTL time.Duration
}

// Load reads configuration from the environment, falling back to development
// defaults.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "taskuser")
	v.SetDefault("DB_PASSWORD", "taskpassword")
	v.SetDefault("DB_NAME", "task_manager")
	v.SetDefault("JWT_SECRET", "default-secret-key-change-me")
	v.SetDefault("JWT_ISSUER", "task-manager")
	v.SetDefault("JWT_ACCESS_TTL_MIN", 60)

	return &Config{
		Port:           v.GetString("PORT"),
		GinMode:        v.GetString("GIN_MODE"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		DBDriver:       v.GetString("DB_DRIVER"),
		DBHost:         v.GetString("DB_HOST"),
		DBPort:         v.GetString("DB_PORT"),
		DBUser:         v.GetString("DB_USER"),
		DBPassword:     v.GetString("DB_PASSWORD"),
		DBName:         v.GetString("DB_NAME"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTIssuer:      v.GetString("JWT_ISSUER"),
		AccessTokenTTL: time.Duration(v.GetInt("JWT_ACCESS_TTL_MIN")) * time.Minute,
	}
}
