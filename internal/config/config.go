// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything the server needs to start. Values come from the
// environment, with development-friendly defaults for all but JWT_SECRET in
// production.
type Config struct {
	Port         int
	Env          string // "development" or "production"
	DBPath       string
	JWTSecret    string
	TokenTTL     time.Duration
	OTPTTL       time.Duration
	OTPEcho      bool // echo raw codes in the send-otp response (dev only)
	AllowOrigins []string

	SMTP SMTPConfig
}

// SMTPConfig configures outbound email. An empty Host disables SMTP and the
// server falls back to logging codes instead of sending them.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:      getInt("PORT", 8080),
		Env:       getEnv("APP_ENV", "development"),
		DBPath:    getEnv("DB_PATH", "./data/kharcha.db"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  time.Duration(getInt("TOKEN_TTL_HOURS", 168)) * time.Hour,
		OTPTTL:    time.Duration(getInt("OTP_TTL_MINUTES", 10)) * time.Minute,
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getEnv("MAIL_FROM", "no-reply@kharcha.app"),
			FromName: getEnv("MAIL_FROM_NAME", "Kharcha"),
		},
	}

	if origins := os.Getenv("ALLOW_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
			}
		}
	}

	// Raw OTP codes never leave the server in production, whatever the flag
	// says.
	cfg.OTPEcho = getEnv("OTP_ECHO", "false") == "true" && cfg.Env != "production"

	if cfg.JWTSecret == "" {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "dev-secret-do-not-use-in-production"
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL_HOURS must be positive")
	}
	if cfg.OTPTTL <= 0 {
		return nil, fmt.Errorf("OTP_TTL_MINUTES must be positive")
	}

	return cfg, nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
