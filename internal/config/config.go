package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	LogLevel      string
	SMTPHost      string
	SMTPUser      string
	SMTPPass      string
	TLSServerName string
	AdminEmail    string
	MailFrom      string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPUser:      getEnv("SMTP_USER", ""),
		SMTPPass:      getEnv("SMTP_PASS", ""),
		TLSServerName: getEnv("SMTP_TLS_SERVERNAME", ""),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		MailFrom:      getEnv("MAIL_FROM", ""),
	}
	if cfg.MailFrom == "" {
		cfg.MailFrom = cfg.SMTPUser
	}
	if cfg.TLSServerName == "" {
		cfg.TLSServerName = cfg.SMTPHost
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
