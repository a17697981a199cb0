package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all environment-driven settings.
type Config struct {
	Port              string
	Env               string
	LogLevel          string
	VerifyToken       string
	WhatsAppToken     string
	WhatsAppPhoneID   string
	DatabaseURL       string
	AdvisoryURL       string
	ReminderHourLocal int
}

// Load reads configuration from a .env file (when present) and the
// environment. Missing values fall back to development defaults; only the
// collaborators themselves decide whether an empty credential is fatal.
func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return Config{
		Port:              getEnv("PORT", "3000"),
		Env:               getEnv("ENV", "development"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		VerifyToken:       getEnv("WHATSAPP_VERIFY_TOKEN", "change-me"),
		WhatsAppToken:     os.Getenv("WHATSAPP_TOKEN"),
		WhatsAppPhoneID:   os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		AdvisoryURL:       os.Getenv("ADVISORY_URL"),
		ReminderHourLocal: getEnvInt("REMINDER_HOUR", 8),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
