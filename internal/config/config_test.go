package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("WHATSAPP_VERIFY_TOKEN", "")
	t.Setenv("REMINDER_HOUR", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "change-me", cfg.VerifyToken)
	assert.Equal(t, 8, cfg.ReminderHourLocal)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("WHATSAPP_VERIFY_TOKEN", "hook-secret")
	t.Setenv("REMINDER_HOUR", "9")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "hook-secret", cfg.VerifyToken)
	assert.Equal(t, 9, cfg.ReminderHourLocal)
}

func TestLoadIgnoresBadInt(t *testing.T) {
	t.Setenv("REMINDER_HOUR", "noon")
	assert.Equal(t, 8, Load().ReminderHourLocal)
}
