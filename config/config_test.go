package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "memory")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, 30, cfg.AppointmentDurationMinutes)
	assert.Equal(t, 30*time.Minute, cfg.LeadTime())
	assert.Equal(t, 5*time.Minute, cfg.DoctorCacheTTL)
	assert.Equal(t, time.UTC, cfg.Location())
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "memory")
	t.Setenv("APPOINTMENT_DURATION_MINUTES", "20")
	t.Setenv("TIMEZONE", "Asia/Kolkata")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 20*time.Minute, cfg.SlotDuration())
	assert.Equal(t, "Asia/Kolkata", cfg.Location().String())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}

func TestValidate(t *testing.T) {
	base := Config{AppointmentDurationMinutes: 30, BookingLeadTimeMinutes: 30, Timezone: "UTC", DatabaseDriver: "mongo"}
	require.NoError(t, base.Validate())

	bad := base
	bad.AppointmentDurationMinutes = 0
	assert.Error(t, bad.Validate())

	bad = base
	bad.Timezone = "Mars/Olympus"
	assert.Error(t, bad.Validate())

	bad = base
	bad.DatabaseDriver = "postgres"
	assert.Error(t, bad.Validate())
}
