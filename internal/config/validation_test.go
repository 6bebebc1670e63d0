package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_AllDefaults_Pass(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_Agent(t *testing.T) {
	t.Run("Zero MaxIterations Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Agent.MaxIterations = 0
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "max_iterations")
	})
}

func TestValidate_Weather(t *testing.T) {
	t.Run("Zero Timeout Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Weather.TimeoutSeconds = 0
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "timeout_seconds")
	})

	t.Run("Empty Login URL Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Weather.LoginURL = ""
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "login_url")
	})
}

func TestValidate_Calendar(t *testing.T) {
	t.Run("Unknown Time Zone Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Calendar.TimeZone = "Mars/Olympus_Mons"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "time_zone")
	})

	t.Run("Named Time Zone Passes", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Calendar.TimeZone = "Europe/London"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Zero Max Events Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Calendar.MaxEventsPerDay = 0
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "max_events_per_day")
	})
}

func TestValidate_LogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "verbose"
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}
