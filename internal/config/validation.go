package config

import (
	"fmt"
	"time"
)

// Validate checks config values for life correctness.
// Returns an error if any values are invalid.
// Missing credentials are not a validation failure here; the components that need
// them report a configuration fault at startup.
func (c *Config) Validate() error {
	var errs []string

	if c.Agent.MaxIterations < 1 {
		errs = append(errs, "agent.max_iterations must be >= 1")
	}
	if c.Provider.MaxOutputTokens < 1 {
		errs = append(errs, "provider.max_output_tokens must be >= 1")
	}

	// Weather
	if c.Weather.BaseURL == "" {
		errs = append(errs, "weather.base_url must not be empty")
	}
	if c.Weather.LoginURL == "" {
		errs = append(errs, "weather.login_url must not be empty")
	}
	if c.Weather.HomeURL == "" {
		errs = append(errs, "weather.home_url must not be empty")
	}
	if c.Weather.TimeoutSeconds < 1 {
		errs = append(errs, "weather.timeout_seconds must be >= 1")
	}

	// Calendar
	if c.Calendar.CalendarID == "" {
		errs = append(errs, "calendar.calendar_id must not be empty")
	}
	if _, err := time.LoadLocation(c.Calendar.TimeZone); err != nil {
		errs = append(errs, fmt.Sprintf("calendar.time_zone %q is not a valid IANA zone", c.Calendar.TimeZone))
	}
	if c.Calendar.MaxEventsPerDay < 1 {
		errs = append(errs, "calendar.max_events_per_day must be >= 1")
	}
	if c.Calendar.DefaultMaxResults < 1 {
		errs = append(errs, "calendar.default_max_results must be >= 1")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level %q must be one of debug, info, warn, error", c.Log.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}

// WeatherTimeout returns the browser wait timeout as a duration.
func (c *Config) WeatherTimeout() time.Duration {
	return time.Duration(c.Weather.TimeoutSeconds) * time.Second
}
