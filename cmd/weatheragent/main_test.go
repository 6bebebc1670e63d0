package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/Cyclone1070/weatheragent/internal/config"
	"github.com/Cyclone1070/weatheragent/internal/tool"
	"github.com/Cyclone1070/weatheragent/internal/workflow/toolmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCredentials(t *testing.T) {
	assert.ErrorIs(t, checkCredentials(config.Credentials{}), ErrMissingWeatherCredentials)
	assert.ErrorIs(t, checkCredentials(config.Credentials{WeatherEmail: "me@example.com"}), ErrMissingWeatherCredentials)
	assert.NoError(t, checkCredentials(config.Credentials{WeatherEmail: "me@example.com", WeatherPassword: "secret"}))
}

func TestNewLogger_WritesToFileAtLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "agent.log")

	logger, closer, err := newLogger(config.LogConfig{Path: path, Level: "warn"})
	require.NoError(t, err)

	logger.Info("hidden message")
	logger.Warn("visible message", "city", "Paris")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible message")
	assert.Contains(t, string(data), "city=Paris")
	assert.NotContains(t, string(data), "hidden message")
}

func TestNewLogger_EmptyPathDiscards(t *testing.T) {
	logger, closer, err := newLogger(config.LogConfig{Level: "info"})
	require.NoError(t, err)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
	assert.NoError(t, closer.Close())
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, _, err := newLogger(config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type emptyRequest struct{}

func namedTool(name string) tool.Tool {
	return tool.New(tool.Declaration{Name: name, Parameters: tool.Object(nil)}, func(context.Context, emptyRequest) (string, error) {
		return "", nil
	})
}

func TestCreateTools_MergesGroups(t *testing.T) {
	tm, err := createTools(discard(),
		[]tool.Tool{namedTool("extract_city_weather"), namedTool("add_city_to_favorites")},
		[]tool.Tool{namedTool("create_event")},
	)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"extract_city_weather", "add_city_to_favorites", "create_event"}, tm.Names())
}

func TestCreateTools_DuplicateName(t *testing.T) {
	_, err := createTools(discard(),
		[]tool.Tool{namedTool("create_event")},
		[]tool.Tool{namedTool("create_event")},
	)
	assert.ErrorIs(t, err, toolmanager.ErrDuplicateToolName)
}

func TestCreateOrchestrator(t *testing.T) {
	tm, err := createTools(discard(), []tool.Tool{namedTool("create_event")})
	require.NoError(t, err)

	o := createOrchestrator(config.DefaultConfig(), nil, tm, discard())

	require.NotNil(t, o)
	assert.Equal(t, 0, o.Conversation().Len())
}
