// Package main provides the weatheragent command: a terminal chat agent that
// reads weather.com forecasts, manages weather.com favorites and books Google
// Calendar events.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Cyclone1070/weatheragent/internal/calendar"
	"github.com/Cyclone1070/weatheragent/internal/config"
	"github.com/Cyclone1070/weatheragent/internal/orchestrator"
	"github.com/Cyclone1070/weatheragent/internal/provider"
	"github.com/Cyclone1070/weatheragent/internal/provider/factory"
	"github.com/Cyclone1070/weatheragent/internal/store"
	"github.com/Cyclone1070/weatheragent/internal/tool"
	"github.com/Cyclone1070/weatheragent/internal/ui"
	uiservices "github.com/Cyclone1070/weatheragent/internal/ui/services"
	"github.com/Cyclone1070/weatheragent/internal/weather"
	"github.com/Cyclone1070/weatheragent/internal/workflow"
	"github.com/Cyclone1070/weatheragent/internal/workflow/loop"
	"github.com/Cyclone1070/weatheragent/internal/workflow/toolmanager"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

// ErrMissingWeatherCredentials is returned when the weather.com account is not configured.
var ErrMissingWeatherCredentials = errors.New(config.EnvWeatherEmail + " and " + config.EnvWeatherPassword + " must be set")

func main() {
	// The terminal UI handles Ctrl+C itself, so no signal context here.
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := checkCredentials(cfg.Credentials); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog.Close()

	llm, err := factory.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("create provider: %w", err)
	}
	logger.Info("provider ready", "model", llm.Model())

	calendarClient, err := createCalendarClient(ctx, cfg, logger)
	if err != nil {
		return err
	}

	var cache weather.LocationCache
	if cfg.Cache.Enabled {
		locations, err := store.Open(cfg.Cache.Path)
		if err != nil {
			return fmt.Errorf("open location cache: %w", err)
		}
		defer locations.Close()
		cache = locations
	}

	browser, err := weather.NewBrowser(weather.BrowserConfig{
		Headless: cfg.Weather.Headless,
		Timeout:  cfg.WeatherTimeout(),
		LoginURL: cfg.Weather.LoginURL,
		HomeURL:  cfg.Weather.HomeURL,
		BaseURL:  cfg.Weather.BaseURL,
	}, logger)
	if err != nil {
		return err
	}
	defer browser.Close()

	if err := browser.Login(ctx, cfg.Credentials.WeatherEmail, cfg.Credentials.WeatherPassword); err != nil {
		return err
	}

	weatherService := weather.NewService(browser, weather.NewLLMSelector(llm), cache, weather.NewMarkdown("weather.com"), logger)

	tools, err := createTools(logger, weatherService.Tools(), calendarClient.Tools())
	if err != nil {
		return err
	}

	return createOrchestrator(cfg, llm, tools, logger).Run(ctx)
}

// checkCredentials fails fast on settings no component can work without.
func checkCredentials(creds config.Credentials) error {
	if creds.WeatherEmail == "" || creds.WeatherPassword == "" {
		return ErrMissingWeatherCredentials
	}
	return nil
}

// newLogger writes structured logs to the configured file; the terminal belongs
// to the chat. An empty path discards logs.
func newLogger(cfg config.LogConfig) (*slog.Logger, io.Closer, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	if cfg.Path == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}

func createCalendarClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*calendar.Client, error) {
	ts, err := calendar.TokenSource(ctx, cfg.Credentials.CalendarCredentialsFile, cfg.Credentials.CalendarTokenFile)
	if err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(cfg.Calendar.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("calendar time zone: %w", err)
	}
	client, err := calendar.NewClient(ctx, calendar.Config{
		CalendarID:        cfg.Calendar.CalendarID,
		Location:          loc,
		MaxEventsPerDay:   cfg.Calendar.MaxEventsPerDay,
		DefaultMaxResults: cfg.Calendar.DefaultMaxResults,
	}, logger, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create calendar client: %w", err)
	}
	return client, nil
}

func createTools(logger *slog.Logger, groups ...[]tool.Tool) (*toolmanager.ToolManager, error) {
	var all []tool.Tool
	for _, g := range groups {
		all = append(all, g...)
	}
	tm, err := toolmanager.New(logger, all...)
	if err != nil {
		return nil, fmt.Errorf("register tools: %w", err)
	}
	logger.Info("tools registered", "tools", tm.Names())
	return tm, nil
}

func createOrchestrator(cfg *config.Config, llm provider.Provider, tools *toolmanager.ToolManager, logger *slog.Logger) *orchestrator.Orchestrator {
	events := make(chan workflow.Event, 16)
	dialogue := loop.NewLoop(llm, tools, events, cfg.Agent.MaxIterations, loop.WithLogger(logger))
	return orchestrator.New(dialogue, createRealUI(cfg, logger), events, logger)
}

func createRealUI(cfg *config.Config, logger *slog.Logger) *ui.UI {
	renderer := uiservices.NewGlamourRenderer("")
	spinnerFactory := func() spinner.Model {
		return spinner.New(spinner.WithSpinner(spinner.Dot))
	}
	return ui.NewUI(cfg.UI, renderer, spinnerFactory, ui.WithLogger(logger))
}
