// Package calendar reads and writes Google Calendar events for the agent.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Config configures a Client.
type Config struct {
	CalendarID string
	// Location is used for times given without an offset and for day boundaries.
	Location          *time.Location
	MaxEventsPerDay   int64
	DefaultMaxResults int64
}

// Client is a Google Calendar v3 client scoped to one calendar.
type Client struct {
	events *calendar.EventsService
	cfg    Config
	logger *slog.Logger
}

// NewClient creates a Client. Authentication comes from opts, usually
// option.WithTokenSource.
func NewClient(ctx context.Context, cfg Config, logger *slog.Logger, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.MaxEventsPerDay <= 0 {
		cfg.MaxEventsPerDay = 100
	}
	if cfg.DefaultMaxResults <= 0 {
		cfg.DefaultMaxResults = 10
	}
	return &Client{events: svc.Events, cfg: cfg, logger: logger}, nil
}

// CreateEvent inserts a timed event.
func (c *Client) CreateEvent(ctx context.Context, in NewEvent) (Event, error) {
	start, err := parseTime(in.Start, c.cfg.Location)
	if err != nil {
		return Event{}, fmt.Errorf("start_time: %w", err)
	}
	end, err := parseTime(in.End, c.cfg.Location)
	if err != nil {
		return Event{}, fmt.Errorf("end_time: %w", err)
	}
	if !end.After(start) {
		return Event{}, ErrEndBeforeStart
	}

	ev := &calendar.Event{
		Summary:     in.Summary,
		Description: in.Description,
		Location:    in.Location,
		Start:       c.dateTime(start),
		End:         c.dateTime(end),
		Recurrence:  in.Recurrence,
	}
	for _, email := range in.Attendees {
		if email = strings.TrimSpace(email); email != "" {
			ev.Attendees = append(ev.Attendees, &calendar.EventAttendee{Email: email})
		}
	}

	c.logger.Debug("creating calendar event", "summary", in.Summary, "start", ev.Start.DateTime, "recurring", len(in.Recurrence) > 0)
	created, err := c.events.Insert(c.cfg.CalendarID, ev).Context(ctx).Do()
	if err != nil {
		return Event{}, apiError("insert event", err)
	}
	return fromAPIEvent(created), nil
}

// EventsForDate lists the events between local midnight of date and the next midnight.
func (c *Client) EventsForDate(ctx context.Context, date string) ([]Event, error) {
	start, end, err := dayBounds(date, c.cfg.Location)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("listing calendar events", "date", date)
	res, err := c.events.List(c.cfg.CalendarID).
		TimeMin(start.Format(time.RFC3339)).
		TimeMax(end.Format(time.RFC3339)).
		MaxResults(c.cfg.MaxEventsPerDay).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, apiError("list events", err)
	}
	return fromAPIEvents(res.Items), nil
}

// Search returns events matching a free-text query. maxResults <= 0 uses the
// configured default.
func (c *Client) Search(ctx context.Context, query string, maxResults int64) ([]Event, error) {
	if maxResults <= 0 {
		maxResults = c.cfg.DefaultMaxResults
	}

	c.logger.Debug("searching calendar events", "query", query, "max", maxResults)
	res, err := c.events.List(c.cfg.CalendarID).
		Q(query).
		MaxResults(maxResults).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, apiError("search events", err)
	}
	return fromAPIEvents(res.Items), nil
}

func (c *Client) dateTime(t time.Time) *calendar.EventDateTime {
	return &calendar.EventDateTime{
		DateTime: t.Format(time.RFC3339),
		TimeZone: c.cfg.Location.String(),
	}
}

func fromAPIEvents(items []*calendar.Event) []Event {
	events := make([]Event, 0, len(items))
	for _, it := range items {
		events = append(events, fromAPIEvent(it))
	}
	return events
}

func apiError(op string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		msg := gerr.Message
		if msg == "" {
			msg = strings.TrimSpace(gerr.Body)
		}
		return &APIError{Op: op, Code: gerr.Code, Err: errors.New(msg)}
	}
	return &APIError{Op: op, Err: err}
}
