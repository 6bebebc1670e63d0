package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/Cyclone1070/weatheragent/internal/tool"
)

// CreateEventRequest is the argument set of create_event.
type CreateEventRequest struct {
	Summary     string   `json:"summary"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Attendees   []string `json:"attendees"`
}

func (r *CreateEventRequest) Validate() error {
	if strings.TrimSpace(r.Summary) == "" {
		return errors.New("summary must not be empty")
	}
	return nil
}

// RecurringEventRequest is the argument set of create_recurring_event.
type RecurringEventRequest struct {
	Summary        string `json:"summary"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	RecurrenceRule string `json:"recurrence_rule"`
	Description    string `json:"description"`
	Location       string `json:"location"`
}

func (r *RecurringEventRequest) Validate() error {
	if strings.TrimSpace(r.Summary) == "" {
		return errors.New("summary must not be empty")
	}
	r.RecurrenceRule = normalizeRule(r.RecurrenceRule)
	if r.RecurrenceRule == "" {
		return errors.New("recurrence_rule must not be empty")
	}
	return nil
}

// normalizeRule adds the RRULE: prefix to bare rules such as "FREQ=WEEKLY;BYDAY=MO".
func normalizeRule(rule string) string {
	rule = strings.TrimSpace(rule)
	if rule == "" || strings.Contains(rule, ":") {
		return rule
	}
	return "RRULE:" + rule
}

// EventsForDateRequest is the argument set of get_events_for_date.
type EventsForDateRequest struct {
	Date string `json:"date"`
}

// SearchEventsRequest is the argument set of search_events.
type SearchEventsRequest struct {
	Query      string `json:"query"`
	MaxResults int64  `json:"max_results"`
}

func (r *SearchEventsRequest) Validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return errors.New("query must not be empty")
	}
	if r.MaxResults < 0 {
		return errors.New("max_results must be positive")
	}
	return nil
}

func eventFields() map[string]*tool.Schema {
	return map[string]*tool.Schema{
		"summary":     tool.String("Title of the event."),
		"start_time":  tool.String("Start time in RFC 3339, e.g. 2024-03-15T14:00:00. Times without an offset use the calendar time zone."),
		"end_time":    tool.String("End time in RFC 3339, after start_time."),
		"description": tool.String("Optional event description."),
		"location":    tool.String("Optional event location."),
	}
}

// Tools returns the calendar capabilities backed by c.
func (c *Client) Tools() []tool.Tool {
	create := eventFields()
	create["attendees"] = &tool.Schema{
		Type:        tool.TypeArray,
		Description: "Optional attendee email addresses.",
		Items:       &tool.Schema{Type: tool.TypeString},
	}

	recurring := eventFields()
	recurring["recurrence_rule"] = tool.String("iCalendar recurrence rule, e.g. RRULE:FREQ=WEEKLY;BYDAY=MO,WE,FR;COUNT=10.")

	return []tool.Tool{
		tool.New(tool.Declaration{
			Name: "create_event",
			Description: "Create a new event in the user's Google Calendar. " +
				"Only use this tool if the user asks to create or schedule an event. " +
				"Returns the created event with its id and link.",
			Parameters: tool.Object(create, "summary", "start_time", "end_time"),
		}, func(ctx context.Context, req CreateEventRequest) (string, error) {
			ev, err := c.CreateEvent(ctx, NewEvent{
				Summary:     req.Summary,
				Start:       req.StartTime,
				End:         req.EndTime,
				Description: req.Description,
				Location:    req.Location,
				Attendees:   req.Attendees,
			})
			if err != nil {
				return "", err
			}
			return compactJSON(ev)
		}),

		tool.New(tool.Declaration{
			Name: "get_events_for_date",
			Description: "Get all events in the user's Google Calendar for one specific date, " +
				"from midnight to midnight in the calendar time zone, ordered by start time. " +
				"Use it to check availability before scheduling.",
			Parameters: tool.Object(map[string]*tool.Schema{
				"date": tool.String("The date as YYYY-MM-DD."),
			}, "date"),
		}, func(ctx context.Context, req EventsForDateRequest) (string, error) {
			events, err := c.EventsForDate(ctx, req.Date)
			if err != nil {
				return "", err
			}
			return compactJSON(events)
		}),

		tool.New(tool.Declaration{
			Name: "search_events",
			Description: "Search the user's Google Calendar for events matching free text in their title, " +
				"description, location or attendees. Use it when the user names an event but not its date.",
			Parameters: tool.Object(map[string]*tool.Schema{
				"query": tool.String("Text to search for."),
				"max_results": {
					Type:        tool.TypeInteger,
					Description: "Maximum number of events to return.",
					Default:     c.cfg.DefaultMaxResults,
				},
			}, "query"),
		}, func(ctx context.Context, req SearchEventsRequest) (string, error) {
			events, err := c.Search(ctx, req.Query, req.MaxResults)
			if err != nil {
				return "", err
			}
			return compactJSON(events)
		}),

		tool.New(tool.Declaration{
			Name: "create_recurring_event",
			Description: "Create a repeating event in the user's Google Calendar. " +
				"Only use this tool when the user asks for an event that repeats; " +
				"start_time and end_time describe the first occurrence.",
			Parameters: tool.Object(recurring, "summary", "start_time", "end_time", "recurrence_rule"),
		}, func(ctx context.Context, req RecurringEventRequest) (string, error) {
			ev, err := c.CreateEvent(ctx, NewEvent{
				Summary:     req.Summary,
				Start:       req.StartTime,
				End:         req.EndTime,
				Description: req.Description,
				Location:    req.Location,
				Recurrence:  []string{req.RecurrenceRule},
			})
			if err != nil {
				return "", err
			}
			return compactJSON(ev)
		}),
	}
}

func compactJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
