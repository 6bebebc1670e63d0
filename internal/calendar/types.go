package calendar

import (
	calendar "google.golang.org/api/calendar/v3"
)

// Event is the compact view of a calendar event returned to the model.
type Event struct {
	ID       string `json:"id"`
	Summary  string `json:"summary"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Location string `json:"location,omitempty"`
	Link     string `json:"link,omitempty"`

	Recurrence []string `json:"recurrence,omitempty"`
}

// NewEvent describes an event to create.
type NewEvent struct {
	Summary     string
	Start       string
	End         string
	Description string
	Location    string
	Attendees   []string
	// Recurrence holds RRULE, EXRULE, RDATE or EXDATE lines.
	Recurrence []string
}

func fromAPIEvent(e *calendar.Event) Event {
	return Event{
		ID:         e.Id,
		Summary:    e.Summary,
		Start:      eventTime(e.Start),
		End:        eventTime(e.End),
		Location:   e.Location,
		Link:       e.HtmlLink,
		Recurrence: e.Recurrence,
	}
}

// eventTime prefers the timed value and falls back to the all-day date.
func eventTime(t *calendar.EventDateTime) string {
	if t == nil {
		return ""
	}
	if t.DateTime != "" {
		return t.DateTime
	}
	return t.Date
}
