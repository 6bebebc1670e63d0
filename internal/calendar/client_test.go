package calendar

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

type recordedRequest struct {
	method string
	path   string
	query  url.Values
	body   map[string]any
}

// newTestClient starts a fake Calendar API that answers every request with
// status and body.
func newTestClient(t *testing.T, cfg Config, status int, body string) (*Client, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{method: r.Method, path: r.URL.Path, query: r.URL.Query()}
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			_ = json.Unmarshal(data, &rec.body)
		}
		requests = append(requests, rec)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(context.Background(), cfg, nil,
		option.WithHTTPClient(srv.Client()),
		option.WithEndpoint(srv.URL+"/"),
	)
	require.NoError(t, err)
	return c, &requests
}

const createdEvent = `{"id":"evt1","summary":"Dentist","htmlLink":"https://calendar.google.com/event?eid=evt1",
"location":"High Street","start":{"dateTime":"2024-03-15T14:00:00+01:00","timeZone":"Europe/Paris"},
"end":{"dateTime":"2024-03-15T15:00:00+01:00","timeZone":"Europe/Paris"}}`

func TestClient_CreateEvent(t *testing.T) {
	c, reqs := newTestClient(t, Config{Location: paris(t)}, http.StatusOK, createdEvent)

	ev, err := c.CreateEvent(context.Background(), NewEvent{
		Summary:   "Dentist",
		Start:     "2024-03-15T14:00:00",
		End:       "2024-03-15T15:00:00",
		Location:  "High Street",
		Attendees: []string{"ana@example.com", " ", "bo@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, Event{
		ID:       "evt1",
		Summary:  "Dentist",
		Start:    "2024-03-15T14:00:00+01:00",
		End:      "2024-03-15T15:00:00+01:00",
		Location: "High Street",
		Link:     "https://calendar.google.com/event?eid=evt1",
	}, ev)

	require.Len(t, *reqs, 1)
	req := (*reqs)[0]
	assert.Equal(t, http.MethodPost, req.method)
	assert.True(t, strings.HasSuffix(req.path, "/calendars/primary/events"), req.path)

	start := req.body["start"].(map[string]any)
	assert.Equal(t, "2024-03-15T14:00:00+01:00", start["dateTime"])
	assert.Equal(t, "Europe/Paris", start["timeZone"])
	attendees := req.body["attendees"].([]any)
	require.Len(t, attendees, 2)
	assert.Equal(t, "bo@example.com", attendees[1].(map[string]any)["email"])
	assert.NotContains(t, req.body, "recurrence")
}

func TestClient_CreateEvent_RejectsBadTimes(t *testing.T) {
	c, reqs := newTestClient(t, Config{}, http.StatusOK, createdEvent)

	_, err := c.CreateEvent(context.Background(), NewEvent{Summary: "x", Start: "soon", End: "2024-03-15T15:00:00"})
	assert.ErrorIs(t, err, ErrInvalidTime)

	_, err = c.CreateEvent(context.Background(), NewEvent{Summary: "x", Start: "2024-03-15T15:00:00", End: "2024-03-15T15:00:00"})
	assert.ErrorIs(t, err, ErrEndBeforeStart)

	assert.Empty(t, *reqs)
}

func TestClient_EventsForDate(t *testing.T) {
	body := `{"items":[
{"id":"a","summary":"Standup","start":{"dateTime":"2024-03-15T09:00:00Z"},"end":{"dateTime":"2024-03-15T09:15:00Z"}},
{"id":"b","summary":"Holiday","start":{"date":"2024-03-15"},"end":{"date":"2024-03-16"}}]}`
	c, reqs := newTestClient(t, Config{CalendarID: "team@example.com", MaxEventsPerDay: 100}, http.StatusOK, body)

	events, err := c.EventsForDate(context.Background(), "2024-03-15")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Standup", events[0].Summary)
	assert.Equal(t, "2024-03-15", events[1].Start)

	q := (*reqs)[0].query
	assert.Equal(t, "2024-03-15T00:00:00Z", q.Get("timeMin"))
	assert.Equal(t, "2024-03-16T00:00:00Z", q.Get("timeMax"))
	assert.Equal(t, "100", q.Get("maxResults"))
	assert.Equal(t, "true", q.Get("singleEvents"))
	assert.Equal(t, "startTime", q.Get("orderBy"))
	assert.Contains(t, (*reqs)[0].path, "team@example.com")
}

func TestClient_EventsForDate_Empty(t *testing.T) {
	c, _ := newTestClient(t, Config{}, http.StatusOK, `{}`)

	events, err := c.EventsForDate(context.Background(), "2024-03-15")
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestClient_Search_DefaultMax(t *testing.T) {
	c, reqs := newTestClient(t, Config{DefaultMaxResults: 7}, http.StatusOK, `{"items":[]}`)

	_, err := c.Search(context.Background(), "dentist", 0)
	require.NoError(t, err)
	q := (*reqs)[0].query
	assert.Equal(t, "dentist", q.Get("q"))
	assert.Equal(t, "7", q.Get("maxResults"))
}

func TestClient_APIError(t *testing.T) {
	c, _ := newTestClient(t, Config{}, http.StatusForbidden,
		`{"error":{"code":403,"message":"Request had insufficient authentication scopes."}}`)

	_, err := c.Search(context.Background(), "dentist", 5)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Code)
	assert.Equal(t, "search events", apiErr.Op)
	assert.Contains(t, err.Error(), "insufficient authentication scopes")
}

func TestNewClient_Defaults(t *testing.T) {
	c, _ := newTestClient(t, Config{}, http.StatusOK, `{}`)
	assert.Equal(t, "primary", c.cfg.CalendarID)
	assert.Equal(t, time.UTC, c.cfg.Location)
	assert.Equal(t, int64(100), c.cfg.MaxEventsPerDay)
	assert.Equal(t, int64(10), c.cfg.DefaultMaxResults)
}
