package weather

import (
	"net/url"
	"strings"
)

// Page is a weather.com forecast page.
type Page string

const (
	PageHourByHour Page = "hourbyhour"
	PageTenDay     Page = "tenday"
)

// Valid reports whether p is a supported forecast page.
func (p Page) Valid() bool {
	return p == PageHourByHour || p == PageTenDay
}

// Option is one entry of the location search listbox.
type Option struct {
	// Index is the position in the listbox, starting at 0.
	Index int
	Label string
	// Saved is true when the entry is already in the favorites list.
	Saved bool
}

// Location is a resolved weather.com location.
type Location struct {
	Label string
	ID    string
}

const (
	saveCaption   = "Save Location"
	removeCaption = "Remove Location"
)

// cleanLabel strips the favorites caption the listbox renders inside each option.
func cleanLabel(text string) string {
	text = strings.ReplaceAll(text, saveCaption, "")
	text = strings.ReplaceAll(text, removeCaption, "")
	return strings.Join(strings.Fields(text), " ")
}

// locationIDFromURL returns the last path segment of a weather.com forecast url.
func locationIDFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	path := strings.TrimRight(u.Path, "/")
	i := strings.LastIndex(path, "/")
	id := path[i+1:]
	if id == "" || !strings.Contains(path, "/l/") {
		return "", ErrNoLocationID
	}
	return id, nil
}

// forecastURL builds the url of a forecast page for a location id.
func forecastURL(baseURL string, page Page, id string) string {
	return strings.TrimRight(baseURL, "/") + "/weather/" + string(page) + "/l/" + url.PathEscape(id)
}

// normalizeQuery is the cache key for a city search.
func normalizeQuery(q string) string {
	return strings.ToLower(strings.Join(strings.Fields(q), " "))
}
