package services

import (
	"encoding/json"
	"fmt"
)

// DescribeToolCall turns a tool call into a short status line.
func DescribeToolCall(name, rawArgs string) string {
	var args map[string]any
	_ = json.Unmarshal([]byte(rawArgs), &args)
	str := func(key string) string {
		s, _ := args[key].(string)
		return s
	}

	switch name {
	case "extract_city_weather":
		if city := str("city_name"); city != "" {
			if str("page") == "tenday" {
				return fmt.Sprintf("Fetching the 10 day forecast for %s", city)
			}
			return fmt.Sprintf("Fetching the hourly forecast for %s", city)
		}
	case "add_city_to_favorites":
		if city := str("city_name"); city != "" {
			return fmt.Sprintf("Adding %s to favorites", city)
		}
	case "remove_city_from_favorites":
		if city := str("city_name"); city != "" {
			return fmt.Sprintf("Removing %s from favorites", city)
		}
	case "create_event", "create_recurring_event":
		if summary := str("summary"); summary != "" {
			return fmt.Sprintf("Creating event '%s'", summary)
		}
	case "get_events_for_date":
		if date := str("date"); date != "" {
			return fmt.Sprintf("Reading calendar for %s", date)
		}
	case "search_events":
		if query := str("query"); query != "" {
			return fmt.Sprintf("Searching calendar for '%s'", query)
		}
	}
	return fmt.Sprintf("Running %s", name)
}
