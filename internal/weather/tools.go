package weather

import (
	"context"
	"errors"
	"strings"

	"github.com/Cyclone1070/weatheragent/internal/tool"
)

// CityWeatherRequest is the argument set of extract_city_weather.
type CityWeatherRequest struct {
	CityName string `json:"city_name"`
	Page     string `json:"page"`
}

// Validate implements tool.Validator.
func (r *CityWeatherRequest) Validate() error {
	if strings.TrimSpace(r.CityName) == "" {
		return errors.New("city_name must not be empty")
	}
	if r.Page == "" {
		r.Page = string(PageHourByHour)
	}
	return nil
}

// FavoriteRequest is the argument set of the favorites tools.
type FavoriteRequest struct {
	CityName string `json:"city_name"`
}

// Validate implements tool.Validator.
func (r *FavoriteRequest) Validate() error {
	if strings.TrimSpace(r.CityName) == "" {
		return errors.New("city_name must not be empty")
	}
	return nil
}

const (
	extractCityWeatherDescription = "Extract the weather forecast for one city from weather.com, as markdown. " +
		"Only use this tool if the user asks for weather information for a specific city. " +
		"Only one city is supported per call; call it again for each further city."

	pageDescription = "Forecast page to read. " +
		"\"hourbyhour\": hourly data for the next three days (temperature, weather, precipitation chance, " +
		"feels like, wind, humidity, UV index, cloud cover, rain amount). " +
		"\"tenday\": daily data for each of the next 10 days with day and night parts " +
		"(max/min temperature, precipitation chance, humidity, UV index, sunrise/sunset times, wind). " +
		"Defaults to \"hourbyhour\"."
)

func cityName() *tool.Schema {
	return tool.String("Name of one city, optionally with region or country, e.g. \"Paris, France\". Only one city is supported.")
}

// Tools returns the weather capabilities backed by s.
func (s *Service) Tools() []tool.Tool {
	return []tool.Tool{
		tool.New(tool.Declaration{
			Name:        "extract_city_weather",
			Description: extractCityWeatherDescription,
			Parameters: tool.Object(map[string]*tool.Schema{
				"city_name": cityName(),
				"page": {
					Type:        tool.TypeString,
					Description: pageDescription,
					Enum:        []string{string(PageHourByHour), string(PageTenDay)},
					Default:     string(PageHourByHour),
				},
			}, "city_name"),
		}, func(ctx context.Context, req CityWeatherRequest) (string, error) {
			return s.Weather(ctx, req.CityName, Page(req.Page))
		}),

		tool.New(tool.Declaration{
			Name: "add_city_to_favorites",
			Description: "Add a city to the weather.com favorites list of the logged in account. " +
				"Only use this tool if the user asks to add a city to the favorites list. One city per call.",
			Parameters: tool.Object(map[string]*tool.Schema{"city_name": cityName()}, "city_name"),
		}, func(ctx context.Context, req FavoriteRequest) (string, error) {
			return s.AddFavorite(ctx, req.CityName)
		}),

		tool.New(tool.Declaration{
			Name: "remove_city_from_favorites",
			Description: "Remove a city from the weather.com favorites list of the logged in account. " +
				"Only use this tool if the user asks to remove a city from the favorites list. One city per call.",
			Parameters: tool.Object(map[string]*tool.Schema{"city_name": cityName()}, "city_name"),
		}, func(ctx context.Context, req FavoriteRequest) (string, error) {
			return s.RemoveFavorite(ctx, req.CityName)
		}),
	}
}
