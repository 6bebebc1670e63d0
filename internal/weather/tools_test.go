package weather

import (
	"context"
	"testing"

	"github.com/Cyclone1070/weatheragent/internal/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toolByName(t *testing.T, tools []tool.Tool, name string) tool.Tool {
	t.Helper()
	for _, tl := range tools {
		if tl.Declaration().Name == name {
			return tl
		}
	}
	t.Fatalf("tool %q not found", name)
	return nil
}

func TestTools_Declarations(t *testing.T) {
	tools := newTestService(parisBrowser(), nil, nil).Tools()
	require.Len(t, tools, 3)

	decl := toolByName(t, tools, "extract_city_weather").Declaration()
	assert.Equal(t, []string{"city_name"}, decl.Parameters.Required)
	assert.Equal(t, []string{"hourbyhour", "tenday"}, decl.Parameters.Properties["page"].Enum)

	toolByName(t, tools, "add_city_to_favorites")
	toolByName(t, tools, "remove_city_from_favorites")
}

func TestTools_DescriptionsGuideTheModel(t *testing.T) {
	tools := newTestService(parisBrowser(), nil, nil).Tools()

	decl := toolByName(t, tools, "extract_city_weather").Declaration()
	assert.Contains(t, decl.Description, "Only use this tool if the user asks for weather information for a specific city")
	assert.Contains(t, decl.Description, "Only one city is supported")
	page := decl.Parameters.Properties["page"].Description
	assert.Contains(t, page, "next three days")
	assert.Contains(t, page, "next 10 days")
	assert.Contains(t, page, "sunrise/sunset", "tenday lists its daily fields")

	add := toolByName(t, tools, "add_city_to_favorites").Declaration()
	assert.Contains(t, add.Description, "Only use this tool if the user asks to add a city")
	remove := toolByName(t, tools, "remove_city_from_favorites").Declaration()
	assert.Contains(t, remove.Description, "Only use this tool if the user asks to remove a city")
}

func TestExtractCityWeather_DefaultsToHourByHour(t *testing.T) {
	b := parisBrowser()
	tl := toolByName(t, newTestService(b, choosing(2, nil), nil).Tools(), "extract_city_weather")

	out, err := tl.Invoke(context.Background(), map[string]any{"city_name": "Paris"})
	require.NoError(t, err)
	assert.Equal(t, "## hourbyhour fr-id", out)
	assert.Equal(t, []Page{PageHourByHour}, b.pages)
}

func TestExtractCityWeather_RejectsUnknownPage(t *testing.T) {
	b := parisBrowser()
	tl := toolByName(t, newTestService(b, nil, nil).Tools(), "extract_city_weather")

	_, err := tl.Invoke(context.Background(), map[string]any{"city_name": "Paris", "page": "monthly"})
	var ae *tool.ArgumentError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "extract_city_weather", ae.Tool)
	assert.Empty(t, b.searches)
}

func TestExtractCityWeather_RejectsBlankCity(t *testing.T) {
	tl := toolByName(t, newTestService(parisBrowser(), nil, nil).Tools(), "extract_city_weather")

	_, err := tl.Invoke(context.Background(), map[string]any{"city_name": "   "})
	var ae *tool.ArgumentError
	assert.ErrorAs(t, err, &ae)
}

func TestFavoriteTools(t *testing.T) {
	b := parisBrowser()
	tools := newTestService(b, choosing(2, nil), nil).Tools()

	out, err := toolByName(t, tools, "add_city_to_favorites").Invoke(context.Background(), map[string]any{"city_name": "Paris"})
	require.NoError(t, err)
	assert.Equal(t, "Added Paris, Île-de-France, France to favorites.", out)

	out, err = toolByName(t, tools, "remove_city_from_favorites").Invoke(context.Background(), map[string]any{"city_name": "Paris"})
	require.NoError(t, err)
	assert.Equal(t, "Paris, Île-de-France, France is not in favorites.", out)
}
