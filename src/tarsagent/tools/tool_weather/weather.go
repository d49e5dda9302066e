package tool_weather

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Praneeth-Gandodi/Tars/src/agent"
	"github.com/Praneeth-Gandodi/Tars/src/tarsagent/toolsutil"
)

// Tool name constant
const Name = "get_weather"

const weatherPrompt = `Retrieves the current weather for a city using the Open-Meteo service.

WHEN TO USE THIS TOOL:
- Use when the user asks for current weather conditions in a named place
- Provides temperature, wind speed, and a weather code with a timestamp

HOW TO USE:
- Provide the city name in the place parameter

LIMITATIONS:
- Only current conditions are returned, not forecasts
- Ambiguous place names resolve to the best geocoding match`

// Overridable for tests.
var (
	geocodeURL  = "https://geocoding-api.open-meteo.com/v1/search"
	forecastURL = "https://api.open-meteo.com/v1/forecast"
)

// WeatherInput represents the parameters for get_weather
type WeatherInput struct {
	Place string `json:"place" required:"true" description:"The name of the city to fetch weather data for"`
}

// WeatherOutput represents the current conditions for the resolved place
type WeatherOutput struct {
	Place       string  `json:"place" description:"The resolved place name"`
	Temperature float64 `json:"temperature" description:"Current temperature in Celsius"`
	Windspeed   float64 `json:"windspeed" description:"Current wind speed in km/h"`
	WeatherCode int     `json:"weathercode" description:"WMO weather interpretation code"`
	Time        string  `json:"time" description:"Observation timestamp"`
}

type geocodeResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

type forecastResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		Windspeed   float64 `json:"windspeed"`
		WeatherCode int     `json:"weathercode"`
		Time        string  `json:"time"`
	} `json:"current_weather"`
}

// Tool returns the get_weather tool definition
func Tool() (agent.Tool, error) {
	return agent.NewGenericTool(Name, weatherPrompt, weatherHandler)
}

func weatherHandler(ctx context.Context, input WeatherInput) (WeatherOutput, error) {
	if input.Place == "" {
		return WeatherOutput{}, fmt.Errorf("place parameter is required")
	}

	query := url.Values{}
	query.Set("name", input.Place)
	query.Set("count", "1")

	var geo geocodeResponse
	if err := toolsutil.FetchJSON(ctx, geocodeURL+"?"+query.Encode(), &geo); err != nil {
		return WeatherOutput{}, fmt.Errorf("failed to resolve place: %v", err)
	}
	if len(geo.Results) == 0 {
		return WeatherOutput{}, fmt.Errorf("no location found for %q", input.Place)
	}
	loc := geo.Results[0]

	query = url.Values{}
	query.Set("latitude", fmt.Sprintf("%g", loc.Latitude))
	query.Set("longitude", fmt.Sprintf("%g", loc.Longitude))
	query.Set("current_weather", "true")

	var forecast forecastResponse
	if err := toolsutil.FetchJSON(ctx, forecastURL+"?"+query.Encode(), &forecast); err != nil {
		return WeatherOutput{}, fmt.Errorf("failed to fetch weather: %v", err)
	}

	toolsutil.GetLogger().Info("fetched weather", "place", loc.Name)

	return WeatherOutput{
		Place:       loc.Name,
		Temperature: forecast.CurrentWeather.Temperature,
		Windspeed:   forecast.CurrentWeather.Windspeed,
		WeatherCode: forecast.CurrentWeather.WeatherCode,
		Time:        forecast.CurrentWeather.Time,
	}, nil
}
