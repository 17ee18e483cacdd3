package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

type geocodingResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Name      string  `json:"name"`
		Country   string  `json:"country"`
	} `json:"results"`
}

type forecastResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WindSpeed   float64 `json:"windspeed"`
		WeatherCode int     `json:"weathercode"`
		Time        string  `json:"time"`
	} `json:"current_weather"`
}

// WMO weather interpretation codes used by open-meteo
var weatherDescriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	56: "Light freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Light freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snow",
	73: "Moderate snow",
	75: "Heavy snow",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with hail",
	99: "Thunderstorm with heavy hail",
}

// HandleWeather resolves a city through the open-meteo geocoder and reports
// its current conditions. Defaults to Hyderabad when no city is given.
func (c *Commands) HandleWeather(ctx context.Context, req Request) error {
	city := req.Args
	if city == "" {
		city = "Hyderabad"
	}

	var geo geocodingResponse
	err := c.web.GetJSON(ctx, fmt.Sprintf("%s?name=%s", c.endpoints.Geocoding, url.QueryEscape(city)), nil, &geo)
	c.countUpstream("open_meteo_geocoding", err)
	if err != nil {
		return c.reply(ctx, req, "Failed to fetch weather data.")
	}
	if len(geo.Results) == 0 {
		return c.reply(ctx, req, "Location not found, try searching up ohio")
	}
	place := geo.Results[0]

	var forecast forecastResponse
	err = c.web.GetJSON(ctx, fmt.Sprintf(
		"%s?latitude=%f&longitude=%f&current_weather=true&hourly=temperature_2m,weathercode",
		c.endpoints.Forecast, place.Latitude, place.Longitude), nil, &forecast)
	c.countUpstream("open_meteo_forecast", err)
	if err != nil {
		return c.reply(ctx, req, "Failed to fetch weather data.")
	}

	current := forecast.CurrentWeather
	desc, ok := weatherDescriptions[current.WeatherCode]
	if !ok {
		desc = "Unknown weather"
	}

	observedAt := current.Time
	if t, err := time.Parse("2006-01-02T15:04", current.Time); err == nil {
		observedAt = t.Format("15:04:05")
	}

	return c.reply(ctx, req, fmt.Sprintf(
		"🌦️ *Weather in %s, %s:*\n"+
			"Condition: %s\n"+
			"Temperature: %g°C\n"+
			"Wind: %g km/h\n"+
			"Time: %s",
		place.Name, place.Country, desc, current.Temperature, current.WindSpeed, observedAt))
}
