package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/fairweather-app/fairweather/internal/weather"
)

// WeatherAPIProvider implements the weather.Provider interface for WeatherAPI.com.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewWeatherAPIProvider(client *http.Client, apiKey string) *WeatherAPIProvider {
	return &WeatherAPIProvider{
		name:    "weatherapi",
		apiKey:  apiKey,
		baseURL: "https://api.weatherapi.com/v1/current.json",
		httpCfg: defaultHTTPConfig(client),
		circuit: newCircuit("weatherapi"),
	}
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

func (p *WeatherAPIProvider) Fetch(ctx context.Context, loc weather.Location) (weather.ProviderReading, error) {
	if p.apiKey == "" {
		return weather.ProviderReading{}, fmt.Errorf("weatherapi api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("key", p.apiKey)

		if loc.Lat != nil && loc.Lon != nil {
			values.Set("q", fmt.Sprintf("%f,%f", *loc.Lat, *loc.Lon))
		} else {
			values.Set("q", loc.City)
		}

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	var payload struct {
		Current struct {
			LastUpdatedEpoch int64    `json:"last_updated_epoch"`
			TempC            *float64 `json:"temp_c"`
			WindKPH          *float64 `json:"wind_kph"`
			GustKPH          *float64 `json:"gust_kph"`
			WindDegree       *float64 `json:"wind_degree"`
			PressureMb       *float64 `json:"pressure_mb"`
			PrecipMm         *float64 `json:"precip_mm"`
			Humidity         *float64 `json:"humidity"`
			Cloud            *float64 `json:"cloud"`
			VisKM            *float64 `json:"vis_km"`
			UV               *float64 `json:"uv"`
			IsDay            *int     `json:"is_day"`
			Condition        struct {
				Text string `json:"text"`
			} `json:"condition"`
		} `json:"current"`
	}

	if err := fetchJSON(ctx, p.httpCfg, p.circuit, buildRequest, &payload); err != nil {
		return weather.ProviderReading{}, err
	}

	ts := time.Unix(payload.Current.LastUpdatedEpoch, 0).UTC()
	if payload.Current.LastUpdatedEpoch == 0 {
		ts = time.Now().UTC()
	}

	obs := weather.Observation{
		Temperature:      payload.Current.TempC,
		WindSpeed:        payload.Current.WindKPH,
		Gust:             payload.Current.GustKPH,
		WindDirectionDeg: payload.Current.WindDegree,
		Pressure:         payload.Current.PressureMb,
		Precipitation:    payload.Current.PrecipMm,
		Humidity:         payload.Current.Humidity,
		CloudCover:       payload.Current.Cloud,
		Visibility:       payload.Current.VisKM,
		UVIndex:          payload.Current.UV,
	}
	if payload.Current.IsDay != nil {
		obs.IsNight = weather.Bool(*payload.Current.IsDay == 0)
	}

	return weather.ProviderReading{
		ProviderName: p.name,
		Timestamp:    ts,
		Observation:  obs,
		Units: weather.Units{
			Speed: weather.SpeedKMH,
		},
		Condition: mapWeatherAPICondition(payload.Current.Condition.Text),
	}, nil
}

func mapWeatherAPICondition(text string) weather.Condition {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "thunder"):
		return weather.ConditionStorm
	case strings.Contains(t, "snow") || strings.Contains(t, "blizzard") || strings.Contains(t, "ice"):
		return weather.ConditionSnow
	case strings.Contains(t, "rain") || strings.Contains(t, "drizzle") || strings.Contains(t, "shower"):
		return weather.ConditionRain
	case strings.Contains(t, "mist") || strings.Contains(t, "fog"):
		return weather.ConditionMist
	case strings.Contains(t, "cloud") || strings.Contains(t, "overcast"):
		return weather.ConditionCloudy
	case strings.Contains(t, "clear") || strings.Contains(t, "sunny"):
		return weather.ConditionClear
	default:
		return weather.ConditionUnknown
	}
}
