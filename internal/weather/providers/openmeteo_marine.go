package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"github.com/fairweather-app/fairweather/internal/weather"
)

// OpenMeteoMarineProvider fetches sea-state data (wave height, swell period,
// sea-surface temperature) from the Open-Meteo marine API. It contributes
// only marine fields; the aggregator merges them with atmospheric readings
// from the other providers.
type OpenMeteoMarineProvider struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoMarineProvider(client *http.Client) *OpenMeteoMarineProvider {
	return &OpenMeteoMarineProvider{
		name:    "openmeteo-marine",
		baseURL: "https://marine-api.open-meteo.com/v1/marine",
		httpCfg: defaultHTTPConfig(client),
		circuit: newCircuit("openmeteo-marine"),
	}
}

func (p *OpenMeteoMarineProvider) Name() string {
	return p.name
}

func (p *OpenMeteoMarineProvider) Fetch(ctx context.Context, loc weather.Location) (weather.ProviderReading, error) {
	if loc.Lat == nil || loc.Lon == nil {
		return weather.ProviderReading{}, fmt.Errorf("openmeteo-marine requires latitude and longitude")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", *loc.Lat))
		values.Set("longitude", fmt.Sprintf("%f", *loc.Lon))
		values.Set("current", "wave_height,swell_wave_period,sea_surface_temperature")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	var payload struct {
		Current struct {
			Time            string   `json:"time"`
			WaveHeight      *float64 `json:"wave_height"` // meters
			SwellPeriod     *float64 `json:"swell_wave_period"`
			SeaSurfaceTempC *float64 `json:"sea_surface_temperature"`
		} `json:"current"`
	}

	if err := fetchJSON(ctx, p.httpCfg, p.circuit, buildRequest, &payload); err != nil {
		return weather.ProviderReading{}, err
	}

	return weather.ProviderReading{
		ProviderName: p.name,
		Timestamp:    parseOpenMeteoTime(payload.Current.Time),
		Observation: weather.Observation{
			WaveHeight:       payload.Current.WaveHeight,
			SwellPeriod:      payload.Current.SwellPeriod,
			WaterTemperature: payload.Current.SeaSurfaceTempC,
		},
		Condition: weather.ConditionUnknown,
	}, nil
}
