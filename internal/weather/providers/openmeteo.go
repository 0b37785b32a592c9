package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/fairweather-app/fairweather/internal/weather"
)

// OpenMeteoProvider implements the weather.Provider interface for Open-Meteo.
// Open-Meteo keys lookups on coordinates, so locations must be geocoded
// before this provider can serve them.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoProvider(client *http.Client) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: "https://api.open-meteo.com/v1/forecast",
		httpCfg: defaultHTTPConfig(client),
		circuit: newCircuit("openmeteo"),
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

const openMeteoCurrentVars = "temperature_2m,relative_humidity_2m,precipitation,snowfall," +
	"weather_code,cloud_cover,surface_pressure,wind_speed_10m,wind_direction_10m,wind_gusts_10m,is_day"

func (p *OpenMeteoProvider) Fetch(ctx context.Context, loc weather.Location) (weather.ProviderReading, error) {
	if loc.Lat == nil || loc.Lon == nil {
		return weather.ProviderReading{}, fmt.Errorf("openmeteo requires latitude and longitude")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", *loc.Lat))
		values.Set("longitude", fmt.Sprintf("%f", *loc.Lon))
		values.Set("current", openMeteoCurrentVars)
		values.Set("hourly", "visibility,soil_moisture_0_to_1cm")
		values.Set("forecast_hours", "1")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	var payload struct {
		Current struct {
			Time             string   `json:"time"`
			Temperature      *float64 `json:"temperature_2m"`
			Humidity         *float64 `json:"relative_humidity_2m"`
			Precipitation    *float64 `json:"precipitation"`
			Snowfall         *float64 `json:"snowfall"` // cm per hour
			WeatherCode      int      `json:"weather_code"`
			CloudCover       *float64 `json:"cloud_cover"`
			Pressure         *float64 `json:"surface_pressure"`
			WindSpeed        *float64 `json:"wind_speed_10m"` // km/h
			WindDirection    *float64 `json:"wind_direction_10m"`
			WindGusts        *float64 `json:"wind_gusts_10m"` // km/h
			IsDay            *int     `json:"is_day"`
		} `json:"current"`
		Hourly struct {
			Visibility   []float64 `json:"visibility"` // meters
			SoilMoisture []float64 `json:"soil_moisture_0_to_1cm"`
		} `json:"hourly"`
	}

	if err := fetchJSON(ctx, p.httpCfg, p.circuit, buildRequest, &payload); err != nil {
		return weather.ProviderReading{}, err
	}

	ts := parseOpenMeteoTime(payload.Current.Time)

	obs := weather.Observation{
		Temperature:      payload.Current.Temperature,
		Humidity:         payload.Current.Humidity,
		Precipitation:    payload.Current.Precipitation,
		CloudCover:       payload.Current.CloudCover,
		Pressure:         payload.Current.Pressure,
		WindSpeed:        payload.Current.WindSpeed,
		Gust:             payload.Current.WindGusts,
		WindDirectionDeg: payload.Current.WindDirection,
	}

	if payload.Current.Snowfall != nil {
		// Open-Meteo reports snowfall in cm/h; clauses use mm/h.
		obs.SnowfallRate = weather.Float(*payload.Current.Snowfall * 10)
	}
	if payload.Current.IsDay != nil {
		obs.IsNight = weather.Bool(*payload.Current.IsDay == 0)
	}
	if len(payload.Hourly.Visibility) > 0 {
		obs.Visibility = weather.Float(payload.Hourly.Visibility[0])
	}
	if len(payload.Hourly.SoilMoisture) > 0 {
		obs.SoilMoisture = weather.Float(payload.Hourly.SoilMoisture[0])
	}

	return weather.ProviderReading{
		ProviderName: p.name,
		Timestamp:    ts,
		Observation:  obs,
		Units: weather.Units{
			Speed:      weather.SpeedKMH,
			Visibility: weather.DistMeters,
		},
		Condition: mapOpenMeteoCondition(payload.Current.WeatherCode),
	}, nil
}

// FetchForecast returns one reading per day from Open-Meteo's daily forecast.
func (p *OpenMeteoProvider) FetchForecast(ctx context.Context, loc weather.Location, days int) ([]weather.ProviderReading, error) {
	if loc.Lat == nil || loc.Lon == nil {
		return nil, fmt.Errorf("openmeteo requires latitude and longitude")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", *loc.Lat))
		values.Set("longitude", fmt.Sprintf("%f", *loc.Lon))
		values.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum,"+
			"snowfall_sum,wind_speed_10m_max,wind_gusts_10m_max,wind_direction_10m_dominant,weather_code")
		values.Set("forecast_days", fmt.Sprintf("%d", days))

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	var payload struct {
		Daily struct {
			Time          []string  `json:"time"`
			TempMax       []float64 `json:"temperature_2m_max"`
			TempMin       []float64 `json:"temperature_2m_min"`
			PrecipSum     []float64 `json:"precipitation_sum"`
			SnowfallSum   []float64 `json:"snowfall_sum"`
			WindSpeedMax  []float64 `json:"wind_speed_10m_max"`
			WindGustsMax  []float64 `json:"wind_gusts_10m_max"`
			WindDirection []float64 `json:"wind_direction_10m_dominant"`
			WeatherCode   []int     `json:"weather_code"`
		} `json:"daily"`
	}

	if err := fetchJSON(ctx, p.httpCfg, p.circuit, buildRequest, &payload); err != nil {
		return nil, err
	}

	readings := make([]weather.ProviderReading, 0, len(payload.Daily.Time))
	for i, day := range payload.Daily.Time {
		ts, err := time.Parse("2006-01-02", day)
		if err != nil {
			continue
		}

		obs := weather.Observation{}
		if i < len(payload.Daily.TempMax) && i < len(payload.Daily.TempMin) {
			obs.Temperature = weather.Float((payload.Daily.TempMax[i] + payload.Daily.TempMin[i]) / 2)
		}
		if i < len(payload.Daily.PrecipSum) {
			obs.Precipitation = weather.Float(payload.Daily.PrecipSum[i])
		}
		if i < len(payload.Daily.SnowfallSum) {
			obs.SnowfallRate = weather.Float(payload.Daily.SnowfallSum[i] * 10 / 24)
		}
		if i < len(payload.Daily.WindSpeedMax) {
			obs.WindSpeed = weather.Float(payload.Daily.WindSpeedMax[i])
		}
		if i < len(payload.Daily.WindGustsMax) {
			obs.Gust = weather.Float(payload.Daily.WindGustsMax[i])
		}
		if i < len(payload.Daily.WindDirection) {
			obs.WindDirectionDeg = weather.Float(payload.Daily.WindDirection[i])
		}

		cond := weather.ConditionUnknown
		if i < len(payload.Daily.WeatherCode) {
			cond = mapOpenMeteoCondition(payload.Daily.WeatherCode[i])
		}

		readings = append(readings, weather.ProviderReading{
			ProviderName: p.name,
			Timestamp:    ts.UTC(),
			Observation:  obs,
			Units:        weather.Units{Speed: weather.SpeedKMH},
			Condition:    cond,
		})
	}

	return readings, nil
}

func parseOpenMeteoTime(s string) time.Time {
	// Open-Meteo returns minute-resolution ISO times without a zone.
	if ts, err := time.Parse("2006-01-02T15:04", s); err == nil {
		return ts.UTC()
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts.UTC()
	}
	return time.Now().UTC()
}

func mapOpenMeteoCondition(code int) weather.Condition {
	// Mapping based on Open-Meteo weather codes (simplified).
	switch {
	case code == 0:
		return weather.ConditionClear
	case code >= 1 && code <= 3:
		return weather.ConditionCloudy
	case code >= 45 && code <= 48:
		return weather.ConditionMist
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82):
		return weather.ConditionRain
	case code >= 71 && code <= 77:
		return weather.ConditionSnow
	case code >= 95:
		return weather.ConditionStorm
	default:
		return weather.ConditionUnknown
	}
}
