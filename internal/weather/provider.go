package weather

import (
	"context"
	"time"
)

// ProviderReading represents a single provider's reading that can be
// aggregated into a Snapshot. Observations arrive in the provider's native
// units, described by Units, and are normalized during aggregation.
type ProviderReading struct {
	ProviderName string
	Timestamp    time.Time

	Observation Observation
	Units       Units
	Condition   Condition
}

// Provider abstracts a weather data source (e.g. Open-Meteo, OpenWeatherMap, WeatherAPI).
type Provider interface {
	Name() string
	Fetch(ctx context.Context, loc Location) (ProviderReading, error)
}

// ForecastProvider is implemented by providers that can return multi-day
// forecasts, one or more readings per day.
type ForecastProvider interface {
	Provider
	FetchForecast(ctx context.Context, loc Location, days int) ([]ProviderReading, error)
}

// Store is the contract the in-memory store (and any future persistent store) must satisfy.
type Store interface {
	SaveSnapshot(loc Location, snapshot Snapshot)
	GetLatest(loc Location) (Snapshot, error)
	GetRange(loc Location, from, to time.Time) ([]Snapshot, error)
}
