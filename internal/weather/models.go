package weather

import (
	"time"
)

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionUnknown Condition = "unknown"
	ConditionClear   Condition = "clear"
	ConditionCloudy  Condition = "cloudy"
	ConditionRain    Condition = "rain"
	ConditionSnow    Condition = "snow"
	ConditionStorm   Condition = "storm"
	ConditionMist    Condition = "mist"
)

// SpeedUnit names the unit a provider reports speeds in.
type SpeedUnit string

const (
	SpeedMS  SpeedUnit = "ms"
	SpeedKMH SpeedUnit = "kmh"
	SpeedKN  SpeedUnit = "kn"
	SpeedMPH SpeedUnit = "mph"
)

// TempUnit names the unit a provider reports temperatures in.
type TempUnit string

const (
	TempCelsius    TempUnit = "c"
	TempFahrenheit TempUnit = "f"
)

// DistanceUnit names the unit a provider reports heights/distances in.
type DistanceUnit string

const (
	DistMeters DistanceUnit = "m"
	DistFeet   DistanceUnit = "ft"
	DistKM     DistanceUnit = "km"
)

// Units describes the source units of an Observation so readings can be
// normalized. The zero value means canonical units (m/s, °C, meters, km).
type Units struct {
	Speed       SpeedUnit    `json:"speed,omitempty"`
	Temperature TempUnit     `json:"temperature,omitempty"`
	WaveHeight  DistanceUnit `json:"waveHeight,omitempty"`
	Visibility  DistanceUnit `json:"visibility,omitempty"`
}

// Location represents a logical place for which we track weather.
// City/Country must be provided; Lat/Lon may be filled by geocoding.
// ShoreFacingDeg is the compass direction the shore faces, for coastal
// locations; nil means inland, so wind-relative facts cannot be derived.
type Location struct {
	City           string   `json:"city"`
	Country        string   `json:"country"`
	Lat            *float64 `json:"lat,omitempty"`
	Lon            *float64 `json:"lon,omitempty"`
	ShoreFacingDeg *float64 `json:"shoreFacingDeg,omitempty"`
}

// Key returns a canonical string key for indexing this location in stores.
func (l Location) Key() string {
	return l.City + ":" + l.Country
}

// Observation holds one set of weather/marine measurements. Every field is
// optional: nil means the source did not report it, and downstream predicate
// evaluation treats it as unknown rather than zero.
type Observation struct {
	Temperature      *float64 `json:"temperature,omitempty"`      // air, °C
	WaterTemperature *float64 `json:"waterTemperature,omitempty"` // °C
	Humidity         *float64 `json:"humidity,omitempty"`         // percent
	Pressure         *float64 `json:"pressure,omitempty"`         // hPa
	WindSpeed        *float64 `json:"windSpeed,omitempty"`        // m/s
	Gust             *float64 `json:"gust,omitempty"`             // m/s
	WindDirectionDeg *float64 `json:"windDirectionDeg,omitempty"` // meteorological "from"
	WaveHeight       *float64 `json:"waveHeight,omitempty"`       // meters
	SwellPeriod      *float64 `json:"swellPeriod,omitempty"`      // seconds
	Visibility       *float64 `json:"visibility,omitempty"`       // km
	Precipitation    *float64 `json:"precipitation,omitempty"`    // mm
	CloudCover       *float64 `json:"cloudCover,omitempty"`       // percent
	UVIndex          *float64 `json:"uvIndex,omitempty"`
	SoilMoisture     *float64 `json:"soilMoisture,omitempty"` // m³/m³
	SnowfallRate     *float64 `json:"snowfallRateMmH,omitempty"`
	SnowDepth        *float64 `json:"snowDepthCm,omitempty"`
	IsNight          *bool    `json:"isNight,omitempty"`
}

// Snapshot is the normalized, aggregated weather view at a point in time.
type Snapshot struct {
	ID          string      `json:"id"`
	Location    Location    `json:"location"`
	Timestamp   time.Time   `json:"timestamp"` // always UTC
	Observation Observation `json:"observation"`
	Condition   Condition   `json:"condition"`

	// Providers contributing to this snapshot.
	Providers []ProviderContribution `json:"providers,omitempty"`
}

// Forecast represents a multi-day forecast as a slice of aggregated
// snapshots, one per day, ordered by Timestamp ascending.
type Forecast []Snapshot

// ProviderContribution describes data coming from a single provider used in aggregation.
type ProviderContribution struct {
	ProviderName string    `json:"provider"`
	Timestamp    time.Time `json:"timestamp"`
}

// Float is a convenience for building optional observation fields.
func Float(v float64) *float64 { return &v }

// Bool is a convenience for building optional observation fields.
func Bool(v bool) *bool { return &v }
