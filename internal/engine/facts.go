package engine

import (
	"math"
	"sort"
	"strconv"

	"github.com/fairweather-app/fairweather/internal/weather"
)

// Fact is a single named, normalized value available to predicates, with
// provenance back to the raw observation field it came from.
type Fact struct {
	Num    float64
	Str    string
	IsNum  bool
	Source string
}

// NumFact builds a numeric fact.
func NumFact(v float64, source string) Fact {
	return Fact{Num: v, IsNum: true, Source: source}
}

// StrFact builds a categorical fact.
func StrFact(v, source string) Fact {
	return Fact{Str: v, Source: source}
}

// FactSnapshot is the resolved, immutable set of facts for one scoring call.
// It is never mutated after construction.
type FactSnapshot struct {
	facts map[string]Fact
}

// NewFactSnapshot copies the given facts into an immutable snapshot.
func NewFactSnapshot(facts map[string]Fact) FactSnapshot {
	m := make(map[string]Fact, len(facts))
	for k, v := range facts {
		m[k] = v
	}
	return FactSnapshot{facts: m}
}

// Lookup returns the fact for a key and whether it is present.
func (s FactSnapshot) Lookup(key string) (Fact, bool) {
	f, ok := s.facts[key]
	return f, ok
}

// Keys returns the sorted set of fact keys present, for explainability and tests.
func (s FactSnapshot) Keys() []string {
	keys := make([]string, 0, len(s.facts))
	for k := range s.facts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Wind-relative classification of wind direction against shore orientation.
const (
	WindOnshore      = "onshore"
	WindSideOnshore  = "side-onshore"
	WindCrossShore   = "cross-shore"
	WindSideOffshore = "side-offshore"
	WindOffshore     = "offshore"
)

// EvalContext carries evaluation-scoped inputs that are not part of the raw
// observation, such as the shore orientation of the location being scored.
type EvalContext struct {
	// BeachOrientationDeg is the compass direction the shore faces (toward
	// the sea). Nil means unknown/inland, so the windRelative fact is omitted
	// and directional predicates evaluate as unknown.
	BeachOrientationDeg *float64
}

// ResolveFacts turns a raw observation into the flat fact snapshot consumed
// by predicates. Speeds are normalized to m/s, temperatures to °C, wave
// height to meters and visibility to km according to the source units.
// Observation fields that are absent are omitted from the snapshot, never
// defaulted to zero.
func ResolveFacts(obs weather.Observation, units weather.Units, evalCtx EvalContext) FactSnapshot {
	obs = weather.Normalize(obs, units)

	facts := make(map[string]Fact)

	addNum := func(key string, v *float64, source string) {
		if v == nil {
			return
		}
		facts[key] = NumFact(*v, source)
	}

	addNum("temperature", obs.Temperature, "temperature")
	// Clause data uses both spellings for air temperature.
	addNum("airTemperature", obs.Temperature, "temperature")
	addNum("waterTemperature", obs.WaterTemperature, "waterTemperature")
	addNum("humidity", obs.Humidity, "humidity")
	addNum("pressure", obs.Pressure, "pressure")
	addNum("windSpeed", obs.WindSpeed, "windSpeed")
	addNum("gust", obs.Gust, "gust")
	addNum("windDirection", obs.WindDirectionDeg, "windDirectionDeg")
	addNum("waveHeight", obs.WaveHeight, "waveHeight")
	addNum("swellPeriod", obs.SwellPeriod, "swellPeriod")
	addNum("visibility", obs.Visibility, "visibility")
	addNum("precipitation", obs.Precipitation, "precipitation")
	addNum("cloudCover", obs.CloudCover, "cloudCover")
	addNum("uvIndex", obs.UVIndex, "uvIndex")
	addNum("soilMoisture", obs.SoilMoisture, "soilMoisture")
	addNum("snowfallRateMmH", obs.SnowfallRate, "snowfallRate")
	addNum("snowDepthCm", obs.SnowDepth, "snowDepth")

	if obs.IsNight != nil {
		facts["isNight"] = StrFact(strconv.FormatBool(*obs.IsNight), "isNight")
	}

	if obs.WindDirectionDeg != nil && evalCtx.BeachOrientationDeg != nil {
		rel := ClassifyWindRelative(*obs.WindDirectionDeg, *evalCtx.BeachOrientationDeg)
		facts["windRelative"] = StrFact(rel, "windDirectionDeg+beachOrientation")
	}

	return FactSnapshot{facts: facts}
}

// ClassifyWindRelative classifies a meteorological wind direction ("from",
// degrees) against the direction a shore faces. An onshore wind blows from
// the sea toward land, so it comes from roughly the direction the shore
// faces. Band boundaries: 0–45° onshore, 45–75° side-onshore, 75–105°
// cross-shore, 105–135° side-offshore, 135–180° offshore.
func ClassifyWindRelative(windFromDeg, shoreFacingDeg float64) string {
	diff := math.Abs(math.Mod(windFromDeg, 360) - math.Mod(shoreFacingDeg, 360))
	if diff > 180 {
		diff = 360 - diff
	}

	switch {
	case diff <= 45:
		return WindOnshore
	case diff <= 75:
		return WindSideOnshore
	case diff < 105:
		return WindCrossShore
	case diff < 135:
		return WindSideOffshore
	default:
		return WindOffshore
	}
}
