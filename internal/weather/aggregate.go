package weather

import (
	"time"

	"github.com/google/uuid"
)

// AggregateReadings combines multiple provider readings into a single Snapshot.
// Each reading is first normalized to canonical units. Numeric fields are
// averaged over the readings that actually report them; a field missing from
// every reading stays missing in the snapshot. Conditions are selected by
// majority (or first if tied), and the newest reading timestamp wins.
func AggregateReadings(loc Location, readings []ProviderReading) Snapshot {
	if len(readings) == 0 {
		return Snapshot{
			ID:        uuid.NewString(),
			Location:  loc,
			Timestamp: time.Now().UTC(),
			Condition: ConditionUnknown,
		}
	}

	type acc struct {
		sum float64
		n   int
	}
	sums := make(map[string]*acc)

	add := func(key string, v *float64) {
		if v == nil {
			return
		}
		a, ok := sums[key]
		if !ok {
			a = &acc{}
			sums[key] = a
		}
		a.sum += *v
		a.n++
	}

	conditionCounts := make(map[Condition]int)
	providers := make([]ProviderContribution, 0, len(readings))
	var newestTS time.Time
	var night *bool

	for _, r := range readings {
		obs := Normalize(r.Observation, r.Units)

		add("temperature", obs.Temperature)
		add("waterTemperature", obs.WaterTemperature)
		add("humidity", obs.Humidity)
		add("pressure", obs.Pressure)
		add("windSpeed", obs.WindSpeed)
		add("gust", obs.Gust)
		add("waveHeight", obs.WaveHeight)
		add("swellPeriod", obs.SwellPeriod)
		add("visibility", obs.Visibility)
		add("precipitation", obs.Precipitation)
		add("cloudCover", obs.CloudCover)
		add("uvIndex", obs.UVIndex)
		add("soilMoisture", obs.SoilMoisture)
		add("snowfallRate", obs.SnowfallRate)
		add("snowDepth", obs.SnowDepth)

		// Wind direction is circular; averaging 350° and 10° must not yield
		// 180°, so vector-average it separately below via the accumulators.
		if obs.WindDirectionDeg != nil {
			add("windDirSin", Float(sinDeg(*obs.WindDirectionDeg)))
			add("windDirCos", Float(cosDeg(*obs.WindDirectionDeg)))
		}

		if obs.IsNight != nil {
			night = obs.IsNight
		}

		conditionCounts[r.Condition]++

		if r.Timestamp.After(newestTS) {
			newestTS = r.Timestamp
		}

		providers = append(providers, ProviderContribution{
			ProviderName: r.ProviderName,
			Timestamp:    r.Timestamp,
		})
	}

	mean := func(key string) *float64 {
		a, ok := sums[key]
		if !ok || a.n == 0 {
			return nil
		}
		m := a.sum / float64(a.n)
		return &m
	}

	obs := Observation{
		Temperature:      mean("temperature"),
		WaterTemperature: mean("waterTemperature"),
		Humidity:         mean("humidity"),
		Pressure:         mean("pressure"),
		WindSpeed:        mean("windSpeed"),
		Gust:             mean("gust"),
		WaveHeight:       mean("waveHeight"),
		SwellPeriod:      mean("swellPeriod"),
		Visibility:       mean("visibility"),
		Precipitation:    mean("precipitation"),
		CloudCover:       mean("cloudCover"),
		UVIndex:          mean("uvIndex"),
		SoilMoisture:     mean("soilMoisture"),
		SnowfallRate:     mean("snowfallRate"),
		SnowDepth:        mean("snowDepth"),
		IsNight:          night,
	}

	if s, c := mean("windDirSin"), mean("windDirCos"); s != nil && c != nil {
		obs.WindDirectionDeg = Float(atan2Deg(*s, *c))
	}

	// Pick majority condition.
	bestCond := ConditionUnknown
	bestCount := 0
	for cond, count := range conditionCounts {
		if count > bestCount {
			bestCount = count
			bestCond = cond
		}
	}

	if newestTS.IsZero() {
		newestTS = time.Now().UTC()
	}

	return Snapshot{
		ID:          uuid.NewString(),
		Location:    loc,
		Timestamp:   newestTS,
		Observation: obs,
		Condition:   bestCond,
		Providers:   providers,
	}
}
