package engine

import (
	"reflect"
	"testing"

	"github.com/fairweather-app/fairweather/internal/weather"
)

func TestResolveFactsNormalizesUnits(t *testing.T) {
	obs := weather.Observation{
		Temperature: weather.Float(68), // °F
		WindSpeed:   weather.Float(36), // km/h
		Gust:        weather.Float(72), // km/h
		WaveHeight:  weather.Float(6),  // feet
		Visibility:  weather.Float(12000), // meters
	}
	units := weather.Units{
		Speed:       weather.SpeedKMH,
		Temperature: weather.TempFahrenheit,
		WaveHeight:  weather.DistFeet,
		Visibility:  weather.DistMeters,
	}

	facts := ResolveFacts(obs, units, EvalContext{})

	checks := []struct {
		key  string
		want float64
	}{
		{"temperature", 20},
		{"windSpeed", 10},
		{"gust", 20},
		{"waveHeight", 1.8288},
		{"visibility", 12},
	}

	for _, c := range checks {
		f, ok := facts.Lookup(c.key)
		if !ok {
			t.Fatalf("fact %s missing", c.key)
		}
		if !f.IsNum {
			t.Fatalf("fact %s not numeric", c.key)
		}
		if diff := f.Num - c.want; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("fact %s = %v, want %v", c.key, f.Num, c.want)
		}
	}
}

func TestResolveFactsOmitsMissingFields(t *testing.T) {
	obs := weather.Observation{
		Temperature: weather.Float(15),
	}

	facts := ResolveFacts(obs, weather.Units{}, EvalContext{})

	if _, ok := facts.Lookup("windSpeed"); ok {
		t.Fatal("windSpeed should be absent, not defaulted")
	}
	if _, ok := facts.Lookup("windRelative"); ok {
		t.Fatal("windRelative should be absent without wind direction and orientation")
	}

	want := []string{"airTemperature", "temperature"}
	if got := facts.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
}

func TestResolveFactsAirTemperatureAlias(t *testing.T) {
	facts := ResolveFacts(weather.Observation{Temperature: weather.Float(20)}, weather.Units{}, EvalContext{})

	air, ok := facts.Lookup("airTemperature")
	if !ok || air.Num != 20 {
		t.Fatalf("airTemperature = %+v (present %v), want 20", air, ok)
	}
	temp, ok := facts.Lookup("temperature")
	if !ok || temp.Num != 20 {
		t.Fatalf("temperature = %+v (present %v), want 20", temp, ok)
	}
}

func TestResolveFactsWindRelative(t *testing.T) {
	shore := weather.Float(270) // west-facing beach

	obs := weather.Observation{
		WindDirectionDeg: weather.Float(90), // wind from the east: offshore
	}
	facts := ResolveFacts(obs, weather.Units{}, EvalContext{BeachOrientationDeg: shore})

	f, ok := facts.Lookup("windRelative")
	if !ok {
		t.Fatal("windRelative missing despite direction and orientation")
	}
	if f.Str != WindOffshore {
		t.Fatalf("windRelative = %s, want offshore", f.Str)
	}

	// Without orientation the fact is omitted, so directional predicates
	// evaluate unknown rather than silently passing.
	facts = ResolveFacts(obs, weather.Units{}, EvalContext{})
	if _, ok := facts.Lookup("windRelative"); ok {
		t.Fatal("windRelative should be absent without beach orientation")
	}
}

func TestClassifyWindRelativeBands(t *testing.T) {
	const shore = 0.0 // north-facing beach

	tests := []struct {
		windFrom float64
		want     string
	}{
		{0, WindOnshore},
		{45, WindOnshore},
		{315, WindOnshore},
		{60, WindSideOnshore},
		{75, WindSideOnshore},
		{300, WindSideOnshore},
		{90, WindCrossShore},
		{104, WindCrossShore},
		{256, WindCrossShore},
		{105, WindSideOffshore},
		{130, WindSideOffshore},
		{230, WindSideOffshore},
		{135, WindOffshore},
		{180, WindOffshore},
		{225, WindOffshore},
	}

	for _, tt := range tests {
		if got := ClassifyWindRelative(tt.windFrom, shore); got != tt.want {
			t.Errorf("wind from %.0f° on shore facing %.0f°: %s, want %s", tt.windFrom, shore, got, tt.want)
		}
	}
}

func TestFactSnapshotImmutable(t *testing.T) {
	src := map[string]Fact{"temperature": NumFact(20, "temperature")}
	facts := NewFactSnapshot(src)

	// Mutating the source map after construction must not leak in.
	src["temperature"] = NumFact(99, "temperature")
	src["windSpeed"] = NumFact(5, "windSpeed")

	f, ok := facts.Lookup("temperature")
	if !ok || f.Num != 20 {
		t.Fatalf("temperature = %+v, want the value at construction time", f)
	}
	if _, ok := facts.Lookup("windSpeed"); ok {
		t.Fatal("snapshot grew after construction")
	}
}

func TestResolveFactsIsNight(t *testing.T) {
	obs := weather.Observation{IsNight: weather.Bool(true)}
	facts := ResolveFacts(obs, weather.Units{}, EvalContext{})

	f, ok := facts.Lookup("isNight")
	if !ok {
		t.Fatal("isNight missing")
	}
	if f.IsNum || f.Str != "true" {
		t.Fatalf("isNight = %+v, want categorical true", f)
	}
}
