package activities

import (
	"testing"

	"github.com/fairweather-app/fairweather/internal/engine"
)

// scenarioFacts builds a snapshot straight from fact values, the way the
// recommendation layer would after resolving an observation.
func scenarioFacts(vals map[string]interface{}) engine.FactSnapshot {
	m := make(map[string]engine.Fact, len(vals))
	for k, v := range vals {
		switch x := v.(type) {
		case float64:
			m[k] = engine.NumFact(x, k)
		case int:
			m[k] = engine.NumFact(float64(x), k)
		case string:
			m[k] = engine.StrFact(x, k)
		}
	}
	return engine.NewFactSnapshot(m)
}

func mustGet(t *testing.T, id string) Definition {
	t.Helper()
	catalog, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d, ok := catalog.Get(id)
	if !ok {
		t.Fatalf("activity %s missing from catalog", id)
	}
	return d
}

func TestSurfingPerfectDay(t *testing.T) {
	surfing := mustGet(t, "surfing")

	facts := scenarioFacts(map[string]interface{}{
		"waterTemperature": 17,
		"airTemperature":   20,
		"waveHeight":       1.0,
		"swellPeriod":      11,
		"windSpeed":        7,
		"windRelative":     "offshore",
		"gust":             6,
		"visibility":       12,
		"precipitation":    0,
	})

	result := engine.Classify(surfing.Tiers(), facts)
	if result.Tier != engine.TierPerfect {
		t.Fatalf("tier = %s (reasons %v), want perfect", result.Tier, result.Reasons)
	}
	if len(result.Reasons) != len(surfing.Perfect) {
		t.Fatalf("matched %d perfect clauses, want all %d", len(result.Reasons), len(surfing.Perfect))
	}
}

func TestSurfingOnshoreBlowout(t *testing.T) {
	surfing := mustGet(t, "surfing")

	// Same swell, but a strong onshore wind: the poor-tier veto must
	// dominate the still-matching wave ranges.
	facts := scenarioFacts(map[string]interface{}{
		"waterTemperature": 17,
		"airTemperature":   20,
		"waveHeight":       1.0,
		"swellPeriod":      11,
		"windSpeed":        12,
		"windRelative":     "onshore",
		"gust":             6,
		"visibility":       12,
		"precipitation":    0,
	})

	result := engine.Classify(surfing.Tiers(), facts)
	if result.Tier != engine.TierPoor {
		t.Fatalf("tier = %s (reasons %v), want poor", result.Tier, result.Reasons)
	}
}

func TestSurfingUnknownWithoutMarineFacts(t *testing.T) {
	surfing := mustGet(t, "surfing")

	// Inland-style snapshot: no wave, swell or directional facts. Wind is
	// calm so no poor veto fires either; the result must be unknown, not a
	// guessed tier.
	facts := scenarioFacts(map[string]interface{}{
		"airTemperature": 20,
		"windSpeed":      5,
		"gust":           7,
	})

	result := engine.Classify(surfing.Tiers(), facts)
	if result.Tier != engine.TierUnknown {
		t.Fatalf("tier = %s (reasons %v), want unknown", result.Tier, result.Reasons)
	}
}

func TestOutdoorIceSkatingPerfectDay(t *testing.T) {
	skating := mustGet(t, "outdoor-ice-skating")

	facts := scenarioFacts(map[string]interface{}{
		"temperature": -3,
		"windSpeed":   8,
		"cloudCover":  30,
		"visibility":  12,
	})

	result := engine.Classify(skating.Tiers(), facts)
	if result.Tier != engine.TierPerfect {
		t.Fatalf("tier = %s (reasons %v), want perfect", result.Tier, result.Reasons)
	}
}

func TestKitesurfingOffshoreVeto(t *testing.T) {
	kitesurfing := mustGet(t, "kitesurfing")

	facts := scenarioFacts(map[string]interface{}{
		"windRelative": "offshore",
		"windSpeed":    10,
		"waveHeight":   1.0,
		"gust":         13,
	})

	result := engine.Classify(kitesurfing.Tiers(), facts)
	if result.Tier != engine.TierPoor {
		t.Fatalf("tier = %s (reasons %v), want poor for offshore wind", result.Tier, result.Reasons)
	}
}
