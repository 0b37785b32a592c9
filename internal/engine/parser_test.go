package engine

import (
	"testing"
)

// testFacts builds a snapshot from a compact literal map.
func testFacts(vals map[string]interface{}) FactSnapshot {
	m := make(map[string]Fact, len(vals))
	for k, v := range vals {
		switch x := v.(type) {
		case float64:
			m[k] = NumFact(x, k)
		case int:
			m[k] = NumFact(float64(x), k)
		case string:
			m[k] = StrFact(x, k)
		default:
			panic("unsupported fact type in test")
		}
	}
	return NewFactSnapshot(m)
}

func TestParseClauseGrammar(t *testing.T) {
	tests := []struct {
		name   string
		clause string
		facts  map[string]interface{}
		want   Tri
	}{
		{"range low edge", "temperature=12..18", map[string]interface{}{"temperature": 12}, True},
		{"range high edge", "temperature=12..18", map[string]interface{}{"temperature": 18}, True},
		{"range inside", "temperature=12..18", map[string]interface{}{"temperature": 15.5}, True},
		{"range below", "temperature=12..18", map[string]interface{}{"temperature": 11.99}, False},
		{"range above", "temperature=12..18", map[string]interface{}{"temperature": 18.01}, False},
		{"range fact absent", "temperature=12..18", map[string]interface{}{"windSpeed": 5}, Unknown},

		{"negative range", "temperature=-12..-2", map[string]interface{}{"temperature": -3}, True},
		{"negative range below", "temperature=-12..-2", map[string]interface{}{"temperature": -13}, False},

		{"comparison at bound", "windSpeed>20", map[string]interface{}{"windSpeed": 20}, False},
		{"comparison above bound", "windSpeed>20", map[string]interface{}{"windSpeed": 20.01}, True},
		{"comparison less-than", "windSpeed<8", map[string]interface{}{"windSpeed": 7.9}, True},
		{"comparison absent", "windSpeed>20", map[string]interface{}{}, Unknown},

		{"or of ranges same key", "temperature=0..5 or 20..25", map[string]interface{}{"temperature": 22}, True},
		{"or of ranges gap", "temperature=0..5 or 20..25", map[string]interface{}{"temperature": 10}, False},
		{"or of comparisons", "windSpeed<5 or windSpeed>20", map[string]interface{}{"windSpeed": 12}, False},
		{"or of comparisons hit", "windSpeed<5 or windSpeed>20", map[string]interface{}{"windSpeed": 3}, True},

		{"conjunction both hold", "windRelative=onshore & windSpeed<8",
			map[string]interface{}{"windRelative": "onshore", "windSpeed": 5}, True},
		{"conjunction categorical fails", "windRelative=onshore & windSpeed<8",
			map[string]interface{}{"windRelative": "offshore", "windSpeed": 5}, False},
		{"conjunction numeric fails", "windRelative=onshore & windSpeed<8",
			map[string]interface{}{"windRelative": "onshore", "windSpeed": 9}, False},

		{"categorical equality", "windRelative=offshore", map[string]interface{}{"windRelative": "offshore"}, True},
		{"categorical inherited key", "windRelative=side-onshore or cross-shore",
			map[string]interface{}{"windRelative": "cross-shore"}, True},
		{"numeric exact equality", "cloudCover=0", map[string]interface{}{"cloudCover": 0}, True},
		{"numeric exact inequality", "cloudCover=0", map[string]interface{}{"cloudCover": 0.5}, False},

		{"numeric predicate on categorical fact", "windRelative>3",
			map[string]interface{}{"windRelative": "onshore"}, False},
		{"categorical predicate on numeric fact", "windSpeed=calm",
			map[string]interface{}{"windSpeed": 2}, False},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred, err := ParseClause(tt.clause)
			if err != nil {
				t.Fatalf("ParseClause(%q) unexpected error: %v", tt.clause, err)
			}
			if got := pred(testFacts(tt.facts)); got != tt.want {
				t.Fatalf("ParseClause(%q) on %v = %v, want %v", tt.clause, tt.facts, got, tt.want)
			}
		})
	}
}

func TestParseClauseUnknownPropagation(t *testing.T) {
	// AND with one unknown term and no false term stays unknown.
	pred, err := ParseClause("windRelative=onshore & windSpeed<8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := pred(testFacts(map[string]interface{}{"windSpeed": 5}))
	if got != Unknown {
		t.Fatalf("AND with missing categorical fact = %v, want unknown", got)
	}

	// A definite false term dominates an unknown one.
	got = pred(testFacts(map[string]interface{}{"windSpeed": 12}))
	if got != False {
		t.Fatalf("AND with failing numeric term = %v, want false", got)
	}

	// OR of unknowns stays unknown.
	pred, err = ParseClause("temperature=0..5 or 20..25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := pred(testFacts(map[string]interface{}{})); got != Unknown {
		t.Fatalf("OR with missing fact = %v, want unknown", got)
	}
}

func TestParseClauseFailsClosed(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"temperature",
		"temperature=",
		"=12..18",
		"temperature=18..12",
		"temperature=a..b",
		"windSpeed>fast",
		"temperature=0..5 or ",
		"20..25",
	}

	for _, clause := range tests {
		pred, err := ParseClause(clause)
		if err == nil {
			t.Errorf("ParseClause(%q) expected parse error", clause)
			continue
		}
		// The fail-closed predicate never matches, even with rich facts.
		got := pred(testFacts(map[string]interface{}{
			"temperature": 15, "windSpeed": 5,
		}))
		if got != False {
			t.Errorf("ParseClause(%q) fail-closed predicate = %v, want false", clause, got)
		}
	}
}

func TestParseClauseCached(t *testing.T) {
	const clause = "temperature=12..18"

	p1, err1 := ParseClause(clause)
	p2, err2 := ParseClause(clause)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}

	// Both predicates must agree; the cache guarantees one parse per string.
	facts := testFacts(map[string]interface{}{"temperature": 15})
	if p1(facts) != p2(facts) {
		t.Fatal("cached predicate disagrees with first parse")
	}

	// Errors are cached too, as the same instance.
	_, e1 := ParseClause("not a clause")
	_, e2 := ParseClause("not a clause")
	if e1 == nil || e1 != e2 {
		t.Fatalf("expected identical cached error, got %v and %v", e1, e2)
	}
}
