// Package activities holds the activity catalog: declarative definitions of
// outdoor activities and the weather-condition clauses that describe when
// each one is worth doing.
package activities

import (
	"fmt"
	"log"
	"time"

	"github.com/fairweather-app/fairweather/internal/common"
	"github.com/fairweather-app/fairweather/internal/engine"
)

// Definition describes one activity and its four condition tiers. Clauses
// within a tier are alternatives; the engine treats any one matching clause
// as qualifying the activity for that tier.
type Definition struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	SecondaryCategory string   `json:"secondaryCategory,omitempty"`
	WeatherSensitive  bool     `json:"weatherSensitive"`
	Tags              []string `json:"tags,omitempty"`

	// SeasonalMonths lists the months (1-12) the activity is in season.
	// Empty means year-round.
	SeasonalMonths []time.Month `json:"seasonalMonths,omitempty"`

	Poor    []string `json:"poorConditions,omitempty"`
	Fair    []string `json:"fairConditions,omitempty"`
	Good    []string `json:"goodConditions,omitempty"`
	Perfect []string `json:"perfectConditions,omitempty"`

	IndoorAlternative string `json:"indoorAlternative,omitempty"`

	// UsesWindRelative marks activities whose clauses depend on wind
	// direction relative to the shore; they need a beach orientation at
	// evaluation time or directional predicates evaluate as unknown.
	UsesWindRelative         bool `json:"usesWindRelative"`
	RequiresBeachOrientation bool `json:"requiresBeachOrientation"`
}

// Tiers adapts the definition's clause lists for the classifier.
func (d Definition) Tiers() engine.TierSet {
	return engine.TierSet{
		Poor:    d.Poor,
		Fair:    d.Fair,
		Good:    d.Good,
		Perfect: d.Perfect,
	}
}

// InSeason reports whether the activity is in season for the given month.
func (d Definition) InSeason(m time.Month) bool {
	if len(d.SeasonalMonths) == 0 {
		return true
	}
	for _, sm := range d.SeasonalMonths {
		if sm == m {
			return true
		}
	}
	return false
}

// Catalog is a read-only, id-indexed set of activity definitions.
type Catalog struct {
	byID    map[string]Definition
	ordered []Definition
}

// New builds a catalog from definitions, rejecting duplicate ids and logging
// data-quality warnings for the rest. Warnings never fail the load:
// classification still proceeds under the engine's unknown-handling rules.
func New(defs []Definition) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]Definition, len(defs))}

	for _, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("activity with empty id (name %q)", d.Name)
		}
		if _, exists := c.byID[d.ID]; exists {
			return nil, fmt.Errorf("duplicate activity id %q", d.ID)
		}
		validate(d)
		c.byID[d.ID] = d
		c.ordered = append(c.ordered, d)
	}

	return c, nil
}

// Load builds the catalog from the built-in definitions.
func Load() (*Catalog, error) {
	return New(builtin)
}

// Get returns the definition for an id.
func (c *Catalog) Get(id string) (Definition, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// All returns the definitions in their declared order.
func (c *Catalog) All() []Definition {
	return c.ordered
}

// InSeason returns the definitions that are in season for the given month.
func (c *Catalog) InSeason(m time.Month) []Definition {
	var out []Definition
	for _, d := range c.ordered {
		if d.InSeason(m) {
			out = append(out, d)
		}
	}
	return out
}

// validate surfaces data-quality problems in a definition at load time:
// unparseable clauses and inconsistent wind-relative flags.
func validate(d Definition) {
	tiers := []struct {
		name    string
		clauses []string
	}{
		{"poor", d.Poor},
		{"fair", d.Fair},
		{"good", d.Good},
		{"perfect", d.Perfect},
	}

	referencesWindRelative := false

	for _, t := range tiers {
		for _, raw := range t.clauses {
			if _, err := engine.ParseClause(raw); err != nil {
				log.Printf("WARN: activity %s tier %s: %v", d.ID, t.name, err)
			}
			if common.HasAny(raw, "windRelative") {
				referencesWindRelative = true
			}
		}
	}

	if d.UsesWindRelative && !referencesWindRelative {
		log.Printf("WARN: activity %s sets usesWindRelative but no clause references windRelative", d.ID)
	}
	if !d.UsesWindRelative && referencesWindRelative {
		log.Printf("WARN: activity %s references windRelative but does not set usesWindRelative", d.ID)
	}
}
