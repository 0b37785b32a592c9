// Package recommend scores the activity catalog against stored weather
// snapshots and produces ordered recommendations.
package recommend

import (
	"sort"
	"time"

	"github.com/fairweather-app/fairweather/internal/activities"
	"github.com/fairweather-app/fairweather/internal/engine"
	"github.com/fairweather-app/fairweather/internal/weather"
)

// SnapshotSource is the subset of the weather service the recommender needs.
type SnapshotSource interface {
	GetLatest(loc weather.Location) (weather.Snapshot, error)
}

// Recommendation pairs an activity with its score against one snapshot.
// NoConfidence is set when required facts were missing and no tier could be
// determined; the UI shows these as "no forecast confidence" instead of
// guessing.
type Recommendation struct {
	ActivityID        string             `json:"activityId"`
	Name              string             `json:"name"`
	Category          string             `json:"category"`
	Result            engine.ScoreResult `json:"result"`
	NoConfidence      bool               `json:"noConfidence,omitempty"`
	IndoorAlternative string             `json:"indoorAlternative,omitempty"`
}

// Service scores catalog activities against latest snapshots.
type Service struct {
	source  SnapshotSource
	catalog *activities.Catalog
}

// NewService creates a recommendation service.
func NewService(source SnapshotSource, catalog *activities.Catalog) *Service {
	return &Service{source: source, catalog: catalog}
}

// ForLocation scores every weather-sensitive activity against the latest
// snapshot for the location. When month is non-zero, out-of-season
// activities are excluded. Results are sorted by score descending with
// no-confidence results last; ties break on activity id so the output is
// deterministic.
func (s *Service) ForLocation(loc weather.Location, month time.Month) ([]Recommendation, error) {
	snapshot, err := s.source.GetLatest(loc)
	if err != nil {
		return nil, err
	}
	return s.ForSnapshot(snapshot, month), nil
}

// ForSnapshot scores the catalog against an already-fetched snapshot.
func (s *Service) ForSnapshot(snapshot weather.Snapshot, month time.Month) []Recommendation {
	evalCtx := engine.EvalContext{
		BeachOrientationDeg: snapshot.Location.ShoreFacingDeg,
	}
	facts := engine.ResolveFacts(snapshot.Observation, weather.Units{}, evalCtx)

	var recs []Recommendation
	for _, def := range s.catalog.All() {
		if !def.WeatherSensitive {
			continue
		}
		if month != 0 && !def.InSeason(month) {
			continue
		}

		result := engine.Classify(def.Tiers(), facts)

		rec := Recommendation{
			ActivityID: def.ID,
			Name:       def.Name,
			Category:   def.Category,
			Result:     result,
		}
		if result.Tier == engine.TierUnknown {
			rec.NoConfidence = true
			rec.IndoorAlternative = def.IndoorAlternative
		}
		recs = append(recs, rec)
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].NoConfidence != recs[j].NoConfidence {
			return !recs[i].NoConfidence
		}
		if recs[i].Result.Score != recs[j].Result.Score {
			return recs[i].Result.Score > recs[j].Result.Score
		}
		return recs[i].ActivityID < recs[j].ActivityID
	})

	return recs
}
