package store

import (
	"errors"
	"testing"
	"time"

	"github.com/fairweather-app/fairweather/internal/weather"
)

func snapshotAt(loc weather.Location, ts time.Time) weather.Snapshot {
	return weather.Snapshot{
		ID:        ts.Format(time.RFC3339Nano),
		Location:  loc,
		Timestamp: ts,
		Observation: weather.Observation{
			Temperature: weather.Float(20),
		},
	}
}

func TestGetLatest(t *testing.T) {
	loc := weather.Location{City: "Paris", Country: "FR"}
	s := NewMemoryStore(10, 0)

	if _, err := s.GetLatest(loc); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	base := time.Now().UTC()
	s.SaveSnapshot(loc, snapshotAt(loc, base))
	s.SaveSnapshot(loc, snapshotAt(loc, base.Add(time.Minute)))

	latest, err := s.GetLatest(loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !latest.Timestamp.Equal(base.Add(time.Minute)) {
		t.Fatalf("latest = %v, want most recent snapshot", latest.Timestamp)
	}
}

func TestRetentionByCount(t *testing.T) {
	loc := weather.Location{City: "Paris", Country: "FR"}
	s := NewMemoryStore(3, 0)

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		s.SaveSnapshot(loc, snapshotAt(loc, base.Add(time.Duration(i)*time.Minute)))
	}

	snaps, err := s.GetRange(loc, base.Add(-time.Hour), base.Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snaps) != 3 {
		t.Fatalf("retained %d snapshots, want 3", len(snaps))
	}
	if !snaps[0].Timestamp.Equal(base.Add(2 * time.Minute)) {
		t.Fatalf("oldest retained = %v, want the two oldest evicted", snaps[0].Timestamp)
	}
}

func TestGetRangeInclusive(t *testing.T) {
	loc := weather.Location{City: "Paris", Country: "FR"}
	s := NewMemoryStore(0, 0)

	base := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		s.SaveSnapshot(loc, snapshotAt(loc, base.Add(time.Duration(i)*time.Hour)))
	}

	snaps, err := s.GetRange(loc, base.Add(time.Hour), base.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("got %d snapshots, want 2 (bounds inclusive)", len(snaps))
	}

	if _, err := s.GetRange(loc, base.Add(10*time.Hour), base.Add(11*time.Hour)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty range, got %v", err)
	}
}

func TestLocationsAreIsolated(t *testing.T) {
	paris := weather.Location{City: "Paris", Country: "FR"}
	lyon := weather.Location{City: "Lyon", Country: "FR"}
	s := NewMemoryStore(10, 0)

	s.SaveSnapshot(paris, snapshotAt(paris, time.Now().UTC()))

	if _, err := s.GetLatest(lyon); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other location, got %v", err)
	}
}
