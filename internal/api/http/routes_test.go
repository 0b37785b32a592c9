package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fairweather-app/fairweather/internal/activities"
	"github.com/fairweather-app/fairweather/internal/recommend"
	"github.com/fairweather-app/fairweather/internal/store"
	"github.com/fairweather-app/fairweather/internal/weather"
)

func newTestApp(t *testing.T, memStore *store.MemoryStore) (*fiber.App, []weather.Location) {
	t.Helper()

	catalog, err := activities.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	locations := []weather.Location{
		{City: "Biarritz", Country: "FR", ShoreFacingDeg: weather.Float(300)},
	}

	weatherSvc := weather.NewService(memStore, nil)

	app := fiber.New()
	RegisterRoutes(app, Handlers{
		Weather:   weatherSvc,
		Recommend: recommend.NewService(weatherSvc, catalog),
		Catalog:   catalog,
		Locations: locations,
	})
	return app, locations
}

func seedSnapshot(memStore *store.MemoryStore, loc weather.Location) {
	memStore.SaveSnapshot(loc, weather.Snapshot{
		ID:        "seed",
		Location:  loc,
		Timestamp: time.Now().UTC(),
		Observation: weather.Observation{
			Temperature:      weather.Float(22),
			WindSpeed:        weather.Float(6),
			WindDirectionDeg: weather.Float(120),
			WaveHeight:       weather.Float(1.2),
			SwellPeriod:      weather.Float(12),
			CloudCover:       weather.Float(20),
			Visibility:       weather.Float(15),
			Precipitation:    weather.Float(0),
		},
		Condition: weather.ConditionClear,
	})
}

// TestForecastDaysValidation verifies that the forecast endpoint enforces the
// expected 1-7 range for the `days` query parameter.
func TestForecastDaysValidation(t *testing.T) {
	app, _ := newTestApp(t, store.NewMemoryStore(10, time.Hour))

	// Missing days parameter should return 400.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/weather/forecast?city=Paris&country=FR", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}

	// Out-of-range days value should also return 400.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/weather/forecast?city=Paris&country=FR&days=8", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestCurrentWeather(t *testing.T) {
	memStore := store.NewMemoryStore(10, time.Hour)
	app, locations := newTestApp(t, memStore)
	seedSnapshot(memStore, locations[0])

	// Missing location parameters should return 400.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/weather/current?city=Biarritz", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}

	// Unknown location returns 404, not an empty snapshot.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/weather/current?city=Nowhere&country=XX", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/weather/current?city=Biarritz&country=FR", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var snap weather.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if snap.Observation.Temperature == nil || *snap.Observation.Temperature != 22 {
		t.Fatalf("temperature = %v, want seeded value", snap.Observation.Temperature)
	}
}

func TestRecommendations(t *testing.T) {
	memStore := store.NewMemoryStore(10, time.Hour)
	app, locations := newTestApp(t, memStore)
	seedSnapshot(memStore, locations[0])

	// Invalid month should return 400.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations?city=Biarritz&country=FR&month=13", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/recommendations?city=Biarritz&country=FR&month=7", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var body struct {
		Recommendations []recommend.Recommendation `json:"recommendations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Recommendations) == 0 {
		t.Fatal("expected recommendations for seeded snapshot")
	}

	// The configured location carries shore orientation, so directional
	// activities must come back with a real tier rather than no-confidence.
	for _, rec := range body.Recommendations {
		if rec.ActivityID == "surfing" && rec.NoConfidence {
			t.Fatal("surfing scored without confidence despite directional facts")
		}
	}
}

func TestActivitiesEndpoint(t *testing.T) {
	app, _ := newTestApp(t, store.NewMemoryStore(10, time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/activities", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var body struct {
		Activities []activities.Definition `json:"activities"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Activities) == 0 {
		t.Fatal("activity catalog is empty")
	}
}

func TestHistoryRangeValidation(t *testing.T) {
	app, _ := newTestApp(t, store.NewMemoryStore(10, time.Hour))

	// `to` before `from` should fail validation.
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/weather/history?city=Biarritz&country=FR&from=2026-08-25T12:00:00Z&to=2026-08-25T10:00:00Z", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}
