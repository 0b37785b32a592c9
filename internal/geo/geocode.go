package geo

import (
	"log"

	"github.com/kelvins/geocoder"

	"github.com/fairweather-app/fairweather/internal/weather"
)

// Resolver fills in missing coordinates for configured locations using the
// Google geocoding API. Open-Meteo requires lat/lon, so locations without
// coordinates would otherwise only be served by city-name providers.
type Resolver struct {
	configured bool
}

// NewResolver sets up the geocoder with the given API key. An empty key
// yields a no-op resolver.
func NewResolver(apiKey string) *Resolver {
	if apiKey == "" {
		return &Resolver{}
	}
	geocoder.ApiKey = apiKey
	return &Resolver{configured: true}
}

// Resolve returns the locations with lat/lon filled where possible.
// Geocoding failures are logged and the location is kept without
// coordinates.
func (r *Resolver) Resolve(locs []weather.Location) []weather.Location {
	out := make([]weather.Location, len(locs))
	copy(out, locs)

	if !r.configured {
		return out
	}

	for i, loc := range out {
		if loc.Lat != nil && loc.Lon != nil {
			continue
		}

		addr := geocoder.Address{
			City:    loc.City,
			Country: loc.Country,
		}

		coords, err := geocoder.Geocoding(addr)
		if err != nil {
			log.Printf("geo: geocoding failed for %s: %v", loc.Key(), err)
			continue
		}

		out[i].Lat = weather.Float(coords.Latitude)
		out[i].Lon = weather.Float(coords.Longitude)
	}

	return out
}
