package geo

import (
	"fmt"
	"sync"

	"github.com/kelvins/geocoder"
)

// Resolver turns a city name into coordinates. Used as a fallback when the
// weather provider returns an observation without a usable coordinate pair.
type Resolver interface {
	Locate(city string) (lat, lon float64, err error)
}

// GoogleResolver resolves cities through the Google Geocoding API with a small
// session cache so repeated lookups for the same city stay local.
type GoogleResolver struct {
	mu    sync.Mutex
	cache map[string][2]float64
}

// NewGoogleResolver configures the geocoder API key and returns the resolver.
func NewGoogleResolver(apiKey string) *GoogleResolver {
	geocoder.ApiKey = apiKey
	return &GoogleResolver{
		cache: make(map[string][2]float64),
	}
}

func (g *GoogleResolver) Locate(city string) (float64, float64, error) {
	if city == "" {
		return 0, 0, fmt.Errorf("city must not be empty")
	}

	g.mu.Lock()
	if c, ok := g.cache[city]; ok {
		g.mu.Unlock()
		return c[0], c[1], nil
	}
	g.mu.Unlock()

	loc, err := geocoder.Geocoding(geocoder.Address{City: city})
	if err != nil {
		return 0, 0, fmt.Errorf("geocode %s: %w", city, err)
	}

	g.mu.Lock()
	g.cache[city] = [2]float64{loc.Latitude, loc.Longitude}
	g.mu.Unlock()

	return loc.Latitude, loc.Longitude, nil
}
