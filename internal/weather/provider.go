package weather

import (
	"context"
	"errors"
)

// ErrCityNotFound is returned when the provider does not know the city.
var ErrCityNotFound = errors.New("city not found")

// Provider abstracts the outbound current-weather lookup.
type Provider interface {
	Name() string
	Current(ctx context.Context, city string) (Observation, error)
}
