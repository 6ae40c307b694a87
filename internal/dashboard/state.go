package dashboard

import (
	"sync"

	"github.com/ecowatch/envboard/internal/weather"
)

// State holds the currently selected city and the last observation fetched
// for it. Lifetime is the process; the weather cache is invalidated when the
// city changes.
type State struct {
	mu   sync.RWMutex
	city string
	obs  *weather.Observation
}

func NewState() *State {
	return &State{}
}

// SetCity records the currently selected city. Selecting a different city
// drops the cached weather.
func (s *State) SetCity(city string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.city != city {
		s.obs = nil
	}
	s.city = city
}

// City returns the currently selected city, empty when none was searched yet.
func (s *State) City() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.city
}

// SetWeather caches the last successful observation for the current city.
func (s *State) SetWeather(obs weather.Observation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.obs = &obs
}

// Weather returns the cached observation, if any.
func (s *State) Weather() (weather.Observation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.obs == nil {
		return weather.Observation{}, false
	}
	return *s.obs, true
}
