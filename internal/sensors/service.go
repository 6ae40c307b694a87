package sensors

import (
	"strings"
	"sync"

	"github.com/ecowatch/envboard/internal/reading"
	"github.com/ecowatch/envboard/internal/store"
)

// Service manages the persisted sensor collection. Every operation follows the
// read-entire/modify/write-entire pattern over the single stored array; the
// mutex keeps concurrent toggles from losing updates.
type Service struct {
	mu    sync.Mutex
	store *store.SensorStore
	gen   *Generator
}

func New(st *store.SensorStore, gen *Generator) *Service {
	return &Service{store: st, gen: gen}
}

// List returns the full collection rehydrated from storage.
func (s *Service) List() ([]reading.Reading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.LoadAll()
}

// Lookup finds a reading by exact name.
func (s *Service) Lookup(name string) (reading.Reading, bool, error) {
	all, err := s.List()
	if err != nil {
		return nil, false, err
	}
	for _, r := range all {
		if r.Name() == name {
			return r, true, nil
		}
	}
	return nil, false, nil
}

// Create synthesizes and persists a new reading for the city/category pair.
// If an entity with the constructed name already exists it is returned
// unchanged: names are unique keys and duplicates must never be written.
func (s *Service) Create(city string, cat Category, lat, lon *float64) (reading.Reading, bool, error) {
	name := EntityName(city, cat)

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.store.LoadAll()
	if err != nil {
		return nil, false, err
	}
	for _, r := range all {
		if r.Name() == name {
			return r, false, nil
		}
	}

	value, unit, description, err := s.gen.Synthesize(cat)
	if err != nil {
		return nil, false, err
	}

	rec := reading.Record{
		Name:        name,
		Value:       value,
		Description: description,
		City:        city,
		Lat:         lat,
		Lon:         lon,
		Unit:        unit,
		Type:        reading.TypeTemperature,
		CreatedAt:   clock.Now().UTC(),
	}
	created := reading.FromRecord(rec)

	all = append(all, created)
	if err := s.store.SaveAll(all); err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// Remove deletes the reading with the exact name and persists the remainder
// unchanged in order. Returns false when no such reading exists.
func (s *Service) Remove(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.store.LoadAll()
	if err != nil {
		return false, err
	}

	kept := make([]reading.Reading, 0, len(all))
	removed := false
	for _, r := range all {
		if !removed && r.Name() == name {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	if !removed {
		return false, nil
	}
	return true, s.store.SaveAll(kept)
}

// RemoveCategory deletes the entity for a city/category pair by its
// constructed name.
func (s *Service) RemoveCategory(city string, cat Category) (bool, error) {
	return s.Remove(EntityName(city, cat))
}

// ForCity returns readings whose city matches case-insensitively.
func (s *Service) ForCity(city string) ([]reading.Reading, error) {
	all, err := s.List()
	if err != nil {
		return nil, err
	}
	var out []reading.Reading
	for _, r := range all {
		if strings.EqualFold(r.City(), city) {
			out = append(out, r)
		}
	}
	return out, nil
}

// CategoryStates reports which categories already have an entity for the city,
// used to synchronize the toggle checkboxes after a city search.
func (s *Service) CategoryStates(city string) (map[Category]bool, error) {
	matches, err := s.ForCity(city)
	if err != nil {
		return nil, err
	}

	states := make(map[Category]bool, len(Categories))
	for _, cat := range Categories {
		states[cat] = false
	}
	for _, r := range matches {
		for _, cat := range Categories {
			if strings.EqualFold(r.Name(), EntityName(r.City(), cat)) {
				states[cat] = true
			}
		}
	}
	return states, nil
}
