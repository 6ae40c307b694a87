package store

import (
	"errors"

	"github.com/ecowatch/envboard/internal/reading"
)

// SensorsKey is the store key holding the JSON array of sensor records.
const SensorsKey = "sensors"

// SensorStore translates between the stored record array and reading entities.
// Entities are rehydrated fresh on every read and the full collection is
// rewritten on every save; there is no partial update.
type SensorStore struct {
	local *Local
}

func NewSensorStore(local *Local) *SensorStore {
	return &SensorStore{local: local}
}

// LoadAll deserializes the stored array into entities, lazily initializing the
// key to an empty array on first use.
func (s *SensorStore) LoadAll() ([]reading.Reading, error) {
	var recs []reading.Record
	err := s.local.Get(SensorsKey, &recs)
	if errors.Is(err, ErrNotFound) {
		if err := s.local.Put(SensorsKey, []reading.Record{}); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return reading.FromRecords(recs), nil
}

// SaveAll serializes the full collection, overwriting prior state.
func (s *SensorStore) SaveAll(readings []reading.Reading) error {
	return s.local.Put(SensorsKey, reading.ToRecords(readings))
}
