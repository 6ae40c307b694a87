package reading

import (
	"github.com/ecowatch/envboard/internal/common"
)

// defaultDisplayUnit is applied when a temperature-flavored record was
// persisted without a unit.
const defaultDisplayUnit = "°C"

// FromRecord rehydrates a stored record into a concrete reading. The explicit
// type tag is the primary discriminator; records persisted before the tag was
// introduced fall back to a name-substring heuristic. Missing optional fields
// are defaulted.
func FromRecord(rec Record) Reading {
	base := BaseReading{
		name:        rec.Name,
		value:       rec.Value,
		description: rec.Description,
		city:        rec.City,
		lat:         rec.Lat,
		lon:         rec.Lon,
		createdAt:   rec.CreatedAt,
	}

	if isTemperatureShaped(rec) {
		unit := rec.Unit
		if unit == "" {
			unit = defaultDisplayUnit
		}
		return &TemperatureReading{BaseReading: base, unit: unit}
	}
	return &base
}

// FromRecords rehydrates a full stored collection in order.
func FromRecords(recs []Record) []Reading {
	out := make([]Reading, 0, len(recs))
	for _, rec := range recs {
		out = append(out, FromRecord(rec))
	}
	return out
}

// ToRecords dehydrates readings into their stored shape in order.
func ToRecords(readings []Reading) []Record {
	out := make([]Record, 0, len(readings))
	for _, r := range readings {
		out = append(out, r.Record())
	}
	return out
}

func isTemperatureShaped(rec Record) bool {
	if rec.Type == TypeTemperature {
		return true
	}
	if rec.Type != "" {
		return false
	}
	// Compatibility fallback for untagged records only: a present unit or a
	// category-like name means the record was written by the toggle flow.
	if rec.Unit != "" {
		return true
	}
	return common.HasAnyFold(rec.Name, "temperature", "quality", "health")
}
