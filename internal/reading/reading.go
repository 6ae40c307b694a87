package reading

import (
	"time"
)

// Kind identifies the concrete shape of a reading.
type Kind string

const (
	KindGeneric     Kind = "generic"
	KindTemperature Kind = "temperature"
)

// TypeTemperature is the stored type discriminator for temperature-flavored
// readings. Generic readings are stored with an empty type for backward
// compatibility with older persisted collections.
const TypeTemperature = "temperature"

// Record is the persisted wire shape of a reading. The full collection is
// stored as a JSON array of these records under a single key.
type Record struct {
	Name        string    `json:"name"`
	Value       float64   `json:"value"`
	Description string    `json:"description"`
	City        string    `json:"city"`
	Lat         *float64  `json:"lat"`
	Lon         *float64  `json:"lon"`
	Unit        string    `json:"unit,omitempty"`
	Type        string    `json:"type,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// Reading is one environmental reading tied to a city. Name is the unique key
// within a persisted collection; lookups and deletions match by exact name
// equality, so two readings must never share a name.
type Reading interface {
	Name() string
	Value() float64
	SetValue(v float64)
	Description() string
	City() string
	Lat() *float64
	Lon() *float64
	SetCoords(lat, lon float64)
	Unit() string
	Kind() Kind
	CreatedAt() time.Time

	// Record dehydrates the reading back into its stored shape.
	Record() Record
}

// BaseReading is the generic record shape.
type BaseReading struct {
	name        string
	value       float64
	description string
	city        string
	lat         *float64
	lon         *float64
	createdAt   time.Time
}

func (r *BaseReading) Name() string         { return r.name }
func (r *BaseReading) Value() float64       { return r.value }
func (r *BaseReading) SetValue(v float64)   { r.value = v }
func (r *BaseReading) Description() string  { return r.description }
func (r *BaseReading) City() string         { return r.city }
func (r *BaseReading) Lat() *float64        { return r.lat }
func (r *BaseReading) Lon() *float64        { return r.lon }
func (r *BaseReading) Unit() string         { return "" }
func (r *BaseReading) Kind() Kind           { return KindGeneric }
func (r *BaseReading) CreatedAt() time.Time { return r.createdAt }

func (r *BaseReading) SetCoords(lat, lon float64) {
	r.lat = &lat
	r.lon = &lon
}

func (r *BaseReading) Record() Record {
	return Record{
		Name:        r.name,
		Value:       r.value,
		Description: r.description,
		City:        r.city,
		Lat:         r.lat,
		Lon:         r.lon,
		CreatedAt:   r.createdAt,
	}
}

// TemperatureReading adds a display unit and a stored type tag to the base
// shape. All toggle-created readings use this shape regardless of category;
// the unit field carries the category's display unit.
type TemperatureReading struct {
	BaseReading
	unit string
}

func (r *TemperatureReading) Unit() string { return r.unit }
func (r *TemperatureReading) Kind() Kind   { return KindTemperature }

func (r *TemperatureReading) Record() Record {
	rec := r.BaseReading.Record()
	rec.Unit = r.unit
	rec.Type = TypeTemperature
	return rec
}
