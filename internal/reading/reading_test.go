package reading

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func TestFromRecord(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	t.Run("tagged temperature record", func(t *testing.T) {
		rec := Record{
			Name:        "Paris Air Quality",
			Value:       87.5,
			Description: "Synthetic air quality index",
			City:        "Paris",
			Lat:         fptr(48.8566),
			Lon:         fptr(2.3522),
			Unit:        "AQI",
			Type:        TypeTemperature,
			CreatedAt:   created,
		}

		r := FromRecord(rec)
		assert.Equal(t, KindTemperature, r.Kind())
		assert.Equal(t, "Paris Air Quality", r.Name())
		assert.Equal(t, 87.5, r.Value())
		assert.Equal(t, "AQI", r.Unit())
		assert.Equal(t, "Paris", r.City())
		require.NotNil(t, r.Lat())
		require.NotNil(t, r.Lon())
		assert.Equal(t, 48.8566, *r.Lat())
		assert.Equal(t, 2.3522, *r.Lon())
		assert.Equal(t, created, r.CreatedAt())
	})

	t.Run("untagged record with unit uses heuristic", func(t *testing.T) {
		rec := Record{Name: "Oslo Temperature", Unit: "°C", City: "Oslo"}
		r := FromRecord(rec)
		assert.Equal(t, KindTemperature, r.Kind())
		assert.Equal(t, "°C", r.Unit())
	})

	t.Run("untagged record with category-like name uses heuristic", func(t *testing.T) {
		rec := Record{Name: "Lagos Ecosystem Health", City: "Lagos"}
		r := FromRecord(rec)
		assert.Equal(t, KindTemperature, r.Kind())
		// Missing unit defaults.
		assert.Equal(t, "°C", r.Unit())
	})

	t.Run("untagged plain record stays generic", func(t *testing.T) {
		rec := Record{Name: "river gauge 7", City: "Basel"}
		r := FromRecord(rec)
		assert.Equal(t, KindGeneric, r.Kind())
		assert.Empty(t, r.Unit())
		assert.Nil(t, r.Lat())
		assert.Nil(t, r.Lon())
	})

	t.Run("unknown tag is not guessed", func(t *testing.T) {
		rec := Record{Name: "Quito Water Quality", Type: "other"}
		r := FromRecord(rec)
		assert.Equal(t, KindGeneric, r.Kind())
	})
}

func TestRecordRoundTrip(t *testing.T) {
	recs := []Record{
		{
			Name:        "Nairobi Water Quality",
			Value:       7.2,
			Description: "Synthetic water quality level",
			City:        "Nairobi",
			Lat:         fptr(-1.2921),
			Lon:         fptr(36.8219),
			Unit:        "pH",
			Type:        TypeTemperature,
		},
		{
			Name:  "legacy reading",
			Value: 3,
			City:  "Nairobi",
		},
	}

	readings := FromRecords(recs)
	require.Len(t, readings, 2)

	out := ToRecords(readings)
	require.Len(t, out, 2)

	assert.Equal(t, recs[0].Name, out[0].Name)
	assert.Equal(t, recs[0].Value, out[0].Value)
	assert.Equal(t, recs[0].Description, out[0].Description)
	assert.Equal(t, recs[0].City, out[0].City)
	assert.Equal(t, recs[0].Lat, out[0].Lat)
	assert.Equal(t, recs[0].Lon, out[0].Lon)
	assert.Equal(t, recs[0].Unit, out[0].Unit)
	assert.Equal(t, TypeTemperature, out[0].Type)

	// The generic record keeps its shape on the way back out.
	assert.Equal(t, "legacy reading", out[1].Name)
	assert.Empty(t, out[1].Type)
	assert.Empty(t, out[1].Unit)
}

func TestSetters(t *testing.T) {
	r := FromRecord(Record{Name: "Lima Soil Quality", Type: TypeTemperature, Unit: "% moisture"})

	r.SetValue(42.5)
	assert.Equal(t, 42.5, r.Value())

	r.SetCoords(-12.0464, -77.0428)
	require.NotNil(t, r.Lat())
	require.NotNil(t, r.Lon())
	assert.Equal(t, -12.0464, *r.Lat())
	assert.Equal(t, -77.0428, *r.Lon())

	rec := r.Record()
	assert.Equal(t, 42.5, rec.Value)
	assert.Equal(t, TypeTemperature, rec.Type)
}
