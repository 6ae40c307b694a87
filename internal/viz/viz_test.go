package viz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecowatch/envboard/internal/reading"
	"github.com/ecowatch/envboard/internal/weather"
)

func fptr(v float64) *float64 { return &v }

func testReadings() []reading.Reading {
	return reading.FromRecords([]reading.Record{
		{
			Name:  "Rome Air Quality",
			Value: 101.5,
			City:  "Rome",
			Lat:   fptr(41.9028),
			Lon:   fptr(12.4964),
			Unit:  "AQI",
			Type:  reading.TypeTemperature,
		},
		{
			Name:  "Rome Water Quality",
			Value: 7.1,
			City:  "Rome",
			Unit:  "pH",
			Type:  reading.TypeTemperature,
		},
	})
}

func TestChart(t *testing.T) {
	data := Chart(testReadings())

	assert.Equal(t, []string{"Rome Air Quality", "Rome Water Quality"}, data.Labels)
	assert.Equal(t, []float64{101.5, 7.1}, data.Values)
	require.Len(t, data.Colors, 2)
	assert.Equal(t, "#42a5f5", data.Colors[0])
	assert.Equal(t, "#26c6da", data.Colors[1])
}

func TestChartUnknownCategoryColor(t *testing.T) {
	readings := reading.FromRecords([]reading.Record{{Name: "odd one", Value: 1}})
	data := Chart(readings)
	assert.Equal(t, []string{defaultColor}, data.Colors)
}

func TestChartEmpty(t *testing.T) {
	data := Chart(nil)
	assert.Empty(t, data.Labels)
	assert.Empty(t, data.Values)
	assert.Empty(t, data.Colors)
}

func TestMap(t *testing.T) {
	focus := weather.Coord{Lat: 41.9, Lon: 12.5}
	data := Map(testReadings(), focus, "#4caf50")

	assert.Equal(t, focus, data.Center)
	assert.Equal(t, defaultZoom, data.Zoom)
	assert.Equal(t, "#4caf50", data.OverlayColor)
	require.Len(t, data.Markers, 2)

	// First reading carries its own coordinates.
	assert.Equal(t, 41.9028, data.Markers[0].Lat)
	assert.Equal(t, 12.4964, data.Markers[0].Lon)
	assert.False(t, data.Markers[0].Fallback)

	// Second has none and falls back to the focus coordinate.
	assert.Equal(t, focus.Lat, data.Markers[1].Lat)
	assert.Equal(t, focus.Lon, data.Markers[1].Lon)
	assert.True(t, data.Markers[1].Fallback)
}
