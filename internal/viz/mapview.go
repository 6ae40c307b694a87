package viz

import (
	"github.com/ecowatch/envboard/internal/reading"
	"github.com/ecowatch/envboard/internal/weather"
)

// Marker is one map pin. Fallback is true when the reading had no coordinates
// of its own and the focus coordinate was used instead.
type Marker struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Fallback bool    `json:"fallback,omitempty"`
}

// MapData recenters the map on the focus coordinate and carries the markers
// plus the condition overlay color for the focus circle.
type MapData struct {
	Center       weather.Coord `json:"center"`
	Zoom         int           `json:"zoom"`
	OverlayColor string        `json:"overlayColor,omitempty"`
	Markers      []Marker      `json:"markers"`
}

const defaultZoom = 10

// Map projects a filtered reading sequence into marker positions, falling back
// to the supplied focus coordinate when a reading lacks its own.
func Map(readings []reading.Reading, focus weather.Coord, overlayColor string) MapData {
	markers := make([]Marker, 0, len(readings))
	for _, r := range readings {
		m := Marker{Name: r.Name()}
		if lat, lon := r.Lat(), r.Lon(); lat != nil && lon != nil {
			m.Lat, m.Lon = *lat, *lon
		} else {
			m.Lat, m.Lon = focus.Lat, focus.Lon
			m.Fallback = true
		}
		markers = append(markers, m)
	}

	return MapData{
		Center:       focus,
		Zoom:         defaultZoom,
		OverlayColor: overlayColor,
		Markers:      markers,
	}
}
