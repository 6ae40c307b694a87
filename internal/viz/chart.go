package viz

import (
	"strings"

	"github.com/ecowatch/envboard/internal/reading"
	"github.com/ecowatch/envboard/internal/sensors"
)

// ChartData is the label/value/color projection consumed by a chart widget.
// Index i of each slice describes the same reading.
type ChartData struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Colors []string  `json:"colors"`
}

// categoryColors is the fixed chart palette per category.
var categoryColors = map[sensors.Category]string{
	sensors.CategoryAir:       "#42a5f5",
	sensors.CategoryWater:     "#26c6da",
	sensors.CategorySoil:      "#8d6e63",
	sensors.CategoryEcosystem: "#66bb6a",
}

const defaultColor = "#9e9e9e"

// Chart projects a filtered reading sequence into chart arrays. It is a pure
// function of its input.
func Chart(readings []reading.Reading) ChartData {
	data := ChartData{
		Labels: make([]string, 0, len(readings)),
		Values: make([]float64, 0, len(readings)),
		Colors: make([]string, 0, len(readings)),
	}
	for _, r := range readings {
		data.Labels = append(data.Labels, r.Name())
		data.Values = append(data.Values, r.Value())
		data.Colors = append(data.Colors, colorFor(r.Name()))
	}
	return data
}

func colorFor(name string) string {
	for cat, color := range categoryColors {
		if strings.HasSuffix(name, string(cat)) {
			return color
		}
	}
	return defaultColor
}
