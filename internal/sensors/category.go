package sensors

import (
	"fmt"
	"strings"
)

// Category is one of the four synthetic sensor kinds a user can toggle for a
// city. The category name doubles as the suffix of the entity name.
type Category string

const (
	CategoryAir       Category = "Air Quality"
	CategoryWater     Category = "Water Quality"
	CategorySoil      Category = "Soil Quality"
	CategoryEcosystem Category = "Ecosystem Health"
)

// Categories lists all toggleable categories in display order.
var Categories = []Category{
	CategoryAir,
	CategoryWater,
	CategorySoil,
	CategoryEcosystem,
}

// ErrUnknownCategory is returned for a category outside the fixed set.
var ErrUnknownCategory = fmt.Errorf("unknown sensor category")

// ParseCategory accepts the full display name or a short alias
// (air, water, soil, ecosystem), case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "air", "air quality":
		return CategoryAir, nil
	case "water", "water quality":
		return CategoryWater, nil
	case "soil", "soil quality":
		return CategorySoil, nil
	case "ecosystem", "ecosystem health":
		return CategoryEcosystem, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
}

// profile holds the fixed synthetic value range and display metadata for a
// category. Values are generated uniformly within [min, max].
type profile struct {
	min, max    float64
	unit        string
	description string
}

var profiles = map[Category]profile{
	CategoryAir:       {min: 50, max: 150, unit: "AQI", description: "Synthetic air quality index"},
	CategoryWater:     {min: 6.0, max: 8.5, unit: "pH", description: "Synthetic water quality level"},
	CategorySoil:      {min: 20, max: 60, unit: "% moisture", description: "Synthetic soil moisture content"},
	CategoryEcosystem: {min: 40, max: 95, unit: "EHI", description: "Synthetic ecosystem health index"},
}

// EntityName builds the unique entity name for a city/category pair.
func EntityName(city string, cat Category) string {
	return city + " " + string(cat)
}
