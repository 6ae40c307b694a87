package weather

import "github.com/ecowatch/envboard/internal/common"

// Condition is the environmental classification of an observation.
type Condition string

const (
	ConditionGood     Condition = "Good Condition"
	ConditionModerate Condition = "Moderate"
	ConditionBad      Condition = "Bad Condition"
)

// Classify buckets an observation into {Good, Moderate, Bad} using fixed
// thresholds. Bad takes precedence: temperature above 35 or below 5, rain or
// thunder, or wind above 15 m/s is always Bad. Good requires 18-32 degrees,
// no rain, and wind below 10. Everything else is Moderate.
func Classify(obs Observation) Condition {
	temp := obs.Main.Temp
	wind := obs.Wind.Speed
	rainy := IsRainy(obs)

	switch {
	case temp > 35 || temp < 5 || rainy || wind > 15:
		return ConditionBad
	case temp >= 18 && temp <= 32 && !rainy && wind < 10:
		return ConditionGood
	default:
		return ConditionModerate
	}
}

// IsRainy reports whether any condition entry indicates rain or thunder.
func IsRainy(obs Observation) bool {
	for _, w := range obs.Weather {
		if common.HasAnyFold(w.Main, "rain", "drizzle", "thunder") ||
			common.HasAnyFold(w.Description, "rain", "drizzle", "thunder") {
			return true
		}
	}
	return false
}

// OverlayColor maps a condition to the color of the map overlay circle.
func OverlayColor(c Condition) string {
	switch c {
	case ConditionGood:
		return "#4caf50"
	case ConditionBad:
		return "#f44336"
	default:
		return "#ff9800"
	}
}
