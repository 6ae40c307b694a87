package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func obsWith(temp, wind float64, conditions ...ConditionInfo) Observation {
	return Observation{
		Main:    Main{Temp: temp},
		Wind:    Wind{Speed: wind},
		Weather: conditions,
	}
}

func TestClassify(t *testing.T) {
	clear := ConditionInfo{Main: "Clear", Description: "clear sky"}
	lightRain := ConditionInfo{Main: "Rain", Description: "light rain"}
	thunder := ConditionInfo{Main: "Thunderstorm", Description: "thunderstorm"}

	tests := []struct {
		name string
		obs  Observation
		want Condition
	}{
		{"warm clear calm", obsWith(25, 5, clear), ConditionGood},
		{"hot overrides everything", obsWith(40, 5, clear), ConditionBad},
		{"strong wind", obsWith(10, 20, clear), ConditionBad},
		{"light rain", obsWith(15, 3, lightRain), ConditionBad},
		{"breezy but mild", obsWith(20, 12, clear), ConditionModerate},
		{"cold", obsWith(2, 3, clear), ConditionBad},
		{"thunderstorm", obsWith(24, 4, thunder), ConditionBad},
		{"good range boundary low", obsWith(18, 9, clear), ConditionGood},
		{"good range boundary high", obsWith(32, 9, clear), ConditionGood},
		{"no condition entries", obsWith(12, 4), ConditionModerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.obs))
		})
	}
}

func TestOverlayColor(t *testing.T) {
	assert.Equal(t, "#4caf50", OverlayColor(ConditionGood))
	assert.Equal(t, "#ff9800", OverlayColor(ConditionModerate))
	assert.Equal(t, "#f44336", OverlayColor(ConditionBad))
}

func TestHasCoords(t *testing.T) {
	assert.False(t, Observation{}.HasCoords())
	assert.True(t, Observation{Coord: Coord{Lat: 48.85, Lon: 2.35}}.HasCoords())
	assert.True(t, Observation{Coord: Coord{Lon: 2.35}}.HasCoords())
}
