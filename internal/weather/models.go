package weather

// Coord is a latitude/longitude pair as reported by the weather provider.
type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Main holds the primary numeric measurements of an observation.
type Main struct {
	Temp     float64 `json:"temp"`     // degrees Celsius
	Humidity float64 `json:"humidity"` // percent
}

// ConditionInfo is one descriptive condition entry of an observation.
type ConditionInfo struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Wind holds wind measurements.
type Wind struct {
	Speed float64 `json:"speed"` // metres per second
}

// Sys carries provider metadata about the resolved place.
type Sys struct {
	Country string `json:"country"`
}

// Observation is the current-weather lookup result for a city. The field
// layout matches the provider's wire shape so responses decode directly.
type Observation struct {
	Coord   Coord           `json:"coord"`
	Main    Main            `json:"main"`
	Weather []ConditionInfo `json:"weather"`
	Wind    Wind            `json:"wind"`
	Name    string          `json:"name"`
	Sys     Sys             `json:"sys"`
}

// HasCoords reports whether the observation carries a usable coordinate pair.
// A (0,0) coordinate is treated as absent; it is the provider's zero value and
// no tracked city sits on the null island.
func (o Observation) HasCoords() bool {
	return o.Coord.Lat != 0 || o.Coord.Lon != 0
}
