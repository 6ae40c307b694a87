package sensors

import (
	"math"
	"math/rand"
	"time"
)

// Generator synthesizes pseudo-random sensor values within each category's
// fixed range. The random source is injectable so tests are deterministic.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator. A seed of 0 uses the current time.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Synthesize produces a value, display unit, and description for a category.
// Values are rounded to one decimal place.
func (g *Generator) Synthesize(cat Category) (float64, string, string, error) {
	p, ok := profiles[cat]
	if !ok {
		return 0, "", "", ErrUnknownCategory
	}
	v := p.min + g.rng.Float64()*(p.max-p.min)
	v = math.Round(v*10) / 10
	return v, p.unit, p.description, nil
}
