// Package dataset synthesizes labeled heat-risk samples from uniformly drawn
// temperature and humidity pairs.
package dataset

import (
	"math/rand/v2"

	"github.com/couchcryptid/heat-risk-model/internal/domain"
)

// Sampling ranges. Both bounds are inclusive in spirit; a [0,1) source never
// quite reaches the upper bound.
const (
	MinTemperature = 20.0
	MaxTemperature = 45.0
	MinHumidity    = 20.0
	MaxHumidity    = 100.0
)

// Source yields uniform values in [0, 1).
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// GlobalSource returns the process-wide, entropy-seeded source.
func GlobalSource() Source {
	return globalSource{}
}

// NewSeededSource returns a deterministic source; equal seeds produce equal
// sequences.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generator draws samples from a Source and labels them with the reference
// heat-index model.
type Generator struct {
	src Source
}

// NewGenerator creates a Generator. A nil source falls back to GlobalSource.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = GlobalSource()
	}
	return &Generator{src: src}
}

// Generate returns exactly n labeled samples (none when n <= 0). Each sample
// consumes two draws: temperature first, then humidity.
func (g *Generator) Generate(n int) []domain.Sample {
	if n <= 0 {
		return []domain.Sample{}
	}
	samples := make([]domain.Sample, 0, n)
	for range n {
		temp := uniform(g.src, MinTemperature, MaxTemperature)
		hum := uniform(g.src, MinHumidity, MaxHumidity)
		samples = append(samples, domain.NewSample(temp, hum))
	}
	return samples
}

func uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}
