package dataset

import (
	"math"

	"github.com/couchcryptid/heat-risk-model/internal/domain"
)

// Range is the observed minimum and maximum of a column.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r *Range) observe(v float64) {
	r.Min = math.Min(r.Min, v)
	r.Max = math.Max(r.Max, v)
}

// Summary aggregates a generated dataset for progress reporting.
type Summary struct {
	Total       int                         `json:"total"`
	ByLabel     map[domain.RiskCategory]int `json:"by_label"`
	Temperature Range                       `json:"temperature"`
	Humidity    Range                       `json:"humidity"`
	HeatIndex   Range                       `json:"heat_index"`

	// OutOfRange counts samples that used the Rothfusz regression outside
	// its published validity range.
	OutOfRange int `json:"out_of_range"`
}

// Summarize counts labels and tracks column ranges. Ranges are zero for an
// empty dataset.
func Summarize(samples []domain.Sample) Summary {
	s := Summary{
		Total:   len(samples),
		ByLabel: make(map[domain.RiskCategory]int, len(domain.RiskCategories())),
	}
	for _, c := range domain.RiskCategories() {
		s.ByLabel[c] = 0
	}
	if len(samples) == 0 {
		return s
	}

	first := samples[0]
	s.Temperature = Range{Min: first.Temperature, Max: first.Temperature}
	s.Humidity = Range{Min: first.Humidity, Max: first.Humidity}
	s.HeatIndex = Range{Min: first.HeatIndex, Max: first.HeatIndex}

	for i := range samples {
		smp := &samples[i]
		s.ByLabel[smp.Label]++
		s.Temperature.observe(smp.Temperature)
		s.Humidity.observe(smp.Humidity)
		s.HeatIndex.observe(smp.HeatIndex)
		if !domain.RothfuszApplicable(smp.Temperature, smp.Humidity) {
			s.OutOfRange++
		}
	}
	return s
}

// LabelCounts flattens ByLabel into slog-friendly key/value pairs in severity
// order, e.g. "safe", 10, "caution", 4, ...
func (s Summary) LabelCounts() []any {
	out := make([]any, 0, 2*len(domain.RiskCategories()))
	for _, c := range domain.RiskCategories() {
		out = append(out, c.String(), s.ByLabel[c])
	}
	return out
}
