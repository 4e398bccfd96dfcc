package domain

// Sample is one synthetic observation labeled by the reference model.
type Sample struct {
	Temperature float64      `json:"temperature"` // °C
	Humidity    float64      `json:"humidity"`    // %
	HeatIndex   float64      `json:"heat_index"`  // °C
	Label       RiskCategory `json:"label"`
}

// NewSample labels a (temperature, humidity) pair with the reference model.
func NewSample(tempC, humidityPct float64) Sample {
	hi := HeatIndex(tempC, humidityPct)
	return Sample{
		Temperature: tempC,
		Humidity:    humidityPct,
		HeatIndex:   hi,
		Label:       RiskLabel(hi),
	}
}
