package domain

const (
	// rothfuszMinTempC is 80 °F, the lower temperature bound of the regression.
	rothfuszMinTempC = 26.7
	// rothfuszMinHumidity is the lower humidity bound of the regression.
	rothfuszMinHumidity = 40.0
)

// HeatIndex returns the apparent temperature in °C for an air temperature in
// °C and a relative humidity in percent.
//
// The polynomial terms are evaluated in the published order so results match
// other implementations bit for bit.
func HeatIndex(tempC, humidityPct float64) float64 {
	if tempC < rothfuszMinTempC {
		return tempC
	}

	// Explicit float64 conversions stop the compiler from fusing a product
	// into the following addition (FMA), which would change the last bit.
	tf := float64(tempC*1.8) + 32
	rh := humidityPct

	hi := -42.379 +
		float64(2.04901523*tf) +
		float64(10.14333127*rh) -
		float64(.22475541*tf*rh) -
		float64(.00683783*tf*tf) -
		float64(.05481717*rh*rh) +
		float64(.00122874*tf*tf*rh) +
		float64(.00085282*tf*rh*rh) -
		float64(.00000199*tf*tf*rh*rh)

	return (hi - 32) / 1.8
}

// RiskLabel maps a heat index in °C onto the four-level risk scale:
//   - <27 safe
//   - <32 caution
//   - <41 danger
//   - otherwise extreme
func RiskLabel(heatIndexC float64) RiskCategory {
	switch {
	case heatIndexC < 27:
		return Safe
	case heatIndexC < 32:
		return Caution
	case heatIndexC < 41:
		return Danger
	default:
		return Extreme
	}
}

// RothfuszApplicable reports whether the regression is used inside its
// published validity range. Temperatures below 26.7 °C never reach the
// regression and are always applicable.
func RothfuszApplicable(tempC, humidityPct float64) bool {
	if tempC < rothfuszMinTempC {
		return true
	}
	return humidityPct >= rothfuszMinHumidity
}
