package domain

import (
	"strconv"
	"strings"
)

// HumidityRule assigns Risk when humidity is strictly below Below.
type HumidityRule struct {
	Below float64
	Risk  RiskCategory
}

// TemperatureBand covers temperatures strictly below Below (and at or above
// the previous band's bound). Humidity rules are checked in order; Default
// applies when none match. The last band of a table is the unbounded
// catch-all and its Below is ignored.
type TemperatureBand struct {
	Below    float64
	Humidity []HumidityRule
	Default  RiskCategory
}

// RuleTable is an ordered list of temperature bands.
type RuleTable []TemperatureBand

// HeatRiskRules is the hand-authored decision table shipped to devices:
//
//	t<26.7                      -> safe
//	26.7<=t<30.0: h<60 safe     else caution
//	30.0<=t<35.0: h<35 safe,    h<65 caution, else danger
//	35.0<=t<40.0: h<25 caution, h<55 danger,  else extreme
//	t>=40.0:      h<20 danger   else extreme
var HeatRiskRules = RuleTable{
	{Below: 26.7, Default: Safe},
	{Below: 30.0, Humidity: []HumidityRule{{Below: 60, Risk: Safe}}, Default: Caution},
	{Below: 35.0, Humidity: []HumidityRule{{Below: 35, Risk: Safe}, {Below: 65, Risk: Caution}}, Default: Danger},
	{Below: 40.0, Humidity: []HumidityRule{{Below: 25, Risk: Caution}, {Below: 55, Risk: Danger}}, Default: Extreme},
	{Humidity: []HumidityRule{{Below: 20, Risk: Danger}}, Default: Extreme},
}

// Classify approximates the heat risk from raw temperature (°C) and relative
// humidity (%) using HeatRiskRules.
func Classify(tempC, humidityPct float64) RiskCategory {
	return HeatRiskRules.Classify(tempC, humidityPct)
}

// Classify walks the table. Comparisons are strict (<) everywhere, so a value
// equal to a bound falls through to the next branch. A NaN temperature or
// humidity fails every comparison and lands on the catch-all defaults.
func (rt RuleTable) Classify(tempC, humidityPct float64) RiskCategory {
	for i, band := range rt {
		if i < len(rt)-1 && !(tempC < band.Below) {
			continue
		}
		for _, rule := range band.Humidity {
			if humidityPct < rule.Below {
				return rule.Risk
			}
		}
		return band.Default
	}
	return Safe
}

// LowerBound returns the inclusive lower temperature bound of band i, as a
// display string for generated comments. The first band has none.
func (rt RuleTable) LowerBound(i int) (string, bool) {
	if i <= 0 || i >= len(rt) {
		return "", false
	}
	return FormatThreshold(rt[i-1].Below), true
}

// FormatThreshold prints a threshold as the shortest decimal that round-trips,
// keeping a trailing ".0" on integral values so it stays a floating literal.
func FormatThreshold(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
