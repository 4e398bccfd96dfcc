package domain

import "strconv"

// RiskCategory is a heat-stress severity level. Values are ordered by
// increasing severity and match the integers returned by the exported C
// function.
type RiskCategory int

const (
	Safe RiskCategory = iota
	Caution
	Danger
	Extreme
)

// RiskCategories returns every category in severity order.
func RiskCategories() []RiskCategory {
	return []RiskCategory{Safe, Caution, Danger, Extreme}
}

// Valid reports whether c is one of the four known categories.
func (c RiskCategory) Valid() bool {
	return c >= Safe && c <= Extreme
}

func (c RiskCategory) String() string {
	switch c {
	case Safe:
		return "safe"
	case Caution:
		return "caution"
	case Danger:
		return "danger"
	case Extreme:
		return "extreme"
	default:
		return "risk(" + strconv.Itoa(int(c)) + ")"
	}
}

// Label is the upper-case name used in generated source comments.
func (c RiskCategory) Label() string {
	switch c {
	case Safe:
		return "SAFE"
	case Caution:
		return "CAUTION"
	case Danger:
		return "DANGER"
	case Extreme:
		return "EXTREME"
	default:
		return "UNKNOWN"
	}
}
