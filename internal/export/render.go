// Package export renders the static heat-risk classifier as C source for
// microcontroller firmware and writes it to a sink.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/couchcryptid/heat-risk-model/internal/domain"
)

// Defaults for the generated header.
const (
	DefaultFuncName  = "predictHeatRisk"
	DefaultGuard     = "HEAT_INDEX_MODEL_H"
	DefaultTitle     = "Heat risk model"
	DefaultGenerator = "heatrisk"
)

var cIdentRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var headerTmpl = template.Must(template.New("header").Parse(`/**
 * {{.Title}}
 * Generated by {{.Generator}}; do not edit by hand.
 *
 * Inputs:
 * - temperature (float): °C
 * - humidity (float): %
 *
 * Output:
 * - int: {{.Legend}}
 */
#ifndef {{.Guard}}
#define {{.Guard}}

int {{.FuncName}}(float t, float h) {
{{- range .Bands}}
{{- if .Last}}
    // t >= {{.Lower}}
{{- range .Rules}}
    if (h < {{.Below}}) return {{.Code}}; // {{.Label}}
{{- end}}
    return {{.Default.Code}}; // {{.Default.Label}}
{{- else}}
    if (t < {{.Below}}) {
{{- range .Rules}}
        if (h < {{.Below}}) return {{.Code}}; // {{.Label}}
{{- end}}
        return {{.Default.Code}}; // {{.Default.Label}}
    }
{{end}}
{{- end}}
}

#endif // {{.Guard}}
`))

// Renderer turns a rule table into a C header. Zero-valued string fields fall
// back to the package defaults.
type Renderer struct {
	Rules     domain.RuleTable
	FuncName  string
	Guard     string
	Title     string
	Generator string
}

// NewRenderer returns a Renderer for rules with default naming.
func NewRenderer(rules domain.RuleTable) *Renderer {
	return &Renderer{
		Rules:     rules,
		FuncName:  DefaultFuncName,
		Guard:     DefaultGuard,
		Title:     DefaultTitle,
		Generator: DefaultGenerator,
	}
}

type ruleView struct {
	Below string
	Code  int
	Label string
}

type bandView struct {
	Last    bool
	Below   string
	Lower   string
	Rules   []ruleView
	Default ruleView
}

type headerView struct {
	Title     string
	Generator string
	Legend    string
	Guard     string
	FuncName  string
	Bands     []bandView
}

// Render produces the header text. It fails on an empty table, an unknown
// risk category or a name that is not a valid C identifier.
func (r *Renderer) Render() (string, error) {
	view, err := r.view()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := headerTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render header: %w", err)
	}
	return buf.String(), nil
}

func (r *Renderer) view() (headerView, error) {
	if len(r.Rules) == 0 {
		return headerView{}, errors.New("render header: empty rule table")
	}

	v := headerView{
		Title:     orDefault(r.Title, DefaultTitle),
		Generator: orDefault(r.Generator, DefaultGenerator),
		Legend:    legend(),
		Guard:     orDefault(r.Guard, DefaultGuard),
		FuncName:  orDefault(r.FuncName, DefaultFuncName),
		Bands:     make([]bandView, 0, len(r.Rules)),
	}
	if !cIdentRe.MatchString(v.FuncName) {
		return headerView{}, fmt.Errorf("render header: invalid function name %q", v.FuncName)
	}
	if !cIdentRe.MatchString(v.Guard) {
		return headerView{}, fmt.Errorf("render header: invalid include guard %q", v.Guard)
	}

	for i, band := range r.Rules {
		def, err := newRuleView(0, band.Default)
		if err != nil {
			return headerView{}, fmt.Errorf("render header: band %d: %w", i, err)
		}
		bv := bandView{
			Last:    i == len(r.Rules)-1,
			Below:   domain.FormatThreshold(band.Below),
			Default: def,
			Rules:   make([]ruleView, 0, len(band.Humidity)),
		}
		if lower, ok := r.Rules.LowerBound(i); ok {
			bv.Lower = lower
		} else {
			bv.Lower = "-inf"
		}
		for j, rule := range band.Humidity {
			rv, err := newRuleView(rule.Below, rule.Risk)
			if err != nil {
				return headerView{}, fmt.Errorf("render header: band %d rule %d: %w", i, j, err)
			}
			bv.Rules = append(bv.Rules, rv)
		}
		v.Bands = append(v.Bands, bv)
	}
	return v, nil
}

func newRuleView(below float64, risk domain.RiskCategory) (ruleView, error) {
	if !risk.Valid() {
		return ruleView{}, fmt.Errorf("unknown risk category %d", int(risk))
	}
	return ruleView{
		Below: domain.FormatThreshold(below),
		Code:  int(risk),
		Label: risk.Label(),
	}, nil
}

// legend renders "0=Safe, 1=Caution, 2=Danger, 3=Extreme".
func legend() string {
	parts := make([]string, 0, len(domain.RiskCategories()))
	for _, c := range domain.RiskCategories() {
		name := c.String()
		parts = append(parts, fmt.Sprintf("%d=%s%s", int(c), strings.ToUpper(name[:1]), name[1:]))
	}
	return strings.Join(parts, ", ")
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
