package lagrange

import "github.com/sgostarter/liblagrange/curve"

// Sample is a known point the polynomial passes through.
type Sample struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// BasisTerm is the recorded derivation of one term y_j * L_j(q).
type BasisTerm struct {
	TermIndex int     `json:"termIndex" yaml:"termIndex"`
	Y         float64 `json:"y" yaml:"y"`

	NumeratorSymbolic   string  `json:"numeratorSymbolic" yaml:"numeratorSymbolic"`
	DenominatorSymbolic string  `json:"denominatorSymbolic" yaml:"denominatorSymbolic"`
	DenominatorValue    float64 `json:"denominatorValue" yaml:"denominatorValue"`
	BasisSymbolic       string  `json:"basisSymbolic" yaml:"basisSymbolic"`

	NumeratorAtQuery      string  `json:"numeratorAtQuery" yaml:"numeratorAtQuery"`
	NumeratorAtQueryValue float64 `json:"numeratorAtQueryValue" yaml:"numeratorAtQueryValue"`
	BasisValue            float64 `json:"basisValue" yaml:"basisValue"`

	TermSymbolic string  `json:"termSymbolic" yaml:"termSymbolic"`
	TermValue    float64 `json:"termValue" yaml:"termValue"`
}

type Result struct {
	QueryX            float64           `json:"queryX" yaml:"queryX"`
	InterpolatedValue float64           `json:"interpolatedValue" yaml:"interpolatedValue"`
	TermDisplays      []string          `json:"termDisplays" yaml:"termDisplays"`
	Trace             []BasisTerm       `json:"trace" yaml:"trace"`
	PlotPoints        []curve.PlotPoint `json:"plotPoints,omitempty" yaml:"plotPoints,omitempty"`
}

// Clone returns a deep copy of r.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}

	cloned := *r
	cloned.TermDisplays = append([]string(nil), r.TermDisplays...)
	cloned.Trace = append([]BasisTerm(nil), r.Trace...)
	cloned.PlotPoints = curve.Clone(r.PlotPoints)

	return &cloned
}

func splitSamples(samples []Sample) (xs, ys []float64) {
	xs = make([]float64, len(samples))
	ys = make([]float64, len(samples))

	for idx, s := range samples {
		xs[idx] = s.X
		ys[idx] = s.Y
	}

	return
}
