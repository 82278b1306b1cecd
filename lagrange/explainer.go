package lagrange

import (
	"math"
	"strconv"
	"strings"
)

const (
	trivialNumerator = "1"
	factorSeparator  = "*"
)

func formatLiteral(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatFixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// ComputeWithTrace evaluates the polynomial through samples at queryX and records the
// derivation of every term. PlotPoints is left empty.
func ComputeWithTrace(samples []Sample, queryX float64) (*Result, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}

	if !uniqueX(samples) {
		return nil, ErrDuplicateX
	}

	n := len(samples)

	res := &Result{
		QueryX:       queryX,
		TermDisplays: make([]string, 0, n),
		Trace:        make([]BasisTerm, 0, n),
	}

	var sum float64

	for j := 0; j < n; j++ {
		term, err := explainTerm(samples, j, queryX)
		if err != nil {
			return nil, err
		}

		res.TermDisplays = append(res.TermDisplays, termDisplay(term))
		res.Trace = append(res.Trace, term)

		sum += term.TermValue
	}

	if math.IsNaN(sum) {
		return nil, ErrNumericInstability
	}

	res.InterpolatedValue = sum

	return res, nil
}

func uniqueX(samples []Sample) bool {
	seen := make(map[float64]struct{}, len(samples))

	for _, s := range samples {
		if _, ok := seen[s.X]; ok {
			return false
		}

		seen[s.X] = struct{}{}
	}

	return true
}

func explainTerm(samples []Sample, j int, queryX float64) (term BasisTerm, err error) {
	xj := samples[j].X

	term = BasisTerm{
		TermIndex:             j,
		Y:                     samples[j].Y,
		DenominatorValue:      1,
		NumeratorAtQueryValue: 1,
	}

	var numerator, denominator strings.Builder

	atQuery := make([]string, 0, len(samples)-1)

	for k, s := range samples {
		if k == j {
			continue
		}

		xk := formatLiteral(s.X)

		numerator.WriteString("(x - " + xk + ")")
		denominator.WriteString("(" + formatLiteral(xj) + " - " + xk + ")")
		term.DenominatorValue *= xj - s.X

		atQuery = append(atQuery, "("+formatLiteral(queryX)+" - "+xk+")")
		term.NumeratorAtQueryValue *= queryX - s.X
	}

	if term.DenominatorValue == 0 {
		err = ErrDuplicateX

		return
	}

	term.NumeratorSymbolic = orTrivial(numerator.String())
	term.DenominatorSymbolic = orTrivial(denominator.String())
	term.NumeratorAtQuery = orTrivial(strings.Join(atQuery, factorSeparator))
	term.BasisSymbolic = "(" + term.NumeratorSymbolic + ") / " + formatFixed(term.DenominatorValue, 6)
	term.BasisValue = term.NumeratorAtQueryValue / term.DenominatorValue
	term.TermValue = term.Y * term.BasisValue

	if term.NumeratorSymbolic == trivialNumerator {
		term.TermSymbolic = formatFixed(term.Y, 4)
	} else {
		term.TermSymbolic = formatFixed(term.Y, 4) + " * " + term.BasisSymbolic
	}

	return
}

func orTrivial(s string) string {
	if s == "" {
		return trivialNumerator
	}

	return s
}

// termDisplay renders the term as its coefficient y_j/D_j times the symbolic numerator.
func termDisplay(term BasisTerm) string {
	if term.NumeratorSymbolic == trivialNumerator {
		return formatFixed(term.Y, 4)
	}

	return formatFixed(term.Y/term.DenominatorValue, 4) + " * " + term.NumeratorSymbolic
}
