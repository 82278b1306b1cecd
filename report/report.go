// Package report renders interpolation results for people and for other programs.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sgostarter/liblagrange/lagrange"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown report format")

func fixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func literal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Text writes the derivation of res step by step.
func Text(res *lagrange.Result) string {
	if res == nil {
		return ""
	}

	q := literal(res.QueryX)

	var ss strings.Builder

	ss.WriteString(fmt.Sprintf("L(%s) = %s\n\n", q, fixed(res.InterpolatedValue, 6)))
	ss.WriteString("P(x) = " + strings.Join(res.TermDisplays, " + ") + "\n")

	for idx, step := range res.Trace {
		j := strconv.Itoa(step.TermIndex)
		d := fixed(step.DenominatorValue, 6)

		ss.WriteString(fmt.Sprintf("\nTerm %d: contribution of y%s = %s\n", idx+1, j, fixed(step.Y, 4)))
		ss.WriteString(fmt.Sprintf("  L%s(x) = %s / (%s)\n", j, step.NumeratorSymbolic, step.DenominatorSymbolic))
		ss.WriteString(fmt.Sprintf("        = %s\n", step.BasisSymbolic))
		ss.WriteString(fmt.Sprintf("  L%s(%s) = (%s) / %s\n", j, q, step.NumeratorAtQuery, d))
		ss.WriteString(fmt.Sprintf("        = %s / %s = %s\n", fixed(step.NumeratorAtQueryValue, 6), d, fixed(step.BasisValue, 6)))
		ss.WriteString(fmt.Sprintf("  y%s * L%s(%s) = %s * %s = %s\n", j, j, q, fixed(step.Y, 4),
			fixed(step.BasisValue, 6), fixed(step.TermValue, 6)))
	}

	terms := make([]string, len(res.Trace))
	for idx, step := range res.Trace {
		terms[idx] = fixed(step.TermValue, 6)
	}

	ss.WriteString(fmt.Sprintf("\nL(%s) = %s = %s\n", q, strings.Join(terms, " + "), fixed(res.InterpolatedValue, 6)))

	return ss.String()
}

func Encode(res *lagrange.Result, format Format) ([]byte, error) {
	switch format {
	case FormatText, "":
		return []byte(Text(res)), nil
	case FormatJSON:
		return json.MarshalIndent(res, "", "  ")
	case FormatYAML:
		return yaml.Marshal(res)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}
