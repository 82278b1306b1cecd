// Package input turns user supplied text into samples for the lagrange package.
package input

import (
	"fmt"
	"math"
	"strings"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/liblagrange/lagrange"
	"github.com/spf13/cast"
)

const (
	msgXNotNumber     = "X must be a number."
	msgYNotNumber     = "Y must be a number."
	msgQueryNotNumber = "Interpolation X must be a number."
)

func invalidArgument(msg string) error {
	return fmt.Errorf("%w: %s", commerr.ErrInvalidArgument, msg)
}

func parseNumber(text, msg string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, invalidArgument(msg)
	}

	v, err := cast.ToFloat64E(text)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalidArgument(msg)
	}

	return v, nil
}

func ParsePoint(xText, yText string) (p lagrange.Sample, err error) {
	p.X, err = parseNumber(xText, msgXNotNumber)
	if err != nil {
		return
	}

	p.Y, err = parseNumber(yText, msgYNotNumber)

	return
}

func ParseQuery(text string) (float64, error) {
	return parseNumber(text, msgQueryNotNumber)
}

// ParsePoints parses a list like "0:1, 1:3; 2:2". Pairs are separated by ',' or ';'
// and x is separated from y by ':'.
func ParsePoints(text string) ([]lagrange.Sample, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';'
	})

	samples := make([]lagrange.Sample, 0, len(fields))

	for idx, field := range fields {
		ps := strings.Split(field, ":")
		if len(ps) != 2 {
			return nil, invalidArgument(fmt.Sprintf("point %d: want x:y, got %q", idx, strings.TrimSpace(field)))
		}

		p, err := ParsePoint(ps[0], ps[1])
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", idx, err)
		}

		samples = append(samples, p)
	}

	return samples, nil
}

// Validate applies the form rules before the core is called: at least one sample and
// unique x values.
func Validate(samples []lagrange.Sample) error {
	if len(samples) < 1 {
		return lagrange.ErrEmptyInput
	}

	seen := make(map[float64]struct{}, len(samples))

	for _, s := range samples {
		if _, ok := seen[s.X]; ok {
			return lagrange.ErrDuplicateX
		}

		seen[s.X] = struct{}{}
	}

	return nil
}
