// Package lagrange evaluates the Lagrange interpolating polynomial through a set of samples
// and explains the evaluation term by term.
//
// Every function in this package is pure: no shared state, no I/O, safe for concurrent use.
package lagrange

import "github.com/sgostarter/liblagrange/curve"

// Compute is ComputeWithTrace plus the sampled plot sequence of the polynomial.
func Compute(samples []Sample, queryX float64, options ...Option) (*Result, error) {
	opts := optionNew(options...)

	res, err := ComputeWithTrace(samples, queryX)
	if err != nil {
		return nil, err
	}

	if opts.noPlot {
		return res, nil
	}

	xs, ys := splitSamples(samples)
	res.PlotPoints = curve.Sample(xs, ys, queryX, res.InterpolatedValue, Evaluator(samples), opts.curve)

	return res, nil
}
