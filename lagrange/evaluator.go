package lagrange

import "math"

// EvaluateAt returns P(x) for the polynomial through samples. It returns NaN for an empty
// sample set or when two samples share an x-coordinate.
func EvaluateAt(samples []Sample, x float64) float64 {
	n := len(samples)
	if n == 0 {
		return math.NaN()
	}

	var sum float64

	for j := 0; j < n; j++ {
		basis := 1.0

		for k := 0; k < n; k++ {
			if k == j {
				continue
			}

			d := samples[j].X - samples[k].X
			if d == 0 {
				return math.NaN()
			}

			basis *= (x - samples[k].X) / d
		}

		sum += samples[j].Y * basis
	}

	return sum
}

// Evaluator binds samples into a curve evaluator.
func Evaluator(samples []Sample) func(x float64) float64 {
	return func(x float64) float64 {
		return EvaluateAt(samples, x)
	}
}
