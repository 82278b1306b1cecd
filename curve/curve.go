package curve

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Sample builds the plot sequence for a curve through the points (xs[i], ys[i]).
//
// The domain is padded by opts.PaddingRatio of the x range on each side, or by
// opts.UnitMargin when the range is zero, and sampled at opts.Intervals+1 evenly spaced
// points. Every sample and finally the query point are merged into the sequence; target is
// recorded as is on the query entry rather than re-evaluated.
func Sample(xs, ys []float64, queryX, target float64, eval Evaluator, opts Options) []PlotPoint {
	if len(xs) == 0 || len(xs) != len(ys) || eval == nil {
		return nil
	}

	opts = opts.Normalize()

	minX := floats.Min(xs)
	maxX := floats.Max(xs)

	padding := (maxX - minX) * opts.PaddingRatio
	if maxX-minX == 0 {
		padding = opts.UnitMargin
	}

	grid := floats.Span(make([]float64, opts.Intervals+1), minX-padding, maxX+padding)

	ps := make([]*PlotPoint, 0, len(grid)+len(xs)+1)

	for _, x := range grid {
		v := eval(x)
		if math.IsNaN(v) {
			continue
		}

		ps = append(ps, &PlotPoint{X: x, Interpolated: floatPtr(v)})
	}

	for idx, x := range xs {
		if p := findNear(ps, x, opts.Tolerance); p != nil {
			p.Original = floatPtr(ys[idx])

			continue
		}

		p := &PlotPoint{X: x, Original: floatPtr(ys[idx])}
		if v := eval(x); !math.IsNaN(v) {
			p.Interpolated = floatPtr(v)
		}

		ps = append(ps, p)
	}

	if v := eval(queryX); !math.IsNaN(v) {
		if p := findNear(ps, queryX, opts.Tolerance); p != nil {
			p.Interpolated = floatPtr(v)
			p.Target = floatPtr(target)
		} else {
			ps = append(ps, &PlotPoint{X: queryX, Interpolated: floatPtr(v), Target: floatPtr(target)})
		}
	}

	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].X < ps[j].X
	})

	points := make([]PlotPoint, len(ps))
	for idx, p := range ps {
		points[idx] = *p
	}

	return points
}

// Find returns the first entry within tolerance of x.
func Find(ps []PlotPoint, x, tolerance float64) (PlotPoint, bool) {
	for _, p := range ps {
		if math.Abs(p.X-x) < tolerance {
			return p, true
		}
	}

	return PlotPoint{}, false
}
