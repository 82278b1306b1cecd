package curve

import "math"

func floatPtr(v float64) *float64 {
	return &v
}

func findNear(ps []*PlotPoint, x, tolerance float64) *PlotPoint {
	for _, p := range ps {
		if math.Abs(p.X-x) < tolerance {
			return p
		}
	}

	return nil
}

// Clone returns a deep copy of ps.
func Clone(ps []PlotPoint) []PlotPoint {
	if ps == nil {
		return nil
	}

	cloned := make([]PlotPoint, len(ps))

	for idx, p := range ps {
		cloned[idx] = PlotPoint{X: p.X}

		if p.Original != nil {
			cloned[idx].Original = floatPtr(*p.Original)
		}

		if p.Interpolated != nil {
			cloned[idx].Interpolated = floatPtr(*p.Interpolated)
		}

		if p.Target != nil {
			cloned[idx].Target = floatPtr(*p.Target)
		}
	}

	return cloned
}
