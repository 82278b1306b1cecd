package curve

// Evaluator returns the curve value at x, or NaN when the curve is undefined there.
type Evaluator func(x float64) float64

// PlotPoint is a sparse chart record. Original is set only at sample x-coordinates and
// Target only at the query x-coordinate.
type PlotPoint struct {
	X            float64  `json:"x" yaml:"x"`
	Original     *float64 `json:"original,omitempty" yaml:"original,omitempty"`
	Interpolated *float64 `json:"interpolated,omitempty" yaml:"interpolated,omitempty"`
	Target       *float64 `json:"target,omitempty" yaml:"target,omitempty"`
}

const (
	DefaultTolerance    = 1e-9
	DefaultIntervals    = 100
	DefaultPaddingRatio = 0.2
	DefaultUnitMargin   = 1.0
)

type Options struct {
	// Tolerance is the distance under which two x-coordinates are the same plot entry.
	Tolerance    float64 `yaml:"tolerance" json:"tolerance"`
	Intervals    int     `yaml:"intervals" json:"intervals"`
	PaddingRatio float64 `yaml:"paddingRatio" json:"paddingRatio"`
	UnitMargin   float64 `yaml:"unitMargin" json:"unitMargin"`
}

func DefaultOptions() Options {
	return Options{
		Tolerance:    DefaultTolerance,
		Intervals:    DefaultIntervals,
		PaddingRatio: DefaultPaddingRatio,
		UnitMargin:   DefaultUnitMargin,
	}
}

// Normalize replaces non-positive fields with their defaults, so zero padding cannot be
// requested.
func (o Options) Normalize() Options {
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}

	if o.Intervals <= 0 {
		o.Intervals = DefaultIntervals
	}

	if o.PaddingRatio <= 0 {
		o.PaddingRatio = DefaultPaddingRatio
	}

	if o.UnitMargin <= 0 {
		o.UnitMargin = DefaultUnitMargin
	}

	return o
}
