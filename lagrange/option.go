package lagrange

import "github.com/sgostarter/liblagrange/curve"

type Options struct {
	curve  curve.Options
	noPlot bool
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{
		curve: curve.DefaultOptions(),
	}

	for _, o := range option {
		o(opts)
	}

	opts.curve = opts.curve.Normalize()

	return opts
}

// ToleranceOption sets the distance under which two x-coordinates share a plot entry.
func ToleranceOption(tolerance float64) Option {
	return func(o *Options) {
		o.curve.Tolerance = tolerance
	}
}

func PlotIntervalsOption(intervals int) Option {
	return func(o *Options) {
		o.curve.Intervals = intervals
	}
}

// PaddingRatioOption sets the share of the x range added on each side of the plot domain.
// Non-positive ratios fall back to the default of 0.2.
func PaddingRatioOption(ratio float64) Option {
	return func(o *Options) {
		o.curve.PaddingRatio = ratio
	}
}

func UnitMarginOption(margin float64) Option {
	return func(o *Options) {
		o.curve.UnitMargin = margin
	}
}

func CurveOption(opts curve.Options) Option {
	return func(o *Options) {
		o.curve = opts
	}
}

func WithoutPlotOption() Option {
	return func(o *Options) {
		o.noPlot = true
	}
}
