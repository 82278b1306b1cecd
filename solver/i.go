package solver

import (
	"time"

	"github.com/sgostarter/liblagrange/lagrange"
)

type Config struct {
	Tolerance     float64 `yaml:"tolerance" json:"tolerance"`
	PlotIntervals int     `yaml:"plotIntervals" json:"plotIntervals"`
	PaddingRatio  float64 `yaml:"paddingRatio" json:"paddingRatio"`
	UnitMargin    float64 `yaml:"unitMargin" json:"unitMargin"`

	CacheEnabled bool          `yaml:"cacheEnabled" json:"cacheEnabled"`
	CacheTTL     time.Duration `yaml:"cacheTTL" json:"cacheTTL"`
}

type Solver interface {
	Compute(samples []lagrange.Sample, queryX float64) (*lagrange.Result, error)
	EvaluateAt(samples []lagrange.Sample, x float64) float64
}
