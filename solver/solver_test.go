package solver

import (
	"testing"
	"time"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/liblagrange/curve"
	"github.com/sgostarter/liblagrange/lagrange"
	"github.com/stretchr/testify/assert"
)

var utSamples = []lagrange.Sample{{X: 0, Y: 1}, {X: 1, Y: 3}, {X: 2, Y: 2}}

func TestSolverCompute(t *testing.T) {
	s := NewSolver(nil, l.NewConsoleLoggerWrapper())

	res, err := s.Compute(utSamples, 1.5)
	assert.Nil(t, err)
	assert.EqualValues(t, 2.875, res.InterpolatedValue)
	assert.NotEmpty(t, res.PlotPoints)
	assert.InDelta(t, 2.875, s.EvaluateAt(utSamples, 1.5), 1e-12)

	_, err = s.Compute(nil, 1.5)
	assert.ErrorIs(t, err, lagrange.ErrEmptyInput)

	_, err = s.Compute([]lagrange.Sample{{X: 1, Y: 1}, {X: 1, Y: 2}}, 1.5)
	assert.ErrorIs(t, err, lagrange.ErrDuplicateX)
}

func TestSolverConfig(t *testing.T) {
	s := NewSolver(&Config{PlotIntervals: 4, PaddingRatio: 0.5}, nil)

	res, err := s.Compute(utSamples, 1.5)
	assert.Nil(t, err)
	assert.Len(t, res.PlotPoints, 6)
}

func TestSolverCache(t *testing.T) {
	s := NewSolver(&Config{CacheEnabled: true, CacheTTL: time.Minute}, nil)

	res1, err := s.Compute(utSamples, 1.5)
	assert.Nil(t, err)

	res1.TermDisplays[0] = "changed"
	res1.PlotPoints[0].X = -1000

	res2, err := s.Compute(utSamples, 1.5)
	assert.Nil(t, err)
	assert.EqualValues(t, "0.5000 * (x - 1)(x - 2)", res2.TermDisplays[0])
	assert.NotEqualValues(t, -1000, res2.PlotPoints[0].X)

	res3, err := s.Compute(utSamples, 1.5)
	assert.Nil(t, err)
	assert.EqualValues(t, res2, res3)
	assert.NotSame(t, res2, res3)

	impl, ok := s.(*solverImpl)
	assert.True(t, ok)
	assert.EqualValues(t, 1, impl.cachedResults.ItemCount())
}

func TestCacheKey(t *testing.T) {
	opts := curve.DefaultOptions()

	k1, err := cacheKey(utSamples, 1.5, opts)
	assert.Nil(t, err)

	k2, err := cacheKey(utSamples, 1.5, opts)
	assert.Nil(t, err)
	assert.EqualValues(t, k1, k2)

	k3, err := cacheKey(utSamples, 1.25, opts)
	assert.Nil(t, err)
	assert.NotEqualValues(t, k1, k3)

	opts.Intervals = 10
	k4, err := cacheKey(utSamples, 1.5, opts)
	assert.Nil(t, err)
	assert.NotEqualValues(t, k1, k4)
}
