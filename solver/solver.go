package solver

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/liblagrange/curve"
	"github.com/sgostarter/liblagrange/lagrange"
)

const defaultCacheTTL = time.Minute

func NewSolver(cfg *Config, logger l.Wrapper) Solver {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if cfg == nil {
		cfg = &Config{}
	}

	opts := curve.Options{
		Tolerance:    cfg.Tolerance,
		Intervals:    cfg.PlotIntervals,
		PaddingRatio: cfg.PaddingRatio,
		UnitMargin:   cfg.UnitMargin,
	}.Normalize()

	impl := &solverImpl{
		logger: logger.WithFields(l.StringField(l.ClsKey, "solverImpl")),
		opts:   opts,
	}

	if cfg.CacheEnabled {
		ttl := cfg.CacheTTL
		if ttl <= 0 {
			ttl = defaultCacheTTL
		}

		impl.cachedResults = cache.New(ttl, ttl*2)
	}

	return impl
}

type solverImpl struct {
	logger l.Wrapper
	opts   curve.Options

	cachedResults *cache.Cache
}

func (impl *solverImpl) Compute(samples []lagrange.Sample, queryX float64) (*lagrange.Result, error) {
	var key string

	if impl.cachedResults != nil {
		var err error

		key, err = cacheKey(samples, queryX, impl.opts)
		if err != nil {
			impl.logger.WithFields(l.ErrorField(err)).Error("build cache key failed")
		} else if i, ok := impl.cachedResults.Get(key); ok {
			if res, ok := i.(*lagrange.Result); ok {
				return res.Clone(), nil
			}
		}
	}

	res, err := lagrange.Compute(samples, queryX, lagrange.CurveOption(impl.opts))
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("kind", lagrange.KindOf(err).String()),
			l.IntField("samples", len(samples))).Debug("compute rejected")

		return nil, err
	}

	if impl.cachedResults != nil && key != "" {
		impl.cachedResults.SetDefault(key, res.Clone())
	}

	return res, nil
}

func (impl *solverImpl) EvaluateAt(samples []lagrange.Sample, x float64) float64 {
	return lagrange.EvaluateAt(samples, x)
}
