// Command lagrange evaluates the Lagrange interpolating polynomial and prints its derivation.
//
// Usage:
//
//	lagrange -points "0:1,1:3,2:2" -x 1.5
//	lagrange -file samples.yaml -format json
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/liblagrange/input"
	"github.com/sgostarter/liblagrange/lagrange"
	"github.com/sgostarter/liblagrange/report"
	"github.com/sgostarter/liblagrange/solver"
)

func main() {
	points := flag.String("points", "", "sample points as x:y pairs separated by commas")
	queryX := flag.String("x", "", "x at which to evaluate the polynomial")
	file := flag.String("file", "", "YAML sample set (path or afs URL); overrides -points and -x")
	format := flag.String("format", string(report.FormatText), "output format: text, json or yaml")
	noPlot := flag.Bool("noplot", false, "omit plot points from json/yaml output")
	flag.Parse()

	logger := l.NewConsoleLoggerWrapper()

	samples, x, err := loadInput(*file, *points, *queryX)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("invalid input")
		os.Exit(2)
	}

	res, err := solver.NewSolver(nil, logger).Compute(samples, x)
	if err != nil {
		logger.WithFields(l.ErrorField(err), l.StringField("kind", lagrange.KindOf(err).String())).Error("compute failed")
		os.Exit(1)
	}

	if *noPlot {
		res.PlotPoints = nil
	}

	d, err := report.Encode(res, report.Format(*format))
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("encode failed")
		os.Exit(2)
	}

	fmt.Println(string(d))
}

func loadInput(file, points, queryX string) ([]lagrange.Sample, float64, error) {
	if file != "" {
		ss, err := input.LoadSampleSet(context.Background(), file)
		if err != nil {
			return nil, 0, err
		}

		return ss.Parse()
	}

	samples, err := input.ParsePoints(points)
	if err != nil {
		return nil, 0, err
	}

	if err = input.Validate(samples); err != nil {
		return nil, 0, err
	}

	x, err := input.ParseQuery(queryX)
	if err != nil {
		return nil, 0, err
	}

	return samples, x, nil
}
