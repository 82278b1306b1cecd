package input

import (
	"context"
	"fmt"

	"github.com/sgostarter/liblagrange/lagrange"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// RawPoint keeps the text of a point as entered.
type RawPoint struct {
	X string `yaml:"x" json:"x"`
	Y string `yaml:"y" json:"y"`
}

// SampleSet is the YAML document form of one interpolation request.
type SampleSet struct {
	Points []RawPoint `yaml:"points" json:"points"`
	QueryX string     `yaml:"queryX" json:"queryX"`
}

func (ss *SampleSet) Parse() (samples []lagrange.Sample, queryX float64, err error) {
	samples = make([]lagrange.Sample, 0, len(ss.Points))

	for idx, rp := range ss.Points {
		p, e := ParsePoint(rp.X, rp.Y)
		if e != nil {
			err = fmt.Errorf("point %d: %w", idx, e)

			return
		}

		samples = append(samples, p)
	}

	if err = Validate(samples); err != nil {
		return
	}

	queryX, err = ParseQuery(ss.QueryX)

	return
}

func DecodeSampleSet(d []byte) (*SampleSet, error) {
	var ss SampleSet

	if err := yaml.Unmarshal(d, &ss); err != nil {
		return nil, err
	}

	return &ss, nil
}

// LoadSampleSet reads a sample set document from any URL afs can download, including
// plain file paths.
func LoadSampleSet(ctx context.Context, url string) (*SampleSet, error) {
	d, err := afs.New().DownloadWithURL(ctx, url)
	if err != nil {
		return nil, err
	}

	return DecodeSampleSet(d)
}
