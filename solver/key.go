package solver

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/minio/highwayhash"
	"github.com/sgostarter/liblagrange/curve"
	"github.com/sgostarter/liblagrange/lagrange"
)

var hashKey = []byte("lagrange-solver-cache-hash-key32")

func putFloat(buf []byte, v float64) []byte {
	return binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
}

func cacheKey(samples []lagrange.Sample, queryX float64, opts curve.Options) (string, error) {
	buf := make([]byte, 0, 8*(2*len(samples)+5))

	buf = putFloat(buf, queryX)
	buf = putFloat(buf, opts.Tolerance)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(opts.Intervals))
	buf = putFloat(buf, opts.PaddingRatio)
	buf = putFloat(buf, opts.UnitMargin)

	for _, s := range samples {
		buf = putFloat(buf, s.X)
		buf = putFloat(buf, s.Y)
	}

	hash, err := highwayhash.New64(hashKey)
	if err != nil {
		return "", err
	}

	_, err = hash.Write(buf)
	if err != nil {
		return "", err
	}

	return strconv.FormatUint(hash.Sum64(), 36) + ":" + strconv.Itoa(len(samples)), nil
}
