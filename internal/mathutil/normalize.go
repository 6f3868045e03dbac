// Package mathutil provides the amplitude normalisation and robust
// statistics used on photodiode windows.
//
// All functions operate on channel-major data: one slice per photodiode,
// each holding that channel's readings in time order. Division by a zero
// maximum or a zero standard deviation is deliberately left unguarded and
// yields non-finite values.
package mathutil

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/tphakala/go-photodiode-gestures/internal/simdops"
)

// medianQuantile selects the 50th percentile.
const medianQuantile = 0.5

// Rescale divides every channel by its own maximum, in place.
// After rescaling each channel's maximum is 1 unless the maximum was zero
// or negative.
func Rescale(channels [][]float64, ops *simdops.Ops) {
	for _, ch := range channels {
		if len(ch) == 0 {
			continue
		}
		ops.DivConst(ch, ch, floats.Max(ch))
	}
}

// ZScore subtracts the mean of all values and divides by their population
// standard deviation (ddof = 0), in place. Both statistics are scalars over
// the whole window, not per channel.
func ZScore(channels [][]float64, ops *simdops.Ops) {
	mean, std := MeanStdDev(channels)
	for _, ch := range channels {
		floats.AddConst(-mean, ch)
		ops.DivConst(ch, ch, std)
	}
}

// MeanStdDev returns the mean and population standard deviation of all
// values across every channel.
func MeanStdDev(channels [][]float64) (mean, std float64) {
	return stat.PopMeanStdDev(Concat(channels), nil)
}

// ChannelMax returns the maximum of every channel.
func ChannelMax(channels [][]float64) []float64 {
	out := make([]float64, len(channels))
	for i, ch := range channels {
		if len(ch) > 0 {
			out[i] = floats.Max(ch)
		}
	}
	return out
}

// Concat joins all channels into a single slice.
func Concat(channels [][]float64) []float64 {
	n := 0
	for _, ch := range channels {
		n += len(ch)
	}
	out := make([]float64, 0, n)
	for _, ch := range channels {
		out = append(out, ch...)
	}
	return out
}

// Median returns the empirical median of x. For an even number of values
// it returns the lower of the two middle values. x is not modified.
// Median panics if x is empty.
func Median(x []float64) float64 {
	sorted := slices.Clone(x)
	slices.Sort(sorted)
	return stat.Quantile(medianQuantile, stat.Empirical, sorted, nil)
}
