package gestures

import (
	"github.com/tphakala/go-photodiode-gestures/internal/filter"
	"github.com/tphakala/go-photodiode-gestures/internal/mathutil"
	"github.com/tphakala/go-photodiode-gestures/internal/simdops"
)

// ButterworthFilter returns a copy of x smoothed with the fixed 2nd order
// low-pass. The first two values pass through unchanged and sequences
// shorter than two samples are returned as-is.
func ButterworthFilter(x []float64) []float64 {
	return filter.DefaultButterworth().Filter(x)
}

// FilterSample applies ButterworthFilter to every channel of s.
func FilterSample(s Sample) Sample {
	data := cloneChannels(s.data)
	f := filter.DefaultButterworth()
	for _, ch := range data {
		f.Apply(ch)
	}
	return Sample{data: data}
}

// Rescale divides every channel of s by that channel's maximum. A channel
// whose maximum is zero produces non-finite values.
func Rescale(s Sample) Sample {
	data := cloneChannels(s.data)
	mathutil.Rescale(data, simdops.Default())
	return Sample{data: data}
}

// Normalize subtracts the mean of every value in s and divides by their
// population standard deviation. A constant sample produces non-finite
// values.
func Normalize(s Sample) Sample {
	data := cloneChannels(s.data)
	mathutil.ZScore(data, simdops.Default())
	return Sample{data: data}
}

// Preprocess runs s through a one-shot preprocessor with the default
// configuration for order.
func Preprocess(s Sample, order Order) (Sample, error) {
	config := DefaultConfig(order)
	p, err := NewPreprocessor(&config)
	if err != nil {
		return Sample{}, err
	}
	return p.Process(s)
}

// PreprocessRows is like Preprocess but takes and returns (time, channel)
// rows.
func PreprocessRows(rows [][]float64, order Order) ([][]float64, error) {
	s, err := SampleFromRows(rows)
	if err != nil {
		return nil, err
	}
	out, err := Preprocess(s, order)
	if err != nil {
		return nil, err
	}
	return out.Rows(), nil
}
