// Package testutil provides reusable test helpers and synthetic photodiode
// signals for the gesture preprocessing tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	StatTolerance    = 1e-6
	Float32Tolerance = 1e-5
)

// Synthetic signal parameters, in raw ADC counts.
const (
	baselineLevel   = 600.0 // Ambient light reading with no hand present
	channelOffset   = 45.0  // Per-channel baseline spread
	dipDepth        = 420.0 // Shadow depth when the hand covers a sensor
	dipWidth        = 9.0   // Gaussian width of the shadow in samples
	channelLag      = 6.0   // Samples between consecutive sensors being covered
	rippleAmplitude = 4.0   // Mains flicker ripple
	ripplePeriod    = 5.0   // Ripple period in samples
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertChannelsEqual verifies two channel-major windows match element-wise.
func AssertChannelsEqual(t *testing.T, expected, actual [][]float64, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), "channel count") {
		return false
	}
	for c := range expected {
		if !assert.InDeltaSlice(t, expected[c], actual[c], tolerance, "channel %d", c) {
			return false
		}
	}
	return true
}

// GestureWindow returns a channel-major window of raw photodiode counts in
// which a hand shadow passes over the sensors one after another, centred on
// sample dipCenter for the first channel.
func GestureWindow(channels, steps int, dipCenter float64) [][]float64 {
	out := make([][]float64, channels)
	for c := range out {
		out[c] = make([]float64, steps)
		center := dipCenter + float64(c)*channelLag
		base := baselineLevel + float64(c)*channelOffset
		for i := range out[c] {
			d := (float64(i) - center) / dipWidth
			shadow := dipDepth * math.Exp(-d*d/2)
			ripple := rippleAmplitude * math.Sin(2*math.Pi*float64(i)/ripplePeriod+float64(c))
			out[c][i] = base - shadow + ripple
		}
	}
	return out
}

// IdleReadings returns n readings per channel hovering around the ambient
// baseline, laid out as one reading (all channels) per element.
func IdleReadings(channels, n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, channels)
		for c := range out[i] {
			ripple := rippleAmplitude * math.Sin(2*math.Pi*float64(i)/ripplePeriod+float64(c))
			out[i][c] = baselineLevel + float64(c)*channelOffset + ripple
		}
	}
	return out
}

// Transpose converts between channel-major and reading-major layouts.
func Transpose(in [][]float64) [][]float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([][]float64, len(in[0]))
	for j := range out {
		out[j] = make([]float64, len(in))
		for i := range in {
			out[j][i] = in[i][j]
		}
	}
	return out
}
