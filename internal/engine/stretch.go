// Package engine implements the window-level signal transforms: time
// stretching to a fixed number of steps and FFT low-pass filtering.
package engine

import "math"

// StretchStage resamples each channel of a window to a fixed length using
// cubic Hermite (Catmull-Rom) interpolation. The first and last samples of
// the input map exactly onto the first and last output samples.
type StretchStage struct {
	length int
}

// NewStretchStage creates a stage that stretches windows to length steps.
func NewStretchStage(length int) *StretchStage {
	return &StretchStage{length: length}
}

// Length returns the target number of steps.
func (s *StretchStage) Length() int {
	return s.length
}

// Process stretches every channel in place, replacing the channel slices.
func (s *StretchStage) Process(channels [][]float64) error {
	for c, ch := range channels {
		channels[c] = Stretch(ch, s.length)
	}
	return nil
}

// Name identifies the stage in logs.
func (s *StretchStage) Name() string {
	return "stretch"
}

// Stretch returns x resampled to n points. Inputs of length n are copied
// unchanged and single-sample inputs are held constant.
func Stretch(x []float64, n int) []float64 {
	if n <= 0 || len(x) == 0 {
		return []float64{}
	}

	out := make([]float64, n)
	if len(x) == n {
		copy(out, x)
		return out
	}
	if len(x) == 1 || n == 1 {
		for i := range out {
			out[i] = x[0]
		}
		return out
	}

	last := len(x) - 1
	step := float64(last) / float64(n-1)
	for i := range out {
		pos := float64(i) * step
		k := int(math.Floor(pos))
		frac := pos - float64(k)
		if k >= last {
			k, frac = last, 0
		}
		out[i] = hermite(
			x[clampIndex(k-1, last)],
			x[k],
			x[clampIndex(k+1, last)],
			x[clampIndex(k+2, last)],
			frac,
		)
	}
	return out
}

// hermite performs cubic Hermite interpolation between y1 and y2.
// Uses the formula: y = ((a*x + b)*x + c)*x + d
// where x is the fractional position between y1 and y2.
func hermite(y0, y1, y2, y3, x float64) float64 {
	coefA := -hermiteCoeff0_5*y0 + hermiteCoeff1_5*y1 - hermiteCoeff1_5*y2 + hermiteCoeff0_5*y3
	coefB := y0 - hermiteCoeff2_5*y1 + 2*y2 - hermiteCoeff0_5*y3
	coefC := -hermiteCoeff0_5*y0 + hermiteCoeff0_5*y2
	coefD := y1

	return ((coefA*x+coefB)*x+coefC)*x + coefD
}

func clampIndex(i, last int) int {
	return max(0, min(i, last))
}
