// Package filter provides the IIR smoothing filter applied to photodiode windows.
package filter

import (
	"math"
	"math/cmplx"
)

const (
	// Feedback coefficients of the 2nd order low-pass (fs = 100 Hz, fc = 25 Hz).
	defaultA0 = 0.28094574
	defaultA1 = -0.18556054

	// Feedforward coefficients.
	defaultB0 = 0.2261537
	defaultB1 = 0.4523074
	defaultB2 = 0.2261537

	// The recurrence needs two samples of history; shorter input passes through.
	minFilterLength = 2
)

// Butterworth is a 2nd order IIR low-pass described by its recurrence
// coefficients:
//
//	y[i] = A[0]*y[i-1] + A[1]*y[i-2] + B[0]*x[i] + B[1]*x[i-1] + B[2]*x[i-2]
//
// The first two outputs equal the first two inputs; there is no warm-up.
type Butterworth struct {
	A [2]float64 // Feedback (previous outputs)
	B [3]float64 // Feedforward (current and previous inputs)
}

// DefaultButterworth returns the fixed low-pass used by the preprocessing
// pipeline, designed for 100 Hz sampling with a 25 Hz cutoff.
func DefaultButterworth() *Butterworth {
	return &Butterworth{
		A: [2]float64{defaultA0, defaultA1},
		B: [3]float64{defaultB0, defaultB1, defaultB2},
	}
}

// Apply filters x in place, sequentially in index order.
// Sequences shorter than two samples are left untouched.
func (f *Butterworth) Apply(x []float64) {
	if len(x) <= minFilterLength {
		return
	}

	// x[i-1] and x[i-2] are overwritten with outputs as the loop advances,
	// so the raw inputs are carried separately.
	in1, in2 := x[1], x[0]
	for i := minFilterLength; i < len(x); i++ {
		in0 := x[i]
		x[i] = f.A[0]*x[i-1] + f.A[1]*x[i-2] +
			f.B[0]*in0 + f.B[1]*in1 + f.B[2]*in2
		in2, in1 = in1, in0
	}
}

// Filter returns a filtered copy of x, leaving x unchanged.
func (f *Butterworth) Filter(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	f.Apply(out)
	return out
}

// DCGain returns the steady-state gain for constant input.
func (f *Butterworth) DCGain() float64 {
	return (f.B[0] + f.B[1] + f.B[2]) / (1 - f.A[0] - f.A[1])
}

// Response returns the magnitude response |H(e^jw)| at freqHz for the
// given sample rate.
func (f *Butterworth) Response(freqHz, sampleRate float64) float64 {
	w := 2 * math.Pi * freqHz / sampleRate
	z1 := cmplx.Exp(complex(0, -w))
	z2 := z1 * z1

	num := complex(f.B[0], 0) + complex(f.B[1], 0)*z1 + complex(f.B[2], 0)*z2
	den := 1 - complex(f.A[0], 0)*z1 - complex(f.A[1], 0)*z2
	return cmplx.Abs(num / den)
}

// ResponseDB returns the magnitude response in decibels.
func (f *Butterworth) ResponseDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(f.Response(freqHz, sampleRate))
}
