package engine

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/tphakala/go-photodiode-gestures/internal/simdops"
)

// LowPassStage is a brick-wall FFT low-pass. Each channel is transformed,
// every bin above the cutoff index is zeroed and the channel is transformed
// back at its original length.
//
// The cutoff index is int(cutoffHz * n / sampleRate) for a channel of n
// samples, so the effective cutoff depends on window length.
type LowPassStage struct {
	cutoffHz   float64
	sampleRate float64
	ops        *simdops.Ops
}

// NewLowPassStage creates an FFT low-pass stage. The cutoff must be positive
// and below the Nyquist frequency.
func NewLowPassStage(cutoffHz, sampleRate float64, ops *simdops.Ops) (*LowPassStage, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %v", sampleRate)
	}
	if cutoffHz <= 0 || cutoffHz >= sampleRate/fftHermitianDivisor {
		return nil, fmt.Errorf("cutoff %v Hz must be in (0, %v) for %v Hz sampling",
			cutoffHz, sampleRate/fftHermitianDivisor, sampleRate)
	}
	return &LowPassStage{cutoffHz: cutoffHz, sampleRate: sampleRate, ops: ops}, nil
}

// Process filters every channel in place.
func (l *LowPassStage) Process(channels [][]float64) error {
	for _, ch := range channels {
		l.Apply(ch)
	}
	return nil
}

// Name identifies the stage in logs.
func (l *LowPassStage) Name() string {
	return "fft-lowpass"
}

// Apply filters x in place. Sequences shorter than two samples are left
// untouched.
func (l *LowPassStage) Apply(x []float64) {
	n := len(x)
	if n < minLowPassLength {
		return
	}

	// FFT holds work buffers, so a plan is created per call to keep the
	// stage safe for concurrent use.
	fft := fourier.NewFFT(n)
	coeff := fft.Coefficients(nil, x)

	cutoff := int(l.cutoffHz * float64(n) / l.sampleRate)
	for i := cutoff + 1; i < len(coeff); i++ {
		coeff[i] = 0
	}

	fft.Sequence(x, coeff)

	// gonum doesn't normalize the inverse transform.
	l.ops.Scale(x, x, 1/float64(n))
}
