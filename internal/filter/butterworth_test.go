package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-photodiode-gestures/internal/testutil"
)

const (
	testSampleRate = 100.0
	testTolerance  = 1e-12
)

// reference evaluates the recurrence with explicit input and output slices.
func reference(f *Butterworth, x []float64) []float64 {
	y := make([]float64, len(x))
	copy(y, x)
	for i := 2; i < len(x); i++ {
		y[i] = f.A[0]*y[i-1] + f.A[1]*y[i-2] + f.B[0]*x[i] + f.B[1]*x[i-1] + f.B[2]*x[i-2]
	}
	return y
}

func TestButterworth_ShortInputUnchanged(t *testing.T) {
	tests := []struct {
		name  string
		input []float64
	}{
		{"empty", []float64{}},
		{"single", []float64{3.5}},
		{"pair", []float64{1, -2}},
		{"zero pair", []float64{0, 0}},
	}

	f := DefaultButterworth()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Filter(tt.input)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestButterworth_FirstTwoSamplesPassThrough(t *testing.T) {
	f := DefaultButterworth()
	x := []float64{4, 7, 1, 9, 2, 6}
	got := f.Filter(x)

	assert.InDelta(t, 4.0, got[0], testTolerance)
	assert.InDelta(t, 7.0, got[1], testTolerance)
}

func TestButterworth_MatchesRecurrence(t *testing.T) {
	f := DefaultButterworth()

	tests := []struct {
		name  string
		input []float64
	}{
		{"ramp", []float64{0, 1, 2, 3, 4, 5, 6, 7}},
		{"impulse", []float64{1, 0, 0, 0, 0, 0}},
		{"step down", []float64{1, 1, 1, 0, 0, 0, 0}},
		{"end to end", []float64{1.5491933, 0, -0.7745967, -0.7745967}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := reference(f, tt.input)
			got := f.Filter(tt.input)
			require.Len(t, got, len(want))
			for i := range want {
				assert.InDelta(t, want[i], got[i], testTolerance, "index %d", i)
			}
		})
	}
}

func TestButterworth_ApplyInPlace(t *testing.T) {
	f := DefaultButterworth()
	x := []float64{2, 4, 6, 8, 10}
	want := reference(f, x)

	f.Apply(x)
	assert.InDeltaSlice(t, want, x, testTolerance)
}

func TestButterworth_ConstantInputBounded(t *testing.T) {
	f := DefaultButterworth()
	const level = 3.0

	x := make([]float64, 200)
	for i := range x {
		x[i] = level
	}
	f.Apply(x)

	testutil.AssertNoNaNOrInf(t, x)
	testutil.AssertAllInRange(t, x, 0, 2*level)
	assert.InDelta(t, level, x[len(x)-1], 1e-6, "constant input should settle at DC gain")
}

func TestButterworth_DCGainIsUnity(t *testing.T) {
	f := DefaultButterworth()
	assert.InDelta(t, 1.0, f.DCGain(), 1e-6)
	assert.InDelta(t, 1.0, f.Response(0, testSampleRate), 1e-6)
}

func TestButterworth_Response(t *testing.T) {
	f := DefaultButterworth()

	// b0 - b1 + b2 == 0 puts a zero at Nyquist.
	assert.InDelta(t, 0.0, f.Response(testSampleRate/2, testSampleRate), 1e-9)

	prev := f.Response(0, testSampleRate)
	for freq := 5.0; freq <= testSampleRate/2; freq += 5 {
		r := f.Response(freq, testSampleRate)
		assert.LessOrEqual(t, r, prev+1e-9, "response should fall off at %.0f Hz", freq)
		prev = r
	}

	assert.Less(t, f.ResponseDB(40, testSampleRate), -10.0)
}

func TestButterworth_Stable(t *testing.T) {
	f := DefaultButterworth()

	// Poles of z^2 - a0*z - a1 must lie inside the unit circle.
	disc := complex(f.A[0]*f.A[0]+4*f.A[1], 0)
	root := complexSqrt(disc)
	p1 := (complex(f.A[0], 0) + root) / 2
	p2 := (complex(f.A[0], 0) - root) / 2
	assert.Less(t, cabs(p1), 1.0)
	assert.Less(t, cabs(p2), 1.0)
}

func complexSqrt(c complex128) complex128 {
	r := math.Sqrt(cabs(c))
	theta := math.Atan2(imag(c), real(c)) / 2
	return complex(r*math.Cos(theta), r*math.Sin(theta))
}

func cabs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
