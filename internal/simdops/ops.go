// Package simdops provides SIMD-accelerated vector kernels for the
// preprocessing stages.
//
// The kernels are held as function values so tests and benchmarks can swap
// in the scalar fallbacks.
package simdops

import (
	"github.com/tphakala/simd/f64"
)

// Ops provides vector operations over float64 slices.
type Ops struct {
	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)

	// Div divides element-wise: dst[i] = a[i] / b[i]
	Div func(dst, a, b []float64)
}

var (
	simdOps   = Ops{Scale: f64.Scale, Div: f64.Div}
	scalarOps = Ops{Scale: scaleScalar, Div: divScalar}
)

// Default returns the SIMD-backed operations.
func Default() *Ops {
	return &simdOps
}

// Scalar returns the pure Go operations.
func Scalar() *Ops {
	return &scalarOps
}

// For returns the SIMD operations when enabled, the scalar ones otherwise.
func For(enableSIMD bool) *Ops {
	if enableSIMD {
		return Default()
	}
	return Scalar()
}

func scaleScalar(dst, a []float64, s float64) {
	n := min(len(dst), len(a))
	for i := range n {
		dst[i] = a[i] * s
	}
}

func divScalar(dst, a, b []float64) {
	n := min(len(dst), len(a), len(b))
	for i := range n {
		dst[i] = a[i] / b[i]
	}
}

// DivConst divides a by the scalar s into dst using the Div kernel.
// Unlike Scale by 1/s the result is the correctly rounded quotient.
func (o *Ops) DivConst(dst, a []float64, s float64) {
	n := min(len(dst), len(a))
	den := make([]float64, n)
	for i := range den {
		den[i] = s
	}
	o.Div(dst[:n], a[:n], den)
}
