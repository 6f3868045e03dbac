package simdops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScale_SIMDMatchesScalar(t *testing.T) {
	sizes := []int{0, 1, 3, 7, 16, 100, 257}

	for _, n := range sizes {
		a := make([]float64, n)
		for i := range a {
			a[i] = math.Sin(float64(i)) * 100
		}

		want := make([]float64, n)
		got := make([]float64, n)
		Scalar().Scale(want, a, 0.25)
		Default().Scale(got, a, 0.25)

		assert.InDeltaSlice(t, want, got, 1e-12, "n=%d", n)
	}
}

func TestScale_InPlace(t *testing.T) {
	for _, enable := range []bool{true, false} {
		x := []float64{2, 4, 6}
		For(enable).Scale(x, x, 0.5)
		assert.Equal(t, []float64{1, 2, 3}, x, "simd=%v", enable)
	}
}

func TestScale_ByInfinity(t *testing.T) {
	x := []float64{0, 1, -1}
	Scalar().Scale(x, x, math.Inf(1))

	assert.True(t, math.IsNaN(x[0]))
	assert.True(t, math.IsInf(x[1], 1))
	assert.True(t, math.IsInf(x[2], -1))
}

func TestDivConst_MatchesDivision(t *testing.T) {
	a := make([]float64, 131)
	for i := range a {
		a[i] = math.Sin(float64(i))*97 + 3
	}
	want := make([]float64, len(a))
	for i, v := range a {
		want[i] = v / 49.7
	}

	for _, enable := range []bool{true, false} {
		got := make([]float64, len(a))
		For(enable).DivConst(got, a, 49.7)
		assert.Equal(t, want, got, "simd=%v", enable)
	}
}

func TestDivConst_ByZero(t *testing.T) {
	x := []float64{0, 1, -1}
	Default().DivConst(x, x, 0)

	assert.True(t, math.IsNaN(x[0]))
	assert.True(t, math.IsInf(x[1], 1))
	assert.True(t, math.IsInf(x[2], -1))
}

func BenchmarkScale(b *testing.B) {
	a := make([]float64, 300)
	dst := make([]float64, 300)
	for i := range a {
		a[i] = float64(i) * 0.01
	}

	b.Run("simd", func(b *testing.B) {
		ops := Default()
		b.ReportAllocs()
		for b.Loop() {
			ops.Scale(dst, a, 1.5)
		}
	})
	b.Run("scalar", func(b *testing.B) {
		ops := Scalar()
		b.ReportAllocs()
		for b.Loop() {
			ops.Scale(dst, a, 1.5)
		}
	})
}
