package engine

// Cubic (Hermite) interpolation constants
const (
	// Hermite interpolation coefficients for smooth C1 continuity
	// Formula: y = ((a*x + b)*x + c)*x + d
	// coefA := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	hermiteCoeff0_5 = 0.5
	hermiteCoeff1_5 = 1.5
	hermiteCoeff2_5 = 2.5
)

// FFT low-pass constants
const (
	// fftHermitianDivisor is used to calculate unique frequency bins in real FFT.
	// A real FFT of size N has N/2 + 1 unique complex coefficients.
	fftHermitianDivisor = 2

	// Shortest sequence worth transforming.
	minLowPassLength = 2
)
