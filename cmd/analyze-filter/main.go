// Command analyze-filter reports the behaviour of the smoothing filters on
// 100 Hz photodiode readings: Butterworth coefficients, DC gain, magnitude
// response and the attenuation of test tones by both filters.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-photodiode-gestures/internal/engine"
	"github.com/tphakala/go-photodiode-gestures/internal/filter"
	"github.com/tphakala/go-photodiode-gestures/internal/simdops"
)

const (
	defaultSampleRate = 100.0 // Readings per second
	defaultCutoff     = 25.0  // FFT low-pass band limit in Hz
	responseStepHz    = 5.0   // Frequency spacing of the response table
	toneLength        = 400   // Readings per test tone
	settleSamples     = 50    // Leading samples skipped when measuring tones
	stepLength        = 20    // Readings in the step response
)

var testTones = []float64{1, 5, 10, 20, 25, 30, 40, 49}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rate := flag.Float64("rate", defaultSampleRate, "Sample rate in Hz")
	cutoff := flag.Float64("cutoff", defaultCutoff, "FFT low-pass cutoff in Hz")
	flag.Parse()

	bw := filter.DefaultButterworth()

	fmt.Println("=== Butterworth Low-Pass ===")
	fmt.Printf("  a: %v\n", bw.A)
	fmt.Printf("  b: %v\n", bw.B)
	fmt.Printf("  DC gain: %.10f\n\n", bw.DCGain())

	fmt.Println("Magnitude response:")
	for f := 0.0; f <= *rate/2; f += responseStepHz {
		fmt.Printf("  %5.1f Hz: %8.5f (%7.2f dB)\n", f, bw.Response(f, *rate), bw.ResponseDB(f, *rate))
	}

	fmt.Println("\nStep response:")
	step := make([]float64, stepLength)
	for i := range step {
		step[i] = 1
	}
	fmt.Printf("  %.4f\n", bw.Filter(step))

	lp, err := engine.NewLowPassStage(*cutoff, *rate, simdops.Default())
	if err != nil {
		return err
	}

	fmt.Printf("\n=== Tone Attenuation (FFT cutoff %.1f Hz) ===\n", *cutoff)
	fmt.Println("  tone Hz   butterworth   fft-lowpass")
	for _, f := range testTones {
		if f >= *rate/2 {
			continue
		}
		tone := sine(f, *rate, toneLength)

		smoothed := bw.Filter(tone)
		lowPassed := append([]float64(nil), tone...)
		lp.Apply(lowPassed)

		ref := rms(tone[settleSamples:])
		fmt.Printf("  %7.1f   %11.4f   %11.4f\n", f,
			rms(smoothed[settleSamples:])/ref, rms(lowPassed[settleSamples:])/ref)
	}
	return nil
}

func sine(freqHz, rate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freqHz * float64(i) / rate)
	}
	return out
}

func rms(x []float64) float64 {
	return floats.Norm(x, 2) / math.Sqrt(float64(len(x)))
}
