// Package gestures preprocesses photodiode recordings for hand-gesture
// recognition.
//
// Three photodiodes (red, green and blue) are sampled at 100 Hz while a hand
// moves over them. Each gesture is captured as a window of readings with
// shape (time steps, channels), typically (100, 3). This package turns such
// windows into normalised model input and reshapes them to the (20, 5, 3)
// tensor the classifier expects.
//
// # Features
//
//   - Per-channel max rescaling and whole-window z-score normalisation
//   - Fixed 2nd order Butterworth low-pass (100 Hz sampling, 25 Hz cutoff)
//   - Optional FFT brick-wall low-pass and cubic window stretching
//   - Configurable stage order, with no implicit default
//   - Parallel batch processing with bounded workers
//   - Optional SIMD acceleration via github.com/tphakala/simd
//
// # Quick Start
//
// For one-shot preprocessing:
//
//	out, err := gestures.PreprocessRows(rows, gestures.OrderRescaleNormalizeFilter)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For batches with a reusable preprocessor:
//
//	config := gestures.DefaultConfig(gestures.OrderRescaleNormalizeFilter)
//	config.EnableParallel = true
//	p, err := gestures.NewPreprocessor(&config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	processed, err := p.ProcessBatch(ctx, samples)
//
// # Stage Orders
//
// The order in which stages run changes the result, so callers must pick one:
//
//   - [OrderRescaleNormalizeFilter]: rescale, normalize, then filter. Used to
//     build training data.
//   - [OrderFilterRescaleNormalize]: filter the raw readings first.
//   - [OrderRescaleNormalize]: no filtering, matching on-device inference.
//
// Rescaling divides each channel by its own maximum. Normalisation uses the
// mean and population standard deviation of the whole window. Neither guards
// against division by zero: an all-zero channel or a constant window yields
// non-finite values.
//
// # Reshaping
//
// [Reshape] flattens a sample row-major in (time, channel) order and
// reinterprets it with a target shape. A size mismatch returns a
// [*ShapeError], which wraps [ErrShapeMismatch].
//
// # Related Packages
//
//   - dataset: loading, grouping and assembling labelled recordings
//   - detector: streaming gesture start detection on live readings
//   - model: declarative classifier architectures
package gestures
