package gestures

import (
	"errors"
	"fmt"
	"runtime"
)

// Gesture is one of the closed set of motion classes.
type Gesture string

// The gesture vocabulary. Declaration order is the canonical label order.
const (
	SwipeLeft        Gesture = "swipe_left"
	SwipeRight       Gesture = "swipe_right"
	SwipeUp          Gesture = "swipe_up"
	SwipeDown        Gesture = "swipe_down"
	Clockwise        Gesture = "clockwise"
	CounterClockwise Gesture = "counter_clockwise"
	Tap              Gesture = "tap"
	DoubleTap        Gesture = "double_tap"
	ZoomIn           Gesture = "zoom_in"
	ZoomOut          Gesture = "zoom_out"
)

var allGestures = []Gesture{
	SwipeLeft, SwipeRight, SwipeUp, SwipeDown,
	Clockwise, CounterClockwise,
	Tap, DoubleTap,
	ZoomIn, ZoomOut,
}

// NumClasses is the size of the gesture vocabulary.
const NumClasses = 10

// AllGestures returns every gesture in canonical label order.
func AllGestures() []Gesture {
	out := make([]Gesture, len(allGestures))
	copy(out, allGestures)
	return out
}

// ParseGesture converts a gesture name to a Gesture.
func ParseGesture(s string) (Gesture, error) {
	g := Gesture(s)
	if g.Index() < 0 {
		return "", fmt.Errorf("%w: %q", ErrUnknownGesture, s)
	}
	return g, nil
}

// Index returns the canonical label index of g, or -1 if g is not part of
// the vocabulary.
func (g Gesture) Index() int {
	for i, known := range allGestures {
		if g == known {
			return i
		}
	}
	return -1
}

// Valid reports whether g is part of the vocabulary.
func (g Gesture) Valid() bool {
	return g.Index() >= 0
}

// String returns the gesture name.
func (g Gesture) String() string {
	return string(g)
}

// OneHot returns the one-hot encoding of g over NumClasses classes.
func (g Gesture) OneHot() ([]float32, error) {
	idx := g.Index()
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGesture, string(g))
	}
	out := make([]float32, NumClasses)
	out[idx] = 1
	return out, nil
}

// Hand is the recording side of a sample.
type Hand string

const (
	LeftHand  Hand = "left_hand"
	RightHand Hand = "right_hand"
)

// ParseHand converts a hand name to a Hand.
func ParseHand(s string) (Hand, error) {
	switch h := Hand(s); h {
	case LeftHand, RightHand:
		return h, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownHand, s)
	}
}

// String returns the hand name.
func (h Hand) String() string {
	return string(h)
}

// Initial returns "L" or "R", used to split candidates per hand.
func (h Hand) Initial() string {
	switch h {
	case LeftHand:
		return "L"
	case RightHand:
		return "R"
	default:
		return ""
	}
}

// Order selects the composition order of the preprocessing stages.
// There is no default; callers must choose one explicitly.
type Order int

const (
	// OrderUnset is the zero value and is rejected by Config.Validate.
	OrderUnset Order = iota

	// OrderRescaleNormalizeFilter rescales, normalizes, then filters.
	// This is the order used to build the training data.
	OrderRescaleNormalizeFilter

	// OrderFilterRescaleNormalize filters the raw readings first.
	OrderFilterRescaleNormalize

	// OrderRescaleNormalize skips filtering, matching the on-device
	// preprocessing.
	OrderRescaleNormalize
)

var orderNames = map[Order]string{
	OrderRescaleNormalizeFilter: "rescale-normalize-filter",
	OrderFilterRescaleNormalize: "filter-rescale-normalize",
	OrderRescaleNormalize:       "rescale-normalize",
}

// String returns the order name.
func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}
	return "unset"
}

// ParseOrder converts an order name to an Order.
func ParseOrder(s string) (Order, error) {
	for o, name := range orderNames {
		if name == s {
			return o, nil
		}
	}
	return OrderUnset, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

// FilterKind selects the smoothing filter used by orders that filter.
type FilterKind int

const (
	// FilterButterworth is the fixed 2nd order IIR low-pass.
	FilterButterworth FilterKind = iota

	// FilterFFTLowPass zeroes FFT bins above Config.CutoffHz.
	FilterFFTLowPass
)

// String returns the filter name.
func (f FilterKind) String() string {
	switch f {
	case FilterButterworth:
		return "butterworth"
	case FilterFFTLowPass:
		return "fft-lowpass"
	default:
		return fmt.Sprintf("filter(%d)", int(f))
	}
}

// ParseFilter converts a filter name to a FilterKind.
func ParseFilter(s string) (FilterKind, error) {
	switch s {
	case "butterworth":
		return FilterButterworth, nil
	case "fft-lowpass", "fft":
		return FilterFFTLowPass, nil
	default:
		return 0, fmt.Errorf("%w: unknown filter %q", ErrInvalidConfig, s)
	}
}

// Config holds preprocessing configuration.
type Config struct {
	// Order is the stage composition order. Required.
	Order Order

	// Filter selects the smoothing filter for orders that filter.
	Filter FilterKind

	// SampleRate of the readings in Hz. Used by the FFT low-pass.
	SampleRate float64

	// CutoffHz is the FFT low-pass band limit. Must be below SampleRate/2.
	CutoffHz float64

	// WindowLength stretches every channel to this many steps before the
	// other stages. Zero leaves the window length unchanged.
	WindowLength int

	// EnableSIMD allows the use of SIMD kernels when available.
	EnableSIMD bool

	// EnableParallel processes batch samples concurrently.
	// Each individual sample is still processed sequentially.
	EnableParallel bool

	// MaxWorkers bounds batch concurrency. Zero means GOMAXPROCS.
	MaxWorkers int
}

// DefaultConfig returns a configuration for the given order with the
// Butterworth filter, 100 Hz sampling and SIMD enabled.
func DefaultConfig(order Order) Config {
	return Config{
		Order:      order,
		Filter:     FilterButterworth,
		SampleRate: DefaultSampleRate,
		CutoffHz:   DefaultCutoffHz,
		EnableSIMD: true,
	}
}

// Common errors returned by the preprocessing package.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid preprocessing configuration")

	// ErrEmptySample indicates a sample with no channels or no steps.
	ErrEmptySample = errors.New("empty sample")

	// ErrRaggedSample indicates channels of differing lengths.
	ErrRaggedSample = errors.New("ragged sample")

	// ErrShapeMismatch indicates a sample cannot be reshaped to a target shape.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrUnknownGesture indicates a gesture name outside the vocabulary.
	ErrUnknownGesture = errors.New("unknown gesture")

	// ErrUnknownHand indicates a hand name other than left_hand or right_hand.
	ErrUnknownHand = errors.New("unknown hand")

	// ErrUnknownOrder indicates an unrecognised preprocessing order name.
	ErrUnknownOrder = errors.New("unknown preprocessing order")
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, ok := orderNames[c.Order]; !ok {
		return fmt.Errorf("%w: preprocessing order must be selected", ErrInvalidConfig)
	}

	switch c.Filter {
	case FilterButterworth:
	case FilterFFTLowPass:
		if c.SampleRate <= 0 {
			return fmt.Errorf("%w: sample rate must be positive", ErrInvalidConfig)
		}
		if c.CutoffHz <= 0 || c.CutoffHz >= c.SampleRate/nyquistDivisor {
			return fmt.Errorf("%w: cutoff must be in (0, %v) Hz", ErrInvalidConfig, c.SampleRate/nyquistDivisor)
		}
	default:
		return fmt.Errorf("%w: unknown filter %v", ErrInvalidConfig, c.Filter)
	}

	if c.WindowLength < 0 || c.WindowLength > maxWindowLength {
		return fmt.Errorf("%w: window length must be 0-%d", ErrInvalidConfig, maxWindowLength)
	}

	if c.MaxWorkers < 0 {
		return fmt.Errorf("%w: max workers must not be negative", ErrInvalidConfig)
	}

	return nil
}

// workers returns the effective batch concurrency limit.
func (c *Config) workers() int {
	if c.MaxWorkers > 0 {
		return c.MaxWorkers
	}
	return runtime.GOMAXPROCS(0)
}
