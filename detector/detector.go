// Package detector finds gesture windows in a live stream of photodiode
// readings.
//
// While idle the detector keeps a short history of readings. A gesture
// starts when, on any channel, the most recent readings all fall below that
// channel's threshold: a hand is shading the sensor. The detector then
// collects readings until the window is complete and emits it.
//
// Thresholds track ambient light. Every AdjustLength idle readings, and
// after each gesture, a channel's threshold becomes the median of its recent
// idle readings scaled by ThresholdCoeff.
package detector

import (
	"errors"
	"fmt"

	gestures "github.com/tphakala/go-photodiode-gestures"
	"github.com/tphakala/go-photodiode-gestures/internal/mathutil"
)

// ErrChannelMismatch indicates a reading with the wrong number of channels.
var ErrChannelMismatch = errors.New("reading channel count mismatch")

// Config holds detector parameters.
type Config struct {
	Channels         int
	DetectionBuffer  int
	DetectionWindow  int
	GestureLength    int
	InitialThreshold float64
	ThresholdCoeff   float64
	AdjustLength     int
}

// DefaultConfig returns the firmware parameters.
func DefaultConfig() Config {
	return Config{
		Channels:         DefaultChannels,
		DetectionBuffer:  DefaultDetectionBuffer,
		DetectionWindow:  DefaultDetectionWindow,
		GestureLength:    DefaultGestureLength,
		InitialThreshold: DefaultInitialThreshold,
		ThresholdCoeff:   DefaultThresholdCoeff,
		AdjustLength:     DefaultAdjustLength,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	switch {
	case c.Channels <= 0:
		return fmt.Errorf("%w: channels must be positive", gestures.ErrInvalidConfig)
	case c.DetectionWindow <= 0:
		return fmt.Errorf("%w: detection window must be positive", gestures.ErrInvalidConfig)
	case c.DetectionBuffer < c.DetectionWindow:
		return fmt.Errorf("%w: detection buffer must hold the detection window", gestures.ErrInvalidConfig)
	case c.GestureLength < c.DetectionBuffer:
		return fmt.Errorf("%w: gesture length must be at least the detection buffer", gestures.ErrInvalidConfig)
	case c.ThresholdCoeff <= 0:
		return fmt.Errorf("%w: threshold coefficient must be positive", gestures.ErrInvalidConfig)
	case c.AdjustLength <= 0:
		return fmt.Errorf("%w: adjust length must be positive", gestures.ErrInvalidConfig)
	}
	return nil
}

// Detector is a streaming gesture detector. It is not safe for concurrent
// use.
type Detector struct {
	config     Config
	history    *ring
	window     [][]float64 // channel-major; nil while idle
	adjust     [][]float64 // channel-major idle readings since recalibration
	thresholds []float64
}

// New creates a detector. A nil config uses DefaultConfig.
func New(config *Config) (*Detector, error) {
	if config == nil {
		c := DefaultConfig()
		config = &c
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	d := &Detector{
		config:     *config,
		history:    newRing(config.DetectionBuffer, config.Channels),
		adjust:     make([][]float64, config.Channels),
		thresholds: make([]float64, config.Channels),
	}
	for c := range d.adjust {
		d.adjust[c] = make([]float64, 0, config.AdjustLength)
		d.thresholds[c] = config.InitialThreshold
	}
	return d, nil
}

// Thresholds returns a copy of the per-channel thresholds.
func (d *Detector) Thresholds() []float64 {
	return append([]float64(nil), d.thresholds...)
}

// Collecting reports whether a gesture is in progress.
func (d *Detector) Collecting() bool {
	return d.window != nil
}

// Push feeds one reading per channel. When the reading completes a gesture
// window, the window is returned with ok set.
func (d *Detector) Push(reading []float64) (s gestures.Sample, ok bool, err error) {
	if len(reading) != d.config.Channels {
		return gestures.Sample{}, false, fmt.Errorf("%w: got %d, want %d",
			ErrChannelMismatch, len(reading), d.config.Channels)
	}

	if d.window != nil {
		for c, v := range reading {
			d.window[c] = append(d.window[c], v)
		}
		return d.emitIfComplete()
	}

	d.history.push(reading)
	for c, v := range reading {
		d.adjust[c] = append(d.adjust[c], v)
	}
	if len(d.adjust[0]) >= d.config.AdjustLength {
		d.recalibrate()
	}

	if !d.history.full() || !d.startDetected() {
		return gestures.Sample{}, false, nil
	}

	d.window = d.history.channels(d.config.GestureLength - d.config.DetectionBuffer)
	return d.emitIfComplete()
}

// startDetected reports whether the newest DetectionWindow readings of any
// channel are all below its threshold.
func (d *Detector) startDetected() bool {
	for c, threshold := range d.thresholds {
		dark := true
		for i := range d.config.DetectionWindow {
			if d.history.at(i)[c] >= threshold {
				dark = false
				break
			}
		}
		if dark {
			return true
		}
	}
	return false
}

func (d *Detector) emitIfComplete() (gestures.Sample, bool, error) {
	if len(d.window[0]) < d.config.GestureLength {
		return gestures.Sample{}, false, nil
	}

	s, err := gestures.NewSample(d.window)
	d.window = nil
	d.history.clear()
	if len(d.adjust[0]) > 0 {
		d.recalibrate()
	}
	if err != nil {
		return gestures.Sample{}, false, err
	}
	return s, true, nil
}

func (d *Detector) recalibrate() {
	for c := range d.thresholds {
		d.thresholds[c] = mathutil.Median(d.adjust[c]) * d.config.ThresholdCoeff
		d.adjust[c] = d.adjust[c][:0]
	}
}
