package gestures

import (
	"github.com/tphakala/go-photodiode-gestures/internal/engine"
	"github.com/tphakala/go-photodiode-gestures/internal/filter"
	"github.com/tphakala/go-photodiode-gestures/internal/mathutil"
	"github.com/tphakala/go-photodiode-gestures/internal/pipeline"
	"github.com/tphakala/go-photodiode-gestures/internal/simdops"
)

func simdOps(config *Config) *simdops.Ops {
	return simdops.For(config.EnableSIMD)
}

// newStretchStage creates a cubic Hermite window stretch stage.
func newStretchStage(length int) pipeline.Stage {
	return engine.NewStretchStage(length)
}

// newLowPassStage creates an FFT brick-wall low-pass stage.
func newLowPassStage(cutoffHz, sampleRate float64, ops *simdops.Ops) (pipeline.Stage, error) {
	return engine.NewLowPassStage(cutoffHz, sampleRate, ops)
}

// butterworthStage applies the fixed IIR low-pass to every channel.
type butterworthStage struct {
	filter *filter.Butterworth
}

func newButterworthStage() pipeline.Stage {
	return &butterworthStage{filter: filter.DefaultButterworth()}
}

func (s *butterworthStage) Process(channels [][]float64) error {
	for _, ch := range channels {
		s.filter.Apply(ch)
	}
	return nil
}

func (s *butterworthStage) Name() string {
	return "butterworth"
}

// rescaleStage divides each channel by its maximum.
type rescaleStage struct {
	ops *simdops.Ops
}

func newRescaleStage(ops *simdops.Ops) pipeline.Stage {
	return &rescaleStage{ops: ops}
}

func (s *rescaleStage) Process(channels [][]float64) error {
	mathutil.Rescale(channels, s.ops)
	return nil
}

func (s *rescaleStage) Name() string {
	return "rescale"
}

// normalizeStage applies a whole-window z-score.
type normalizeStage struct {
	ops *simdops.Ops
}

func newNormalizeStage(ops *simdops.Ops) pipeline.Stage {
	return &normalizeStage{ops: ops}
}

func (s *normalizeStage) Process(channels [][]float64) error {
	mathutil.ZScore(channels, s.ops)
	return nil
}

func (s *normalizeStage) Name() string {
	return "normalize"
}
