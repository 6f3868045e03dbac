// Package pipeline implements the multi-stage preprocessing pipeline.
// A pipeline is an ordered list of stage specifications derived from the
// caller's ordering choice; the root package turns each specification into
// a concrete stage.
package pipeline

import (
	"fmt"
	"strings"
)

// Stage represents a single processing stage in the preprocessing pipeline.
// Stages transform a channel-major window in place and must be safe for
// concurrent use on distinct windows.
type Stage interface {
	// Process transforms the window in place. A stage may replace channel
	// slices (for example to change their length).
	Process(channels [][]float64) error

	// Name identifies the stage in logs and diagnostics.
	Name() string
}

// StageType identifies the type of processing stage.
type StageType int

const (
	// StageStretch resamples every channel to a fixed number of steps.
	StageStretch StageType = iota

	// StageRescale divides every channel by its own maximum.
	StageRescale

	// StageNormalize applies a whole-window z-score.
	StageNormalize

	// StageButterworth applies the fixed 2nd order IIR low-pass.
	StageButterworth

	// StageLowPass applies the FFT brick-wall low-pass.
	StageLowPass
)

// String returns the stage type name.
func (t StageType) String() string {
	switch t {
	case StageStretch:
		return "stretch"
	case StageRescale:
		return "rescale"
	case StageNormalize:
		return "normalize"
	case StageButterworth:
		return "butterworth"
	case StageLowPass:
		return "fft-lowpass"
	default:
		return fmt.Sprintf("stage(%d)", int(t))
	}
}

// StageSpec specifies parameters for creating a stage.
type StageSpec struct {
	Type       StageType
	Length     int     // Target steps for StageStretch
	CutoffHz   float64 // Cutoff for StageLowPass
	SampleRate float64 // Sample rate for StageLowPass
}

// Pipeline represents an ordered preprocessing pipeline.
type Pipeline struct {
	stages []StageSpec
}

// Params holds the parameters for pipeline construction.
type Params struct {
	Ordering     Ordering
	Filter       StageType // StageButterworth or StageLowPass
	WindowLength int       // Prepend a stretch stage when > 0
	CutoffHz     float64
	SampleRate   float64
}

// BuildPipeline constructs the stage list for the given parameters.
func BuildPipeline(params Params) (*Pipeline, error) {
	if params.Filter != StageButterworth && params.Filter != StageLowPass {
		return nil, fmt.Errorf("unsupported filter stage: %v", params.Filter)
	}
	if params.WindowLength < 0 {
		return nil, fmt.Errorf("invalid window length: %d", params.WindowLength)
	}

	order, ok := orderings[params.Ordering]
	if !ok {
		return nil, fmt.Errorf("unsupported ordering: %d", int(params.Ordering))
	}

	p := &Pipeline{stages: make([]StageSpec, 0, defaultStageCapacity)}

	if params.WindowLength > 0 {
		p.stages = append(p.stages, StageSpec{
			Type:   StageStretch,
			Length: params.WindowLength,
		})
	}

	for _, step := range order {
		spec := StageSpec{Type: step}
		if step == stepFilter {
			spec.Type = params.Filter
			spec.CutoffHz = params.CutoffHz
			spec.SampleRate = params.SampleRate
		}
		p.stages = append(p.stages, spec)
	}

	return p, nil
}

// GetStages returns the stage specifications in processing order.
func (p *Pipeline) GetStages() []StageSpec {
	out := make([]StageSpec, len(p.stages))
	copy(out, p.stages)
	return out
}

// String renders the pipeline as "a -> b -> c".
func (p *Pipeline) String() string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Type.String()
	}
	return strings.Join(names, " -> ")
}
