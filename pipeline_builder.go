package gestures

import (
	"fmt"

	"github.com/tphakala/go-photodiode-gestures/internal/pipeline"
)

// Pipeline wraps pipeline.Pipeline with the resolved stage specifications.
type Pipeline struct {
	*pipeline.Pipeline
	stages []pipeline.StageSpec
}

// buildPipeline constructs the stage list for the given configuration.
func buildPipeline(config *Config) (*Pipeline, error) {
	params := pipeline.Params{
		Ordering:     toOrdering(config.Order),
		Filter:       toFilterStage(config.Filter),
		WindowLength: config.WindowLength,
		CutoffHz:     config.CutoffHz,
		SampleRate:   config.SampleRate,
	}

	p, err := pipeline.BuildPipeline(params)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		Pipeline: p,
		stages:   p.GetStages(),
	}, nil
}

func toOrdering(o Order) pipeline.Ordering {
	switch o {
	case OrderRescaleNormalizeFilter:
		return pipeline.OrderingRescaleNormalizeFilter
	case OrderFilterRescaleNormalize:
		return pipeline.OrderingFilterRescaleNormalize
	case OrderRescaleNormalize:
		return pipeline.OrderingRescaleNormalize
	default:
		return pipeline.OrderingUnset
	}
}

func toFilterStage(f FilterKind) pipeline.StageType {
	if f == FilterFFTLowPass {
		return pipeline.StageLowPass
	}
	return pipeline.StageButterworth
}

// createStage creates the Stage implementation for spec.
func createStage(spec pipeline.StageSpec, config *Config) (Stage, error) {
	ops := simdOps(config)

	switch spec.Type {
	case pipeline.StageStretch:
		return newStretchStage(spec.Length), nil

	case pipeline.StageRescale:
		return newRescaleStage(ops), nil

	case pipeline.StageNormalize:
		return newNormalizeStage(ops), nil

	case pipeline.StageButterworth:
		return newButterworthStage(), nil

	case pipeline.StageLowPass:
		return newLowPassStage(spec.CutoffHz, spec.SampleRate, ops)

	default:
		return nil, fmt.Errorf("unsupported stage type: %v", spec.Type)
	}
}

// Stage represents a processing stage in the preprocessing pipeline.
type Stage interface {
	pipeline.Stage
}
