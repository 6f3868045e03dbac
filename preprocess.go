package gestures

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Preprocessor turns raw photodiode windows into normalised model input.
// It is safe for concurrent use; all stages are stateless.
type Preprocessor struct {
	config   Config
	pipeline *Pipeline
	stages   []Stage
}

// NewPreprocessor validates config and builds its stage pipeline.
func NewPreprocessor(config *Config) (*Preprocessor, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	pipeline, err := buildPipeline(config)
	if err != nil {
		return nil, fmt.Errorf("failed to build pipeline: %w", err)
	}

	p := &Preprocessor{
		config:   *config,
		pipeline: pipeline,
		stages:   make([]Stage, len(pipeline.stages)),
	}

	for i, spec := range pipeline.stages {
		stage, err := createStage(spec, config)
		if err != nil {
			return nil, fmt.Errorf("failed to create stage %d: %w", i, err)
		}
		p.stages[i] = stage
	}

	return p, nil
}

// Config returns a copy of the preprocessor configuration.
func (p *Preprocessor) Config() Config {
	return p.config
}

// Stages returns the stage names in processing order.
func (p *Preprocessor) Stages() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name()
	}
	return names
}

// String describes the pipeline, e.g. "rescale -> normalize -> butterworth".
func (p *Preprocessor) String() string {
	return p.pipeline.String()
}

// Process runs s through every stage and returns the result. The input
// sample is left untouched. Applying Process twice does not give the same
// result as applying it once.
func (p *Preprocessor) Process(s Sample) (Sample, error) {
	if err := s.Validate(); err != nil {
		return Sample{}, err
	}

	data := cloneChannels(s.data)
	for i, stage := range p.stages {
		if err := stage.Process(data); err != nil {
			return Sample{}, fmt.Errorf("stage %d (%s): %w", i, stage.Name(), err)
		}
	}

	return Sample{data: data}, nil
}

// ProcessBatch processes every sample and returns the results in input
// order. When EnableParallel is set samples are processed concurrently,
// bounded by MaxWorkers. The first error cancels the remaining work.
func (p *Preprocessor) ProcessBatch(ctx context.Context, samples []Sample) ([]Sample, error) {
	output := make([]Sample, len(samples))

	// Sequential processing (default or when parallel disabled)
	if !p.config.EnableParallel || len(samples) <= 1 {
		for i, s := range samples {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			result, err := p.Process(s)
			if err != nil {
				return nil, fmt.Errorf("sample %d: %w", i, err)
			}
			output[i] = result
		}
		return output, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.config.workers())

	for i, s := range samples {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := p.Process(s)
			if err != nil {
				return fmt.Errorf("sample %d: %w", i, err)
			}
			output[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return output, nil
}
