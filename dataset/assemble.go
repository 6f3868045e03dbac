package dataset

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	gestures "github.com/tphakala/go-photodiode-gestures"
)

// Batch is model-ready input: one tensor per sample with its label and the
// candidate it came from.
type Batch struct {
	Tensors    []gestures.Tensor
	Labels     []gestures.Gesture
	Candidates []string
}

// Len returns the number of items.
func (b *Batch) Len() int {
	return len(b.Tensors)
}

// LabelIndices returns the canonical class index of every label.
func (b *Batch) LabelIndices() []int {
	out := make([]int, len(b.Labels))
	for i, g := range b.Labels {
		out[i] = g.Index()
	}
	return out
}

// OneHot returns the one-hot encoding of every label.
func (b *Batch) OneHot() ([][]float32, error) {
	out := make([][]float32, len(b.Labels))
	for i, g := range b.Labels {
		v, err := g.OneHot()
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

type batchItem struct {
	candidate string
	gesture   gestures.Gesture
	sample    gestures.Sample
}

// Assemble builds a batch from the given candidates. Items are ordered by
// candidate as given, then gesture in canonical order, then load order.
// Each sample is run through p, when non-nil, and reshaped to shape.
func Assemble(ctx context.Context, candidates []string, grouped Grouped, shape gestures.Shape, p *gestures.Preprocessor) (*Batch, error) {
	var items []batchItem
	for _, candidate := range candidates {
		byGesture, ok := grouped[candidate]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCandidate, candidate)
		}
		for _, g := range gestures.AllGestures() {
			for _, s := range byGesture[g] {
				items = append(items, batchItem{candidate: candidate, gesture: g, sample: s})
			}
		}
	}

	samples := make([]gestures.Sample, len(items))
	for i, item := range items {
		samples[i] = item.sample
	}
	if p != nil {
		var err error
		samples, err = p.ProcessBatch(ctx, samples)
		if err != nil {
			return nil, fmt.Errorf("failed to preprocess: %w", err)
		}
	}

	batch := &Batch{
		Tensors:    make([]gestures.Tensor, len(items)),
		Labels:     make([]gestures.Gesture, len(items)),
		Candidates: make([]string, len(items)),
	}
	for i, item := range items {
		t, err := gestures.Reshape(samples[i], shape)
		if err != nil {
			var se *gestures.ShapeError
			if errors.As(err, &se) {
				se.Candidate = item.candidate
				se.Gesture = item.gesture
			}
			return nil, err
		}
		batch.Tensors[i] = t
		batch.Labels[i] = item.gesture
		batch.Candidates[i] = item.candidate
	}
	return batch, nil
}

// SplitCandidates deterministically splits candidates into train and test
// sets. The test set holds round(len*testFraction) candidates picked by a
// shuffle seeded with seed. Both results are sorted.
func SplitCandidates(candidates []string, testFraction float64, seed uint64) (train, test []string, err error) {
	if testFraction < 0 || testFraction > 1 || math.IsNaN(testFraction) {
		return nil, nil, fmt.Errorf("%w: test fraction must be in [0, 1]", gestures.ErrInvalidConfig)
	}

	shuffled := slices.Clone(candidates)
	slices.Sort(shuffled)
	shuffled = slices.Compact(shuffled)

	rng := rand.New(rand.NewPCG(seed, seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := int(math.Round(float64(len(shuffled)) * testFraction))
	test = slices.Sorted(slices.Values(shuffled[:n]))
	train = slices.Sorted(slices.Values(shuffled[n:]))
	return train, test, nil
}
