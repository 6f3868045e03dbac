package dataset

import (
	"context"
	"fmt"
	"maps"
	"slices"

	gestures "github.com/tphakala/go-photodiode-gestures"
)

// GroupOptions selects which recordings Group loads and how candidates are
// keyed.
type GroupOptions struct {
	UseLeftHand  bool
	UseRightHand bool

	// SplitPerHand keys candidates as <id>_L and <id>_R so each hand is
	// treated as a separate candidate.
	SplitPerHand bool

	// Gestures restricts loading to these gestures. Empty means all, in
	// canonical order.
	Gestures []gestures.Gesture
}

// Grouped maps candidate id to gesture to samples in load order.
type Grouped map[string]map[gestures.Gesture][]gestures.Sample

// Candidates returns the candidate ids in sorted order.
func (g Grouped) Candidates() []string {
	return slices.Sorted(maps.Keys(g))
}

// Len returns the total number of samples.
func (g Grouped) Len() int {
	var n int
	for _, byGesture := range g {
		for _, samples := range byGesture {
			n += len(samples)
		}
	}
	return n
}

func (g Grouped) add(candidate string, gesture gestures.Gesture, s gestures.Sample) {
	byGesture, ok := g[candidate]
	if !ok {
		byGesture = make(map[gestures.Gesture][]gestures.Sample)
		g[candidate] = byGesture
	}
	byGesture[gesture] = append(byGesture[gesture], s)
}

// Group loads the selected recordings from src and groups them by candidate
// and gesture. Gestures are visited in canonical order, left hand before
// right hand.
func Group(ctx context.Context, src Source, opts GroupOptions) (Grouped, error) {
	var hands []gestures.Hand
	if opts.UseLeftHand {
		hands = append(hands, gestures.LeftHand)
	}
	if opts.UseRightHand {
		hands = append(hands, gestures.RightHand)
	}
	if len(hands) == 0 {
		return nil, ErrNoHandSelected
	}

	selected := opts.Gestures
	if len(selected) == 0 {
		selected = gestures.AllGestures()
	}
	for _, g := range selected {
		if !g.Valid() {
			return nil, fmt.Errorf("%w: %q", gestures.ErrUnknownGesture, string(g))
		}
	}

	grouped := make(Grouped)
	for _, g := range gestures.AllGestures() {
		if !slices.Contains(selected, g) {
			continue
		}
		for _, hand := range hands {
			recs, err := src.Load(ctx, g, hand)
			if err != nil {
				return nil, fmt.Errorf("failed to load %s/%s: %w", g, hand, err)
			}
			for _, rec := range recs {
				key := rec.Candidate
				if opts.SplitPerHand {
					key += "_" + rec.Hand.Initial()
				}
				grouped.add(key, g, rec.Sample)
			}
		}
	}
	return grouped, nil
}
