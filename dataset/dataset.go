// Package dataset loads labelled photodiode recordings, groups them per
// candidate and assembles them into model-ready batches.
//
// Recordings live under a root directory laid out as
//
//	<root>/<gesture>/<hand>/candidate_<id>.<ext>
//
// where ext is "jsonl" or "wav". A file may hold any number of recordings of
// the same candidate, gesture and hand.
package dataset

import (
	"context"
	"errors"

	gestures "github.com/tphakala/go-photodiode-gestures"
)

// DefaultRoot is the conventional dataset location.
const DefaultRoot = "dataset/gestures"

// Record file extensions.
const (
	ExtJSONL = ".jsonl"
	ExtWAV   = ".wav"
)

// Common errors returned by the dataset package.
var (
	// ErrBadFileName indicates a record file not named candidate_<id>.<ext>.
	ErrBadFileName = errors.New("incorrectly formatted data file name")

	// ErrNoHandSelected indicates grouping with neither hand enabled.
	ErrNoHandSelected = errors.New("at least one hand must be used")

	// ErrUnknownCandidate indicates a candidate id absent from grouped data.
	ErrUnknownCandidate = errors.New("unknown candidate")

	// ErrPartialWindow indicates a WAV recording whose frame count is not a
	// multiple of the window length.
	ErrPartialWindow = errors.New("partial window")

	// ErrInvalidWAV indicates an unreadable WAV file.
	ErrInvalidWAV = errors.New("invalid WAV file")

	// ErrSampleRange indicates a reading that does not fit 16-bit PCM.
	ErrSampleRange = errors.New("reading out of 16-bit range")

	// ErrBadRecord indicates a record that cannot be decoded.
	ErrBadRecord = errors.New("malformed record")
)

// Source provides recordings for one gesture performed with one hand.
type Source interface {
	Load(ctx context.Context, gesture gestures.Gesture, hand gestures.Hand) ([]gestures.Recording, error)
}

// Sink persists recordings.
type Sink interface {
	Save(ctx context.Context, rec gestures.Recording) error
}
