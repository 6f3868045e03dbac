package gestures

import "fmt"

// Sample is one recorded window of photodiode readings with shape
// (time steps, channels). Data is held channel-major: one slice per
// photodiode. A Sample is rectangular and non-empty; its contents are never
// modified once constructed.
type Sample struct {
	data [][]float64
}

// NewSample builds a Sample from channel-major data. The input is copied.
func NewSample(channels [][]float64) (Sample, error) {
	s := Sample{data: cloneChannels(channels)}
	if err := s.Validate(); err != nil {
		return Sample{}, err
	}
	return s, nil
}

// SampleFromRows builds a Sample from (time, channel) rows, the layout used
// by recordings on disk.
func SampleFromRows(rows [][]float64) (Sample, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Sample{}, ErrEmptySample
	}

	channels := len(rows[0])
	data := make([][]float64, channels)
	for c := range data {
		data[c] = make([]float64, len(rows))
	}
	for t, row := range rows {
		if len(row) != channels {
			return Sample{}, fmt.Errorf("%w: row %d has %d channels, want %d",
				ErrRaggedSample, t, len(row), channels)
		}
		for c, v := range row {
			data[c][t] = v
		}
	}
	return Sample{data: data}, nil
}

// Validate checks that the sample is non-empty and rectangular.
func (s Sample) Validate() error {
	if len(s.data) == 0 || len(s.data[0]) == 0 {
		return ErrEmptySample
	}
	steps := len(s.data[0])
	for c, ch := range s.data {
		if len(ch) != steps {
			return fmt.Errorf("%w: channel %d has %d steps, want %d",
				ErrRaggedSample, c, len(ch), steps)
		}
	}
	return nil
}

// Steps returns the number of time steps.
func (s Sample) Steps() int {
	if len(s.data) == 0 {
		return 0
	}
	return len(s.data[0])
}

// Channels returns the number of channels.
func (s Sample) Channels() int {
	return len(s.data)
}

// Shape returns (steps, channels).
func (s Sample) Shape() Shape {
	return Shape{s.Steps(), s.Channels()}
}

// At returns the reading of channel c at time step t.
func (s Sample) At(t, c int) float64 {
	return s.data[c][t]
}

// Channel returns a copy of channel c.
func (s Sample) Channel(c int) []float64 {
	out := make([]float64, len(s.data[c]))
	copy(out, s.data[c])
	return out
}

// ChannelData returns a copy of the channel-major data.
func (s Sample) ChannelData() [][]float64 {
	return cloneChannels(s.data)
}

// Rows returns the data as (time, channel) rows.
func (s Sample) Rows() [][]float64 {
	rows := make([][]float64, s.Steps())
	for t := range rows {
		rows[t] = make([]float64, s.Channels())
		for c := range rows[t] {
			rows[t][c] = s.data[c][t]
		}
	}
	return rows
}

// Flatten returns the data row-major in (time, channel) order.
func (s Sample) Flatten() []float64 {
	channels := s.Channels()
	out := make([]float64, s.Steps()*channels)
	for c, ch := range s.data {
		for t, v := range ch {
			out[t*channels+c] = v
		}
	}
	return out
}

// Equal reports whether both samples have identical shape and values.
func (s Sample) Equal(other Sample) bool {
	if len(s.data) != len(other.data) {
		return false
	}
	for c := range s.data {
		if len(s.data[c]) != len(other.data[c]) {
			return false
		}
		for t := range s.data[c] {
			if s.data[c][t] != other.data[c][t] {
				return false
			}
		}
	}
	return true
}

func cloneChannels(in [][]float64) [][]float64 {
	out := make([][]float64, len(in))
	for c, ch := range in {
		out[c] = make([]float64, len(ch))
		copy(out[c], ch)
	}
	return out
}

// Recording is a sample tagged with who recorded it, which gesture it shows
// and which hand performed it.
type Recording struct {
	Candidate string
	Gesture   Gesture
	Hand      Hand
	Sample    Sample
}

// Validate checks the recording labels and sample.
func (r Recording) Validate() error {
	if r.Candidate == "" {
		return fmt.Errorf("%w: empty candidate id", ErrInvalidConfig)
	}
	if !r.Gesture.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownGesture, string(r.Gesture))
	}
	if _, err := ParseHand(string(r.Hand)); err != nil {
		return err
	}
	return r.Sample.Validate()
}
