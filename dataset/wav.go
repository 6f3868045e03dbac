package dataset

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	gestures "github.com/tphakala/go-photodiode-gestures"
)

// WAV encoding parameters for recordings.
const (
	wavBitDepth    = 16
	wavAudioFormat = 1 // PCM
)

// DecodeWAV reads a multichannel WAV recording and splits its frames into
// consecutive windows of windowLength readings. Each WAV channel is one
// photodiode; sample values are taken as raw readings.
func DecodeWAV(r io.ReadSeeker, windowLength int) ([]gestures.Sample, error) {
	if windowLength <= 0 {
		return nil, fmt.Errorf("%w: window length must be positive", gestures.ErrInvalidConfig)
	}

	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, ErrInvalidWAV
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWAV, err)
	}
	if buf.Format == nil || buf.Format.NumChannels <= 0 {
		return nil, fmt.Errorf("%w: missing format", ErrInvalidWAV)
	}

	channels := buf.Format.NumChannels
	frames := len(buf.Data) / channels
	if frames%windowLength != 0 {
		return nil, fmt.Errorf("%w: %d frames is not a multiple of %d",
			ErrPartialWindow, frames, windowLength)
	}

	samples := make([]gestures.Sample, 0, frames/windowLength)
	for start := 0; start < frames; start += windowLength {
		data := make([][]float64, channels)
		for c := range data {
			data[c] = make([]float64, windowLength)
			for t := range windowLength {
				data[c][t] = float64(buf.Data[(start+t)*channels+c])
			}
		}
		s, err := gestures.NewSample(data)
		if err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// EncodeWAV writes samples back to back as one 16-bit PCM WAV stream.
// Readings are rounded to the nearest integer. All samples must have the
// same number of channels.
func EncodeWAV(w io.WriteSeeker, samples []gestures.Sample, sampleRate int) error {
	if len(samples) == 0 {
		return gestures.ErrEmptySample
	}
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive", gestures.ErrInvalidConfig)
	}

	channels := samples[0].Channels()
	var frames int
	for i, s := range samples {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("sample %d: %w", i, err)
		}
		if s.Channels() != channels {
			return fmt.Errorf("%w: sample %d has %d channels, want %d",
				gestures.ErrRaggedSample, i, s.Channels(), channels)
		}
		frames += s.Steps()
	}

	data := make([]int, 0, frames*channels)
	for i, s := range samples {
		for _, v := range s.Flatten() {
			pcm := math.Round(v)
			if pcm < math.MinInt16 || pcm > math.MaxInt16 || math.IsNaN(pcm) {
				return fmt.Errorf("%w: sample %d value %v", ErrSampleRange, i, v)
			}
			data = append(data, int(pcm))
		}
	}

	encoder := wav.NewEncoder(w, sampleRate, wavBitDepth, channels, wavAudioFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: wavBitDepth,
	}
	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return nil
}
