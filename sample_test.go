package gestures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleFromRows(t *testing.T) {
	s, err := SampleFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	assert.Equal(t, 2, s.Steps())
	assert.Equal(t, 3, s.Channels())
	assert.Equal(t, Shape{2, 3}, s.Shape())
	assert.Equal(t, []float64{1, 4}, s.Channel(0))
	assert.Equal(t, 6.0, s.At(1, 2))
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, s.Rows())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, s.Flatten())
}

func TestSample_Errors(t *testing.T) {
	_, err := SampleFromRows(nil)
	assert.ErrorIs(t, err, ErrEmptySample)

	_, err = SampleFromRows([][]float64{{}})
	assert.ErrorIs(t, err, ErrEmptySample)

	_, err = SampleFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrRaggedSample)

	_, err = NewSample([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrRaggedSample)

	_, err = NewSample(nil)
	assert.ErrorIs(t, err, ErrEmptySample)

	assert.ErrorIs(t, Sample{}.Validate(), ErrEmptySample)
}

func TestNewSample_CopiesInput(t *testing.T) {
	channels := [][]float64{{1, 2}, {3, 4}}
	s, err := NewSample(channels)
	require.NoError(t, err)

	channels[0][0] = 100
	assert.Equal(t, 1.0, s.At(0, 0))

	out := s.ChannelData()
	out[1][1] = 100
	assert.Equal(t, 4.0, s.At(1, 1))

	ch := s.Channel(0)
	ch[1] = 100
	assert.Equal(t, 2.0, s.At(1, 0))
}

func TestSample_Equal(t *testing.T) {
	a, _ := NewSample([][]float64{{1, 2}})
	b, _ := NewSample([][]float64{{1, 2}})
	c, _ := NewSample([][]float64{{1, 3}})
	d, _ := NewSample([][]float64{{1, 2}, {1, 2}})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

func TestRecording_Validate(t *testing.T) {
	s, err := NewSample([][]float64{{1, 2}})
	require.NoError(t, err)

	valid := Recording{Candidate: "3", Gesture: Tap, Hand: RightHand, Sample: s}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.Candidate = ""
	assert.ErrorIs(t, bad.Validate(), ErrInvalidConfig)

	bad = valid
	bad.Gesture = "wave"
	assert.ErrorIs(t, bad.Validate(), ErrUnknownGesture)

	bad = valid
	bad.Hand = "both"
	assert.ErrorIs(t, bad.Validate(), ErrUnknownHand)

	bad = valid
	bad.Sample = Sample{}
	assert.ErrorIs(t, bad.Validate(), ErrEmptySample)
}
