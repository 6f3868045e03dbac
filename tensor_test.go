package gestures

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialSample(t *testing.T, steps, channels int) Sample {
	t.Helper()
	rows := make([][]float64, steps)
	for i := range rows {
		rows[i] = make([]float64, channels)
		for c := range rows[i] {
			rows[i][c] = float64(i*channels + c)
		}
	}
	s, err := SampleFromRows(rows)
	require.NoError(t, err)
	return s
}

func TestReshape_RowMajorLayout(t *testing.T) {
	s := sequentialSample(t, 100, 3)

	tensor, err := Reshape(s, DefaultInputShape())
	require.NoError(t, err)
	require.Equal(t, Shape{20, 5, 3}, tensor.Shape)
	require.Len(t, tensor.Data, 300)

	for i := range 20 {
		for j := range 5 {
			for k := range 3 {
				want := float32((i*5+j)*3 + k)
				assert.Equal(t, want, tensor.At(i, j, k))
			}
		}
	}
}

func TestReshape_ReadingPlacement(t *testing.T) {
	s := sequentialSample(t, 100, 3)
	tensor, err := Reshape(s, DefaultInputShape())
	require.NoError(t, err)

	// Reading t of channel c lands at [t/5][t%5][c].
	for _, step := range []int{0, 4, 5, 37, 99} {
		for c := range 3 {
			assert.Equal(t, float32(s.At(step, c)), tensor.At(step/5, step%5, c))
		}
	}
}

func TestReshape_Mismatch(t *testing.T) {
	s := sequentialSample(t, 90, 3)

	_, err := Reshape(s, DefaultInputShape())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	var shapeErr *ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, Shape{90, 3}, shapeErr.From)
	assert.Equal(t, Shape{20, 5, 3}, shapeErr.To)
	assert.Contains(t, err.Error(), "(90, 3)")
	assert.Contains(t, err.Error(), "(20, 5, 3)")
}

func TestReshape_InvalidShapes(t *testing.T) {
	s := sequentialSample(t, 4, 1)
	for _, shape := range []Shape{nil, {}, {2, -2, -1}, {0, 4}} {
		_, err := Reshape(s, shape)
		assert.ErrorIs(t, err, ErrShapeMismatch, "shape %v", shape)
	}
}

func TestReshape_EmptySample(t *testing.T) {
	_, err := Reshape(Sample{}, Shape{1})
	assert.ErrorIs(t, err, ErrEmptySample)
}

func TestShapeError_Message(t *testing.T) {
	err := &ShapeError{
		From:      Shape{100, 3},
		To:        Shape{20, 5, 4},
		Candidate: "7_R",
		Gesture:   Tap,
	}
	assert.Equal(t,
		`could not reshape sample with shape (100, 3) to (20, 5, 4) (candidate "7_R", gesture "tap")`,
		err.Error())
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in      string
		want    Shape
		wantErr bool
	}{
		{"20,5,3", Shape{20, 5, 3}, false},
		{"(20, 5, 3)", Shape{20, 5, 3}, false},
		{"100x3", Shape{100, 3}, false},
		{"300", Shape{300}, false},
		{"", nil, true},
		{"20,0,3", nil, true},
		{"a,b", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseShape(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShape_Helpers(t *testing.T) {
	assert.Equal(t, 300, DefaultInputShape().Size())
	assert.Equal(t, 0, Shape{}.Size())
	assert.True(t, Shape{1, 2}.Equal(Shape{1, 2}))
	assert.False(t, Shape{1, 2}.Equal(Shape{2, 1}))
	assert.False(t, Shape{1}.Equal(Shape{1, 1}))
}

func TestTensor_AtPanicsOnBadIndex(t *testing.T) {
	tensor := Tensor{Shape: Shape{2, 2}, Data: []float32{1, 2, 3, 4}}
	assert.Equal(t, float32(4), tensor.At(1, 1))
	assert.Panics(t, func() { tensor.At(2, 0) })
	assert.Panics(t, func() { tensor.At(0) })
}
