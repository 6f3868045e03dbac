package gestures

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape is a list of tensor dimensions.
type Shape []int

// DefaultInputShape returns the model input shape (20, 5, 3).
func DefaultInputShape() Shape {
	return Shape{defaultInputDim1, defaultInputDim2, defaultInputDim3}
}

// Size returns the number of elements a tensor of this shape holds.
// An empty shape has size zero.
func (s Shape) Size() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Valid reports whether every dimension is positive.
func (s Shape) Valid() bool {
	if len(s) == 0 {
		return false
	}
	for _, d := range s {
		if d <= 0 {
			return false
		}
	}
	return true
}

// Equal reports whether both shapes have the same dimensions.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the shape as "(20, 5, 3)".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ParseShape parses "20,5,3", "20x5x3" or "(20, 5, 3)".
func ParseShape(s string) (Shape, error) {
	s = strings.Trim(strings.TrimSpace(s), "()")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == 'x' || r == ' '
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty shape", ErrInvalidConfig)
	}

	shape := make(Shape, len(fields))
	for i, f := range fields {
		d, err := strconv.Atoi(f)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: bad dimension %q in shape %q", ErrInvalidConfig, f, s)
		}
		shape[i] = d
	}
	return shape, nil
}

// Tensor is a dense float32 array in row-major order.
type Tensor struct {
	Shape Shape
	Data  []float32
}

// At returns the element at the given indices.
func (t Tensor) At(idx ...int) float32 {
	if len(idx) != len(t.Shape) {
		panic(fmt.Sprintf("gestures: %d indices for %d-dimensional tensor", len(idx), len(t.Shape)))
	}
	offset := 0
	for i, v := range idx {
		if v < 0 || v >= t.Shape[i] {
			panic(fmt.Sprintf("gestures: index %d out of range for dimension %d of %v", v, i, t.Shape))
		}
		offset = offset*t.Shape[i] + v
	}
	return t.Data[offset]
}

// ShapeError reports a sample that cannot be reshaped. It identifies the
// candidate and gesture when raised during dataset assembly.
type ShapeError struct {
	From      Shape
	To        Shape
	Candidate string
	Gesture   Gesture
}

// Error implements error.
func (e *ShapeError) Error() string {
	msg := fmt.Sprintf("could not reshape sample with shape %v to %v", e.From, e.To)
	if e.Candidate != "" || e.Gesture != "" {
		msg += fmt.Sprintf(" (candidate %q, gesture %q)", e.Candidate, string(e.Gesture))
	}
	return msg
}

// Unwrap allows errors.Is(err, ErrShapeMismatch).
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

// Reshape flattens s row-major in (time, channel) order and reinterprets
// the values with the given shape. A (100, 3) sample reshaped to (20, 5, 3)
// places reading t of channel c at [t/5][t%5][c].
func Reshape(s Sample, shape Shape) (Tensor, error) {
	if err := s.Validate(); err != nil {
		return Tensor{}, err
	}

	from := s.Shape()
	if !shape.Valid() || shape.Size() != from.Size() {
		return Tensor{}, &ShapeError{From: from, To: append(Shape(nil), shape...)}
	}

	flat := s.Flatten()
	data := make([]float32, len(flat))
	for i, v := range flat {
		data[i] = float32(v)
	}

	return Tensor{Shape: append(Shape(nil), shape...), Data: data}, nil
}
