// Package model describes the gesture classifier architectures.
//
// Each [Variant] maps to a [Builder] that returns the layer stack placed
// after the input layer. The result is a declarative [Spec], serialisable
// as JSON for an external training tool; nothing here executes a network.
package model

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	gestures "github.com/tphakala/go-photodiode-gestures"
)

// ErrUnknownVariant indicates a variant outside the registry.
var ErrUnknownVariant = errors.New("unknown model variant")

// InputLayerName names the input layer of every variant.
const InputLayerName = "sensor_image"

// Variant names a classifier architecture.
type Variant string

// Registered variants.
const (
	Experimental                Variant = "experimental"
	SlamCNN                     Variant = "slam_cnn"
	SlamCNNPadding              Variant = "slam_cnn_padding"
	SlamCNNPaddingLite          Variant = "slam_cnn_padding_lite"
	SlamCNNPaddingPyramid       Variant = "slam_cnn_padding_pyramid"
	SlamCNNPaddingPyramidLite   Variant = "slam_cnn_padding_pyramid_lite"
	NarrowSlamCNNPaddingPyramid Variant = "narrow_slam_cnn_padding_pyramid"
	AlexNet                     Variant = "alexnet"
	BeerNet                     Variant = "beernet"
	BeerNetLite                 Variant = "beernet_lite"
	BeerNetExperimental         Variant = "beernet_experimental"
	FCN                         Variant = "fcn"
)

// Builder returns the layers of a variant for the given input shape and
// number of classes, excluding the input layer.
type Builder func(input gestures.Shape, numClasses int) []Layer

var builders = map[Variant]Builder{
	Experimental:                experimental,
	SlamCNN:                     slamCNN,
	SlamCNNPadding:              slamCNNPadding,
	SlamCNNPaddingLite:          slamCNNPaddingLite,
	SlamCNNPaddingPyramid:       slamCNNPaddingPyramid,
	SlamCNNPaddingPyramidLite:   slamCNNPaddingPyramidLite,
	NarrowSlamCNNPaddingPyramid: narrowSlamCNNPaddingPyramid,
	AlexNet:                     alexnet,
	BeerNet:                     beernet,
	BeerNetLite:                 beernetLite,
	BeerNetExperimental:         beernetExperimental,
	FCN:                         fcn,
}

// Variants returns every registered variant sorted by name.
func Variants() []Variant {
	return slices.Sorted(maps.Keys(builders))
}

// ParseVariant converts a variant name to a Variant.
func ParseVariant(s string) (Variant, error) {
	v := Variant(s)
	if _, ok := builders[v]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
	return v, nil
}

// String returns the variant name.
func (v Variant) String() string {
	return string(v)
}

// Spec is a complete classifier description.
type Spec struct {
	Variant    Variant        `json:"variant"`
	InputName  string         `json:"input_name"`
	Input      gestures.Shape `json:"input_shape"`
	NumClasses int            `json:"num_classes"`
	Layers     []Layer        `json:"layers"`
}

// Build returns the layer stack of variant v.
func Build(v Variant, input gestures.Shape, numClasses int) (*Spec, error) {
	build, ok := builders[v]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, string(v))
	}
	if !input.Valid() {
		return nil, fmt.Errorf("%w: input shape %v", gestures.ErrInvalidConfig, input)
	}
	if numClasses <= 0 {
		return nil, fmt.Errorf("%w: number of classes must be positive", gestures.ErrInvalidConfig)
	}

	return &Spec{
		Variant:    v,
		InputName:  InputLayerName,
		Input:      append(gestures.Shape(nil), input...),
		NumClasses: numClasses,
		Layers:     build(input, numClasses),
	}, nil
}

// Output returns the classification layer.
func (s *Spec) Output() Layer {
	return s.Layers[len(s.Layers)-1]
}
