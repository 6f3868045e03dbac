package model

// Kind names a layer type.
type Kind string

// Layer kinds.
const (
	KindConv1D              Kind = "conv1d"
	KindConv2D              Kind = "conv2d"
	KindMaxPool2D           Kind = "max_pooling2d"
	KindZeroPad2D           Kind = "zero_padding2d"
	KindFlatten             Kind = "flatten"
	KindDense               Kind = "dense"
	KindDropout             Kind = "dropout"
	KindBatchNorm           Kind = "batch_normalization"
	KindGlobalAveragePool2D Kind = "global_average_pooling2d"
)

// Padding modes.
const (
	PaddingValid = "valid"
	PaddingSame  = "same"
)

// Activations.
const (
	ActivationReLU    = "relu"
	ActivationSoftmax = "softmax"
)

// OutputLayerName names the classification layer of every variant.
const OutputLayerName = "predictions"

// Layer is a declarative description of one network layer. Only the fields
// meaningful for its Kind are set.
type Layer struct {
	Kind       Kind    `json:"kind"`
	Name       string  `json:"name,omitempty"`
	Filters    int     `json:"filters,omitempty"`
	Units      int     `json:"units,omitempty"`
	Kernel     []int   `json:"kernel,omitempty"`
	Strides    []int   `json:"strides,omitempty"`
	Pool       []int   `json:"pool,omitempty"`
	ZeroPad    []int   `json:"zero_pad,omitempty"`
	Padding    string  `json:"padding,omitempty"`
	Activation string  `json:"activation,omitempty"`
	Rate       float64 `json:"rate,omitempty"`
}

func conv2D(filters, kh, kw, sh, sw int, padding string) Layer {
	return Layer{
		Kind:       KindConv2D,
		Filters:    filters,
		Kernel:     []int{kh, kw},
		Strides:    []int{sh, sw},
		Padding:    padding,
		Activation: ActivationReLU,
	}
}

// validConv2D is a unit-stride, unpadded 2D convolution.
func validConv2D(filters, kh, kw int) Layer {
	return conv2D(filters, kh, kw, 1, 1, PaddingValid)
}

func maxPool2D(ph, pw, sh, sw int, padding string) Layer {
	return Layer{
		Kind:    KindMaxPool2D,
		Pool:    []int{ph, pw},
		Strides: []int{sh, sw},
		Padding: padding,
	}
}

// strideMaxPool2D pools with strides equal to the pool size.
func strideMaxPool2D(ph, pw int) Layer {
	return maxPool2D(ph, pw, ph, pw, PaddingValid)
}

func zeroPad2D(h, w int) Layer {
	return Layer{Kind: KindZeroPad2D, ZeroPad: []int{h, w}}
}

func conv1D(filters, kernel int, padding string) Layer {
	return Layer{
		Kind:       KindConv1D,
		Filters:    filters,
		Kernel:     []int{kernel},
		Strides:    []int{1},
		Padding:    padding,
		Activation: ActivationReLU,
	}
}

func flatten() Layer {
	return Layer{Kind: KindFlatten}
}

func dense(units int) Layer {
	return Layer{Kind: KindDense, Units: units, Activation: ActivationReLU}
}

func dropout(rate float64) Layer {
	return Layer{Kind: KindDropout, Rate: rate}
}

func batchNorm() Layer {
	return Layer{Kind: KindBatchNorm}
}

func globalAveragePool2D() Layer {
	return Layer{Kind: KindGlobalAveragePool2D}
}

func predictions(numClasses int) Layer {
	return Layer{
		Kind:       KindDense,
		Name:       OutputLayerName,
		Units:      numClasses,
		Activation: ActivationSoftmax,
	}
}
