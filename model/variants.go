package model

import gestures "github.com/tphakala/go-photodiode-gestures"

func experimental(_ gestures.Shape, numClasses int) []Layer {
	return []Layer{
		conv2D(32, 3, 2, 1, 1, PaddingSame),
		maxPool2D(2, 2, 1, 1, PaddingSame),

		conv2D(64, 3, 3, 1, 1, PaddingSame),
		maxPool2D(2, 2, 2, 2, PaddingValid),

		flatten(),

		dense(128),
		dropout(0.5),

		dense(128),
		dropout(0.5),

		predictions(numClasses),
	}
}

func alexnet(_ gestures.Shape, numClasses int) []Layer {
	return []Layer{
		validConv2D(300, 3, 1),
		maxPool2D(2, 2, 1, 1, PaddingValid),
		validConv2D(128, 3, 1),
		maxPool2D(2, 1, 2, 2, PaddingValid),
		validConv2D(192, 2, 1),
		validConv2D(192, 2, 1),
		validConv2D(128, 2, 1),
		maxPool2D(2, 1, 1, 1, PaddingValid),
		flatten(),
		dropout(0.5),
		dense(128),
		dropout(0.5),
		dense(128),
		predictions(numClasses),
	}
}

// beernetFamily builds the three-block BeerNet topology with the given
// filter counts.
func beernetFamily(f1, f2, f3 int, numClasses int) []Layer {
	return []Layer{
		conv2D(f1, 3, 1, 1, 1, PaddingSame),
		maxPool2D(2, 1, 1, 1, PaddingValid),

		validConv2D(f2, 2, 2),
		maxPool2D(2, 2, 2, 1, PaddingSame),

		validConv2D(f3, 2, 1),
		maxPool2D(2, 2, 2, 1, PaddingValid),

		flatten(),

		dense(128),
		dropout(0.5),

		dense(128),
		dropout(0.5),

		predictions(numClasses),
	}
}

func beernet(_ gestures.Shape, numClasses int) []Layer {
	return beernetFamily(32, 64, 128, numClasses)
}

func beernetLite(_ gestures.Shape, numClasses int) []Layer {
	return beernetFamily(16, 32, 64, numClasses)
}

func beernetExperimental(_ gestures.Shape, numClasses int) []Layer {
	return []Layer{
		conv2D(32, 3, 1, 1, 1, PaddingSame),
		maxPool2D(2, 1, 1, 1, PaddingSame),

		validConv2D(32, 2, 2),
		maxPool2D(2, 1, 1, 1, PaddingSame),

		validConv2D(64, 2, 1),
		maxPool2D(2, 2, 2, 1, PaddingValid),

		flatten(),

		dense(128),
		dropout(0.5),

		predictions(numClasses),
	}
}

func fcn(_ gestures.Shape, numClasses int) []Layer {
	return []Layer{
		batchNorm(),
		conv1D(128, 8, PaddingSame),
		batchNorm(),
		conv1D(256, 5, PaddingSame),
		batchNorm(),
		conv1D(128, 3, PaddingSame),

		globalAveragePool2D(),

		predictions(numClasses),
	}
}

func slamCNN(_ gestures.Shape, numClasses int) []Layer {
	return []Layer{
		validConv2D(32, 2, 2),
		validConv2D(32, 2, 2),
		strideMaxPool2D(3, 1),
		validConv2D(16, 5, 1),
		flatten(),
		dropout(0.5),
		predictions(numClasses),
	}
}

// slamPadded builds the zero-padded SLAM CNN family: padding, three
// convolutions, pooling and a final tall convolution.
func slamPadded(padW, k1, f1, f2, f3, f4 int, numClasses int) []Layer {
	return []Layer{
		zeroPad2D(0, padW),
		validConv2D(f1, k1, k1),
		validConv2D(f2, 2, 2),
		validConv2D(f3, 2, 2),
		strideMaxPool2D(3, 1),
		validConv2D(f4, 5, 1),
		flatten(),
		dropout(0.5),
		predictions(numClasses),
	}
}

func slamCNNPadding(_ gestures.Shape, numClasses int) []Layer {
	return slamPadded(2, 3, 32, 16, 16, 16, numClasses)
}

func slamCNNPaddingLite(_ gestures.Shape, numClasses int) []Layer {
	return slamPadded(2, 3, 16, 16, 16, 8, numClasses)
}

func slamCNNPaddingPyramid(_ gestures.Shape, numClasses int) []Layer {
	return slamPadded(2, 3, 8, 16, 16, 32, numClasses)
}

func slamCNNPaddingPyramidLite(_ gestures.Shape, numClasses int) []Layer {
	return slamPadded(2, 3, 8, 16, 16, 16, numClasses)
}

func narrowSlamCNNPaddingPyramid(_ gestures.Shape, numClasses int) []Layer {
	return slamPadded(1, 2, 8, 16, 32, 32, numClasses)
}
