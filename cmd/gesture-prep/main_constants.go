package main

// Default command-line flag values
const (
	defaultHands    = "right"
	defaultShape    = "20,5,3"
	defaultFilter   = "butterworth"
	defaultTestSeed = 1
)

// Output buffering
const (
	outputBufferSize = 256 * 1024 // 256KB write buffer
)
