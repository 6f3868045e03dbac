package gestures

// Capture defaults
const (
	DefaultSampleRate   = 100.0 // Readings per second (10 ms read period)
	DefaultCutoffHz     = 25.0  // FFT low-pass band limit
	DefaultChannels     = 3     // Red, green and blue photodiodes
	DefaultWindowLength = 100   // Readings per gesture window
)

// Default model input shape (steps x width x channels)
const (
	defaultInputDim1 = 20
	defaultInputDim2 = 5
	defaultInputDim3 = 3
)

// Validation limits
const (
	maxWindowLength = 10000 // Longest window accepted for stretching
	nyquistDivisor  = 2     // Band limits must stay below SampleRate / 2
)
