package detector

// Defaults for a 3-photodiode sensor read every 10 ms.
const (
	DefaultChannels         = 3
	DefaultDetectionBuffer  = 10   // Readings kept while idle
	DefaultDetectionWindow  = 5    // Trailing readings that must all be dark
	DefaultGestureLength    = 100  // Readings per emitted gesture
	DefaultInitialThreshold = 100  // Raw ADC counts
	DefaultThresholdCoeff   = 0.85 // Fraction of ambient median that counts as dark
	DefaultAdjustLength     = 100  // Idle readings between recalibrations
)
