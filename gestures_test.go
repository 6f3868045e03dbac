package gestures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllGestures_CanonicalOrder(t *testing.T) {
	want := []Gesture{
		"swipe_left", "swipe_right", "swipe_up", "swipe_down",
		"clockwise", "counter_clockwise", "tap", "double_tap",
		"zoom_in", "zoom_out",
	}
	got := AllGestures()
	assert.Equal(t, want, got)
	assert.Len(t, got, NumClasses)

	for i, g := range got {
		assert.Equal(t, i, g.Index(), "gesture %s", g)
	}

	// Returned slice is a copy.
	got[0] = "mutated"
	assert.Equal(t, SwipeLeft, AllGestures()[0])
}

func TestParseGesture(t *testing.T) {
	g, err := ParseGesture("counter_clockwise")
	require.NoError(t, err)
	assert.Equal(t, CounterClockwise, g)

	_, err = ParseGesture("wave")
	assert.ErrorIs(t, err, ErrUnknownGesture)

	assert.Equal(t, -1, Gesture("wave").Index())
	assert.False(t, Gesture("").Valid())
}

func TestGesture_OneHot(t *testing.T) {
	v, err := ZoomIn.OneHot()
	require.NoError(t, err)
	require.Len(t, v, NumClasses)

	for i, x := range v {
		if i == ZoomIn.Index() {
			assert.Equal(t, float32(1), x)
		} else {
			assert.Equal(t, float32(0), x)
		}
	}

	_, err = Gesture("wave").OneHot()
	assert.ErrorIs(t, err, ErrUnknownGesture)
}

func TestParseHand(t *testing.T) {
	h, err := ParseHand("left_hand")
	require.NoError(t, err)
	assert.Equal(t, LeftHand, h)
	assert.Equal(t, "L", h.Initial())
	assert.Equal(t, "R", RightHand.Initial())
	assert.Equal(t, "", Hand("foot").Initial())

	_, err = ParseHand("left")
	assert.ErrorIs(t, err, ErrUnknownHand)
}

func TestParseOrder(t *testing.T) {
	for _, o := range []Order{OrderRescaleNormalizeFilter, OrderFilterRescaleNormalize, OrderRescaleNormalize} {
		parsed, err := ParseOrder(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, parsed)
	}

	_, err := ParseOrder("unset")
	assert.ErrorIs(t, err, ErrUnknownOrder)
	assert.Equal(t, "unset", OrderUnset.String())
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("fft-lowpass")
	require.NoError(t, err)
	assert.Equal(t, FilterFFTLowPass, f)

	f, err = ParseFilter("butterworth")
	require.NoError(t, err)
	assert.Equal(t, FilterButterworth, f)

	_, err = ParseFilter("chebyshev")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfig_Validate(t *testing.T) {
	valid := DefaultConfig(OrderRescaleNormalizeFilter)

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"unset order", func(c *Config) { c.Order = OrderUnset }, true},
		{"unknown order", func(c *Config) { c.Order = Order(9) }, true},
		{"unknown filter", func(c *Config) { c.Filter = FilterKind(7) }, true},
		{"fft lowpass", func(c *Config) { c.Filter = FilterFFTLowPass }, false},
		{"fft cutoff at nyquist", func(c *Config) {
			c.Filter = FilterFFTLowPass
			c.CutoffHz = 50
		}, true},
		{"fft zero rate", func(c *Config) {
			c.Filter = FilterFFTLowPass
			c.SampleRate = 0
		}, true},
		{"butterworth ignores rate", func(c *Config) { c.SampleRate = 0 }, false},
		{"negative window", func(c *Config) { c.WindowLength = -1 }, true},
		{"huge window", func(c *Config) { c.WindowLength = maxWindowLength + 1 }, true},
		{"negative workers", func(c *Config) { c.MaxWorkers = -2 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewPreprocessor_Stages(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   []string
	}{
		{"training order", DefaultConfig(OrderRescaleNormalizeFilter), []string{"rescale", "normalize", "butterworth"}},
		{"filter first", DefaultConfig(OrderFilterRescaleNormalize), []string{"butterworth", "rescale", "normalize"}},
		{"device order", DefaultConfig(OrderRescaleNormalize), []string{"rescale", "normalize"}},
		{"stretch and fft", Config{
			Order:        OrderRescaleNormalizeFilter,
			Filter:       FilterFFTLowPass,
			SampleRate:   DefaultSampleRate,
			CutoffHz:     DefaultCutoffHz,
			WindowLength: DefaultWindowLength,
		}, []string{"stretch", "rescale", "normalize", "fft-lowpass"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPreprocessor(&tt.config)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Stages())
			assert.Equal(t, tt.config, p.Config())
		})
	}

	_, err := NewPreprocessor(nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
