package gestures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-photodiode-gestures/internal/testutil"
)

func makeBatch(t testing.TB, n int) []Sample {
	t.Helper()
	batch := make([]Sample, n)
	for i := range batch {
		s, err := NewSample(testutil.GestureWindow(DefaultChannels, DefaultWindowLength, float64(20+i%60)))
		require.NoError(t, err)
		batch[i] = s
	}
	return batch
}

// TestProcessBatchParallel tests that parallel processing produces identical results.
func TestProcessBatchParallel(t *testing.T) {
	batch := makeBatch(t, 37)

	for _, order := range []Order{OrderRescaleNormalizeFilter, OrderFilterRescaleNormalize, OrderRescaleNormalize} {
		t.Run(order.String(), func(t *testing.T) {
			seqConfig := DefaultConfig(order)
			parConfig := DefaultConfig(order)
			parConfig.EnableParallel = true
			parConfig.MaxWorkers = 4

			seq, err := NewPreprocessor(&seqConfig)
			require.NoError(t, err)
			par, err := NewPreprocessor(&parConfig)
			require.NoError(t, err)

			outSeq, err := seq.ProcessBatch(context.Background(), batch)
			require.NoError(t, err)
			outPar, err := par.ProcessBatch(context.Background(), batch)
			require.NoError(t, err)

			require.Len(t, outPar, len(outSeq))
			for i := range outSeq {
				assert.True(t, outSeq[i].Equal(outPar[i]), "sample %d differs", i)
			}
		})
	}
}

func TestProcessBatch_PreservesOrder(t *testing.T) {
	batch := makeBatch(t, 12)
	config := DefaultConfig(OrderRescaleNormalizeFilter)
	config.EnableParallel = true

	p, err := NewPreprocessor(&config)
	require.NoError(t, err)

	out, err := p.ProcessBatch(context.Background(), batch)
	require.NoError(t, err)

	for i, s := range batch {
		want, err := p.Process(s)
		require.NoError(t, err)
		assert.True(t, want.Equal(out[i]), "sample %d out of order", i)
	}
}

func TestProcessBatch_Error(t *testing.T) {
	batch := makeBatch(t, 5)
	batch[3] = Sample{}

	for _, parallel := range []bool{false, true} {
		config := DefaultConfig(OrderRescaleNormalize)
		config.EnableParallel = parallel

		p, err := NewPreprocessor(&config)
		require.NoError(t, err)

		_, err = p.ProcessBatch(context.Background(), batch)
		assert.ErrorIs(t, err, ErrEmptySample, "parallel=%v", parallel)
		assert.Contains(t, err.Error(), "sample 3")
	}
}

func TestProcessBatch_Cancelled(t *testing.T) {
	batch := makeBatch(t, 8)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, parallel := range []bool{false, true} {
		config := DefaultConfig(OrderRescaleNormalizeFilter)
		config.EnableParallel = parallel

		p, err := NewPreprocessor(&config)
		require.NoError(t, err)

		_, err = p.ProcessBatch(ctx, batch)
		assert.ErrorIs(t, err, context.Canceled, "parallel=%v", parallel)
	}
}

func TestProcess_LeavesInputUntouched(t *testing.T) {
	batch := makeBatch(t, 1)
	before := batch[0].ChannelData()

	config := DefaultConfig(OrderRescaleNormalizeFilter)
	p, err := NewPreprocessor(&config)
	require.NoError(t, err)

	_, err = p.Process(batch[0])
	require.NoError(t, err)
	assert.Equal(t, before, batch[0].ChannelData())
}

func TestProcess_StretchToWindowLength(t *testing.T) {
	// 20 Hz capture: 20 readings per gesture.
	s, err := NewSample(testutil.GestureWindow(DefaultChannels, 20, 8))
	require.NoError(t, err)

	config := DefaultConfig(OrderRescaleNormalizeFilter)
	config.WindowLength = DefaultWindowLength
	p, err := NewPreprocessor(&config)
	require.NoError(t, err)

	out, err := p.Process(s)
	require.NoError(t, err)
	assert.Equal(t, Shape{DefaultWindowLength, DefaultChannels}, out.Shape())

	_, err = Reshape(out, DefaultInputShape())
	assert.NoError(t, err)
}

func TestProcess_SIMDMatchesScalar(t *testing.T) {
	batch := makeBatch(t, 4)

	simdConfig := DefaultConfig(OrderRescaleNormalizeFilter)
	scalarConfig := simdConfig
	scalarConfig.EnableSIMD = false

	withSIMD, err := NewPreprocessor(&simdConfig)
	require.NoError(t, err)
	without, err := NewPreprocessor(&scalarConfig)
	require.NoError(t, err)

	for _, s := range batch {
		a, err := withSIMD.Process(s)
		require.NoError(t, err)
		b, err := without.Process(s)
		require.NoError(t, err)
		testutil.AssertChannelsEqual(t, b.ChannelData(), a.ChannelData(), 1e-9)
	}
}
