package stress_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/randomizedcoder/bounded-queue/internal/stress"
)

func smallConfig(impl stress.Impl) stress.Config {
	cfg := stress.DefaultConfig()
	cfg.Impl = impl
	cfg.ItemsPerProducer = 500
	cfg.ReportInterval = 0
	return cfg
}

func TestRun(t *testing.T) {
	for _, impl := range []stress.Impl{stress.ImplBounded, stress.ImplChannel} {
		t.Run(string(impl), func(t *testing.T) {
			cfg := smallConfig(impl)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			res, err := stress.Run(ctx, cfg, zaptest.NewLogger(t))
			require.NoError(t, err)
			assert.Equal(t, int64(cfg.Total()), res.Sent)
			assert.Equal(t, int64(cfg.Total()), res.Received)
			assert.Zero(t, res.Stats.InFlight())
			assert.Zero(t, res.Stats.Rejected)
		})
	}
}

func TestRun_UnevenConsumerShare(t *testing.T) {
	cfg := smallConfig(stress.ImplBounded)
	cfg.Producers = 3
	cfg.Consumers = 4
	cfg.ItemsPerProducer = 333
	cfg.Capacity = 1

	res, err := stress.Run(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, int64(999), res.Received)
}

func TestRun_OpTimeoutChurn(t *testing.T) {
	cfg := smallConfig(stress.ImplBounded)
	cfg.Capacity = 1
	cfg.ItemsPerProducer = 200
	cfg.OpTimeout = time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := stress.Run(ctx, cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, int64(cfg.Total()), res.Received)
}

func TestRun_NoItems(t *testing.T) {
	cfg := smallConfig(stress.ImplChannel)
	cfg.ItemsPerProducer = 0

	res, err := stress.Run(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Zero(t, res.Received)
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := smallConfig(stress.ImplBounded)
	cfg.Consumers = 0

	_, err := stress.Run(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, stress.ErrInvalidConfig)
}

func TestRun_ContextCancelled(t *testing.T) {
	cfg := smallConfig(stress.ImplBounded)
	// Far more items than the deadline allows.
	cfg.ItemsPerProducer = 1 << 30 / cfg.Producers
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	res, err := stress.Run(ctx, cfg, zaptest.NewLogger(t))
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, res.Received, int64(cfg.Total()))
}
