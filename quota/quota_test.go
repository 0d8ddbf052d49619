package quota_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"summarize-api/config"
	"summarize-api/quota"
)

func TestUnlimitedByDefault(t *testing.T) {
	l := quota.NewLimiterFromConfig(config.SummaryQuotaConfig{})

	for range 5 {
		ok, err := l.WaitAndReserve(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestDailyCeiling(t *testing.T) {
	l := quota.NewLimiterFromConfig(config.SummaryQuotaConfig{RequestsPerDay: 2})

	for range 2 {
		ok, err := l.WaitAndReserve(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := l.WaitAndReserve(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPacingRespectsContextCancellation(t *testing.T) {
	l := quota.NewLimiterFromConfig(config.SummaryQuotaConfig{RequestsPerMinute: 1})

	ok, err := l.WaitAndReserve(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	// The second call must pace for up to a minute; cancel instead.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ok, err = l.WaitAndReserve(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
}
