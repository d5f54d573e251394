package ratelimit_test

import (
	"context"
	"testing"

	"github.com/SscSPs/patient_decisions_app/internal/platform/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MemoryStore(t *testing.T) {
	limiter, err := ratelimit.New("2-M", nil)
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		state, err := limiter.Get(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.False(t, state.Reached)
	}

	state, err := limiter.Get(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, state.Reached)

	other, err := limiter.Get(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.False(t, other.Reached, "limits are per key")
}

func TestNew_InvalidRate(t *testing.T) {
	_, err := ratelimit.New("lots", nil)

	assert.Error(t, err)
}
