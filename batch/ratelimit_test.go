package batch_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/pdbfetch/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacer_Wait(t *testing.T) {
	t.Parallel()

	t.Run("first wait passes immediately", func(t *testing.T) {
		t.Parallel()

		pacer := batch.NewPacer(time.Second)

		start := time.Now()
		require.NoError(t, pacer.Wait(context.Background()))
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("subsequent waits are spaced by the interval", func(t *testing.T) {
		t.Parallel()

		interval := 30 * time.Millisecond
		pacer := batch.NewPacer(interval)

		start := time.Now()
		require.NoError(t, pacer.Wait(context.Background()))
		require.NoError(t, pacer.Wait(context.Background()))
		require.NoError(t, pacer.Wait(context.Background()))
		assert.GreaterOrEqual(t, time.Since(start), 2*interval)
	})

	t.Run("returns error when context is cancelled", func(t *testing.T) {
		t.Parallel()

		pacer := batch.NewPacer(time.Minute)
		require.NoError(t, pacer.Wait(context.Background()))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.Error(t, pacer.Wait(ctx))
	})
}
