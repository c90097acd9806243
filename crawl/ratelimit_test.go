package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoralesv/educrawl/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacer(t *testing.T) {
	t.Parallel()

	t.Run("spaces out successive actions", func(t *testing.T) {
		t.Parallel()

		pacer := crawl.NewPacer(50) // 20ms apart
		ctx := context.Background()

		start := time.Now()
		for range 3 {
			require.NoError(t, pacer.Wait(ctx))
		}
		// First token is free; the next two cost 20ms each.
		assert.GreaterOrEqual(t, time.Since(start), 35*time.Millisecond)
	})

	t.Run("disabled pacer never blocks", func(t *testing.T) {
		t.Parallel()

		pacer := crawl.NewPacer(0)
		ctx := context.Background()

		start := time.Now()
		for range 100 {
			require.NoError(t, pacer.Wait(ctx))
		}
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("canceled context aborts the wait", func(t *testing.T) {
		t.Parallel()

		pacer := crawl.NewPacer(0.1) // 10s apart
		ctx, cancel := context.WithCancel(context.Background())

		require.NoError(t, pacer.Wait(ctx)) // first token is free
		cancel()
		assert.Error(t, pacer.Wait(ctx))
	})
}
