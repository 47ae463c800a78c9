package scrape_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SudithAmarasinghe/VehicleComp/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithBackoff(t *testing.T) {
	t.Parallel()

	delays := []time.Duration{time.Millisecond, time.Millisecond}

	t.Run("returns on first success without retrying", func(t *testing.T) {
		t.Parallel()

		var calls int
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "<html>ok</html>", nil
		}

		html, err := scrape.FetchWithBackoff(context.Background(), "https://example.com", fetch, nil, delays)
		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success and logs each retry", func(t *testing.T) {
		t.Parallel()

		var calls int
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("boom")
			}
			return "<html>ok</html>", nil
		}

		var logged []string
		logger := func(format string, args ...any) {
			logged = append(logged, fmt.Sprintf(format, args...))
		}

		html, err := scrape.FetchWithBackoff(context.Background(), "https://example.com", fetch, logger, delays)
		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
		assert.Equal(t, 3, calls)
		assert.Len(t, logged, 2)
	})

	t.Run("returns last error when attempts exhaust", func(t *testing.T) {
		t.Parallel()

		var calls int
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "", fmt.Errorf("attempt %d failed", calls)
		}

		_, err := scrape.FetchWithBackoff(context.Background(), "https://example.com", fetch, nil, delays)
		require.Error(t, err)
		assert.EqualError(t, err, "attempt 3 failed")
		assert.Equal(t, len(delays)+1, calls)
	})

	t.Run("stops waiting when context is cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(ctx context.Context, url string) (string, error) {
			cancel()
			return "", errors.New("boom")
		}

		_, err := scrape.FetchWithBackoff(ctx, "https://example.com", fetch, nil, []time.Duration{time.Minute})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestDefaultBackoffDelays(t *testing.T) {
	t.Parallel()

	delays := scrape.DefaultBackoffDelays()
	require.Len(t, delays, 3)
	for i := 1; i < len(delays); i++ {
		assert.Equal(t, 2*delays[i-1], delays[i])
	}
}
