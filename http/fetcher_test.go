package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	vehiclecomp "github.com/SudithAmarasinghe/VehicleComp"
	vchttp "github.com/SudithAmarasinghe/VehicleComp/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body><div class=\"item\">Toyota Aqua</div></body></html>"))
		}))
		defer server.Close()

		fetcher := vchttp.NewFetcher(vchttp.WithInterval(0))
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Contains(t, html, "Toyota Aqua")
	})

	t.Run("sends browser-like headers", func(t *testing.T) {
		t.Parallel()

		var gotUA, gotAccept string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			gotAccept = r.Header.Get("Accept")
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := vchttp.NewFetcher(vchttp.WithInterval(0))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Contains(t, gotUA, "Chrome")
		assert.Contains(t, gotAccept, "text/html")
	})

	t.Run("enforces minimum inter-request interval", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		interval := 100 * time.Millisecond
		fetcher := vchttp.NewFetcher(vchttp.WithInterval(interval))
		defer fetcher.Close()

		begin := time.Now()
		for i := 0; i < 3; i++ {
			_, err := fetcher.Fetch(context.Background(), server.URL)
			require.NoError(t, err)
		}
		// First request is immediate, the next two each wait the interval.
		assert.GreaterOrEqual(t, time.Since(begin), 2*interval)
	})

	t.Run("returns EUNAVAILABLE for non-2xx status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		fetcher := vchttp.NewFetcher(vchttp.WithInterval(0))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, vehiclecomp.EUNAVAILABLE, vehiclecomp.ErrorCode(err))
		assert.Contains(t, err.Error(), "403")
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte("too late"))
		}))
		defer server.Close()

		fetcher := vchttp.NewFetcher(vchttp.WithInterval(0), vchttp.WithTimeout(20*time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("respects context cancellation while rate limited", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := vchttp.NewFetcher(vchttp.WithInterval(time.Hour))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err = fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})
}

// Compile-time verification that Fetcher implements vehiclecomp.Fetcher.
var _ vehiclecomp.Fetcher = (*vchttp.Fetcher)(nil)
