//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	vehiclecomp "github.com/SudithAmarasinghe/VehicleComp"
	"github.com/SudithAmarasinghe/VehicleComp/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Fetcher implements vehiclecomp.Fetcher.
var _ vehiclecomp.Fetcher = (*rod.Fetcher)(nil)

func TestFetcher_Fetch_ReturnsRenderedHTML(t *testing.T) {
	t.Parallel()

	// Serve a card grid built entirely by JavaScript, the way Ikman renders
	// its results.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Search Results</title></head>
<body>
<ul id="results"></ul>
<script>
var li = document.createElement('li');
li.className = 'card';
li.innerHTML = '<h2>Toyota Aqua 2015</h2><span class="price">Rs 5,500,000</span>';
document.getElementById('results').appendChild(li);
</script>
</body>
</html>`))
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher(rod.WithInterval(0))
	require.NoError(t, err)
	defer fetcher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	html, err := fetcher.Fetch(ctx, srv.URL)
	require.NoError(t, err)

	// The card exists only after script execution.
	assert.Contains(t, html, "Toyota Aqua 2015")
	assert.Contains(t, html, "Rs 5,500,000")
}

func TestFetcher_Fetch_SendsUserAgentOverride(t *testing.T) {
	t.Parallel()

	gotUA := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case gotUA <- r.Header.Get("User-Agent"):
		default:
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher(rod.WithInterval(0), rod.WithUserAgent("vehiclecomp-test"))
	require.NoError(t, err)
	defer fetcher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err = fetcher.Fetch(ctx, srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "vehiclecomp-test", <-gotUA)
}

func TestFetcher_Fetch_ContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {} // never respond
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher(rod.WithInterval(0))
	require.NoError(t, err)
	defer fetcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = fetcher.Fetch(ctx, srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
