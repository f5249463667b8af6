package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gametrades/internal/gametrades/adapters/cache"
	"gametrades/internal/gametrades/adapters/scraper"
	"gametrades/internal/gametrades/app"
	"gametrades/internal/gametrades/domain/services"
	"gametrades/internal/gametrades/observability"
)

const itemrepPage = `<html><head>
<link rel="preload" as="image" href="https://cf.geekdo-images.com/x__itemrep/img/174430.jpg">
</head></html>`

func TestImageLookup_MissThenHit(t *testing.T) {
	ctx := context.Background()
	fetcher := &countingFetcher{page: []byte(itemrepPage)}
	metrics := observability.NewMetrics()
	lookup := app.NewImageLookup(cache.NewMemoryImageCache(), fetcher, scraper.NewHTMLExtractor(""), metrics)

	first, err := lookup.Resolve(ctx, "174430")
	require.NoError(t, err)
	assert.Equal(t, "https://cf.geekdo-images.com/x__itemrep/img/174430.jpg", first)

	second, err := lookup.Resolve(ctx, "174430")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.EqualValues(t, 1, fetcher.calls.Load())
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ImageLookupsTotal.WithLabelValues(observability.ImageMiss)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ImageLookupsTotal.WithLabelValues(observability.ImageHit)), 0)
}

func TestImageLookup_MissingID(t *testing.T) {
	fetcher := &countingFetcher{}
	lookup := app.NewImageLookup(cache.NewMemoryImageCache(), fetcher, scraper.NewHTMLExtractor(""), nil)

	_, err := lookup.Resolve(context.Background(), "")

	require.ErrorIs(t, err, services.ErrMissingGameID)
	assert.Zero(t, fetcher.calls.Load())
}

func TestImageLookup_Failures(t *testing.T) {
	ctx := context.Background()
	transportErr := errors.New("dial tcp: connection refused")

	tests := []struct {
		name      string
		fetcher   *countingFetcher
		extractor stubExtractor
		wantIs    error
		wantAs    bool
		result    string
	}{
		{
			name:    "ошибка статуса",
			fetcher: &countingFetcher{err: &services.UpstreamError{StatusCode: 404}},
			wantAs:  true,
			result:  observability.ImageUpstreamError,
		},
		{
			name:    "сетевая ошибка",
			fetcher: &countingFetcher{err: transportErr},
			wantIs:  transportErr,
			result:  observability.ImageError,
		},
		{
			name:      "нет обложки",
			fetcher:   &countingFetcher{page: []byte("<html></html>")},
			extractor: stubExtractor{err: services.ErrImageNotFound},
			wantIs:    services.ErrImageNotFound,
			result:    observability.ImageNotFound,
		},
		{
			name:      "ошибка разбора",
			fetcher:   &countingFetcher{page: []byte("<html>")},
			extractor: stubExtractor{err: services.ErrParseFailed},
			wantIs:    services.ErrParseFailed,
			result:    observability.ImageError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imageCache := cache.NewMemoryImageCache()
			metrics := observability.NewMetrics()
			lookup := app.NewImageLookup(imageCache, tt.fetcher, tt.extractor, metrics)

			_, err := lookup.Resolve(ctx, "42")
			require.Error(t, err)
			if tt.wantIs != nil {
				require.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantAs {
				var upstream *services.UpstreamError
				require.ErrorAs(t, err, &upstream)
			}

			_, cached, err := imageCache.Get(ctx, "42")
			require.NoError(t, err)
			assert.False(t, cached)
			assert.InDelta(t, 1, testutil.ToFloat64(metrics.ImageLookupsTotal.WithLabelValues(tt.result)), 0)
		})
	}
}

func TestImageLookup_FailureIsNotCached(t *testing.T) {
	ctx := context.Background()
	fetcher := &countingFetcher{err: &services.UpstreamError{StatusCode: 500}}
	lookup := app.NewImageLookup(cache.NewMemoryImageCache(), fetcher, scraper.NewHTMLExtractor(""), nil)

	_, err := lookup.Resolve(ctx, "7")
	require.Error(t, err)

	fetcher.err = nil
	fetcher.page = []byte(`<meta property="og:image" content="https://img/og.jpg">`)

	url, err := lookup.Resolve(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, "https://img/og.jpg", url)
	assert.EqualValues(t, 2, fetcher.calls.Load())
}

func TestImageLookup_ConcurrentMissesAgree(t *testing.T) {
	ctx := context.Background()
	fetcher := &countingFetcher{page: []byte(itemrepPage)}
	lookup := app.NewImageLookup(cache.NewMemoryImageCache(), fetcher, scraper.NewHTMLExtractor(""), nil)

	const callers = 8
	results := make([]string, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			url, err := lookup.Resolve(ctx, "174430")
			assert.NoError(t, err)
			results[i] = url
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, results[0], r)
	}
	assert.GreaterOrEqual(t, fetcher.calls.Load(), int32(1))
}
