package scraper_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gametrades/internal/gametrades/adapters/scraper"
	"gametrades/internal/gametrades/domain/services"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	var gotPath, gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	fetcher := scraper.NewHTTPFetcher(server.URL+"/boardgame/", "gametrades-test", time.Second)
	body, err := fetcher.Fetch(context.Background(), "174430")

	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(body))
	assert.Equal(t, "/boardgame/174430", gotPath)
	assert.Equal(t, "gametrades-test", gotAgent)
}

func TestHTTPFetcher_UpstreamStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	fetcher := scraper.NewHTTPFetcher(server.URL+"/", "", time.Second)
	_, err := fetcher.Fetch(context.Background(), "1")

	var upstream *services.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusServiceUnavailable, upstream.StatusCode)
	assert.Equal(t, "Failed to fetch BGG page: 503", err.Error())
}

func TestHTTPFetcher_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	fetcher := scraper.NewHTTPFetcher(server.URL+"/", "", time.Second)
	_, err := fetcher.Fetch(context.Background(), "1")

	require.Error(t, err)
	var upstream *services.UpstreamError
	assert.False(t, errors.As(err, &upstream))
	assert.Contains(t, err.Error(), scraper.ErrDoRequest)
}

func TestHTTPFetcher_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	fetcher := scraper.NewHTTPFetcher(server.URL+"/", "", 50*time.Millisecond)
	_, err := fetcher.Fetch(context.Background(), "1")

	require.Error(t, err)
}

func TestHTMLExtractor_Extract(t *testing.T) {
	tests := []struct {
		name    string
		page    string
		want    string
		wantErr error
	}{
		{
			name: "preload-ссылка",
			page: `<html><head>
				<link rel="preload" as="image" href="https://cf.geekdo-images.com/abc__itemrep/img/pic1.jpg">
				<meta property="og:image" content="https://cf.geekdo-images.com/og.jpg">
			</head></html>`,
			want: "https://cf.geekdo-images.com/abc__itemrep/img/pic1.jpg",
		},
		{
			name: "preload-ссылка важнее og:image, стоящего раньше",
			page: `<meta property="og:image" content="https://img/og.jpg">
				<link rel="preload" as="image" href="https://img/x__itemrep/a.jpg"/>`,
			want: "https://img/x__itemrep/a.jpg",
		},
		{
			name: "preload без маркера игнорируется",
			page: `<link rel="preload" as="image" href="https://img/logo.png">
				<link rel="preload" as="font" href="https://img/itemrep.woff">
				<meta property="og:image" content="https://img/og.jpg">`,
			want: "https://img/og.jpg",
		},
		{
			name: "только og:image",
			page: `<html><head><meta property="og:image" content="https://img/og.jpg"></head></html>`,
			want: "https://img/og.jpg",
		},
		{
			name: "первый og:image",
			page: `<meta property="og:image" content="https://img/1.jpg"><meta property="og:image" content="https://img/2.jpg">`,
			want: "https://img/1.jpg",
		},
		{
			name:    "нет подходящих тегов",
			page:    `<html><head><title>Game</title></head><body></body></html>`,
			wantErr: services.ErrImageNotFound,
		},
		{
			name:    "пустой content у og:image",
			page:    `<meta property="og:image" content="">`,
			wantErr: services.ErrImageNotFound,
		},
		{
			name:    "пустая страница",
			page:    ``,
			wantErr: services.ErrImageNotFound,
		},
	}

	extractor := scraper.NewHTMLExtractor("")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractor.Extract([]byte(tt.page))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTMLExtractor_CustomMarker(t *testing.T) {
	page := []byte(`<link rel="preload" as="image" href="https://img/a__itemrep.jpg">
		<link rel="preload" as="image" href="https://img/b__cover.jpg">`)

	got, err := scraper.NewHTMLExtractor("cover").Extract(page)

	require.NoError(t, err)
	assert.Equal(t, "https://img/b__cover.jpg", got)
}
