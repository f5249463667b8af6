// Package scraper загружает страницы игр BoardGameGeek и извлекает из них
// URL обложки.
package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"gametrades/internal/gametrades/domain/services"
	svc "gametrades/internal/gametrades/ports/services"
	"gametrades/pkg/logger"
)

// Максимальный размер читаемой страницы.
const maxPageSize = 8 << 20

const (
	LogFetchingPage = "fetching game page"
	LogUpstreamFail = "upstream responded with non-success status"

	ErrBuildRequest = "failed to build upstream request"
	ErrDoRequest    = "failed to fetch upstream page"
	ErrReadBody     = "failed to read upstream page"
)

// HTTPFetcher загружает страницу по адресу baseURL + id.
type HTTPFetcher struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewHTTPFetcher создает загрузчик с ограничением времени на запрос.
func NewHTTPFetcher(baseURL, userAgent string, timeout time.Duration) svc.PageFetcher {
	return &HTTPFetcher{
		client:    &http.Client{Timeout: timeout},
		baseURL:   baseURL,
		userAgent: userAgent,
	}
}

// Fetch возвращает тело страницы. Статус вне диапазона 2xx возвращается
// как *services.UpstreamError.
func (f *HTTPFetcher) Fetch(ctx context.Context, gameID string) ([]byte, error) {
	target := f.baseURL + url.PathEscape(gameID)
	log := logger.Log(ctx).With(zap.String("method", "Fetch"), zap.String("url", target))
	log.Debug(ctx, LogFetchingPage)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrBuildRequest, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		log.Error(ctx, ErrDoRequest, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrDoRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn(ctx, LogUpstreamFail, zap.Int("status", resp.StatusCode))
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxPageSize))
		return nil, &services.UpstreamError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		log.Error(ctx, ErrReadBody, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrReadBody, err)
	}
	return body, nil
}
