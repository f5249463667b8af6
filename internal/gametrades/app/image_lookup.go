package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gametrades/internal/gametrades/domain/services"
	"gametrades/internal/gametrades/observability"
	"gametrades/internal/gametrades/ports/api"
	"gametrades/internal/gametrades/ports/cache"
	svc "gametrades/internal/gametrades/ports/services"
	"gametrades/pkg/logger"
)

const (
	methodResolve = "Resolve"

	msgCacheHit       = "image cache hit"
	msgCacheMiss      = "image cache miss"
	msgImageResolved  = "image resolved"
	msgImageMissing   = "image not found on page"
	msgErrCacheRead   = "failed to read image cache"
	msgErrCacheWrite  = "failed to write image cache"
	msgErrFetchPage   = "failed to fetch game page"
	msgErrExtractPage = "failed to extract image from page"

	errCtxReadingCache = "reading image cache"
	errCtxWritingCache = "writing image cache"
	errCtxFetchingPage = "fetching game page"
)

// ImageLookupImpl реализует интерфейс ImageLookup: кэш перед загрузкой страницы.
// Одновременные промахи по одному id могут загрузить страницу дважды,
// в кэше остается первое записанное значение.
type ImageLookupImpl struct {
	cache     cache.ImageCache
	fetcher   svc.PageFetcher
	extractor svc.ImageExtractor
	metrics   *observability.Metrics
}

// NewImageLookup создает сценарий поиска обложек. metrics может быть nil.
func NewImageLookup(
	imageCache cache.ImageCache,
	fetcher svc.PageFetcher,
	extractor svc.ImageExtractor,
	metrics *observability.Metrics,
) api.ImageLookup {
	return &ImageLookupImpl{
		cache:     imageCache,
		fetcher:   fetcher,
		extractor: extractor,
		metrics:   metrics,
	}
}

// Resolve возвращает URL обложки игры.
func (l *ImageLookupImpl) Resolve(ctx context.Context, gameID string) (string, error) {
	if gameID == "" {
		return "", services.ErrMissingGameID
	}
	log := logger.Log(ctx).With(zap.String("method", methodResolve), zap.String("game_id", gameID))

	url, ok, err := l.cache.Get(ctx, gameID)
	if err != nil {
		log.Error(ctx, msgErrCacheRead, zap.Error(err))
		l.metrics.RecordImageLookup(observability.ImageError)
		return "", fmt.Errorf("%s: %w", errCtxReadingCache, err)
	}
	if ok {
		log.Debug(ctx, msgCacheHit)
		l.metrics.RecordImageLookup(observability.ImageHit)
		return url, nil
	}
	log.Debug(ctx, msgCacheMiss)

	page, err := l.fetcher.Fetch(ctx, gameID)
	if err != nil {
		var upstream *services.UpstreamError
		if errors.As(err, &upstream) {
			l.metrics.RecordImageLookup(observability.ImageUpstreamError)
			return "", err
		}
		log.Error(ctx, msgErrFetchPage, zap.Error(err))
		l.metrics.RecordImageLookup(observability.ImageError)
		return "", fmt.Errorf("%s: %w", errCtxFetchingPage, err)
	}

	url, err = l.extractor.Extract(page)
	if err != nil {
		if errors.Is(err, services.ErrImageNotFound) {
			log.Info(ctx, msgImageMissing)
			l.metrics.RecordImageLookup(observability.ImageNotFound)
		} else {
			log.Error(ctx, msgErrExtractPage, zap.Error(err))
			l.metrics.RecordImageLookup(observability.ImageError)
		}
		return "", err
	}

	stored, err := l.cache.SetIfAbsent(ctx, gameID, url)
	if err != nil {
		log.Error(ctx, msgErrCacheWrite, zap.Error(err))
		l.metrics.RecordImageLookup(observability.ImageError)
		return "", fmt.Errorf("%s: %w", errCtxWritingCache, err)
	}

	log.Debug(ctx, msgImageResolved, zap.String("url", stored))
	l.metrics.RecordImageLookup(observability.ImageMiss)
	return stored, nil
}
