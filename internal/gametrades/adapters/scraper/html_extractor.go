package scraper

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"gametrades/internal/gametrades/domain/services"
	svc "gametrades/internal/gametrades/ports/services"
)

// DefaultImageMarker - подстрока href, отличающая preload-ссылку на обложку.
const DefaultImageMarker = "itemrep"

// HTMLExtractor ищет URL обложки в HTML страницы игры.
//
// Приоритет: первая <link rel="preload" as="image"> с marker в href,
// затем первая <meta property="og:image">.
type HTMLExtractor struct {
	marker string
}

// NewHTMLExtractor создает экстрактор. Пустой marker заменяется DefaultImageMarker.
func NewHTMLExtractor(marker string) svc.ImageExtractor {
	if marker == "" {
		marker = DefaultImageMarker
	}
	return &HTMLExtractor{marker: marker}
}

// Extract возвращает services.ErrImageNotFound, если подходящих тегов нет,
// и services.ErrParseFailed при ошибке разбора.
func (e *HTMLExtractor) Extract(page []byte) (string, error) {
	z := html.NewTokenizer(bytes.NewReader(page))

	var (
		ogImage string
		ogSeen  bool
	)
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("%w: %w", services.ErrParseFailed, err)
			}
			if ogImage == "" {
				return "", services.ErrImageNotFound
			}
			return ogImage, nil

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.Data {
			case "link":
				if href, ok := e.preloadImage(tok); ok {
					return href, nil
				}
			case "meta":
				if !ogSeen && attr(tok, "property") == "og:image" {
					ogSeen = true
					ogImage = attr(tok, "content")
				}
			}
		}
	}
}

func (e *HTMLExtractor) preloadImage(tok html.Token) (string, bool) {
	if attr(tok, "rel") != "preload" || attr(tok, "as") != "image" {
		return "", false
	}
	href := attr(tok, "href")
	if !strings.Contains(href, e.marker) {
		return "", false
	}
	return href, true
}

func attr(tok html.Token, name string) string {
	for _, a := range tok.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
