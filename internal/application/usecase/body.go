package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ArticleExtractor abstracts readable-text extraction from a web page.
type ArticleExtractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// BodyService loads the full text of an article on demand for the detail
// view. Bodies are fetched fresh every time; they are display-only and
// never classified or stored.
type BodyService struct {
	Extractor ArticleExtractor
	Timeout   time.Duration
}

// NewBodyService constructs a BodyService.
func NewBodyService(extractor ArticleExtractor) *BodyService {
	return &BodyService{Extractor: extractor, Timeout: 20 * time.Second}
}

// Load extracts the readable body behind an article link.
func (s *BodyService) Load(ctx context.Context, link string) (string, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return "", errors.New("article link is empty")
	}
	if s.Extractor == nil {
		return "", errors.New("no extractor configured")
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	body, err := s.Extractor.Extract(ctx, link)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(body), nil
}
