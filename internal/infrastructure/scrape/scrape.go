// Package scrape pulls the readable text out of an article page for the
// dashboard's detail view.
package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

// Extractor implements the usecase.ArticleExtractor interface on top of
// go-readability.
type Extractor struct {
	// Client is used for the page request. Nil means a client with a
	// 15 second timeout.
	Client *http.Client

	// UserAgent overrides the request User-Agent. Empty means the
	// module default.
	UserAgent string
}

// Extract fetches rawURL and returns the page's readable text.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", fmt.Errorf("invalid article url: %s", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent())

	resp, err := e.client().Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	article, err := readability.FromReader(resp.Body, parsedURL)
	if err != nil {
		return "", fmt.Errorf("extract content: %w", err)
	}

	return strings.TrimSpace(article.TextContent), nil
}

func (e *Extractor) client() *http.Client {
	if e.Client != nil {
		return e.Client
	}
	return &http.Client{Timeout: 15 * time.Second}
}

func (e *Extractor) userAgent() string {
	if e.UserAgent != "" {
		return e.UserAgent
	}
	return "akhbar/1.0"
}
