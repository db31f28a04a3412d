// Package feed fetches and parses the RSS/Atom feeds behind the
// compiled-in sources.
package feed

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/tesso57/akhbar/internal/application/usecase"
)

// DefaultTimeout bounds a single feed request end to end.
const DefaultTimeout = 15 * time.Second

const feedAcceptHeader = "application/atom+xml, application/rss+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"

type acceptTransport struct {
	base http.RoundTripper
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}
	return base.RoundTrip(clone)
}

// ParserFunc is exposed for testing.
// It allows mocking the feed parsing logic.
var ParserFunc = defaultParser

func defaultParser(ctx context.Context, url string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "akhbar/1.0"
	fp.Client = &http.Client{Transport: acceptTransport{base: http.DefaultTransport}}
	return fp.ParseURLWithContext(url, ctx)
}

// FetchWithContext parses the feed at url and returns its entries in
// feed order. Summaries are passed through raw; cleaning them up is the
// digest builder's job.
func FetchWithContext(ctx context.Context, url string) ([]usecase.Entry, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.New("feed url is empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	parsed, err := ParserFunc(ctx, url)
	if err != nil {
		return nil, err
	}

	entries := make([]usecase.Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		summary := item.Description
		if summary == "" {
			summary = item.Content
		}
		entries = append(entries, usecase.Entry{
			Title:   item.Title,
			Summary: summary,
			Link:    item.Link,
		})
	}
	return entries, nil
}

// Fetcher implements the usecase.FeedFetcher interface.
type Fetcher struct {
	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Fetch fetches a single feed with the configured timeout.
func (f Fetcher) Fetch(ctx context.Context, url string) ([]usecase.Entry, error) {
	timeout := f.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return FetchWithContext(ctx, url)
}
