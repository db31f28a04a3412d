// Package usecase contains application-level services.
package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/tesso57/akhbar/internal/domain/press"
)

// Entry is one raw item handed back by the feed collaborator. Summary may
// still carry HTML; absent fields arrive as empty strings.
type Entry struct {
	Title   string
	Summary string
	Link    string
}

// FeedFetcher abstracts RSS fetching.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]Entry, error)
}

// FetchReport counts per-URL outcomes of one digest build.
type FetchReport struct {
	Requested int
	Succeeded int
	Failed    int
}

// BuildOptions configures one digest build.
type BuildOptions struct {
	// MaxPerSubject caps every bucket after all sources are read.
	// Non-positive keeps everything.
	MaxPerSubject int
}

// DigestService builds a classified digest from the configured sources.
// Fetches run strictly in source order, one URL at a time; a failing URL
// is logged and skipped, never fatal.
type DigestService struct {
	Fetcher FeedFetcher
	Sources []press.Source
	Logger  *slog.Logger
	Now     func() time.Time
}

// NewDigestService constructs a DigestService over the compiled-in sources.
func NewDigestService(fetcher FeedFetcher) *DigestService {
	return &DigestService{Fetcher: fetcher}
}

// Build fetches every configured URL in order and returns the classified
// digest plus a report of how the fetches went. Cancelling the context
// stops before the next URL; the partial digest is still returned.
func (s *DigestService) Build(ctx context.Context, opts BuildOptions) (*press.Digest, FetchReport) {
	digest := press.NewDigest(s.now())
	var report FetchReport

fetch:
	for _, source := range s.sources() {
		for _, url := range source.URLs {
			if ctx.Err() != nil {
				break fetch
			}
			report.Requested++

			entries, err := s.Fetcher.Fetch(ctx, url)
			if err != nil {
				report.Failed++
				s.logger().Warn("feed fetch failed", "url", url, "err", err)
				continue
			}
			report.Succeeded++

			for _, entry := range entries {
				title := press.Normalize(entry.Title)
				if title == "" {
					continue
				}
				summary := press.Normalize(entry.Summary)
				subject, ok := press.Classify(title, summary)
				if !ok {
					continue
				}
				digest.Append(subject, press.Article{
					Source:  source.Name,
					Title:   title,
					Summary: summary,
					Link:    strings.TrimSpace(entry.Link),
				})
			}
		}
	}

	digest.Truncate(opts.MaxPerSubject)
	return digest, report
}

func (s *DigestService) sources() []press.Source {
	if s.Sources != nil {
		return s.Sources
	}
	return press.Sources
}

func (s *DigestService) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *DigestService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
