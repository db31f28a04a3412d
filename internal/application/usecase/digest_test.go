package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/tesso57/akhbar/internal/domain/press"
)

type stubFetcher struct {
	entries map[string][]Entry
	errs    map[string]error
	calls   []string
}

func (f *stubFetcher) Fetch(_ context.Context, url string) ([]Entry, error) {
	f.calls = append(f.calls, url)
	if err, ok := f.errs[url]; ok {
		return nil, err
	}
	if entries, ok := f.entries[url]; ok {
		return entries, nil
	}
	return nil, errors.New("unknown url")
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSources() []press.Source {
	return []press.Source{
		{Name: "Dawn", URLs: []string{"https://one.example/feed"}},
		{Name: "The Express Tribune", URLs: []string{"https://two.example/a", "https://two.example/b"}},
	}
}

func TestDigestServiceBuild(t *testing.T) {
	fetcher := &stubFetcher{
		entries: map[string][]Entry{
			"https://one.example/feed": {
				{Title: "Inflation eases in July", Summary: "<p>Prices cool down.</p>", Link: " https://one.example/inflation "},
				{Title: "", Summary: "no title, must be skipped", Link: "https://one.example/ghost"},
				{Title: "   ", Summary: "blank title, must be skipped", Link: "https://one.example/blank"},
				{Title: "&nbsp;", Summary: "entity-only title, must be skipped", Link: "https://one.example/nbsp"},
				{Title: "Chess club winners announced", Summary: "", Link: "https://one.example/chess"},
			},
			"https://two.example/a": {
				{Title: "Wheat support price announced", Summary: "", Link: "https://two.example/wheat"},
			},
			"https://two.example/b": {
				{Title: "Cabinet reshuffle looms", Summary: "<p>Islamabad explores a new strategic&nbsp;partnership</p>", Link: "https://two.example/cabinet"},
			},
		},
	}

	svc := NewDigestService(fetcher)
	svc.Sources = testSources()
	svc.Logger = quietLogger()
	svc.Now = func() time.Time { return time.Date(2026, 5, 11, 7, 30, 0, 0, time.UTC) }

	digest, report := svc.Build(context.Background(), BuildOptions{MaxPerSubject: 6})

	if report.Requested != 3 || report.Succeeded != 3 || report.Failed != 0 {
		t.Errorf("report = %+v, want 3 requested, 3 succeeded, 0 failed", report)
	}
	if !digest.GeneratedAt.Equal(time.Date(2026, 5, 11, 7, 30, 0, 0, time.UTC)) {
		t.Errorf("GeneratedAt = %v, want injected clock value", digest.GeneratedAt)
	}

	economy := digest.Articles(press.Economy)
	if len(economy) != 1 {
		t.Fatalf("Economy bucket has %d articles, want 1", len(economy))
	}
	got := economy[0]
	if got.Source != "Dawn" {
		t.Errorf("Source = %q, want %q", got.Source, "Dawn")
	}
	if got.Title != "Inflation eases in July" {
		t.Errorf("Title = %q, want normalized title", got.Title)
	}
	if got.Summary != "Prices cool down." {
		t.Errorf("Summary = %q, want normalized plain text", got.Summary)
	}
	if got.Link != "https://one.example/inflation" {
		t.Errorf("Link = %q, want trimmed link", got.Link)
	}

	agri := digest.Articles(press.Agriculture)
	if len(agri) != 1 || agri[0].Source != "The Express Tribune" {
		t.Errorf("Agriculture bucket = %+v, want one Tribune article", agri)
	}

	// "strategic partnership" only exists once &nbsp; is decoded to a
	// space, so the cabinet article proves classification runs over the
	// normalized text.
	foreign := digest.Articles(press.ForeignPolicy)
	if len(foreign) != 1 || foreign[0].Title != "Cabinet reshuffle looms" {
		t.Fatalf("ForeignPolicy bucket = %+v, want the cabinet article", foreign)
	}
	if foreign[0].Summary != "Islamabad explores a new strategic partnership" {
		t.Errorf("Summary = %q, want entity decoded and tags stripped", foreign[0].Summary)
	}

	if digest.Total() != 3 {
		t.Errorf("Total() = %d, want 3 (blank and unmatched entries dropped)", digest.Total())
	}
}

func TestDigestServiceBuildFetchOrder(t *testing.T) {
	fetcher := &stubFetcher{entries: map[string][]Entry{
		"https://one.example/feed": {},
		"https://two.example/a":    {},
		"https://two.example/b":    {},
	}}

	svc := NewDigestService(fetcher)
	svc.Sources = testSources()
	svc.Logger = quietLogger()

	svc.Build(context.Background(), BuildOptions{MaxPerSubject: 6})

	want := []string{"https://one.example/feed", "https://two.example/a", "https://two.example/b"}
	if len(fetcher.calls) != len(want) {
		t.Fatalf("fetched %d URLs, want %d", len(fetcher.calls), len(want))
	}
	for i, url := range want {
		if fetcher.calls[i] != url {
			t.Errorf("fetch %d = %q, want %q (declared order)", i, fetcher.calls[i], url)
		}
	}
}

func TestDigestServiceBuildSkipsFailedURLs(t *testing.T) {
	fetcher := &stubFetcher{
		entries: map[string][]Entry{
			"https://one.example/feed": {
				{Title: "Rupee gains against dollar", Summary: "stock market rally", Link: "https://one.example/rupee"},
			},
			"https://two.example/b": {
				{Title: "IMF mission arrives", Summary: "", Link: "https://two.example/imf"},
			},
		},
		errs: map[string]error{
			"https://two.example/a": errors.New("connection refused"),
		},
	}

	svc := NewDigestService(fetcher)
	svc.Sources = testSources()
	svc.Logger = quietLogger()

	digest, report := svc.Build(context.Background(), BuildOptions{MaxPerSubject: 6})

	if report.Requested != 3 || report.Succeeded != 2 || report.Failed != 1 {
		t.Errorf("report = %+v, want 3 requested, 2 succeeded, 1 failed", report)
	}
	if len(digest.Articles(press.Economy)) != 1 {
		t.Errorf("Economy bucket = %+v, want the rupee article", digest.Articles(press.Economy))
	}
	if len(digest.Articles(press.EconomicReforms)) != 1 {
		t.Errorf("EconomicReforms bucket = %+v, want the IMF article from the URL after the failure", digest.Articles(press.EconomicReforms))
	}
}

func TestDigestServiceBuildAllSourcesDown(t *testing.T) {
	fetcher := &stubFetcher{errs: map[string]error{
		"https://one.example/feed": errors.New("timeout"),
		"https://two.example/a":    errors.New("timeout"),
		"https://two.example/b":    errors.New("timeout"),
	}}

	svc := NewDigestService(fetcher)
	svc.Sources = testSources()
	svc.Logger = quietLogger()

	digest, report := svc.Build(context.Background(), BuildOptions{MaxPerSubject: 6})

	if report.Failed != 3 || report.Succeeded != 0 {
		t.Errorf("report = %+v, want every URL failed", report)
	}
	if !digest.IsEmpty() {
		t.Error("IsEmpty() = false, want an empty digest when every fetch fails")
	}
	for _, subject := range press.Subjects {
		if articles := digest.Articles(subject); len(articles) != 0 {
			t.Errorf("Articles(%q) = %v, want empty bucket", subject, articles)
		}
	}
}

func TestDigestServiceBuildTruncatesAfterAllSources(t *testing.T) {
	// Both sources feed Economy; the cap keeps the earliest-encountered
	// articles across the whole run, so Dawn's two beat Tribune's one.
	fetcher := &stubFetcher{entries: map[string][]Entry{
		"https://one.example/feed": {
			{Title: "Inflation report A1", Summary: "", Link: "https://one.example/a1"},
			{Title: "Inflation report A2", Summary: "", Link: "https://one.example/a2"},
		},
		"https://two.example/a": {
			{Title: "Inflation report B1", Summary: "", Link: "https://two.example/b1"},
		},
		"https://two.example/b": {},
	}}

	svc := NewDigestService(fetcher)
	svc.Sources = testSources()
	svc.Logger = quietLogger()

	digest, _ := svc.Build(context.Background(), BuildOptions{MaxPerSubject: 2})

	economy := digest.Articles(press.Economy)
	if len(economy) != 2 {
		t.Fatalf("Economy bucket has %d articles, want capped 2", len(economy))
	}
	if economy[0].Title != "Inflation report A1" || economy[1].Title != "Inflation report A2" {
		t.Errorf("kept articles = [%q, %q], want the two earliest", economy[0].Title, economy[1].Title)
	}
}

func TestDigestServiceBuildDefaultsToCompiledSources(t *testing.T) {
	fetcher := &stubFetcher{}

	svc := NewDigestService(fetcher)
	svc.Logger = quietLogger()

	digest, report := svc.Build(context.Background(), BuildOptions{MaxPerSubject: 6})

	if want := press.SourceURLCount(); report.Requested != want {
		t.Errorf("Requested = %d, want %d compiled-in URLs", report.Requested, want)
	}
	if !digest.IsEmpty() {
		t.Error("IsEmpty() = false, want empty digest from failing stub")
	}
}

func TestDigestServiceBuildStopsOnCancelledContext(t *testing.T) {
	fetcher := &stubFetcher{entries: map[string][]Entry{
		"https://one.example/feed": {{Title: "Inflation up", Link: "https://one.example/x"}},
	}}

	svc := NewDigestService(fetcher)
	svc.Sources = testSources()
	svc.Logger = quietLogger()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	digest, report := svc.Build(ctx, BuildOptions{MaxPerSubject: 6})

	if len(fetcher.calls) != 0 {
		t.Errorf("fetched %d URLs on a cancelled context, want 0", len(fetcher.calls))
	}
	if report.Requested != 0 {
		t.Errorf("Requested = %d, want 0", report.Requested)
	}
	if !digest.IsEmpty() {
		t.Error("IsEmpty() = false, want empty partial digest")
	}
}
