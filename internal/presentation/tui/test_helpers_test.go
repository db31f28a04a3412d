package tui

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/tesso57/akhbar/internal/application/settings"
	"github.com/tesso57/akhbar/internal/application/usecase"
	"github.com/tesso57/akhbar/internal/domain/press"
)

type stubFetcher struct {
	mock.Mock
	entries []usecase.Entry
	err     error
}

func (s *stubFetcher) Fetch(_ context.Context, url string) ([]usecase.Entry, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(url)
		entries, _ := args.Get(0).([]usecase.Entry)
		return entries, args.Error(1)
	}
	return s.entries, s.err
}

type stubExtractor struct {
	mock.Mock
	body string
	err  error
}

func (s *stubExtractor) Extract(_ context.Context, url string) (string, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(url)
		return args.String(0), args.Error(1)
	}
	return s.body, s.err
}

func testSettings() settings.Settings {
	return settings.Settings{
		Dashboard: settings.DashboardConfig{MaxPerSubject: 8, CacheTTL: "1m"},
		KeyMap: settings.KeyMapConfig{
			Up: "k", Down: "j", Left: "h", Right: "l",
			UpPage: "ctrl+u", DownPage: "ctrl+d",
			Top: "g", Bottom: "G",
			Open: "enter", Back: "esc", Quit: "q",
			Refresh: "r", Settings: "s", ToggleSubject: "space",
			Browse: "o", FetchBody: "f",
		},
		Theme: settings.ThemeConfig{Accent: "#035076"},
	}
}

func newTestModel(cfg settings.Settings, fetcher usecase.FeedFetcher) *Model {
	svc := &usecase.DigestService{
		Fetcher: fetcher,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	digests := usecase.NewDigestCache(svc, time.Minute)
	bodies := usecase.NewBodyService(&stubExtractor{body: "full text"})
	return NewModel(cfg, digests, bodies)
}

// testDigest carries two Economy articles and one Gender article, enough
// to exercise headers, selection, and subject filtering.
func testDigest() *press.Digest {
	d := press.NewDigest(time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC))
	d.Append(press.Economy, press.Article{
		Source:  "Dawn",
		Title:   "Inflation eases in July",
		Summary: "Prices cool down across urban centres.",
		Link:    "https://dawn.example/inflation",
	})
	d.Append(press.Economy, press.Article{
		Source:  "The Express Tribune",
		Title:   "PSX closes higher",
		Summary: "Index gains on improved sentiment.",
		Link:    "https://tribune.example/psx",
	})
	d.Append(press.Gender, press.Article{
		Source:  "Dawn",
		Title:   "Women in the workforce",
		Summary: "Participation inches upward.",
		Link:    "https://dawn.example/workforce",
	})
	return d
}
