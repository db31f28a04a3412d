// Package settings defines application-level configuration data.
package settings

import (
	"time"

	"github.com/tesso57/akhbar/internal/application/usecase"
)

// Caps for the dashboard's per-subject article control.
const (
	MinSubjectCap = 3
	MaxSubjectCap = 15
)

// DefaultStaticMax is the per-subject cap for the static newsletter.
const DefaultStaticMax = 6

// DefaultDashboardMax is the per-subject cap the dashboard starts with.
const DefaultDashboardMax = 8

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up            string `yaml:"up" kong:"help='Up key',default='k'"`
	Down          string `yaml:"down" kong:"help='Down key',default='j'"`
	Left          string `yaml:"left" kong:"help='Left/Back key',default='h'"`
	Right         string `yaml:"right" kong:"help='Right/Enter key',default='l'"`
	UpPage        string `yaml:"up_page" kong:"help='Page Up key',default='ctrl+u'"`
	DownPage      string `yaml:"down_page" kong:"help='Page Down key',default='ctrl+d'"`
	Top           string `yaml:"top" kong:"help='Top key',default='g'"`
	Bottom        string `yaml:"bottom" kong:"help='Bottom key',default='G'"`
	Open          string `yaml:"open" kong:"help='Open key',default='enter'"`
	Back          string `yaml:"back" kong:"help='Back key',default='esc'"`
	Quit          string `yaml:"quit" kong:"help='Quit key',default='q'"`
	Refresh       string `yaml:"refresh" kong:"help='Refresh key',default='r'"`
	Settings      string `yaml:"settings" kong:"help='Settings panel key',default='s'"`
	ToggleSubject string `yaml:"toggle_subject" kong:"help='Toggle subject key',default='space'"`
	Browse        string `yaml:"browse" kong:"help='Open in browser key',default='o'"`
	FetchBody     string `yaml:"fetch_body" kong:"help='Fetch article body key',default='f'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Accent string `yaml:"accent" kong:"help='Accent color',default='#035076'"`
	Muted  string `yaml:"muted" kong:"help='Muted text color',default='244'"`
}

// DashboardConfig tunes the interactive dashboard.
type DashboardConfig struct {
	MaxPerSubject int    `yaml:"max_per_subject" kong:"help='Articles per subject on the dashboard (3-15)',default='8'"`
	CacheTTL      string `yaml:"cache_ttl" kong:"help='How long a fetched digest stays fresh',default='10m'"`
}

// ClampedMax returns the dashboard cap forced into the allowed range.
func (d DashboardConfig) ClampedMax() int {
	max := d.MaxPerSubject
	if max <= 0 {
		max = DefaultDashboardMax
	}
	if max < MinSubjectCap {
		return MinSubjectCap
	}
	if max > MaxSubjectCap {
		return MaxSubjectCap
	}
	return max
}

// TTL parses CacheTTL, falling back to the usecase default when the
// value is missing or unusable.
func (d DashboardConfig) TTL() time.Duration {
	if d.CacheTTL == "" {
		return usecase.DefaultCacheTTL
	}
	ttl, err := time.ParseDuration(d.CacheTTL)
	if err != nil || ttl <= 0 {
		return usecase.DefaultCacheTTL
	}
	return ttl
}

// Settings represents the application configuration.
type Settings struct {
	Output        string          `yaml:"output" kong:"help='Newsletter output file',default='newsletter.html'"`
	MaxPerSubject int             `yaml:"max_per_subject" kong:"help='Articles per subject in the newsletter',default='6'"`
	Dashboard     DashboardConfig `yaml:"dashboard" kong:"embed,prefix='dashboard.'"`
	KeyMap        KeyMapConfig    `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme         ThemeConfig     `yaml:"theme" kong:"embed,prefix='theme.'"`
}

// StaticMax returns the newsletter cap, defaulting when unset.
func (s Settings) StaticMax() int {
	if s.MaxPerSubject > 0 {
		return s.MaxPerSubject
	}
	return DefaultStaticMax
}
