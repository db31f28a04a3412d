package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/tesso57/akhbar/internal/domain/press"
)

// DefaultCacheTTL bounds how long a built digest stays fresh when the
// caller does not choose a TTL.
const DefaultCacheTTL = 10 * time.Minute

// DigestCache memoizes the last digest build for a bounded time. The
// dashboard reads through it so that redraws and subject toggles reuse
// the previous fetch, while refresh and an applied cap change invalidate
// it. The memo lives only in memory; nothing survives the process.
type DigestCache struct {
	Service *DigestService
	TTL     time.Duration
	Now     func() time.Time

	mu      sync.Mutex
	digest  *press.Digest
	report  FetchReport
	opts    BuildOptions
	builtAt time.Time
}

// NewDigestCache wraps a DigestService with a TTL memo. A non-positive
// ttl falls back to DefaultCacheTTL.
func NewDigestCache(service *DigestService, ttl time.Duration) *DigestCache {
	return &DigestCache{Service: service, TTL: ttl}
}

// Get returns the memoized digest when it is still fresh and was built
// with the same options, otherwise builds a new one. The third return
// reports whether the memo was used.
func (c *DigestCache) Get(ctx context.Context, opts BuildOptions) (*press.Digest, FetchReport, bool) {
	c.mu.Lock()
	if c.digest != nil && c.opts == opts && c.now().Sub(c.builtAt) < c.ttl() {
		digest, report := c.digest, c.report
		c.mu.Unlock()
		return digest, report, true
	}
	c.mu.Unlock()

	digest, report := c.Service.Build(ctx, opts)

	c.mu.Lock()
	c.digest = digest
	c.report = report
	c.opts = opts
	c.builtAt = c.now()
	c.mu.Unlock()

	return digest, report, false
}

// Invalidate drops the memo so the next Get rebuilds.
func (c *DigestCache) Invalidate() {
	c.mu.Lock()
	c.digest = nil
	c.mu.Unlock()
}

// BuiltAt returns when the memoized digest was built, false when there
// is none.
func (c *DigestCache) BuiltAt() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.digest == nil {
		return time.Time{}, false
	}
	return c.builtAt, true
}

func (c *DigestCache) ttl() time.Duration {
	if c.TTL > 0 {
		return c.TTL
	}
	return DefaultCacheTTL
}

func (c *DigestCache) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
