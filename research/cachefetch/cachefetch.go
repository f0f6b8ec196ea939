// Package cachefetch implements the check-store, call-provider, store-result
// law shared by every data source: at most one successful provider call is
// cached per (subject, provider, TTL-epoch), and a provider is called again
// only on a genuine miss, expiry or corruption.
package cachefetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"encore.dev/rlog"

	"encore.app/research/model"
	"encore.app/research/store"
)

// FetchFunc calls the underlying provider for one subject.
type FetchFunc func(ctx context.Context) (json.RawMessage, error)

// ValidateFunc reports whether a cached payload still has a usable shape.
type ValidateFunc func(payload json.RawMessage) bool

// Policy is one configured cache-or-fetch rule. TTL of zero means entries
// never expire. Validate may be nil. Now is the clock; it defaults to
// time.Now and is injected in tests.
type Policy struct {
	Store    store.ContentStore
	TTL      time.Duration
	Validate ValidateFunc
	Tags     map[string]string
	Now      func() time.Time
}

func (p *Policy) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// Fetch returns the cached payload at key when a fresh, well-shaped entry
// exists; otherwise it calls fetch, persists the result and returns it.
// Provider failures propagate unchanged and are never cached.
func (p *Policy) Fetch(ctx context.Context, key, subject string, fetch FetchFunc) (json.RawMessage, error) {
	if payload, ok := p.lookup(ctx, key, subject); ok {
		return payload, nil
	}

	rlog.Info("cache miss, fetching fresh data", "key", key, "keyword", subject)
	payload, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	entry := model.CacheEntry{
		Keyword:   subject,
		Data:      payload,
		Timestamp: p.now(),
		Metadata: map[string]any{
			"dataSize":      len(payload),
			"keywordLength": len(subject),
		},
	}
	if _, err := p.Store.Put(ctx, key, entry, p.Tags); err != nil {
		return nil, fmt.Errorf("cache store failed for %s: %w", key, err)
	}
	return payload, nil
}

// lookup reports whether key holds a usable entry. Absent, malformed,
// expired and shape-rejected entries are all treated as misses; anything
// else on the read path is also a miss so that storage hiccups degrade to
// an extra provider call rather than a failed collection.
func (p *Policy) lookup(ctx context.Context, key, subject string) (json.RawMessage, bool) {
	raw, err := p.Store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) && !errors.Is(err, store.ErrMalformedContent) {
			rlog.Warn("cache check failed, treating as miss", "key", key, "error", err)
		}
		return nil, false
	}

	var entry model.CacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil || !entry.Valid() {
		rlog.Warn("invalid cache entry shape, treating as miss", "key", key)
		return nil, false
	}

	if p.TTL > 0 {
		if age := p.now().Sub(entry.Timestamp); age > p.TTL {
			rlog.Info("cache entry expired", "key", key, "age", age, "ttl", p.TTL)
			return nil, false
		}
	}

	if p.Validate != nil && !p.Validate(entry.Data) {
		rlog.Warn("cached payload rejected by validator, treating as miss", "key", key)
		return nil, false
	}

	rlog.Info("cache hit", "key", key, "keyword", subject, "age", p.now().Sub(entry.Timestamp))
	return entry.Data, true
}
