// Package collector assembles the research bundle for one keyword by
// running the cache-or-fetch policy once per provider slot.
package collector

import (
	"context"
	"encoding/json"
	"fmt"

	"encore.dev/rlog"

	"encore.app/research/cachefetch"
	"encore.app/research/model"
	"encore.app/research/provider"
	"encore.app/research/slug"
	"encore.app/research/store"
)

// Collector gathers all provider payloads for one keyword. A failure in any
// slot is not swallowed; it propagates so the caller can fail the item.
type Collector interface {
	Collect(ctx context.Context, keyword string) (*model.Bundle, error)
}

// DataCollector wires the four providers to their cache policies. Provider
// caches live under the long-lived research/<slug>/ namespace so they are
// reused across run dates; cache keys are a pure function of the keyword
// and the provider name.
type DataCollector struct {
	keywords cachefetch.Policy
	paa      cachefetch.Policy
	serp     cachefetch.Policy
	insight  cachefetch.Policy

	keywordsAPI provider.Provider
	paaAPI      provider.Provider
	serpAPI     provider.Provider
	insightAPI  provider.Provider
}

func New(cs store.ContentStore, keywords, paa, serp, insight provider.Provider) *DataCollector {
	return &DataCollector{
		keywords: cachefetch.Policy{
			Store: cs,
			Tags:  map[string]string{"type": "keyword_research"},
		},
		paa: cachefetch.Policy{
			Store:    cs,
			TTL:      provider.PAATTL,
			Validate: provider.HasQuestions,
			Tags:     map[string]string{"type": "paa_data"},
		},
		serp: cachefetch.Policy{
			Store: cs,
			Tags:  map[string]string{"type": "serp_data"},
		},
		insight: cachefetch.Policy{
			Store: cs,
			Tags:  map[string]string{"type": "insight_data"},
		},
		keywordsAPI: keywords,
		paaAPI:      paa,
		serpAPI:     serp,
		insightAPI:  insight,
	}
}

// CacheKey derives the storage key for one provider slot of a keyword.
func CacheKey(keyword, providerName string) string {
	return fmt.Sprintf("research/%s/%s.json", slug.Make(keyword), providerName)
}

// Collect fetches the four slots in dependency order: the research volume
// resolved from the keyword payload feeds the ranked-results lookup, whose
// payload in turn feeds insight generation.
func (c *DataCollector) Collect(ctx context.Context, keyword string) (*model.Bundle, error) {
	rlog.Info("collecting research data", "keyword", keyword)

	keywordData, err := c.keywords.Fetch(ctx, CacheKey(keyword, c.keywordsAPI.Name()), keyword,
		func(ctx context.Context) (json.RawMessage, error) {
			return c.keywordsAPI.Fetch(ctx, keyword, provider.Options{})
		})
	if err != nil {
		return nil, fmt.Errorf("keyword data for %q: %w", keyword, err)
	}

	volume, ok := provider.VolumeFromPayload(keywordData)
	if !ok {
		rlog.Info("no volume in keyword payload, defaulting to 0", "keyword", keyword)
	}

	paaData, err := c.paa.Fetch(ctx, CacheKey(keyword, c.paaAPI.Name()), keyword,
		func(ctx context.Context) (json.RawMessage, error) {
			return c.paaAPI.Fetch(ctx, keyword, provider.Options{})
		})
	if err != nil {
		return nil, fmt.Errorf("paa data for %q: %w", keyword, err)
	}

	serpData, err := c.serp.Fetch(ctx, CacheKey(keyword, c.serpAPI.Name()), keyword,
		func(ctx context.Context) (json.RawMessage, error) {
			return c.serpAPI.Fetch(ctx, keyword, provider.Options{Volume: volume})
		})
	if err != nil {
		return nil, fmt.Errorf("serp data for %q: %w", keyword, err)
	}

	insightData, err := c.insight.Fetch(ctx, CacheKey(keyword, c.insightAPI.Name()), keyword,
		func(ctx context.Context) (json.RawMessage, error) {
			return c.insightAPI.Fetch(ctx, keyword, provider.Options{SERPData: serpData})
		})
	if err != nil {
		return nil, fmt.Errorf("insight data for %q: %w", keyword, err)
	}

	return &model.Bundle{
		KeywordData: keywordData,
		PAAData:     paaData,
		SERPData:    serpData,
		InsightData: insightData,
	}, nil
}
