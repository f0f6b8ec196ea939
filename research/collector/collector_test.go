package collector

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/research/mocks/provider/api_provider"
	"encore.app/research/mocks/store/content_store"
	"encore.app/research/model"
	"encore.app/research/provider"
	"encore.app/research/store"
)

type collectorMocks struct {
	store    *content_store.MockContentStore
	keywords *api_provider.MockProvider
	paa      *api_provider.MockProvider
	serp     *api_provider.MockProvider
	insight  *api_provider.MockProvider
}

func newCollectorMocks(ctrl *gomock.Controller) collectorMocks {
	m := collectorMocks{
		store:    content_store.NewMockContentStore(ctrl),
		keywords: api_provider.NewMockProvider(ctrl),
		paa:      api_provider.NewMockProvider(ctrl),
		serp:     api_provider.NewMockProvider(ctrl),
		insight:  api_provider.NewMockProvider(ctrl),
	}
	m.keywords.EXPECT().Name().Return(provider.NameKeywords).AnyTimes()
	m.paa.EXPECT().Name().Return(provider.NamePAA).AnyTimes()
	m.serp.EXPECT().Name().Return(provider.NameSERP).AnyTimes()
	m.insight.EXPECT().Name().Return(provider.NameInsight).AnyTimes()
	return m
}

// allMisses makes every cache lookup a miss and every write succeed.
func (m collectorMocks) allMisses() {
	m.store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, store.ErrNotFound).AnyTimes()
	m.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil).AnyTimes()
}

func TestCacheKey(t *testing.T) {
	testCases := []struct {
		name     string
		keyword  string
		provider string
		expected string
	}{
		{
			name:     "simple keyword",
			keyword:  "antique appraisal",
			provider: provider.NameKeywords,
			expected: "research/antique-appraisal/keyword-data.json",
		},
		{
			name:     "punctuation stripped",
			keyword:  "Art Appraiser, LA!",
			provider: provider.NamePAA,
			expected: "research/art-appraiser-la/paa-data.json",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CacheKey(tc.keyword, tc.provider))
		})
	}
}

func TestCollectAssemblesBundleInDependencyOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCollectorMocks(ctrl)
	m.allMisses()

	keywordPayload := json.RawMessage(`{"keyword":"vintage watches","volume":1400}`)
	serpPayload := json.RawMessage(`{"results":[{"rank":1}]}`)

	m.keywords.EXPECT().
		Fetch(gomock.Any(), "vintage watches", provider.Options{}).
		Return(keywordPayload, nil)
	m.paa.EXPECT().
		Fetch(gomock.Any(), "vintage watches", provider.Options{}).
		Return(json.RawMessage(`{"results":[{"question":"?"}]}`), nil)
	m.serp.EXPECT().
		Fetch(gomock.Any(), "vintage watches", provider.Options{Volume: 1400}).
		Return(serpPayload, nil)
	m.insight.EXPECT().
		Fetch(gomock.Any(), "vintage watches", provider.Options{SERPData: serpPayload}).
		Return(json.RawMessage(`{"search_intent":"commercial"}`), nil)

	c := New(m.store, m.keywords, m.paa, m.serp, m.insight)
	bundle, err := c.Collect(context.Background(), "vintage watches")

	assert.NoError(t, err)
	assert.Equal(t, keywordPayload, bundle.KeywordData)
	assert.Equal(t, serpPayload, bundle.SERPData)
	assert.JSONEq(t, `{"search_intent":"commercial"}`, string(bundle.InsightData))
	assert.JSONEq(t, `{"results":[{"question":"?"}]}`, string(bundle.PAAData))
}

func TestCollectMissingVolumeDefaultsToZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCollectorMocks(ctrl)
	m.allMisses()

	m.keywords.EXPECT().
		Fetch(gomock.Any(), "kw", provider.Options{}).
		Return(json.RawMessage(`{"keyword":"kw"}`), nil)
	m.paa.EXPECT().
		Fetch(gomock.Any(), "kw", provider.Options{}).
		Return(json.RawMessage(`{"results":[{"q":1}]}`), nil)
	m.serp.EXPECT().
		Fetch(gomock.Any(), "kw", provider.Options{Volume: 0}).
		Return(json.RawMessage(`{}`), nil)
	m.insight.EXPECT().
		Fetch(gomock.Any(), "kw", gomock.Any()).
		Return(json.RawMessage(`{}`), nil)

	c := New(m.store, m.keywords, m.paa, m.serp, m.insight)
	_, err := c.Collect(context.Background(), "kw")
	assert.NoError(t, err)
}

func TestCollectSlotFailureStopsCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCollectorMocks(ctrl)
	m.allMisses()

	providerErr := errors.New("paa service unavailable")

	m.keywords.EXPECT().
		Fetch(gomock.Any(), "kw", provider.Options{}).
		Return(json.RawMessage(`{"volume":10}`), nil)
	m.paa.EXPECT().
		Fetch(gomock.Any(), "kw", provider.Options{}).
		Return(nil, providerErr)
	// No expectations for serp/insight: collection must stop at the failure.

	c := New(m.store, m.keywords, m.paa, m.serp, m.insight)
	bundle, err := c.Collect(context.Background(), "kw")

	assert.Nil(t, bundle)
	assert.ErrorIs(t, err, providerErr)
	assert.Contains(t, err.Error(), "paa data")
}

func TestCollectUsesCachedSlots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCollectorMocks(ctrl)

	now := time.Now()
	cached := func(keyword, data string) json.RawMessage {
		raw, err := json.Marshal(model.CacheEntry{
			Keyword:   keyword,
			Data:      json.RawMessage(data),
			Timestamp: now,
		})
		assert.NoError(t, err)
		return raw
	}

	m.store.EXPECT().
		Get(gomock.Any(), CacheKey("kw", provider.NameKeywords)).
		Return(cached("kw", `{"volume":50}`), nil)
	m.store.EXPECT().
		Get(gomock.Any(), CacheKey("kw", provider.NamePAA)).
		Return(cached("kw", `{"results":[{"question":"how"}]}`), nil)
	m.store.EXPECT().
		Get(gomock.Any(), CacheKey("kw", provider.NameSERP)).
		Return(cached("kw", `{"serp":[]}`), nil)
	m.store.EXPECT().
		Get(gomock.Any(), CacheKey("kw", provider.NameInsight)).
		Return(cached("kw", `{"topics":[]}`), nil)
	// No provider Fetch and no Put expectations: everything is served from cache.

	c := New(m.store, m.keywords, m.paa, m.serp, m.insight)
	bundle, err := c.Collect(context.Background(), "kw")

	assert.NoError(t, err)
	assert.JSONEq(t, `{"volume":50}`, string(bundle.KeywordData))
	assert.JSONEq(t, `{"topics":[]}`, string(bundle.InsightData))
}
