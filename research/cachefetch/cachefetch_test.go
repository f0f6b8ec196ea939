package cachefetch

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/research/mocks/store/content_store"
	"encore.app/research/model"
	"encore.app/research/store"
)

var errProvider = errors.New("upstream exploded")

func entryJSON(t *testing.T, keyword string, data string, ts time.Time) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(model.CacheEntry{
		Keyword:   keyword,
		Data:      json.RawMessage(data),
		Timestamp: ts,
	})
	assert.NoError(t, err)
	return raw
}

func TestFetchCacheHitAvoidsProviderCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockStore := content_store.NewMockContentStore(ctrl)
	mockStore.EXPECT().
		Get(gomock.Any(), "research/antique-appraisal/keyword-data.json").
		Return(entryJSON(t, "antique appraisal", `{"volume":880}`, now.Add(-time.Hour)), nil)

	policy := Policy{Store: mockStore, Now: func() time.Time { return now }}

	calls := 0
	payload, err := policy.Fetch(context.Background(), "research/antique-appraisal/keyword-data.json", "antique appraisal",
		func(ctx context.Context) (json.RawMessage, error) {
			calls++
			return json.RawMessage(`{"volume":999}`), nil
		})

	assert.NoError(t, err)
	assert.JSONEq(t, `{"volume":880}`, string(payload))
	assert.Equal(t, 0, calls, "provider must not be called on a cache hit")
}

func TestFetchMissCallsProviderAndStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockStore := content_store.NewMockContentStore(ctrl)
	mockStore.EXPECT().
		Get(gomock.Any(), "k").
		Return(nil, store.ErrNotFound)
	mockStore.EXPECT().
		Put(gomock.Any(), "k", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, content any, _ map[string]string) (string, error) {
			entry, ok := content.(model.CacheEntry)
			assert.True(t, ok)
			assert.Equal(t, "vintage watches", entry.Keyword)
			assert.Equal(t, now, entry.Timestamp)
			assert.JSONEq(t, `{"fresh":true}`, string(entry.Data))
			return key, nil
		})

	policy := Policy{Store: mockStore, Now: func() time.Time { return now }}

	payload, err := policy.Fetch(context.Background(), "k", "vintage watches",
		func(ctx context.Context) (json.RawMessage, error) {
			return json.RawMessage(`{"fresh":true}`), nil
		})

	assert.NoError(t, err)
	assert.JSONEq(t, `{"fresh":true}`, string(payload))
}

func TestFetchTTLExpiryForcesRefetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	ttl := 7 * 24 * time.Hour

	mockStore := content_store.NewMockContentStore(ctrl)
	mockStore.EXPECT().
		Get(gomock.Any(), "k").
		Return(entryJSON(t, "old keyword", `{"stale":true}`, now.Add(-8*24*time.Hour)), nil)
	mockStore.EXPECT().
		Put(gomock.Any(), "k", gomock.Any(), gomock.Any()).
		Return("k", nil)

	policy := Policy{Store: mockStore, TTL: ttl, Now: func() time.Time { return now }}

	calls := 0
	payload, err := policy.Fetch(context.Background(), "k", "old keyword",
		func(ctx context.Context) (json.RawMessage, error) {
			calls++
			return json.RawMessage(`{"stale":false}`), nil
		})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls, "expired entry must be refetched")
	assert.JSONEq(t, `{"stale":false}`, string(payload))
}

func TestFetchFreshEntryWithinTTLIsHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	mockStore := content_store.NewMockContentStore(ctrl)
	mockStore.EXPECT().
		Get(gomock.Any(), "k").
		Return(entryJSON(t, "kw", `{"ok":1}`, now.Add(-6*24*time.Hour)), nil)

	policy := Policy{Store: mockStore, TTL: 7 * 24 * time.Hour, Now: func() time.Time { return now }}

	payload, err := policy.Fetch(context.Background(), "k", "kw",
		func(ctx context.Context) (json.RawMessage, error) {
			t.Fatal("provider called despite fresh entry")
			return nil, nil
		})

	assert.NoError(t, err)
	assert.JSONEq(t, `{"ok":1}`, string(payload))
}

func TestFetchMalformedContentTreatedAsMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := content_store.NewMockContentStore(ctrl)
	mockStore.EXPECT().
		Get(gomock.Any(), "k").
		Return(nil, store.ErrMalformedContent)
	mockStore.EXPECT().
		Put(gomock.Any(), "k", gomock.Any(), gomock.Any()).
		Return("k", nil)

	policy := Policy{Store: mockStore}

	payload, err := policy.Fetch(context.Background(), "k", "kw",
		func(ctx context.Context) (json.RawMessage, error) {
			return json.RawMessage(`{"repaired":true}`), nil
		})

	assert.NoError(t, err)
	assert.JSONEq(t, `{"repaired":true}`, string(payload))
}

func TestFetchInvalidEnvelopeTreatedAsMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := content_store.NewMockContentStore(ctrl)
	// Valid JSON, but missing the data/timestamp envelope fields.
	mockStore.EXPECT().
		Get(gomock.Any(), "k").
		Return(json.RawMessage(`{"unexpected":"shape"}`), nil)
	mockStore.EXPECT().
		Put(gomock.Any(), "k", gomock.Any(), gomock.Any()).
		Return("k", nil)

	policy := Policy{Store: mockStore}

	payload, err := policy.Fetch(context.Background(), "k", "kw",
		func(ctx context.Context) (json.RawMessage, error) {
			return json.RawMessage(`{"n":1}`), nil
		})

	assert.NoError(t, err)
	assert.JSONEq(t, `{"n":1}`, string(payload))
}

func TestFetchValidatorRejectionForcesRefetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now()
	mockStore := content_store.NewMockContentStore(ctrl)
	mockStore.EXPECT().
		Get(gomock.Any(), "k").
		Return(entryJSON(t, "kw", `{"results":[]}`, now), nil)
	mockStore.EXPECT().
		Put(gomock.Any(), "k", gomock.Any(), gomock.Any()).
		Return("k", nil)

	policy := Policy{
		Store: mockStore,
		Validate: func(payload json.RawMessage) bool {
			var data struct {
				Results []json.RawMessage `json:"results"`
			}
			return json.Unmarshal(payload, &data) == nil && len(data.Results) > 0
		},
	}

	payload, err := policy.Fetch(context.Background(), "k", "kw",
		func(ctx context.Context) (json.RawMessage, error) {
			return json.RawMessage(`{"results":[{"q":"?"}]}`), nil
		})

	assert.NoError(t, err)
	assert.JSONEq(t, `{"results":[{"q":"?"}]}`, string(payload))
}

func TestFetchProviderFailurePropagatesAndIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := content_store.NewMockContentStore(ctrl)
	mockStore.EXPECT().
		Get(gomock.Any(), "k").
		Return(nil, store.ErrNotFound)
	// No Put expectation: caching a failure would fail the test.

	policy := Policy{Store: mockStore}

	payload, err := policy.Fetch(context.Background(), "k", "kw",
		func(ctx context.Context) (json.RawMessage, error) {
			return nil, errProvider
		})

	assert.Nil(t, payload)
	assert.ErrorIs(t, err, errProvider)
}

func TestFetchStoreWriteFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := content_store.NewMockContentStore(ctrl)
	mockStore.EXPECT().
		Get(gomock.Any(), "k").
		Return(nil, store.ErrNotFound)
	mockStore.EXPECT().
		Put(gomock.Any(), "k", gomock.Any(), gomock.Any()).
		Return("", assert.AnError)

	policy := Policy{Store: mockStore}

	_, err := policy.Fetch(context.Background(), "k", "kw",
		func(ctx context.Context) (json.RawMessage, error) {
			return json.RawMessage(`{}`), nil
		})

	assert.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
