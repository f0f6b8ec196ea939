package idempotency

import (
	"time"

	"encore.dev/storage/cache"

	"encore.app/research/model"
)

// Cluster backs the request-idempotency keyspace.
var Cluster = cache.NewCluster("research-idempotency", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// Keyspace stores one entry per (endpoint path, idempotency key). Completed
// responses are replayable for a day; after that a reused key is treated as
// a new request.
var Keyspace = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyEntry](
	Cluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(24 * time.Hour),
	},
)
