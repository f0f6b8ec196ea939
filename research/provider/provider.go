// Package provider holds the HTTP clients for the external data sources.
// Every source is consumed through the same narrow contract: fetch one
// subject, get one JSON payload back, or fail. The concrete request and
// response shapes are implementation details of each upstream API.
package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Cache file names, one per provider slot, shared between the collector
// and the storage namespace.
const (
	NameKeywords = "keyword-data"
	NamePAA      = "paa-data"
	NameSERP     = "serp-data"
	NameInsight  = "insight-data"
)

// Options carries cross-provider inputs: the research volume resolved from
// the keyword payload and, for the insight provider, the SERP payload it
// expands on.
type Options struct {
	Volume   int
	SERPData json.RawMessage
}

// Provider fetches one subject's payload from an external data source.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, subject string, opts Options) (json.RawMessage, error)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}
