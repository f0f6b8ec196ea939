package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"encore.dev/rlog"
)

const defaultSERPURL = "https://keywordresearch.api.kwrds.ai/serp"

// SERPClient looks up the ranked results for a keyword. The research volume
// resolved from the keyword payload rides along so the upstream can weight
// its ranking.
type SERPClient struct {
	apiURL string
	apiKey string
	client *http.Client
}

func NewSERPClient(apiKey string) *SERPClient {
	return &SERPClient{
		apiURL: defaultSERPURL,
		apiKey: apiKey,
		client: newHTTPClient(),
	}
}

func (c *SERPClient) Name() string { return NameSERP }

type serpRequest struct {
	SearchQuestion string `json:"search_question"`
	SearchCountry  string `json:"search_country"`
	Volume         int    `json:"volume"`
}

func (c *SERPClient) Fetch(ctx context.Context, subject string, opts Options) (json.RawMessage, error) {
	body, err := json.Marshal(serpRequest{
		SearchQuestion: subject,
		SearchCountry:  "en-US",
		Volume:         opts.Volume,
	})
	if err != nil {
		return nil, fmt.Errorf("serp request for %q: %w", subject, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("serp request for %q: %w", subject, err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	payload, err := doJSON(c.client, req)
	if err != nil {
		return nil, fmt.Errorf("serp lookup for %q: %w", subject, err)
	}

	rlog.Debug("serp lookup completed", "keyword", subject, "volume", opts.Volume, "size", len(payload))
	return payload, nil
}
