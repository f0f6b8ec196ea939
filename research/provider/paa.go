package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"encore.dev/rlog"
)

const defaultPAAURL = "https://paa.api.kwrds.ai/people-also-ask"

// PAATTL is how long a cached related-questions payload stays fresh.
// Question sets drift, so unlike volume data they are refetched weekly.
const PAATTL = 7 * 24 * time.Hour

// PAAClient looks up the related questions asked around a keyword.
type PAAClient struct {
	apiURL string
	apiKey string
	client *http.Client
}

func NewPAAClient(apiKey string) *PAAClient {
	return &PAAClient{
		apiURL: defaultPAAURL,
		apiKey: apiKey,
		client: newHTTPClient(),
	}
}

func (c *PAAClient) Name() string { return NamePAA }

func (c *PAAClient) Fetch(ctx context.Context, subject string, _ Options) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("keyword", subject)
	params.Set("search_country", "US")
	params.Set("search_language", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("paa request for %q: %w", subject, err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)

	payload, err := doJSON(c.client, req)
	if err != nil {
		return nil, fmt.Errorf("paa lookup for %q: %w", subject, err)
	}

	rlog.Debug("paa lookup completed", "keyword", subject, "size", len(payload))
	return payload, nil
}

// HasQuestions reports whether a PAA payload carries at least one question.
// It is the shape validator wired into the PAA cache policy.
func HasQuestions(payload json.RawMessage) bool {
	var data struct {
		Results []json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(payload, &data); err != nil {
		return false
	}
	return len(data.Results) > 0
}
