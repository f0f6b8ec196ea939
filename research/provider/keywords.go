package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"encore.dev/rlog"
)

const defaultKeywordsURL = "https://keywordresearch.api.kwrds.ai/keywords-with-volumes"

// KeywordsClient looks up research volume data for a keyword.
type KeywordsClient struct {
	apiURL string
	apiKey string
	client *http.Client
}

func NewKeywordsClient(apiKey string) *KeywordsClient {
	return &KeywordsClient{
		apiURL: defaultKeywordsURL,
		apiKey: apiKey,
		client: newHTTPClient(),
	}
}

func (c *KeywordsClient) Name() string { return NameKeywords }

type keywordsRequest struct {
	SearchQuestion string `json:"search_question"`
	SearchCountry  string `json:"search_country"`
}

func (c *KeywordsClient) Fetch(ctx context.Context, subject string, _ Options) (json.RawMessage, error) {
	body, err := json.Marshal(keywordsRequest{
		SearchQuestion: subject,
		SearchCountry:  "en-US",
	})
	if err != nil {
		return nil, fmt.Errorf("keywords request for %q: %w", subject, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("keywords request for %q: %w", subject, err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	payload, err := doJSON(c.client, req)
	if err != nil {
		return nil, fmt.Errorf("keywords lookup for %q: %w", subject, err)
	}

	rlog.Debug("keywords lookup completed", "keyword", subject, "size", len(payload))
	return payload, nil
}

// VolumeFromPayload extracts the research volume from a keyword payload.
// The second return reports whether the field was actually present; callers
// that proceed without it use an explicit default of zero.
func VolumeFromPayload(payload json.RawMessage) (int, bool) {
	var data struct {
		Volume *int `json:"volume"`
	}
	if err := json.Unmarshal(payload, &data); err != nil || data.Volume == nil {
		return 0, false
	}
	return *data.Volume, true
}

// doJSON executes req and returns the response body, requiring a 2xx status
// and a valid JSON payload.
func doJSON(client *http.Client, req *http.Request) (json.RawMessage, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(data, 200))
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("response is not valid JSON")
	}
	return json.RawMessage(data), nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
