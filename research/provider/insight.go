package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"encore.dev/rlog"
)

const defaultInsightURL = "https://api.perplexity.ai/chat/completions"

// InsightClient generates research insights for a keyword from a
// chat-completion model, expanding on the ranked-results payload when one
// is supplied. The five angles are assembled into a single payload so the
// collector sees one provider slot.
type InsightClient struct {
	apiURL string
	apiKey string
	model  string
	client *http.Client
}

func NewInsightClient(apiKey string) *InsightClient {
	return &InsightClient{
		apiURL: defaultInsightURL,
		apiKey: apiKey,
		model:  "pplx-70b-online",
		client: newHTTPClient(),
	}
}

func (c *InsightClient) Name() string { return NameInsight }

type insightPayload struct {
	Variations string    `json:"variations"`
	Intent     string    `json:"intent"`
	Context    string    `json:"context"`
	Topics     string    `json:"topics"`
	Complement string    `json:"complement"`
	Timestamp  time.Time `json:"timestamp"`
}

func (c *InsightClient) Fetch(ctx context.Context, subject string, opts Options) (json.RawMessage, error) {
	prompts := []struct {
		target *string
		kind   string
		text   string
	}{
		{kind: "keyword_variations", text: fmt.Sprintf(
			"Generate a list of long-tail keyword variations related to '%s'. Please provide at least 5 variations.", subject)},
		{kind: "search_intent", text: fmt.Sprintf(
			"Explain and group the search intents behind queries related to '%s'. Categorize them into the following groups: Valuation, Historical, and Identification.", subject)},
		{kind: "contextual_expansion", text: fmt.Sprintf(
			"List common questions, topics, or phrases that people associate with '%s'. Include any nuances that might help in crafting detailed content.", subject)},
		{kind: "content_topics", text: fmt.Sprintf(
			"Propose several content topics for an online appraisal service, based on emerging trends and popular queries related to '%s'. Ensure the topics are SEO-friendly and conversion-focused.", subject)},
		{kind: "complementary_data", text: fmt.Sprintf(
			"Given the following structured data from ranked-results research: %s, and the seed keyword '%s', provide additional insights and keyword suggestions that could enhance a content strategy.", string(opts.SERPData), subject)},
	}

	result := insightPayload{Timestamp: time.Now()}
	targets := []*string{&result.Variations, &result.Intent, &result.Context, &result.Topics, &result.Complement}

	for i, p := range prompts {
		text, err := c.complete(ctx, p.text)
		if err != nil {
			return nil, fmt.Errorf("insight %s for %q: %w", p.kind, subject, err)
		}
		*targets[i] = text
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("insight payload for %q: %w", subject, err)
	}

	rlog.Debug("insight generation completed", "keyword", subject, "size", len(payload))
	return payload, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *InsightClient) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a keyword research assistant."},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   250,
		Temperature: 0.1,
		TopP:        0.9,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	data, err := doJSON(c.client, req)
	if err != nil {
		return "", err
	}

	var resp chatResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("decode completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no content in completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
