package research

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/research/model"
	"encore.app/research/slug"
)

type CollectRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Keyword string `json:"keyword" validate:"required,min=2,max=200"`
}

type CollectResponse struct {
	Keyword string       `json:"keyword"`
	Slug    string       `json:"slug"`
	Path    string       `json:"path"`
	Bundle  model.Bundle `json:"bundle"`
}

// Collect runs on-demand research for a single keyword, outside the daily
// batch. Provider results land in the same long-lived caches the batch
// uses, so a later run for the same keyword is served without provider
// calls.
//
//encore:api public path=/v1/research/collect method=POST tag:idempotency
func (s *Service) Collect(ctx context.Context, req *CollectRequest) (*CollectResponse, error) {
	bundle, err := s.collector.Collect(ctx, req.Keyword)
	if err != nil {
		rlog.Error("on-demand collection failed", "keyword", req.Keyword, "error", err)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "data collection failed: " + err.Error()}
	}

	keywordSlug := slug.Make(req.Keyword)
	path := "research/" + keywordSlug + "/collected-data.json"

	doc := map[string]any{
		"bundle": bundle,
		"metadata": map[string]any{
			"keyword":       req.Keyword,
			"processedDate": time.Now().UTC(),
			"status":        "data_collected",
		},
	}
	if _, err := s.store.Put(ctx, path, doc, map[string]string{"type": "collected_data", "keyword": req.Keyword}); err != nil {
		rlog.Error("failed to store collected data", "keyword", req.Keyword, "error", err)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to store collected data"}
	}

	return &CollectResponse{
		Keyword: req.Keyword,
		Slug:    keywordSlug,
		Path:    path,
		Bundle:  *bundle,
	}, nil
}

// Validate implements validation for CollectRequest using go-playground/validator.
func (r *CollectRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
