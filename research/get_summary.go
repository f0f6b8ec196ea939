package research

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/research/model"
	"encore.app/research/store"
)

type SummaryResponse struct {
	Date    string             `json:"date"`
	Summary model.Summary      `json:"summary"`
	Results []model.ItemResult `json:"results"`
}

// GetSummary returns the persisted summary for one run date.
//
//encore:api public path=/v1/workflow/summary/:date method=GET
func (s *Service) GetSummary(ctx context.Context, date string) (*SummaryResponse, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "date must be formatted YYYY-MM-DD"}
	}

	raw, err := s.store.Get(ctx, "logs/summary/"+date+".json")
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "no summary for " + date}
		}
		rlog.Error("failed to load summary", "date", date, "error", err)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to load summary"}
	}

	var log model.SummaryLog
	if err := json.Unmarshal(raw, &log); err != nil {
		rlog.Error("stored summary does not parse", "date", date, "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "stored summary is malformed"}
	}

	return &SummaryResponse{Date: date, Summary: log.Summary, Results: log.Results}, nil
}
