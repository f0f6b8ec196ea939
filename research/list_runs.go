package research

import (
	"context"

	"encore.dev/rlog"

	"encore.app/research/model"
	"encore.app/research/repository/runs"
)

type ListRunsRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

type ListRunsResponse struct {
	Runs       []model.Run `json:"runs"`
	TotalCount int64       `json:"total_count"`
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
}

// ListRuns pages through the workflow run ledger, most recent day first.
//
//encore:api public path=/v1/workflow/runs method=GET
func (s *Service) ListRuns(ctx context.Context, req *ListRunsRequest) (*ListRunsResponse, error) {
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	rows, err := s.repo.Runs.ListRuns(ctx, runs.ListRunsParams{
		Limit:  int32(req.Limit),
		Offset: int32(req.Offset),
	})
	if err != nil {
		rlog.Error("failed to list runs", "error", err)
		return nil, err
	}

	totalCount, err := s.repo.Runs.CountRuns(ctx)
	if err != nil {
		rlog.Error("failed to count runs", "error", err)
		return nil, err
	}

	response := &ListRunsResponse{
		Runs:       make([]model.Run, len(rows)),
		TotalCount: totalCount,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}
	for i, row := range rows {
		response.Runs[i] = convertDBRunToModel(row)
	}
	return response, nil
}

// convertDBRunToModel converts a ledger row to the API model.
func convertDBRunToModel(row runs.Run) model.Run {
	run := model.Run{
		ID:         row.ID,
		BasePath:   row.BasePath,
		Status:     model.RunStatus(row.Status),
		Total:      int(row.Total),
		Successful: int(row.Successful),
		Failed:     int(row.Failed),
	}
	if row.RunDate.Valid {
		run.RunDate = row.RunDate.Time.Format("2006-01-02")
	}
	if row.StartedAt.Valid {
		run.StartedAt = row.StartedAt.Time
	}
	if row.CompletedAt.Valid {
		t := row.CompletedAt.Time
		run.CompletedAt = &t
	}
	return run
}
