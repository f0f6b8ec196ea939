package research

import (
	"context"

	"encore.dev/cron"
	"encore.dev/rlog"

	"encore.app/research/model"
)

// The workflow also runs on a daily schedule; manual triggering stays
// available for reruns after upstream fixes.
var _ = cron.NewJob("daily-content-research", cron.JobConfig{
	Title:    "Daily content research workflow",
	Schedule: "0 6 * * *",
	Endpoint: TriggerWorkflow,
})

type WorkflowResponse struct {
	Success          bool                `json:"success"`
	Message          string              `json:"message,omitempty"`
	AlreadyProcessed bool                `json:"alreadyProcessed,omitempty"`
	Path             string              `json:"path,omitempty"`
	Processed        int                 `json:"processed"`
	Summary          *model.Summary     `json:"summary,omitempty"`
	Results          []model.ItemResult `json:"results,omitempty"`
}

// TriggerWorkflow starts one batch run. At most one run is active at a
// time and at most one run does work per day; both short-circuits are
// reported in the envelope rather than as errors.
//
//encore:api public path=/v1/workflow/trigger method=POST
func (s *Service) TriggerWorkflow(ctx context.Context) (*WorkflowResponse, error) {
	result, err := s.engine.ProcessWorkflow(ctx)
	if err != nil {
		rlog.Error("workflow failed to run", "error", err)
		return nil, err
	}

	return &WorkflowResponse{
		Success:          result.Success,
		Message:          result.Message,
		AlreadyProcessed: result.AlreadyProcessed,
		Path:             result.Path,
		Processed:        result.Processed,
		Summary:          result.Summary,
		Results:          result.Results,
	}, nil
}
