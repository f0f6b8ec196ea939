// Package engine drives the single-flight batch workflow: one run per
// invocation, one run per day, per-item failure containment and a persisted
// aggregate summary.
package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/research/collector"
	"encore.app/research/model"
	"encore.app/research/repository/runs"
	"encore.app/research/rowsource"
	"encore.app/research/slug"
	"encore.app/research/store"
)

// Result is the outcome envelope of one workflow invocation. A run is
// either already in progress, already done today, completed (with a
// summary, however many items failed), or it failed to start — in which
// case ProcessWorkflow returns an error instead.
type Result struct {
	Success          bool               `json:"success"`
	Message          string             `json:"message"`
	AlreadyProcessed bool               `json:"alreadyProcessed,omitempty"`
	Path             string             `json:"path,omitempty"`
	Processed        int                `json:"processed"`
	Summary          *model.Summary     `json:"summary,omitempty"`
	Results          []model.ItemResult `json:"results,omitempty"`
}

// Processor runs one batch workflow per invocation.
type Processor interface {
	ProcessWorkflow(ctx context.Context) (*Result, error)
}

// Engine owns the run guard and the batch loop. The guard is state on the
// instance, not a process-wide singleton, and it is process-local only; the
// run-ledger row with its unique run date is what excludes a second process
// working the same day.
type Engine struct {
	store     store.ContentStore
	rows      rowsource.RowSource
	collector collector.Collector
	ledger    runs.Querier
	now       func() time.Time

	mu      sync.Mutex
	running bool
}

var _ Processor = (*Engine)(nil)

func New(cs store.ContentStore, rows rowsource.RowSource, c collector.Collector, ledger runs.Querier) *Engine {
	return &Engine{
		store:     cs,
		rows:      rows,
		collector: c,
		ledger:    ledger,
		now:       time.Now,
	}
}

func (e *Engine) tryAcquire() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return false
	}
	e.running = true
	return true
}

func (e *Engine) release() {
	e.mu.Lock()
	e.running = false
	e.mu.Unlock()
}

// ProcessWorkflow executes one batch run. Per-item errors are recorded in
// the item's result and never abort the batch; infrastructure errors
// release the day claim and propagate after the guard is released.
func (e *Engine) ProcessWorkflow(ctx context.Context) (*Result, error) {
	if !e.tryAcquire() {
		rlog.Info("workflow already in progress")
		return &Result{Success: false, Message: "workflow already in progress"}, nil
	}
	defer e.release()

	runDate := e.now().UTC()
	dateStr := runDate.Format("2006-01-02")
	basePath := "content/" + dateStr
	rlog.Info("starting workflow processing", "date", dateStr, "base_path", basePath)

	exists, err := e.store.Exists(ctx, basePath+"/content.json")
	if err != nil {
		rlog.Error("failed to check existing content", "error", err)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to check existing content"}
	}
	if exists {
		rlog.Info("content already exists for today", "base_path", basePath)
		return &Result{
			Success:          true,
			Message:          "content already exists for today",
			AlreadyProcessed: true,
			Path:             basePath,
		}, nil
	}

	pgDate := pgtype.Date{Time: runDate, Valid: true}
	_, err = e.ledger.CreateRun(ctx, runs.CreateRunParams{
		ID:       uuid.NewString(),
		RunDate:  pgDate,
		BasePath: basePath,
		Status:   string(model.RunStatusRunning),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			rlog.Info("workflow already ran today", "date", dateStr)
			return &Result{
				Success:          true,
				Message:          "workflow already ran today",
				AlreadyProcessed: true,
				Path:             basePath,
			}, nil
		}
		rlog.Error("failed to record workflow run", "error", err)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to record workflow run"}
	}

	// Run-level failures below must release the day claim so a retry can
	// acquire it again.
	releaseClaim := func() {
		if derr := e.ledger.DeleteRun(ctx, pgDate); derr != nil {
			rlog.Error("failed to release run claim", "date", dateStr, "error", derr)
		}
	}

	items, err := e.rows.Rows(ctx)
	if err != nil {
		releaseClaim()
		rlog.Error("failed to fetch work items", "error", err)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to fetch work items"}
	}

	if len(items) == 0 {
		rlog.Info("no rows to process")
		if err := e.completeRun(ctx, pgDate, model.Summary{}); err != nil {
			rlog.Error("failed to finalize run ledger", "error", err)
		}
		return &Result{Success: true, Message: "no rows to process", Processed: 0}, nil
	}

	results := make([]model.ItemResult, 0, len(items))
	for _, item := range items {
		if item.Keyword == "" {
			rlog.Warn("skipping row without keyword", "post_id", item.PostID, "title", item.Title)
			continue
		}
		results = append(results, e.processItem(ctx, item, basePath))
	}

	summary := model.BuildSummary(results)
	summaryKey := "logs/summary/" + dateStr + ".json"
	if _, err := e.store.Put(ctx, summaryKey, model.SummaryLog{Summary: summary, Results: results},
		map[string]string{"type": "workflow_summary"}); err != nil {
		releaseClaim()
		rlog.Error("failed to store workflow summary", "key", summaryKey, "error", err)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to store workflow summary"}
	}

	if err := e.completeRun(ctx, pgDate, summary); err != nil {
		// The summary document is persisted; a stale ledger row is not
		// worth failing the run over.
		rlog.Error("failed to finalize run ledger", "date", dateStr, "error", err)
	}

	rlog.Info("workflow processing completed",
		"total", summary.Total, "successful", summary.Successful, "failed", summary.Failed)
	return &Result{
		Success:   true,
		Message:   "workflow processing completed",
		Path:      basePath,
		Processed: summary.Total,
		Summary:   &summary,
		Results:   results,
	}, nil
}

// processItem collects one keyword's bundle and persists it under the
// item's sub-path. Errors are captured in the result, never returned.
func (e *Engine) processItem(ctx context.Context, item model.WorkItem, basePath string) model.ItemResult {
	itemSlug := slug.Make(item.Keyword)
	folderPath := basePath + "/" + itemSlug
	rlog.Info("processing keyword", "keyword", item.Keyword, "folder_path", folderPath)

	bundle, err := e.collector.Collect(ctx, item.Keyword)
	if err != nil {
		rlog.Error("keyword processing failed", "keyword", item.Keyword, "error", err)
		return model.ItemResult{
			Keyword:    item.Keyword,
			Slug:       itemSlug,
			FolderPath: folderPath,
			Success:    false,
			Error:      err.Error(),
		}
	}

	doc := collectedDocument{
		Bundle: *bundle,
		Metadata: collectedMetadata{
			Keyword:       item.Keyword,
			ProcessedDate: e.now().UTC(),
			Status:        "data_collected",
		},
	}
	if _, err := e.store.Put(ctx, folderPath+"/collected-data.json", doc,
		map[string]string{"type": "collected_data", "keyword": item.Keyword}); err != nil {
		rlog.Error("failed to store collected data", "keyword", item.Keyword, "error", err)
		return model.ItemResult{
			Keyword:    item.Keyword,
			Slug:       itemSlug,
			FolderPath: folderPath,
			Success:    false,
			Error:      err.Error(),
		}
	}

	return model.ItemResult{
		Keyword:    item.Keyword,
		Slug:       itemSlug,
		FolderPath: folderPath,
		DataCollected: &model.CollectedFlags{
			HasKeywordData: len(bundle.KeywordData) > 0,
			HasPAAData:     len(bundle.PAAData) > 0,
			HasSERPData:    len(bundle.SERPData) > 0,
			HasInsightData: len(bundle.InsightData) > 0,
		},
		Success: true,
	}
}

func (e *Engine) completeRun(ctx context.Context, runDate pgtype.Date, summary model.Summary) error {
	return e.ledger.CompleteRun(ctx, runs.CompleteRunParams{
		RunDate:    runDate,
		Status:     string(model.RunStatusCompleted),
		Total:      int32(summary.Total),
		Successful: int32(summary.Successful),
		Failed:     int32(summary.Failed),
	})
}

// collectedDocument is the per-item artifact persisted after collection.
type collectedDocument struct {
	Bundle   model.Bundle      `json:"bundle"`
	Metadata collectedMetadata `json:"metadata"`
}

type collectedMetadata struct {
	Keyword       string    `json:"keyword"`
	ProcessedDate time.Time `json:"processedDate"`
	Status        string    `json:"status"`
}
