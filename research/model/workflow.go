package model

import (
	"encoding/json"
	"time"
)

type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
)

// WorkItem is one row pulled from the external row source. Only Keyword is
// required; rows without it are skipped during a run.
type WorkItem struct {
	Keyword string `json:"keyword"`
	Title   string `json:"title,omitempty"`
	PostID  string `json:"post_id,omitempty"`
	Marker  string `json:"marker,omitempty"`
}

// Bundle aggregates the four provider payloads collected for one keyword.
// A completed bundle always has all four slots populated.
type Bundle struct {
	KeywordData json.RawMessage `json:"keywordData"`
	PAAData     json.RawMessage `json:"paaData"`
	SERPData    json.RawMessage `json:"serpData"`
	InsightData json.RawMessage `json:"insightData"`
}

// CollectedFlags records which bundle slots carry data, for the per-item
// result written to the summary log.
type CollectedFlags struct {
	HasKeywordData bool `json:"hasKeywordData"`
	HasPAAData     bool `json:"hasPaaData"`
	HasSERPData    bool `json:"hasSerpData"`
	HasInsightData bool `json:"hasInsightData"`
}

// ItemResult is the recorded outcome for one work item. Exactly one of
// DataCollected/Error is populated, matching Success.
type ItemResult struct {
	Keyword       string          `json:"keyword"`
	Slug          string          `json:"slug,omitempty"`
	FolderPath    string          `json:"folderPath,omitempty"`
	DataCollected *CollectedFlags `json:"dataCollected,omitempty"`
	Success       bool            `json:"success"`
	Error         string          `json:"error,omitempty"`
}

// Summary is always recomputed from a results list, never hand-maintained,
// so Successful+Failed == Total holds by construction.
type Summary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// BuildSummary derives the aggregate counts from per-item results.
func BuildSummary(results []ItemResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Success {
			s.Successful++
		} else {
			s.Failed++
		}
	}
	return s
}

// SummaryLog is the document persisted under logs/summary/<date>.json.
type SummaryLog struct {
	Summary Summary      `json:"summary"`
	Results []ItemResult `json:"results"`
}

// Run is one row of the workflow run ledger.
type Run struct {
	ID          string     `json:"id"`
	RunDate     string     `json:"run_date"`
	BasePath    string     `json:"base_path"`
	Status      RunStatus  `json:"status"`
	Total       int        `json:"total"`
	Successful  int        `json:"successful"`
	Failed      int        `json:"failed"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
