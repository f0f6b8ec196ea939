// Package rowsource pulls the ordered list of work items from the research
// spreadsheet. The service only requires the keyword column to be present
// and non-empty; the remaining columns ride along untouched.
package rowsource

import (
	"context"
	"fmt"
	"strings"

	"encore.dev/rlog"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"encore.app/research/model"
)

// readRange skips the header row; columns are keyword, title, post ID and
// the processed marker.
const readRange = "SEO!A2:D"

// RowSource yields the ordered sequence of rows to process.
type RowSource interface {
	Rows(ctx context.Context) ([]model.WorkItem, error)
}

// SheetsSource reads work items from a Google Sheets document.
type SheetsSource struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewSheetsSource builds a row source authenticated with a service-account
// credentials document.
func NewSheetsSource(ctx context.Context, credentialsJSON []byte, spreadsheetID string) (*SheetsSource, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("init sheets client: %w", err)
	}
	return &SheetsSource{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (s *SheetsSource) Rows(ctx context.Context) ([]model.WorkItem, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read range %s: %w", readRange, err)
	}

	items := MapRows(resp.Values)
	rlog.Info("fetched work items", "count", len(items))
	return items, nil
}

// MapRows converts raw sheet rows into work items, trimming every cell.
// Short rows are padded; values that are not strings are ignored.
func MapRows(rows [][]any) []model.WorkItem {
	items := make([]model.WorkItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, model.WorkItem{
			Keyword: cell(row, 0),
			Title:   cell(row, 1),
			PostID:  cell(row, 2),
			Marker:  cell(row, 3),
		})
	}
	return items
}

func cell(row []any, i int) string {
	if i >= len(row) {
		return ""
	}
	s, ok := row[i].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}
