package runs

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createRun = `
INSERT INTO workflow_runs (id, run_date, base_path, status)
VALUES ($1, $2, $3, $4)
RETURNING id, run_date, base_path, status, total, successful, failed, started_at, completed_at
`

type CreateRunParams struct {
	ID       string
	RunDate  pgtype.Date
	BasePath string
	Status   string
}

func (q *Queries) CreateRun(ctx context.Context, arg CreateRunParams) (Run, error) {
	row := q.db.QueryRow(ctx, createRun, arg.ID, arg.RunDate, arg.BasePath, arg.Status)
	var r Run
	err := row.Scan(&r.ID, &r.RunDate, &r.BasePath, &r.Status, &r.Total, &r.Successful, &r.Failed, &r.StartedAt, &r.CompletedAt)
	return r, err
}

const completeRun = `
UPDATE workflow_runs
SET status = $2, total = $3, successful = $4, failed = $5, completed_at = now()
WHERE run_date = $1
`

type CompleteRunParams struct {
	RunDate    pgtype.Date
	Status     string
	Total      int32
	Successful int32
	Failed     int32
}

func (q *Queries) CompleteRun(ctx context.Context, arg CompleteRunParams) error {
	_, err := q.db.Exec(ctx, completeRun, arg.RunDate, arg.Status, arg.Total, arg.Successful, arg.Failed)
	return err
}

const deleteRun = `
DELETE FROM workflow_runs WHERE run_date = $1
`

func (q *Queries) DeleteRun(ctx context.Context, runDate pgtype.Date) error {
	_, err := q.db.Exec(ctx, deleteRun, runDate)
	return err
}

const getRunByDate = `
SELECT id, run_date, base_path, status, total, successful, failed, started_at, completed_at
FROM workflow_runs
WHERE run_date = $1
`

func (q *Queries) GetRunByDate(ctx context.Context, runDate pgtype.Date) (Run, error) {
	row := q.db.QueryRow(ctx, getRunByDate, runDate)
	var r Run
	err := row.Scan(&r.ID, &r.RunDate, &r.BasePath, &r.Status, &r.Total, &r.Successful, &r.Failed, &r.StartedAt, &r.CompletedAt)
	return r, err
}

const listRuns = `
SELECT id, run_date, base_path, status, total, successful, failed, started_at, completed_at
FROM workflow_runs
ORDER BY run_date DESC
LIMIT $1 OFFSET $2
`

type ListRunsParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) ListRuns(ctx context.Context, arg ListRunsParams) ([]Run, error) {
	rows, err := q.db.Query(ctx, listRuns, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.RunDate, &r.BasePath, &r.Status, &r.Total, &r.Successful, &r.Failed, &r.StartedAt, &r.CompletedAt); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const countRuns = `
SELECT count(*) FROM workflow_runs
`

func (q *Queries) CountRuns(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countRuns)
	var count int64
	err := row.Scan(&count)
	return count, err
}
