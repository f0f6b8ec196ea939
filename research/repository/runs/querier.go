package runs

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type Querier interface {
	CreateRun(ctx context.Context, arg CreateRunParams) (Run, error)
	CompleteRun(ctx context.Context, arg CompleteRunParams) error
	DeleteRun(ctx context.Context, runDate pgtype.Date) error
	GetRunByDate(ctx context.Context, runDate pgtype.Date) (Run, error)
	ListRuns(ctx context.Context, arg ListRunsParams) ([]Run, error)
	CountRuns(ctx context.Context) (int64, error)
}

var _ Querier = (*Queries)(nil)
