package runs

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// Run is one row of the workflow run ledger. The run_date column carries a
// UNIQUE constraint: inserting a second row for the same date fails with a
// unique violation, which is how a run claims a day across processes.
type Run struct {
	ID          string
	RunDate     pgtype.Date
	BasePath    string
	Status      string
	Total       int32
	Successful  int32
	Failed      int32
	StartedAt   pgtype.Timestamptz
	CompletedAt pgtype.Timestamptz
}
