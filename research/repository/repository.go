package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/research/repository/runs"
)

// Repository combines all domain-specific queriers.
type Repository struct {
	Runs runs.Querier
}

// NewRepository creates a new Repository with all domain queriers.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Runs: runs.New(db),
	}
}
