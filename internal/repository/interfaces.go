package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/moodlens/moodlens/internal/domain"
)

// PgxPool is the subset of pgxpool.Pool the repositories use; pgxmock
// satisfies it in tests.
type PgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PredictionRepositoryInterface defines operations for prediction data access.
// Records are append-only: no update or delete is exposed.
type PredictionRepositoryInterface interface {
	Create(ctx context.Context, prediction *domain.Prediction) error
	ListRecent(ctx context.Context, limit int) ([]domain.Prediction, error)
}
