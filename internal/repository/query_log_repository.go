package repository

import (
	"context"

	"yojana-sahayak/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// QueryLogRepository persists one row per assistant interaction.
// Inserts are best effort; callers swallow failures so logging can
// never break a response.
type QueryLogRepository struct {
	db     *pgxpool.Pool
	table  string
	logger *zap.Logger
}

func NewQueryLogRepository(db *pgxpool.Pool, table string, logger *zap.Logger) *QueryLogRepository {
	return &QueryLogRepository{
		db:     db,
		table:  table,
		logger: logger,
	}
}

func (r *QueryLogRepository) Insert(ctx context.Context, entry *models.QueryLog) error {
	query := squirrel.Insert(r.table).
		Columns("id", "session_id", "lang", "transcript", "category", "scheme_id", "response_source", "created_at").
		Values(entry.ID, entry.SessionID, entry.Lang, entry.Transcript, string(entry.Category), entry.SchemeID, entry.ResponseSource, entry.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
