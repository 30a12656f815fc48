package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"yojana-sahayak/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ErrSchemeNotFound is returned when no row exists for a category.
var ErrSchemeNotFound = errors.New("scheme not found")

// SchemeRepository reads scheme records from the external store.
// The store is a plain key-value table (category -> scheme JSON); this
// system never writes to it.
type SchemeRepository struct {
	db     *pgxpool.Pool
	table  string
	logger *zap.Logger
}

func NewSchemeRepository(db *pgxpool.Pool, table string, logger *zap.Logger) *SchemeRepository {
	return &SchemeRepository{
		db:     db,
		table:  table,
		logger: logger,
	}
}

// GetByCategory fetches one scheme record for a category. When several
// rows match, whichever the store returns first is used.
func (r *SchemeRepository) GetByCategory(ctx context.Context, category models.Category) (*models.Scheme, error) {
	query := squirrel.Select("data").
		From(r.table).
		Where(squirrel.Eq{"category": string(category)}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var raw []byte
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSchemeNotFound
		}
		return nil, fmt.Errorf("scheme lookup failed: %w", err)
	}

	var scheme models.Scheme
	if err := json.Unmarshal(raw, &scheme); err != nil {
		return nil, fmt.Errorf("malformed scheme record for %s: %w", category, err)
	}

	return &scheme, nil
}
