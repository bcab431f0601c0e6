package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/intramural/tournament-api/internal/domain/result"
	qb "github.com/intramural/tournament-api/internal/platform/querybuilder"
)

type ResultRepository struct {
	db *sqlx.DB
}

func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) List(ctx context.Context) ([]result.Result, error) {
	query, args, err := qb.Select("*").From("results").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list results query: %w", err)
	}

	return r.selectResults(ctx, query, args)
}

func (r *ResultRepository) ListBySport(ctx context.Context, sportID int64) ([]result.Result, error) {
	query, args, err := qb.Select("*").From("results").
		Where(qb.Eq("sport_id", sportID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list results by sport query: %w", err)
	}

	return r.selectResults(ctx, query, args)
}

// Upsert writes the score for a (team, sport) pair. A second submission
// for the same pair overwrites points in place and keeps the original
// row id, so recording a score is idempotent per pair.
func (r *ResultRepository) Upsert(ctx context.Context, item result.Result) (result.Result, error) {
	insertModel := resultInsertModel{
		TeamID:  item.TeamID,
		SportID: item.SportID,
		Points:  item.Points,
	}
	suffix := "ON CONFLICT (team_id, sport_id) DO UPDATE SET points = EXCLUDED.points, updated_at = NOW() RETURNING *"
	query, args, err := qb.InsertModel("results", insertModel, suffix)
	if err != nil {
		return result.Result{}, fmt.Errorf("build upsert result query: %w", err)
	}

	var row resultTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return result.Result{}, fmt.Errorf("upsert result: %w", err)
	}

	return resultFromRow(row), nil
}

func (r *ResultRepository) Delete(ctx context.Context, resultID int64) (bool, error) {
	query, args, err := qb.DeleteFrom("results").
		Where(qb.Eq("id", resultID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete result query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete result: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete result: %w", err)
	}

	return affected > 0, nil
}

func (r *ResultRepository) selectResults(ctx context.Context, query string, args []any) ([]result.Result, error) {
	var rows []resultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select results: %w", err)
	}

	out := make([]result.Result, 0, len(rows))
	for _, row := range rows {
		out = append(out, resultFromRow(row))
	}

	return out, nil
}
