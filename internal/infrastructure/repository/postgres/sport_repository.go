package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/intramural/tournament-api/internal/domain/sport"
	qb "github.com/intramural/tournament-api/internal/platform/querybuilder"
)

// sportScheduleConstraint backs the (name, date, time) uniqueness
// invariant across all sports.
const sportScheduleConstraint = "sports_schedule_key"

type SportRepository struct {
	db *sqlx.DB
}

func NewSportRepository(db *sqlx.DB) *SportRepository {
	return &SportRepository{db: db}
}

func (r *SportRepository) List(ctx context.Context) ([]sport.Sport, error) {
	query, args, err := qb.Select("*").From("sports").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list sports query: %w", err)
	}

	var rows []sportTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list sports: %w", err)
	}

	out := make([]sport.Sport, 0, len(rows))
	for _, row := range rows {
		out = append(out, sportFromRow(row))
	}

	return out, nil
}

func (r *SportRepository) GetByID(ctx context.Context, sportID int64) (sport.Sport, bool, error) {
	query, args, err := qb.Select("*").From("sports").
		Where(qb.Eq("id", sportID)).
		ToSQL()
	if err != nil {
		return sport.Sport{}, false, fmt.Errorf("build get sport by id query: %w", err)
	}

	var row sportTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return sport.Sport{}, false, nil
		}
		return sport.Sport{}, false, fmt.Errorf("get sport by id: %w", err)
	}

	return sportFromRow(row), true, nil
}

func (r *SportRepository) Create(ctx context.Context, item sport.Sport) (sport.Sport, error) {
	insertModel := sportInsertModel{
		Category:  string(item.Category),
		Name:      item.Name,
		EventDate: item.Date,
		EventTime: item.Time,
	}
	query, args, err := qb.InsertModel("sports", insertModel, "RETURNING *")
	if err != nil {
		return sport.Sport{}, fmt.Errorf("build create sport query: %w", err)
	}

	var row sportTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isUniqueViolation(err, sportScheduleConstraint) {
			return sport.Sport{}, sport.ErrScheduleTaken
		}
		return sport.Sport{}, fmt.Errorf("create sport: %w", err)
	}

	return sportFromRow(row), nil
}

func (r *SportRepository) Update(ctx context.Context, item sport.Sport) (sport.Sport, bool, error) {
	query, args, err := qb.Update("sports").
		Set("category", string(item.Category)).
		Set("name", item.Name).
		Set("event_date", item.Date).
		Set("event_time", item.Time).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return sport.Sport{}, false, fmt.Errorf("build update sport query: %w", err)
	}

	var row sportTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return sport.Sport{}, false, nil
		}
		if isUniqueViolation(err, sportScheduleConstraint) {
			return sport.Sport{}, true, sport.ErrScheduleTaken
		}
		return sport.Sport{}, false, fmt.Errorf("update sport: %w", err)
	}

	return sportFromRow(row), true, nil
}

func (r *SportRepository) Delete(ctx context.Context, sportID int64) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx delete sport: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, table := range []string{"results", "participations"} {
		query, args, buildErr := qb.DeleteFrom(table).
			Where(qb.Eq("sport_id", sportID)).
			ToSQL()
		if buildErr != nil {
			return false, fmt.Errorf("build delete %s by sport query: %w", table, buildErr)
		}
		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			return false, fmt.Errorf("delete %s by sport: %w", table, execErr)
		}
	}

	query, args, err := qb.DeleteFrom("sports").
		Where(qb.Eq("id", sportID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete sport query: %w", err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete sport: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete sport: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit delete sport tx: %w", err)
	}

	return affected > 0, nil
}
