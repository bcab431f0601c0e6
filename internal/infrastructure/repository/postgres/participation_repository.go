package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/intramural/tournament-api/internal/domain/participation"
	qb "github.com/intramural/tournament-api/internal/platform/querybuilder"
)

// participationPairConstraint makes registering the same participant
// for the same sport an insert-or-fail, so two concurrent submissions
// for the pair can never both land.
const participationPairConstraint = "participations_participant_sport_key"

type ParticipationRepository struct {
	db *sqlx.DB
}

func NewParticipationRepository(db *sqlx.DB) *ParticipationRepository {
	return &ParticipationRepository{db: db}
}

func (r *ParticipationRepository) List(ctx context.Context) ([]participation.Participation, error) {
	query, args, err := qb.Select("*").From("participations").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list participations query: %w", err)
	}

	return r.selectParticipations(ctx, query, args)
}

func (r *ParticipationRepository) ListBySport(ctx context.Context, sportID int64) ([]participation.Participation, error) {
	query, args, err := qb.Select("*").From("participations").
		Where(qb.Eq("sport_id", sportID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list participations by sport query: %w", err)
	}

	return r.selectParticipations(ctx, query, args)
}

func (r *ParticipationRepository) Create(ctx context.Context, item participation.Participation) (participation.Participation, error) {
	insertModel := participationInsertModel{
		ParticipantID: item.ParticipantID,
		TeamID:        item.TeamID,
		SportID:       item.SportID,
	}
	query, args, err := qb.InsertModel("participations", insertModel, "RETURNING *")
	if err != nil {
		return participation.Participation{}, fmt.Errorf("build create participation query: %w", err)
	}

	var row participationTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isUniqueViolation(err, participationPairConstraint) {
			return participation.Participation{}, participation.ErrAlreadyRegistered
		}
		return participation.Participation{}, fmt.Errorf("create participation: %w", err)
	}

	return participationFromRow(row), nil
}

func (r *ParticipationRepository) Delete(ctx context.Context, participationID int64) (bool, error) {
	query, args, err := qb.DeleteFrom("participations").
		Where(qb.Eq("id", participationID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete participation query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete participation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete participation: %w", err)
	}

	return affected > 0, nil
}

func (r *ParticipationRepository) selectParticipations(ctx context.Context, query string, args []any) ([]participation.Participation, error) {
	var rows []participationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select participations: %w", err)
	}

	out := make([]participation.Participation, 0, len(rows))
	for _, row := range rows {
		out = append(out, participationFromRow(row))
	}

	return out, nil
}
