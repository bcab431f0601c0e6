package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/intramural/tournament-api/internal/domain/participant"
	qb "github.com/intramural/tournament-api/internal/platform/querybuilder"
)

// participantNationalIDConstraint backs the global national-id
// uniqueness invariant; the insert-or-fail against it is what makes
// concurrent duplicate submissions safe.
const participantNationalIDConstraint = "participants_national_id_key"

type ParticipantRepository struct {
	db *sqlx.DB
}

func NewParticipantRepository(db *sqlx.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

func (r *ParticipantRepository) List(ctx context.Context) ([]participant.Participant, error) {
	query, args, err := qb.Select("*").From("participants").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list participants query: %w", err)
	}

	return r.selectParticipants(ctx, query, args)
}

func (r *ParticipantRepository) ListByTeam(ctx context.Context, teamID int64) ([]participant.Participant, error) {
	query, args, err := qb.Select("*").From("participants").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list participants by team query: %w", err)
	}

	return r.selectParticipants(ctx, query, args)
}

func (r *ParticipantRepository) GetByID(ctx context.Context, participantID int64) (participant.Participant, bool, error) {
	query, args, err := qb.Select("*").From("participants").
		Where(qb.Eq("id", participantID)).
		ToSQL()
	if err != nil {
		return participant.Participant{}, false, fmt.Errorf("build get participant by id query: %w", err)
	}

	var row participantTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return participant.Participant{}, false, nil
		}
		return participant.Participant{}, false, fmt.Errorf("get participant by id: %w", err)
	}

	return participantFromRow(row), true, nil
}

func (r *ParticipantRepository) Create(ctx context.Context, item participant.Participant) (participant.Participant, error) {
	insertModel := participantInsertModel{
		Name:       item.Name,
		NationalID: item.NationalID,
		TeamID:     item.TeamID,
	}
	query, args, err := qb.InsertModel("participants", insertModel, "RETURNING *")
	if err != nil {
		return participant.Participant{}, fmt.Errorf("build create participant query: %w", err)
	}

	var row participantTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isUniqueViolation(err, participantNationalIDConstraint) {
			return participant.Participant{}, participant.ErrNationalIDTaken
		}
		return participant.Participant{}, fmt.Errorf("create participant: %w", err)
	}

	return participantFromRow(row), nil
}

func (r *ParticipantRepository) Update(ctx context.Context, item participant.Participant) (participant.Participant, bool, error) {
	query, args, err := qb.Update("participants").
		Set("name", item.Name).
		Set("national_id", item.NationalID).
		Set("team_id", item.TeamID).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return participant.Participant{}, false, fmt.Errorf("build update participant query: %w", err)
	}

	var row participantTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return participant.Participant{}, false, nil
		}
		if isUniqueViolation(err, participantNationalIDConstraint) {
			return participant.Participant{}, true, participant.ErrNationalIDTaken
		}
		return participant.Participant{}, false, fmt.Errorf("update participant: %w", err)
	}

	return participantFromRow(row), true, nil
}

func (r *ParticipantRepository) Delete(ctx context.Context, participantID int64) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx delete participant: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.DeleteFrom("participations").
		Where(qb.Eq("participant_id", participantID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete participations by participant query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return false, fmt.Errorf("delete participations by participant: %w", err)
	}

	query, args, err = qb.DeleteFrom("participants").
		Where(qb.Eq("id", participantID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete participant query: %w", err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete participant: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete participant: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit delete participant tx: %w", err)
	}

	return affected > 0, nil
}

func (r *ParticipantRepository) selectParticipants(ctx context.Context, query string, args []any) ([]participant.Participant, error) {
	var rows []participantTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select participants: %w", err)
	}

	out := make([]participant.Participant, 0, len(rows))
	for _, row := range rows {
		out = append(out, participantFromRow(row))
	}

	return out, nil
}
