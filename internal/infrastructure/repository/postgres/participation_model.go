package postgres

import (
	"time"

	"github.com/intramural/tournament-api/internal/domain/participation"
)

type participationTableModel struct {
	ID            int64     `db:"id"`
	ParticipantID int64     `db:"participant_id"`
	TeamID        int64     `db:"team_id"`
	SportID       int64     `db:"sport_id"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type participationInsertModel struct {
	ParticipantID int64 `db:"participant_id"`
	TeamID        int64 `db:"team_id"`
	SportID       int64 `db:"sport_id"`
}

func participationFromRow(row participationTableModel) participation.Participation {
	return participation.Participation{
		ID:            row.ID,
		ParticipantID: row.ParticipantID,
		TeamID:        row.TeamID,
		SportID:       row.SportID,
	}
}
