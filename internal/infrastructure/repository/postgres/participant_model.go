package postgres

import (
	"time"

	"github.com/intramural/tournament-api/internal/domain/participant"
)

type participantTableModel struct {
	ID         int64     `db:"id"`
	Name       string    `db:"name"`
	NationalID string    `db:"national_id"`
	TeamID     int64     `db:"team_id"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type participantInsertModel struct {
	Name       string `db:"name"`
	NationalID string `db:"national_id"`
	TeamID     int64  `db:"team_id"`
}

func participantFromRow(row participantTableModel) participant.Participant {
	return participant.Participant{
		ID:         row.ID,
		Name:       row.Name,
		NationalID: row.NationalID,
		TeamID:     row.TeamID,
	}
}
