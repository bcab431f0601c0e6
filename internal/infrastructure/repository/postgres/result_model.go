package postgres

import (
	"time"

	"github.com/intramural/tournament-api/internal/domain/result"
)

type resultTableModel struct {
	ID        int64     `db:"id"`
	TeamID    int64     `db:"team_id"`
	SportID   int64     `db:"sport_id"`
	Points    int64     `db:"points"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type resultInsertModel struct {
	TeamID  int64 `db:"team_id"`
	SportID int64 `db:"sport_id"`
	Points  int64 `db:"points"`
}

func resultFromRow(row resultTableModel) result.Result {
	return result.Result{
		ID:      row.ID,
		TeamID:  row.TeamID,
		SportID: row.SportID,
		Points:  row.Points,
	}
}
