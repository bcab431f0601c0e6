package postgres

import (
	"time"

	"github.com/intramural/tournament-api/internal/domain/team"
)

type teamTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	City      string    `db:"city"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type teamInsertModel struct {
	Name string `db:"name"`
	City string `db:"city"`
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:   row.ID,
		Name: row.Name,
		City: row.City,
	}
}
