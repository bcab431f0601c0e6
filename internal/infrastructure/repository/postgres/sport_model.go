package postgres

import (
	"time"

	"github.com/intramural/tournament-api/internal/domain/sport"
)

type sportTableModel struct {
	ID        int64     `db:"id"`
	Category  string    `db:"category"`
	Name      string    `db:"name"`
	EventDate string    `db:"event_date"`
	EventTime string    `db:"event_time"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type sportInsertModel struct {
	Category  string `db:"category"`
	Name      string `db:"name"`
	EventDate string `db:"event_date"`
	EventTime string `db:"event_time"`
}

func sportFromRow(row sportTableModel) sport.Sport {
	return sport.Sport{
		ID:       row.ID,
		Category: sport.Category(row.Category),
		Name:     row.Name,
		Date:     row.EventDate,
		Time:     row.EventTime,
	}
}
