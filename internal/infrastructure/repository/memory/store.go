package memory

import (
	"sync"

	"github.com/intramural/tournament-api/internal/domain/participant"
	"github.com/intramural/tournament-api/internal/domain/participation"
	"github.com/intramural/tournament-api/internal/domain/result"
	"github.com/intramural/tournament-api/internal/domain/sport"
	"github.com/intramural/tournament-api/internal/domain/team"
)

// Store keeps all five entity kinds behind a single mutex so that every
// check-then-insert sequence and every cascading delete executes as one
// atomic unit, matching what the postgres backend gets from unique
// indexes and transactions.
type Store struct {
	mu sync.RWMutex

	teams          map[int64]team.Team
	participants   map[int64]participant.Participant
	sports         map[int64]sport.Sport
	participations map[int64]participation.Participation
	results        map[int64]result.Result

	nextTeamID          int64
	nextParticipantID   int64
	nextSportID         int64
	nextParticipationID int64
	nextResultID        int64
}

func NewStore() *Store {
	return &Store{
		teams:          make(map[int64]team.Team),
		participants:   make(map[int64]participant.Participant),
		sports:         make(map[int64]sport.Sport),
		participations: make(map[int64]participation.Participation),
		results:        make(map[int64]result.Result),
	}
}
