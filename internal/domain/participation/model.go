package participation

import (
	"errors"
	"fmt"
)

// ErrAlreadyRegistered reports that the participant is already
// registered for the sport. Storage implementations return it from
// Create so a (participant, sport) pair can never exist twice.
var ErrAlreadyRegistered = errors.New("participation already registered for participant and sport")

// Participation records that a participant takes part in a sport on
// behalf of their team. TeamID is a snapshot of the participant's team
// at creation time and is never re-derived afterwards.
type Participation struct {
	ID            int64
	ParticipantID int64
	TeamID        int64
	SportID       int64
}

func (p Participation) Validate() error {
	if p.ParticipantID <= 0 {
		return fmt.Errorf("participation participant id is required")
	}
	if p.TeamID <= 0 {
		return fmt.Errorf("participation team id is required")
	}
	if p.SportID <= 0 {
		return fmt.Errorf("participation sport id is required")
	}

	return nil
}
