package result

import "fmt"

// Result is a team's score for one sport. At most one record exists per
// (team, sport) pair; writes go through an idempotent upsert.
type Result struct {
	ID      int64
	TeamID  int64
	SportID int64
	Points  int64
}

// Normalize clamps negative points to zero; the ledger never rejects a
// score, it coerces it.
func (r Result) Normalize() Result {
	if r.Points < 0 {
		r.Points = 0
	}
	return r
}

func (r Result) Validate() error {
	if r.TeamID <= 0 {
		return fmt.Errorf("result team id is required")
	}
	if r.SportID <= 0 {
		return fmt.Errorf("result sport id is required")
	}

	return nil
}
