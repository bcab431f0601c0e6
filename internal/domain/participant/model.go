package participant

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNationalIDTaken reports that another participant already holds the
// same normalized national id. Storage implementations return it from
// Create and Update so the check-and-insert stays a single atomic unit.
var ErrNationalIDTaken = errors.New("national id already registered")

const nationalIDDigits = 11

// Participant is an individual belonging to exactly one team, identified
// by a normalized national id (digits only).
type Participant struct {
	ID         int64
	Name       string
	NationalID string
	TeamID     int64
}

func (p Participant) Normalize() Participant {
	p.Name = strings.TrimSpace(p.Name)
	p.NationalID = stripNonDigits(p.NationalID)
	return p
}

func (p Participant) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("participant name is required")
	}
	if len(p.NationalID) != nationalIDDigits {
		return fmt.Errorf("national id must have %d digits", nationalIDDigits)
	}
	if p.TeamID <= 0 {
		return fmt.Errorf("participant team id is required")
	}

	return nil
}

// NormalizeNationalID strips every non-digit character from the raw
// value, e.g. "111.444.777-35" becomes "11144477735".
func NormalizeNationalID(raw string) string {
	return stripNonDigits(raw)
}

func stripNonDigits(raw string) string {
	var out strings.Builder
	out.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			out.WriteRune(r)
		}
	}
	return out.String()
}
