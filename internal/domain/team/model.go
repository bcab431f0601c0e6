package team

import (
	"fmt"
	"strings"
)

// Team is an organizational unit that groups participants and
// accumulates points across sports.
type Team struct {
	ID   int64
	Name string
	City string
}

// Normalize trims the user-supplied fields before storage and comparison.
func (t Team) Normalize() Team {
	t.Name = strings.TrimSpace(t.Name)
	t.City = strings.TrimSpace(t.City)
	return t
}

func (t Team) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.City == "" {
		return fmt.Errorf("team city is required")
	}

	return nil
}
