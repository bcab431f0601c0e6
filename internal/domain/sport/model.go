package sport

import (
	"errors"
	"fmt"
	"strings"
)

// ErrScheduleTaken reports that another sport already carries the same
// (name, date, time) triple. Storage implementations return it from
// Create and Update.
var ErrScheduleTaken = errors.New("sport with same name, date and time already exists")

// Category tells whether a sport is played individually or by teams.
type Category string

const (
	CategoryIndividual Category = "individual"
	CategoryCollective Category = "collective"
)

// Sport is a scheduled event, uniquely identified by name+date+time.
type Sport struct {
	ID       int64
	Category Category
	Name     string
	Date     string
	Time     string
}

func (s Sport) Normalize() Sport {
	s.Category = Category(strings.TrimSpace(string(s.Category)))
	s.Name = strings.TrimSpace(s.Name)
	s.Date = strings.TrimSpace(s.Date)
	s.Time = strings.TrimSpace(s.Time)
	return s
}

func (s Sport) Validate() error {
	switch s.Category {
	case CategoryIndividual, CategoryCollective:
	case "":
		return fmt.Errorf("sport category is required")
	default:
		return fmt.Errorf("sport category must be %s or %s", CategoryIndividual, CategoryCollective)
	}
	if s.Name == "" {
		return fmt.Errorf("sport name is required")
	}
	if s.Date == "" {
		return fmt.Errorf("sport date is required")
	}
	if s.Time == "" {
		return fmt.Errorf("sport time is required")
	}

	return nil
}
