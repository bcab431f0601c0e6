package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/intramural/tournament-api/internal/domain/sport"
)

func TestSportServiceCreateDuplicateScheduleConflicts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newServiceFixture(t, nil)
	f.mustCreateSport(t, "Futsal", "2026-10-01", "14:00", sport.CategoryCollective)

	_, err := f.sports.CreateSport(ctx, sport.Sport{
		Category: sport.CategoryCollective,
		Name:     "Futsal",
		Date:     "2026-10-01",
		Time:     "14:00",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// A different slot on the same day is allowed.
	if _, err := f.sports.CreateSport(ctx, sport.Sport{
		Category: sport.CategoryCollective,
		Name:     "Futsal",
		Date:     "2026-10-01",
		Time:     "16:00",
	}); err != nil {
		t.Fatalf("create sport at later time: %v", err)
	}
}

func TestSportServiceCreateRejectsUnknownCategory(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, nil)
	_, err := f.sports.CreateSport(context.Background(), sport.Sport{
		Category: "Mixed",
		Name:     "Futsal",
		Date:     "2026-10-01",
		Time:     "14:00",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSportServiceUpdateOntoTakenScheduleConflicts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newServiceFixture(t, nil)
	f.mustCreateSport(t, "Futsal", "2026-10-01", "14:00", sport.CategoryCollective)
	other := f.mustCreateSport(t, "Futsal", "2026-10-01", "16:00", sport.CategoryCollective)

	other.Time = "14:00"
	if _, err := f.sports.UpdateSport(ctx, other); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestSportServiceDeleteMissing(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, nil)
	if err := f.sports.DeleteSport(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
