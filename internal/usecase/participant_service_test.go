package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/intramural/tournament-api/internal/domain/participant"
	"github.com/intramural/tournament-api/internal/domain/sport"
)

func TestParticipantServiceCreateRequiresExistingTeam(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, nil)
	_, err := f.participants.CreateParticipant(context.Background(), participant.Participant{
		Name:       "Ana",
		NationalID: "11144477735",
		TeamID:     999,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for dangling team, got %v", err)
	}
}

func TestParticipantServiceCreatePunctuatedNationalIDConflicts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newServiceFixture(t, nil)
	tm := f.mustCreateTeam(t, "Tigers", "Campinas")
	f.mustCreateParticipant(t, "Ana", "11144477735", tm.ID)

	// Same digits behind punctuation collide with the stored id.
	_, err := f.participants.CreateParticipant(ctx, participant.Participant{
		Name:       "Bia",
		NationalID: "111.444.777-35",
		TeamID:     tm.ID,
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestParticipantServiceListByTeam(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newServiceFixture(t, nil)
	tigers := f.mustCreateTeam(t, "Tigers", "Campinas")
	lions := f.mustCreateTeam(t, "Lions", "Santos")
	f.mustCreateParticipant(t, "Ana", "11144477735", tigers.ID)
	f.mustCreateParticipant(t, "Bia", "52998224725", lions.ID)

	rows, err := f.participants.ListByTeam(ctx, tigers.ID)
	if err != nil {
		t.Fatalf("list by team: %v", err)
	}
	if len(rows) != 1 || rows[0].TeamID != tigers.ID {
		t.Fatalf("expected only the tigers participant, got %+v", rows)
	}

	if _, err := f.participants.ListByTeam(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown team, got %v", err)
	}
}

func TestParticipantServiceUpdateKeepsTeamOnZeroID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newServiceFixture(t, nil)
	tm := f.mustCreateTeam(t, "Tigers", "Campinas")
	p := f.mustCreateParticipant(t, "Ana", "11144477735", tm.ID)

	updated, err := f.participants.UpdateParticipant(ctx, participant.Participant{
		ID:         p.ID,
		Name:       "Ana Clara",
		NationalID: p.NationalID,
	})
	if err != nil {
		t.Fatalf("update participant: %v", err)
	}
	if updated.TeamID != tm.ID {
		t.Fatalf("expected team %d to be kept, got %d", tm.ID, updated.TeamID)
	}
	if updated.Name != "Ana Clara" {
		t.Fatalf("unexpected name: %q", updated.Name)
	}
}

func TestParticipantServiceUpdateRejectsDanglingTeamChange(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newServiceFixture(t, nil)
	tm := f.mustCreateTeam(t, "Tigers", "Campinas")
	p := f.mustCreateParticipant(t, "Ana", "11144477735", tm.ID)

	p.TeamID = 999
	if _, err := f.participants.UpdateParticipant(ctx, p); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestParticipantServiceUpdateMissing(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, nil)
	_, err := f.participants.UpdateParticipant(context.Background(), participant.Participant{
		ID:         42,
		Name:       "Ana",
		NationalID: "11144477735",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestParticipantServiceDeleteRemovesParticipations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newServiceFixture(t, nil)
	tm := f.mustCreateTeam(t, "Tigers", "Campinas")
	p := f.mustCreateParticipant(t, "Ana", "11144477735", tm.ID)
	sp := f.mustCreateSport(t, "Chess", "2026-10-01", "09:00", sport.CategoryIndividual)

	if _, err := f.participations.Register(ctx, p.ID, sp.ID); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := f.participants.DeleteParticipant(ctx, p.ID); err != nil {
		t.Fatalf("delete participant: %v", err)
	}

	rows, err := f.participations.ListBySport(ctx, sp.ID)
	if err != nil {
		t.Fatalf("list participations: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected participations to be removed, got %+v", rows)
	}

	if err := f.participants.DeleteParticipant(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
