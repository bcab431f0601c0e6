package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/intramural/tournament-api/internal/domain/participant"
	"github.com/intramural/tournament-api/internal/domain/team"
)

func TestTeamServiceCreateNormalizesInput(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, nil)
	created, err := f.teams.CreateTeam(context.Background(), team.Team{Name: "  Tigers ", City: " Campinas "})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if created.Name != "Tigers" || created.City != "Campinas" {
		t.Fatalf("expected trimmed fields, got %+v", created)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
}

func TestTeamServiceCreateRejectsBlankFields(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, nil)
	_, err := f.teams.CreateTeam(context.Background(), team.Team{Name: "   ", City: "Campinas"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTeamServiceGetMissing(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, nil)
	if _, err := f.teams.GetTeam(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := f.teams.GetTeam(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero id, got %v", err)
	}
}

func TestTeamServiceUpdateMissing(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, nil)
	_, err := f.teams.UpdateTeam(context.Background(), team.Team{ID: 42, Name: "Tigers", City: "Campinas"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamServiceDeleteMissing(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, nil)
	if err := f.teams.DeleteTeam(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamServiceAddTeamParticipant(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newServiceFixture(t, nil)
	tm := f.mustCreateTeam(t, "Tigers", "Campinas")

	created, err := f.teams.AddTeamParticipant(ctx, tm.ID, participant.Participant{
		Name:       "Ana",
		NationalID: "111.444.777-35",
	})
	if err != nil {
		t.Fatalf("add team participant: %v", err)
	}
	if created.TeamID != tm.ID {
		t.Fatalf("expected team id %d, got %d", tm.ID, created.TeamID)
	}
	if created.NationalID != "11144477735" {
		t.Fatalf("expected normalized national id, got %q", created.NationalID)
	}

	t.Run("missing team is not found", func(t *testing.T) {
		_, err := f.teams.AddTeamParticipant(ctx, 999, participant.Participant{Name: "Bia", NationalID: "52998224725"})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("duplicate national id conflicts", func(t *testing.T) {
		_, err := f.teams.AddTeamParticipant(ctx, tm.ID, participant.Participant{Name: "Bia", NationalID: "11144477735"})
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})
}

func TestTeamServiceListTeamParticipants(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newServiceFixture(t, nil)
	tigers := f.mustCreateTeam(t, "Tigers", "Campinas")
	lions := f.mustCreateTeam(t, "Lions", "Santos")
	f.mustCreateParticipant(t, "Ana", "11144477735", tigers.ID)
	f.mustCreateParticipant(t, "Bia", "52998224725", lions.ID)

	got, err := f.teams.ListTeamParticipants(ctx, tigers.ID)
	if err != nil {
		t.Fatalf("list team participants: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Ana" {
		t.Fatalf("expected only the tigers roster, got %+v", got)
	}

	if _, err := f.teams.ListTeamParticipants(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing team, got %v", err)
	}
}
