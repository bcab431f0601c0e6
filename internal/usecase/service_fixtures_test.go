package usecase

import (
	"context"
	"testing"

	"github.com/intramural/tournament-api/internal/domain/participant"
	"github.com/intramural/tournament-api/internal/domain/sport"
	"github.com/intramural/tournament-api/internal/domain/team"
	"github.com/intramural/tournament-api/internal/infrastructure/repository/memory"
	"github.com/intramural/tournament-api/internal/platform/cache"
)

type serviceFixture struct {
	teams          *TeamService
	participants   *ParticipantService
	sports         *SportService
	participations *ParticipationService
	results        *ResultService
	ranking        *RankingService
	cache          *cache.Store
}

func newServiceFixture(t *testing.T, rankingCache *cache.Store) *serviceFixture {
	t.Helper()

	store := memory.NewStore()
	teamRepo := memory.NewTeamRepository(store)
	participantRepo := memory.NewParticipantRepository(store)
	sportRepo := memory.NewSportRepository(store)
	participationRepo := memory.NewParticipationRepository(store)
	resultRepo := memory.NewResultRepository(store)

	return &serviceFixture{
		teams:          NewTeamService(teamRepo, participantRepo, rankingCache),
		participants:   NewParticipantService(participantRepo, teamRepo),
		sports:         NewSportService(sportRepo),
		participations: NewParticipationService(participationRepo, participantRepo, sportRepo, 4),
		results:        NewResultService(resultRepo, teamRepo, sportRepo, rankingCache),
		ranking:        NewRankingService(teamRepo, resultRepo, rankingCache),
		cache:          rankingCache,
	}
}

func (f *serviceFixture) mustCreateTeam(t *testing.T, name, city string) team.Team {
	t.Helper()

	created, err := f.teams.CreateTeam(context.Background(), team.Team{Name: name, City: city})
	if err != nil {
		t.Fatalf("create team %q: %v", name, err)
	}
	return created
}

func (f *serviceFixture) mustCreateParticipant(t *testing.T, name, nationalID string, teamID int64) participant.Participant {
	t.Helper()

	created, err := f.participants.CreateParticipant(context.Background(), participant.Participant{
		Name:       name,
		NationalID: nationalID,
		TeamID:     teamID,
	})
	if err != nil {
		t.Fatalf("create participant %q: %v", name, err)
	}
	return created
}

func (f *serviceFixture) mustCreateSport(t *testing.T, name, date, timeOfDay string, category sport.Category) sport.Sport {
	t.Helper()

	created, err := f.sports.CreateSport(context.Background(), sport.Sport{
		Category: category,
		Name:     name,
		Date:     date,
		Time:     timeOfDay,
	})
	if err != nil {
		t.Fatalf("create sport %q: %v", name, err)
	}
	return created
}
