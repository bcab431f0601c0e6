package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/intramural/tournament-api/internal/domain/sport"
	"github.com/intramural/tournament-api/internal/domain/team"
)

// mockSportRepository is a testify mock for failure paths the memory
// backend can never produce.
type mockSportRepository struct {
	mock.Mock
}

func (m *mockSportRepository) List(ctx context.Context) ([]sport.Sport, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]sport.Sport)
	return items, args.Error(1)
}

func (m *mockSportRepository) GetByID(ctx context.Context, sportID int64) (sport.Sport, bool, error) {
	args := m.Called(ctx, sportID)
	item, _ := args.Get(0).(sport.Sport)
	return item, args.Bool(1), args.Error(2)
}

func (m *mockSportRepository) Create(ctx context.Context, item sport.Sport) (sport.Sport, error) {
	args := m.Called(ctx, item)
	created, _ := args.Get(0).(sport.Sport)
	return created, args.Error(1)
}

func (m *mockSportRepository) Update(ctx context.Context, item sport.Sport) (sport.Sport, bool, error) {
	args := m.Called(ctx, item)
	updated, _ := args.Get(0).(sport.Sport)
	return updated, args.Bool(1), args.Error(2)
}

func (m *mockSportRepository) Delete(ctx context.Context, sportID int64) (bool, error) {
	args := m.Called(ctx, sportID)
	return args.Bool(0), args.Error(1)
}

type mockTeamRepository struct {
	mock.Mock
}

func (m *mockTeamRepository) List(ctx context.Context) ([]team.Team, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]team.Team)
	return items, args.Error(1)
}

func (m *mockTeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	args := m.Called(ctx, teamID)
	item, _ := args.Get(0).(team.Team)
	return item, args.Bool(1), args.Error(2)
}

func (m *mockTeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	args := m.Called(ctx, item)
	created, _ := args.Get(0).(team.Team)
	return created, args.Error(1)
}

func (m *mockTeamRepository) Update(ctx context.Context, item team.Team) (team.Team, bool, error) {
	args := m.Called(ctx, item)
	updated, _ := args.Get(0).(team.Team)
	return updated, args.Bool(1), args.Error(2)
}

func (m *mockTeamRepository) Delete(ctx context.Context, teamID int64) (bool, error) {
	args := m.Called(ctx, teamID)
	return args.Bool(0), args.Error(1)
}

func TestSportServiceListPropagatesRepoError(t *testing.T) {
	t.Parallel()

	repoErr := errors.New("connection reset")
	repo := &mockSportRepository{}
	repo.On("List", mock.Anything).Return(nil, repoErr)

	svc := NewSportService(repo)
	_, err := svc.ListSports(context.Background())
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
	repo.AssertExpectations(t)
}

func TestSportServiceGetPropagatesRepoError(t *testing.T) {
	t.Parallel()

	repoErr := errors.New("connection reset")
	repo := &mockSportRepository{}
	repo.On("GetByID", mock.Anything, int64(7)).Return(sport.Sport{}, false, repoErr)

	svc := NewSportService(repo)
	_, err := svc.GetSport(context.Background(), 7)
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
	repo.AssertExpectations(t)
}

func TestRankingPropagatesTeamListError(t *testing.T) {
	t.Parallel()

	repoErr := errors.New("connection reset")
	teamRepo := &mockTeamRepository{}
	teamRepo.On("List", mock.Anything).Return(nil, repoErr)

	f := newServiceFixture(t, nil)
	svc := NewRankingService(teamRepo, f.results.resultRepo, nil)
	_, err := svc.Ranking(context.Background())
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
	teamRepo.AssertExpectations(t)
}
