package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/intramural/tournament-api/internal/domain/participant"
	"github.com/intramural/tournament-api/internal/domain/team"
	"github.com/intramural/tournament-api/internal/platform/cache"
)

type TeamService struct {
	teamRepo        team.Repository
	participantRepo participant.Repository
	rankings        *cache.Store
}

// NewTeamService builds the team writer. Team writes change the set of
// ranked teams, so they drop the cached standings the same way result
// writes do. rankings may be nil when the standings cache is disabled.
func NewTeamService(teamRepo team.Repository, participantRepo participant.Repository, rankings *cache.Store) *TeamService {
	return &TeamService{
		teamRepo:        teamRepo,
		participantRepo: participantRepo,
		rankings:        rankings,
	}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.ListTeams")
	defer span.End()

	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return items, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.GetTeam")
	defer span.End()

	if teamID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	return item, nil
}

func (s *TeamService) CreateTeam(ctx context.Context, item team.Team) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.CreateTeam")
	defer span.End()

	item = item.Normalize()
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.teamRepo.Create(ctx, item)
	if err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}
	s.rankings.Delete(ctx, rankingCacheKey)

	return created, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, item team.Team) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.UpdateTeam")
	defer span.End()

	if item.ID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	item = item.Normalize()
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, exists, err := s.teamRepo.Update(ctx, item)
	if err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, item.ID)
	}
	s.rankings.Delete(ctx, rankingCacheKey)

	return updated, nil
}

// DeleteTeam removes the team together with its participants and every
// participation and result tied to it.
func (s *TeamService) DeleteTeam(ctx context.Context, teamID int64) error {
	ctx, span := startUsecaseSpan(ctx, "TeamService.DeleteTeam")
	defer span.End()

	if teamID <= 0 {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	existed, err := s.teamRepo.Delete(ctx, teamID)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if !existed {
		return fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}
	s.rankings.Delete(ctx, rankingCacheKey)

	return nil
}

func (s *TeamService) ListTeamParticipants(ctx context.Context, teamID int64) ([]participant.Participant, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.ListTeamParticipants")
	defer span.End()

	if _, err := s.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}

	items, err := s.participantRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list participants by team: %w", err)
	}

	return items, nil
}

// AddTeamParticipant registers a participant under an existing team.
// Unlike the flat create, a missing team here is a not-found condition
// because the team id comes from the resource path.
func (s *TeamService) AddTeamParticipant(ctx context.Context, teamID int64, item participant.Participant) (participant.Participant, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.AddTeamParticipant")
	defer span.End()

	if _, err := s.GetTeam(ctx, teamID); err != nil {
		return participant.Participant{}, err
	}

	item.TeamID = teamID
	item = item.Normalize()
	if err := item.Validate(); err != nil {
		return participant.Participant{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.participantRepo.Create(ctx, item)
	if err != nil {
		if errors.Is(err, participant.ErrNationalIDTaken) {
			return participant.Participant{}, fmt.Errorf("%w: national id already registered", ErrConflict)
		}
		return participant.Participant{}, fmt.Errorf("create participant: %w", err)
	}

	return created, nil
}
