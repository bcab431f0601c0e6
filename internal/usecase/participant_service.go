package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/intramural/tournament-api/internal/domain/participant"
	"github.com/intramural/tournament-api/internal/domain/team"
)

type ParticipantService struct {
	participantRepo participant.Repository
	teamRepo        team.Repository
}

func NewParticipantService(participantRepo participant.Repository, teamRepo team.Repository) *ParticipantService {
	return &ParticipantService{
		participantRepo: participantRepo,
		teamRepo:        teamRepo,
	}
}

func (s *ParticipantService) ListParticipants(ctx context.Context) ([]participant.Participant, error) {
	ctx, span := startUsecaseSpan(ctx, "ParticipantService.ListParticipants")
	defer span.End()

	items, err := s.participantRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}

	return items, nil
}

func (s *ParticipantService) ListByTeam(ctx context.Context, teamID int64) ([]participant.Participant, error) {
	ctx, span := startUsecaseSpan(ctx, "ParticipantService.ListByTeam")
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	items, err := s.participantRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list participants by team: %w", err)
	}

	return items, nil
}

func (s *ParticipantService) GetParticipant(ctx context.Context, participantID int64) (participant.Participant, error) {
	ctx, span := startUsecaseSpan(ctx, "ParticipantService.GetParticipant")
	defer span.End()

	if participantID <= 0 {
		return participant.Participant{}, fmt.Errorf("%w: participant id is required", ErrInvalidInput)
	}

	item, exists, err := s.participantRepo.GetByID(ctx, participantID)
	if err != nil {
		return participant.Participant{}, fmt.Errorf("get participant by id: %w", err)
	}
	if !exists {
		return participant.Participant{}, fmt.Errorf("%w: participant=%d", ErrNotFound, participantID)
	}

	return item, nil
}

func (s *ParticipantService) CreateParticipant(ctx context.Context, item participant.Participant) (participant.Participant, error) {
	ctx, span := startUsecaseSpan(ctx, "ParticipantService.CreateParticipant")
	defer span.End()

	item = item.Normalize()
	if err := item.Validate(); err != nil {
		return participant.Participant{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// The team id is caller-supplied payload here, so a dangling
	// reference is an input problem rather than a missing resource.
	_, exists, err := s.teamRepo.GetByID(ctx, item.TeamID)
	if err != nil {
		return participant.Participant{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return participant.Participant{}, fmt.Errorf("%w: team=%d does not exist", ErrInvalidInput, item.TeamID)
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

// UpdateParticipant rewrites the stored participant. A zero TeamID in
// the input keeps the participant on their current team.
func (s *ParticipantService) UpdateParticipant(ctx context.Context, item participant.Participant) (participant.Participant, error) {
	ctx, span := startUsecaseSpan(ctx, "ParticipantService.UpdateParticipant")
	defer span.End()

	if item.ID <= 0 {
		return participant.Participant{}, fmt.Errorf("%w: participant id is required", ErrInvalidInput)
	}

	current, err := s.GetParticipant(ctx, item.ID)
	if err != nil {
		return participant.Participant{}, err
	}
	if item.TeamID == 0 {
		item.TeamID = current.TeamID
	}

	item = item.Normalize()
	if err := item.Validate(); err != nil {
		return participant.Participant{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if item.TeamID != current.TeamID {
		_, exists, err := s.teamRepo.GetByID(ctx, item.TeamID)
		if err != nil {
			return participant.Participant{}, fmt.Errorf("get team by id: %w", err)
		}
		if !exists {
			return participant.Participant{}, fmt.Errorf("%w: team=%d does not exist", ErrInvalidInput, item.TeamID)
		}
	}

	updated, exists, err := s.participantRepo.Update(ctx, item)
	if err != nil {
		if errors.Is(err, participant.ErrNationalIDTaken) {
			return participant.Participant{}, fmt.Errorf("%w: national id already registered", ErrConflict)
		}
		return participant.Participant{}, fmt.Errorf("update participant: %w", err)
	}
	if !exists {
		return participant.Participant{}, fmt.Errorf("%w: participant=%d", ErrNotFound, item.ID)
	}

	return updated, nil
}

// DeleteParticipant removes the participant and their participations.
func (s *ParticipantService) DeleteParticipant(ctx context.Context, participantID int64) error {
	ctx, span := startUsecaseSpan(ctx, "ParticipantService.DeleteParticipant")
	defer span.End()

	if participantID <= 0 {
		return fmt.Errorf("%w: participant id is required", ErrInvalidInput)
	}

	existed, err := s.participantRepo.Delete(ctx, participantID)
	if err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}
	if !existed {
		return fmt.Errorf("%w: participant=%d", ErrNotFound, participantID)
	}

	return nil
}
