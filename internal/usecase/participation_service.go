package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/intramural/tournament-api/internal/domain/participant"
	"github.com/intramural/tournament-api/internal/domain/participation"
	"github.com/intramural/tournament-api/internal/domain/sport"
)

const defaultBulkWorkerCount = 4

// BulkRegistrationResult summarizes a batch registration. Participants
// that do not exist or are already registered for the sport are
// counted and skipped rather than failing the batch.
type BulkRegistrationResult struct {
	Registered       []participation.Participation
	SkippedMissing   int
	SkippedDuplicate int
}

type ParticipationService struct {
	participationRepo participation.Repository
	participantRepo   participant.Repository
	sportRepo         sport.Repository
	bulkWorkerCount   int
}

func NewParticipationService(
	participationRepo participation.Repository,
	participantRepo participant.Repository,
	sportRepo sport.Repository,
	bulkWorkerCount int,
) *ParticipationService {
	if bulkWorkerCount <= 0 {
		bulkWorkerCount = defaultBulkWorkerCount
	}
	return &ParticipationService{
		participationRepo: participationRepo,
		participantRepo:   participantRepo,
		sportRepo:         sportRepo,
		bulkWorkerCount:   bulkWorkerCount,
	}
}

func (s *ParticipationService) ListParticipations(ctx context.Context) ([]participation.Participation, error) {
	ctx, span := startUsecaseSpan(ctx, "ParticipationService.ListParticipations")
	defer span.End()

	items, err := s.participationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list participations: %w", err)
	}

	return items, nil
}

func (s *ParticipationService) ListBySport(ctx context.Context, sportID int64) ([]participation.Participation, error) {
	ctx, span := startUsecaseSpan(ctx, "ParticipationService.ListBySport")
	defer span.End()

	if err := s.requireSport(ctx, sportID); err != nil {
		return nil, err
	}

	items, err := s.participationRepo.ListBySport(ctx, sportID)
	if err != nil {
		return nil, fmt.Errorf("list participations by sport: %w", err)
	}

	return items, nil
}

// Register enrolls a single participant in a sport. Unlike the bulk
// path, a duplicate registration here is reported as a conflict.
func (s *ParticipationService) Register(ctx context.Context, participantID, sportID int64) (participation.Participation, error) {
	ctx, span := startUsecaseSpan(ctx, "ParticipationService.Register")
	defer span.End()

	if participantID <= 0 {
		return participation.Participation{}, fmt.Errorf("%w: participant id is required", ErrInvalidInput)
	}
	if err := s.requireSport(ctx, sportID); err != nil {
		return participation.Participation{}, err
	}

	person, exists, err := s.participantRepo.GetByID(ctx, participantID)
	if err != nil {
		return participation.Participation{}, fmt.Errorf("get participant by id: %w", err)
	}
	if !exists {
		return participation.Participation{}, fmt.Errorf("%w: participant=%d", ErrNotFound, participantID)
	}

	item := participation.Participation{
		ParticipantID: person.ID,
		TeamID:        person.TeamID,
		SportID:       sportID,
	}
	created, err := s.participationRepo.Create(ctx, item)
	if err != nil {
		if errors.Is(err, participation.ErrAlreadyRegistered) {
			return participation.Participation{}, fmt.Errorf("%w: participant=%d already registered for sport=%d", ErrConflict, participantID, sportID)
		}
		return participation.Participation{}, fmt.Errorf("create participation: %w", err)
	}

	return created, nil
}

// RegisterBulk enrolls a batch of participants in one sport through a
// bounded worker pool. Missing participants and duplicate pairs are
// skipped; the storage uniqueness check decides races between workers
// submitting the same participant twice.
func (s *ParticipationService) RegisterBulk(ctx context.Context, sportID int64, participantIDs []int64) (BulkRegistrationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "ParticipationService.RegisterBulk")
	defer span.End()

	if err := s.requireSport(ctx, sportID); err != nil {
		return BulkRegistrationResult{}, err
	}
	if len(participantIDs) == 0 {
		return BulkRegistrationResult{}, fmt.Errorf("%w: participant ids are required", ErrInvalidInput)
	}

	workerCount := s.bulkWorkerCount
	if workerCount > len(participantIDs) {
		workerCount = len(participantIDs)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return BulkRegistrationResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	registered := make(chan participation.Participation, len(participantIDs))
	var skippedMissing atomic.Int32
	var skippedDuplicate atomic.Int32
	var firstErr atomic.Value

	var workers sync.WaitGroup
	for _, participantID := range participantIDs {
		participantID := participantID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			person, exists, getErr := s.participantRepo.GetByID(ctx, participantID)
			if getErr != nil {
				firstErr.CompareAndSwap(nil, fmt.Errorf("get participant by id: %w", getErr))
				return
			}
			if !exists {
				skippedMissing.Add(1)
				return
			}

			item := participation.Participation{
				ParticipantID: person.ID,
				TeamID:        person.TeamID,
				SportID:       sportID,
			}
			created, createErr := s.participationRepo.Create(ctx, item)
			if createErr != nil {
				if errors.Is(createErr, participation.ErrAlreadyRegistered) {
					skippedDuplicate.Add(1)
					return
				}
				firstErr.CompareAndSwap(nil, fmt.Errorf("create participation: %w", createErr))
				return
			}

			registered <- created
		}); err != nil {
			workers.Done()
			return BulkRegistrationResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(registered)

	if errValue := firstErr.Load(); errValue != nil {
		return BulkRegistrationResult{}, errValue.(error)
	}

	result := BulkRegistrationResult{
		Registered:       make([]participation.Participation, 0, len(participantIDs)),
		SkippedMissing:   int(skippedMissing.Load()),
		SkippedDuplicate: int(skippedDuplicate.Load()),
	}
	for item := range registered {
		result.Registered = append(result.Registered, item)
	}
	sort.Slice(result.Registered, func(i, j int) bool {
		return result.Registered[i].ID < result.Registered[j].ID
	})

	return result, nil
}

func (s *ParticipationService) Unregister(ctx context.Context, participationID int64) error {
	ctx, span := startUsecaseSpan(ctx, "ParticipationService.Unregister")
	defer span.End()

	if participationID <= 0 {
		return fmt.Errorf("%w: participation id is required", ErrInvalidInput)
	}

	existed, err := s.participationRepo.Delete(ctx, participationID)
	if err != nil {
		return fmt.Errorf("delete participation: %w", err)
	}
	if !existed {
		return fmt.Errorf("%w: participation=%d", ErrNotFound, participationID)
	}

	return nil
}

func (s *ParticipationService) requireSport(ctx context.Context, sportID int64) error {
	if sportID <= 0 {
		return fmt.Errorf("%w: sport id is required", ErrInvalidInput)
	}

	_, exists, err := s.sportRepo.GetByID(ctx, sportID)
	if err != nil {
		return fmt.Errorf("get sport by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: sport=%d", ErrNotFound, sportID)
	}

	return nil
}
