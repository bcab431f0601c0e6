package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/intramural/tournament-api/internal/domain/sport"
)

type SportService struct {
	sportRepo sport.Repository
}

func NewSportService(sportRepo sport.Repository) *SportService {
	return &SportService{sportRepo: sportRepo}
}

func (s *SportService) ListSports(ctx context.Context) ([]sport.Sport, error) {
	ctx, span := startUsecaseSpan(ctx, "SportService.ListSports")
	defer span.End()

	items, err := s.sportRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sports: %w", err)
	}

	return items, nil
}

func (s *SportService) GetSport(ctx context.Context, sportID int64) (sport.Sport, error) {
	ctx, span := startUsecaseSpan(ctx, "SportService.GetSport")
	defer span.End()

	if sportID <= 0 {
		return sport.Sport{}, fmt.Errorf("%w: sport id is required", ErrInvalidInput)
	}

	item, exists, err := s.sportRepo.GetByID(ctx, sportID)
	if err != nil {
		return sport.Sport{}, fmt.Errorf("get sport by id: %w", err)
	}
	if !exists {
		return sport.Sport{}, fmt.Errorf("%w: sport=%d", ErrNotFound, sportID)
	}

	return item, nil
}

func (s *SportService) CreateSport(ctx context.Context, item sport.Sport) (sport.Sport, error) {
	ctx, span := startUsecaseSpan(ctx, "SportService.CreateSport")
	defer span.End()

	item = item.Normalize()
	if err := item.Validate(); err != nil {
		return sport.Sport{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.sportRepo.Create(ctx, item)
	if err != nil {
		if errors.Is(err, sport.ErrScheduleTaken) {
			return sport.Sport{}, fmt.Errorf("%w: a sport with the same name, date and time already exists", ErrConflict)
		}
		return sport.Sport{}, fmt.Errorf("create sport: %w", err)
	}

	return created, nil
}

func (s *SportService) UpdateSport(ctx context.Context, item sport.Sport) (sport.Sport, error) {
	ctx, span := startUsecaseSpan(ctx, "SportService.UpdateSport")
	defer span.End()

	if item.ID <= 0 {
		return sport.Sport{}, fmt.Errorf("%w: sport id is required", ErrInvalidInput)
	}
	item = item.Normalize()
	if err := item.Validate(); err != nil {
		return sport.Sport{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, exists, err := s.sportRepo.Update(ctx, item)
	if err != nil {
		if errors.Is(err, sport.ErrScheduleTaken) {
			return sport.Sport{}, fmt.Errorf("%w: a sport with the same name, date and time already exists", ErrConflict)
		}
		return sport.Sport{}, fmt.Errorf("update sport: %w", err)
	}
	if !exists {
		return sport.Sport{}, fmt.Errorf("%w: sport=%d", ErrNotFound, item.ID)
	}

	return updated, nil
}

// DeleteSport removes the sport along with its participations and
// recorded results.
func (s *SportService) DeleteSport(ctx context.Context, sportID int64) error {
	ctx, span := startUsecaseSpan(ctx, "SportService.DeleteSport")
	defer span.End()

	if sportID <= 0 {
		return fmt.Errorf("%w: sport id is required", ErrInvalidInput)
	}

	existed, err := s.sportRepo.Delete(ctx, sportID)
	if err != nil {
		return fmt.Errorf("delete sport: %w", err)
	}
	if !existed {
		return fmt.Errorf("%w: sport=%d", ErrNotFound, sportID)
	}

	return nil
}
