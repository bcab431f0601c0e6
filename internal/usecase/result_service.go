package usecase

import (
	"context"
	"fmt"

	"github.com/intramural/tournament-api/internal/domain/result"
	"github.com/intramural/tournament-api/internal/domain/sport"
	"github.com/intramural/tournament-api/internal/domain/team"
	"github.com/intramural/tournament-api/internal/platform/cache"
)

type ResultService struct {
	resultRepo result.Repository
	teamRepo   team.Repository
	sportRepo  sport.Repository
	rankings   *cache.Store
}

// NewResultService builds the scoring writer. rankings may be nil when
// the standings cache is disabled.
func NewResultService(resultRepo result.Repository, teamRepo team.Repository, sportRepo sport.Repository, rankings *cache.Store) *ResultService {
	return &ResultService{
		resultRepo: resultRepo,
		teamRepo:   teamRepo,
		sportRepo:  sportRepo,
		rankings:   rankings,
	}
}

func (s *ResultService) ListResults(ctx context.Context) ([]result.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "ResultService.ListResults")
	defer span.End()

	items, err := s.resultRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	return items, nil
}

func (s *ResultService) ListBySport(ctx context.Context, sportID int64) ([]result.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "ResultService.ListBySport")
	defer span.End()

	if sportID <= 0 {
		return nil, fmt.Errorf("%w: sport id is required", ErrInvalidInput)
	}
	_, exists, err := s.sportRepo.GetByID(ctx, sportID)
	if err != nil {
		return nil, fmt.Errorf("get sport by id: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: sport=%d", ErrNotFound, sportID)
	}

	items, err := s.resultRepo.ListBySport(ctx, sportID)
	if err != nil {
		return nil, fmt.Errorf("list results by sport: %w", err)
	}

	return items, nil
}

// RecordResult stores the points a team scored in a sport. Recording
// again for the same pair overwrites the previous points and keeps the
// original row, so retries and corrections are safe.
func (s *ResultService) RecordResult(ctx context.Context, item result.Result) (result.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "ResultService.RecordResult")
	defer span.End()

	item = item.Normalize()
	if err := item.Validate(); err != nil {
		return result.Result{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, item.TeamID)
	if err != nil {
		return result.Result{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return result.Result{}, fmt.Errorf("%w: team=%d", ErrNotFound, item.TeamID)
	}

	_, exists, err = s.sportRepo.GetByID(ctx, item.SportID)
	if err != nil {
		return result.Result{}, fmt.Errorf("get sport by id: %w", err)
	}
	if !exists {
		return result.Result{}, fmt.Errorf("%w: sport=%d", ErrNotFound, item.SportID)
	}

	stored, err := s.resultRepo.Upsert(ctx, item)
	if err != nil {
		return result.Result{}, fmt.Errorf("upsert result: %w", err)
	}
	s.rankings.Delete(ctx, rankingCacheKey)

	return stored, nil
}

func (s *ResultService) DeleteResult(ctx context.Context, resultID int64) error {
	ctx, span := startUsecaseSpan(ctx, "ResultService.DeleteResult")
	defer span.End()

	if resultID <= 0 {
		return fmt.Errorf("%w: result id is required", ErrInvalidInput)
	}

	existed, err := s.resultRepo.Delete(ctx, resultID)
	if err != nil {
		return fmt.Errorf("delete result: %w", err)
	}
	if !existed {
		return fmt.Errorf("%w: result=%d", ErrNotFound, resultID)
	}
	s.rankings.Delete(ctx, rankingCacheKey)

	return nil
}
