package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/sourcegraph/conc/pool"

	"github.com/intramural/tournament-api/internal/domain/result"
	"github.com/intramural/tournament-api/internal/domain/team"
	"github.com/intramural/tournament-api/internal/platform/cache"
)

// rankingCacheKey is the single cache slot for the standings. Every
// write that can change the standings, result and team alike, deletes it.
const rankingCacheKey = "ranking:v1"

// RankingEntry is one row of the points standings. Teams without any
// recorded result still appear with zero points.
type RankingEntry struct {
	Team        team.Team
	TotalPoints int64
}

type RankingService struct {
	teamRepo   team.Repository
	resultRepo result.Repository
	rankings   *cache.Store
}

// NewRankingService builds the standings reader. rankings may be nil,
// which disables caching entirely.
func NewRankingService(teamRepo team.Repository, resultRepo result.Repository, rankings *cache.Store) *RankingService {
	return &RankingService{
		teamRepo:   teamRepo,
		resultRepo: resultRepo,
		rankings:   rankings,
	}
}

// Ranking folds every recorded result into per-team totals, ordered by
// points descending with team id as the stable tie break.
func (s *RankingService) Ranking(ctx context.Context) ([]RankingEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "RankingService.Ranking")
	defer span.End()

	if s.rankings == nil {
		return s.computeRanking(ctx)
	}

	value, err := s.rankings.GetOrLoad(ctx, rankingCacheKey, func(ctx context.Context) (any, error) {
		return s.computeRanking(ctx)
	})
	if err != nil {
		return nil, err
	}

	entries, ok := value.([]RankingEntry)
	if !ok {
		return s.computeRanking(ctx)
	}

	return entries, nil
}

func (s *RankingService) computeRanking(ctx context.Context) ([]RankingEntry, error) {
	var teams []team.Team
	var results []result.Result

	readers := pool.New().WithContext(ctx)
	readers.Go(func(ctx context.Context) error {
		items, err := s.teamRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		teams = items
		return nil
	})
	readers.Go(func(ctx context.Context) error {
		items, err := s.resultRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list results: %w", err)
		}
		results = items
		return nil
	})
	if err := readers.Wait(); err != nil {
		return nil, err
	}

	totals := make(map[int64]int64, len(teams))
	for _, item := range results {
		totals[item.TeamID] += item.Points
	}

	entries := make([]RankingEntry, 0, len(teams))
	for _, item := range teams {
		entries = append(entries, RankingEntry{
			Team:        item,
			TotalPoints: totals[item.ID],
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].Team.ID < entries[j].Team.ID
	})

	return entries, nil
}
