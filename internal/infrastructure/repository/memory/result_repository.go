package memory

import (
	"context"
	"sort"

	"github.com/intramural/tournament-api/internal/domain/result"
)

type ResultRepository struct {
	store *Store
}

func NewResultRepository(store *Store) *ResultRepository {
	return &ResultRepository{store: store}
}

func (r *ResultRepository) List(_ context.Context) ([]result.Result, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]result.Result, 0, len(r.store.results))
	for _, item := range r.store.results {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *ResultRepository) ListBySport(_ context.Context, sportID int64) ([]result.Result, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]result.Result, 0)
	for _, item := range r.store.results {
		if item.SportID == sportID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *ResultRepository) Upsert(_ context.Context, item result.Result) (result.Result, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, existing := range r.store.results {
		if existing.TeamID == item.TeamID && existing.SportID == item.SportID {
			existing.Points = item.Points
			r.store.results[id] = existing
			return existing, nil
		}
	}

	r.store.nextResultID++
	item.ID = r.store.nextResultID
	r.store.results[item.ID] = item

	return item, nil
}

func (r *ResultRepository) Delete(_ context.Context, resultID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.results[resultID]; !ok {
		return false, nil
	}
	delete(r.store.results, resultID)

	return true, nil
}
