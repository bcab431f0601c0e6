package memory

import (
	"context"
	"sort"

	"github.com/intramural/tournament-api/internal/domain/sport"
)

type SportRepository struct {
	store *Store
}

func NewSportRepository(store *Store) *SportRepository {
	return &SportRepository{store: store}
}

func (r *SportRepository) List(_ context.Context) ([]sport.Sport, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]sport.Sport, 0, len(r.store.sports))
	for _, item := range r.store.sports {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *SportRepository) GetByID(_ context.Context, sportID int64) (sport.Sport, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.sports[sportID]
	return item, ok, nil
}

func (r *SportRepository) Create(_ context.Context, item sport.Sport) (sport.Sport, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.scheduleTakenLocked(item, 0) {
		return sport.Sport{}, sport.ErrScheduleTaken
	}

	r.store.nextSportID++
	item.ID = r.store.nextSportID
	r.store.sports[item.ID] = item

	return item, nil
}

func (r *SportRepository) Update(_ context.Context, item sport.Sport) (sport.Sport, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.sports[item.ID]; !ok {
		return sport.Sport{}, false, nil
	}
	if r.scheduleTakenLocked(item, item.ID) {
		return sport.Sport{}, true, sport.ErrScheduleTaken
	}
	r.store.sports[item.ID] = item

	return item, true, nil
}

func (r *SportRepository) Delete(_ context.Context, sportID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.sports[sportID]; !ok {
		return false, nil
	}

	delete(r.store.sports, sportID)
	for id, item := range r.store.participations {
		if item.SportID == sportID {
			delete(r.store.participations, id)
		}
	}
	for id, item := range r.store.results {
		if item.SportID == sportID {
			delete(r.store.results, id)
		}
	}

	return true, nil
}

// scheduleTakenLocked checks the (name, date, time) invariant,
// case-sensitive; callers must hold the store write lock.
func (r *SportRepository) scheduleTakenLocked(candidate sport.Sport, excludeID int64) bool {
	for _, item := range r.store.sports {
		if item.ID == excludeID {
			continue
		}
		if item.Name == candidate.Name && item.Date == candidate.Date && item.Time == candidate.Time {
			return true
		}
	}
	return false
}
