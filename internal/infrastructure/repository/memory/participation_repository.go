package memory

import (
	"context"
	"sort"

	"github.com/intramural/tournament-api/internal/domain/participation"
)

type ParticipationRepository struct {
	store *Store
}

func NewParticipationRepository(store *Store) *ParticipationRepository {
	return &ParticipationRepository{store: store}
}

func (r *ParticipationRepository) List(_ context.Context) ([]participation.Participation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]participation.Participation, 0, len(r.store.participations))
	for _, item := range r.store.participations {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *ParticipationRepository) ListBySport(_ context.Context, sportID int64) ([]participation.Participation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]participation.Participation, 0)
	for _, item := range r.store.participations {
		if item.SportID == sportID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *ParticipationRepository) Create(_ context.Context, item participation.Participation) (participation.Participation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.participations {
		if existing.ParticipantID == item.ParticipantID && existing.SportID == item.SportID {
			return participation.Participation{}, participation.ErrAlreadyRegistered
		}
	}

	r.store.nextParticipationID++
	item.ID = r.store.nextParticipationID
	r.store.participations[item.ID] = item

	return item, nil
}

func (r *ParticipationRepository) Delete(_ context.Context, participationID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.participations[participationID]; !ok {
		return false, nil
	}
	delete(r.store.participations, participationID)

	return true, nil
}
