package memory

import (
	"context"
	"sort"

	"github.com/intramural/tournament-api/internal/domain/participant"
)

type ParticipantRepository struct {
	store *Store
}

func NewParticipantRepository(store *Store) *ParticipantRepository {
	return &ParticipantRepository{store: store}
}

func (r *ParticipantRepository) List(_ context.Context) ([]participant.Participant, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]participant.Participant, 0, len(r.store.participants))
	for _, item := range r.store.participants {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *ParticipantRepository) ListByTeam(_ context.Context, teamID int64) ([]participant.Participant, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]participant.Participant, 0)
	for _, item := range r.store.participants {
		if item.TeamID == teamID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *ParticipantRepository) GetByID(_ context.Context, participantID int64) (participant.Participant, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.participants[participantID]
	return item, ok, nil
}

func (r *ParticipantRepository) Create(_ context.Context, item participant.Participant) (participant.Participant, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.nationalIDTakenLocked(item.NationalID, 0) {
		return participant.Participant{}, participant.ErrNationalIDTaken
	}

	r.store.nextParticipantID++
	item.ID = r.store.nextParticipantID
	r.store.participants[item.ID] = item

	return item, nil
}

func (r *ParticipantRepository) Update(_ context.Context, item participant.Participant) (participant.Participant, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.participants[item.ID]; !ok {
		return participant.Participant{}, false, nil
	}
	if r.nationalIDTakenLocked(item.NationalID, item.ID) {
		return participant.Participant{}, true, participant.ErrNationalIDTaken
	}
	r.store.participants[item.ID] = item

	return item, true, nil
}

func (r *ParticipantRepository) Delete(_ context.Context, participantID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.participants[participantID]; !ok {
		return false, nil
	}

	delete(r.store.participants, participantID)
	for id, item := range r.store.participations {
		if item.ParticipantID == participantID {
			delete(r.store.participations, id)
		}
	}

	return true, nil
}

// nationalIDTakenLocked checks the global national-id invariant; callers
// must hold the store write lock so check and insert stay atomic.
func (r *ParticipantRepository) nationalIDTakenLocked(nationalID string, excludeID int64) bool {
	for _, item := range r.store.participants {
		if item.ID != excludeID && item.NationalID == nationalID {
			return true
		}
	}
	return false
}
