package memory

import (
	"context"
	"sort"

	"github.com/intramural/tournament-api/internal/domain/team"
)

type TeamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]team.Team, 0, len(r.store.teams))
	for _, item := range r.store.teams {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.teams[teamID]
	return item, ok, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) (team.Team, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextTeamID++
	item.ID = r.store.nextTeamID
	r.store.teams[item.ID] = item

	return item, nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) (team.Team, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.teams[item.ID]; !ok {
		return team.Team{}, false, nil
	}
	r.store.teams[item.ID] = item

	return item, true, nil
}

func (r *TeamRepository) Delete(_ context.Context, teamID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.teams[teamID]; !ok {
		return false, nil
	}

	delete(r.store.teams, teamID)
	for id, item := range r.store.participants {
		if item.TeamID == teamID {
			delete(r.store.participants, id)
		}
	}
	for id, item := range r.store.participations {
		if item.TeamID == teamID {
			delete(r.store.participations, id)
		}
	}
	for id, item := range r.store.results {
		if item.TeamID == teamID {
			delete(r.store.results, id)
		}
	}

	return true, nil
}
