package participant

import "context"

// Repository describes participant persistence needs from use cases.
// Create and Update fail with ErrNationalIDTaken when the normalized
// national id is already held by another participant; the uniqueness
// check and the write execute as one atomic unit against the store.
// Delete removes the participant together with its participations.
type Repository interface {
	List(ctx context.Context) ([]Participant, error)
	ListByTeam(ctx context.Context, teamID int64) ([]Participant, error)
	GetByID(ctx context.Context, participantID int64) (Participant, bool, error)
	Create(ctx context.Context, item Participant) (Participant, error)
	Update(ctx context.Context, item Participant) (Participant, bool, error)
	Delete(ctx context.Context, participantID int64) (bool, error)
}
