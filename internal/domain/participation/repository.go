package participation

import "context"

// Repository describes participation persistence needs from use cases.
// Create fails with ErrAlreadyRegistered when the (participant, sport)
// pair already exists; check and insert execute atomically. Delete is
// unconditional and reports whether the record existed.
type Repository interface {
	List(ctx context.Context) ([]Participation, error)
	ListBySport(ctx context.Context, sportID int64) ([]Participation, error)
	Create(ctx context.Context, item Participation) (Participation, error)
	Delete(ctx context.Context, participationID int64) (bool, error)
}
