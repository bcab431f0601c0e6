package sport

import "context"

// Repository describes sport persistence needs from use cases.
// Create and Update fail with ErrScheduleTaken when another sport holds
// the identical (name, date, time) triple. Delete removes the sport
// together with its participations and results atomically.
type Repository interface {
	List(ctx context.Context) ([]Sport, error)
	GetByID(ctx context.Context, sportID int64) (Sport, bool, error)
	Create(ctx context.Context, item Sport) (Sport, error)
	Update(ctx context.Context, item Sport) (Sport, bool, error)
	Delete(ctx context.Context, sportID int64) (bool, error)
}
