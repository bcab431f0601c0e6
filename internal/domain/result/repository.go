package result

import "context"

// Repository describes result persistence needs from use cases.
// Upsert creates the (team, sport) record or overwrites its points,
// keeping the original surrogate id, as one atomic operation.
type Repository interface {
	List(ctx context.Context) ([]Result, error)
	ListBySport(ctx context.Context, sportID int64) ([]Result, error)
	Upsert(ctx context.Context, item Result) (Result, error)
	Delete(ctx context.Context, resultID int64) (bool, error)
}
