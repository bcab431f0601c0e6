package team

import "context"

// Repository describes team persistence needs from use cases.
// Delete removes the team together with its participants, participations
// and results as one atomic unit; it reports whether the team existed.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	Create(ctx context.Context, item Team) (Team, error)
	Update(ctx context.Context, item Team) (Team, bool, error)
	Delete(ctx context.Context, teamID int64) (bool, error)
}
