package pregnancy

import (
	"context"

	"github.com/google/uuid"
)

// ProfileRepository persists pregnancy profiles. GetByID, Update and Delete
// return ErrProfileNotFound for an unknown id.
type ProfileRepository interface {
	Create(ctx context.Context, p *Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Profile, int, error)
}
