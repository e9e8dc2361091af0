package pregnancy

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EmergencyContact maps to the emergency_contact table. Contacts belong to a
// profile and are removed with it.
type EmergencyContact struct {
	ID           uuid.UUID `db:"id" json:"id" yaml:"id"`
	ProfileID    uuid.UUID `db:"profile_id" json:"profile_id" yaml:"profile_id"`
	Name         string    `db:"contact_name" json:"contact_name" yaml:"contact_name"`
	Phone        string    `db:"contact_phone" json:"contact_phone" yaml:"contact_phone"`
	Relationship string    `db:"contact_relationship" json:"contact_relationship" yaml:"contact_relationship"`
	CreatedAt    time.Time `db:"created_at" json:"created_at" yaml:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at" yaml:"updated_at"`
}

func (c *EmergencyContact) clone() *EmergencyContact {
	cp := *c
	return &cp
}

// ContactRepository persists emergency contacts. Every lookup is scoped to a
// profile: a contact id under another profile is ErrContactNotFound.
type ContactRepository interface {
	Create(ctx context.Context, c *EmergencyContact) error
	GetByID(ctx context.Context, profileID, id uuid.UUID) (*EmergencyContact, error)
	Update(ctx context.Context, c *EmergencyContact) error
	Delete(ctx context.Context, profileID, id uuid.UUID) error
	ListByProfile(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*EmergencyContact, int, error)
	DeleteByProfile(ctx context.Context, profileID uuid.UUID) error
}
