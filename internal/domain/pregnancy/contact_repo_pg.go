package pregnancy

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contactRepoPG struct{ db queryable }

func NewContactRepoPG(pool *pgxpool.Pool) ContactRepository {
	return &contactRepoPG{db: pool}
}

const contactCols = `id, profile_id, contact_name, contact_phone, contact_relationship, created_at, updated_at`

func scanContact(row pgx.Row) (*EmergencyContact, error) {
	var c EmergencyContact
	err := row.Scan(&c.ID, &c.ProfileID, &c.Name, &c.Phone, &c.Relationship, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrContactNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contactRepoPG) Create(ctx context.Context, c *EmergencyContact) error {
	c.ID = uuid.New()
	return r.db.QueryRow(ctx, `
		INSERT INTO emergency_contact (id, profile_id, contact_name, contact_phone, contact_relationship)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at, updated_at`,
		c.ID, c.ProfileID, c.Name, c.Phone, c.Relationship,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

func (r *contactRepoPG) GetByID(ctx context.Context, profileID, id uuid.UUID) (*EmergencyContact, error) {
	return scanContact(r.db.QueryRow(ctx, `SELECT `+contactCols+` FROM emergency_contact
		WHERE id = $1 AND profile_id = $2`, id, profileID))
}

func (r *contactRepoPG) Update(ctx context.Context, c *EmergencyContact) error {
	err := r.db.QueryRow(ctx, `
		UPDATE emergency_contact SET contact_name=$3, contact_phone=$4, contact_relationship=$5,
			updated_at=NOW()
		WHERE id = $1 AND profile_id = $2
		RETURNING created_at, updated_at`,
		c.ID, c.ProfileID, c.Name, c.Phone, c.Relationship,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrContactNotFound
	}
	return err
}

func (r *contactRepoPG) Delete(ctx context.Context, profileID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM emergency_contact WHERE id = $1 AND profile_id = $2`, id, profileID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrContactNotFound
	}
	return nil
}

func (r *contactRepoPG) ListByProfile(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*EmergencyContact, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM emergency_contact WHERE profile_id = $1`,
		profileID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.db.Query(ctx, `SELECT `+contactCols+` FROM emergency_contact
		WHERE profile_id = $1 ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`, profileID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := []*EmergencyContact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// DeleteByProfile is normally a no-op: the foreign key cascades.
func (r *contactRepoPG) DeleteByProfile(ctx context.Context, profileID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM emergency_contact WHERE profile_id = $1`, profileID)
	return err
}
