package pregnancy

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dbabeam/Pregnancy-Mobile-App-sub000/pkg/pagination"
)

type contactRepoMemory struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*EmergencyContact
	order   []uuid.UUID // creation order across all profiles
	now     func() time.Time
}

func NewContactRepoMemory() ContactRepository {
	return &contactRepoMemory{
		records: make(map[uuid.UUID]*EmergencyContact),
		now:     time.Now,
	}
}

func (r *contactRepoMemory) Create(_ context.Context, c *EmergencyContact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = uuid.New()
	c.CreatedAt = r.now().UTC()
	c.UpdatedAt = c.CreatedAt
	r.records[c.ID] = c.clone()
	r.order = append(r.order, c.ID)
	return nil
}

// lookup must be called with the lock held.
func (r *contactRepoMemory) lookup(profileID, id uuid.UUID) (*EmergencyContact, bool) {
	c, ok := r.records[id]
	if !ok || c.ProfileID != profileID {
		return nil, false
	}
	return c, true
}

func (r *contactRepoMemory) GetByID(_ context.Context, profileID, id uuid.UUID) (*EmergencyContact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.lookup(profileID, id)
	if !ok {
		return nil, ErrContactNotFound
	}
	return c.clone(), nil
}

func (r *contactRepoMemory) Update(_ context.Context, c *EmergencyContact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.lookup(c.ProfileID, c.ID)
	if !ok {
		return ErrContactNotFound
	}
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = r.now().UTC()
	r.records[c.ID] = c.clone()
	return nil
}

func (r *contactRepoMemory) Delete(_ context.Context, profileID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lookup(profileID, id); !ok {
		return ErrContactNotFound
	}
	r.remove(id)
	return nil
}

func (r *contactRepoMemory) remove(id uuid.UUID) {
	delete(r.records, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}

// ListByProfile returns newest first, like the PostgreSQL repository.
func (r *contactRepoMemory) ListByProfile(_ context.Context, profileID uuid.UUID, limit, offset int) ([]*EmergencyContact, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var owned []*EmergencyContact
	for i := len(r.order) - 1; i >= 0; i-- {
		if c := r.records[r.order[i]]; c.ProfileID == profileID {
			owned = append(owned, c)
		}
	}
	total := len(owned)
	start, end := pagination.Params{Limit: limit, Offset: offset}.Bounds(total)
	items := make([]*EmergencyContact, 0, end-start)
	for _, c := range owned[start:end] {
		items = append(items, c.clone())
	}
	return items, total, nil
}

func (r *contactRepoMemory) DeleteByProfile(_ context.Context, profileID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.order[:0]
	for _, id := range r.order {
		if r.records[id].ProfileID == profileID {
			delete(r.records, id)
			continue
		}
		kept = append(kept, id)
	}
	r.order = kept
	return nil
}
