package pregnancy

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dbabeam/Pregnancy-Mobile-App-sub000/pkg/pagination"
)

type profileRepoMemory struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Profile
	order   []uuid.UUID // creation order
	now     func() time.Time
}

// NewProfileRepoMemory returns a process-local repository. Data is lost on
// restart.
func NewProfileRepoMemory() ProfileRepository {
	return &profileRepoMemory{
		records: make(map[uuid.UUID]*Profile),
		now:     time.Now,
	}
}

func (r *profileRepoMemory) Create(_ context.Context, p *Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = uuid.New()
	p.CreatedAt = r.now().UTC()
	p.UpdatedAt = p.CreatedAt
	r.records[p.ID] = p.clone()
	r.order = append(r.order, p.ID)
	return nil
}

func (r *profileRepoMemory) GetByID(_ context.Context, id uuid.UUID) (*Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.records[id]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return p.clone(), nil
}

func (r *profileRepoMemory) Update(_ context.Context, p *Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.records[p.ID]
	if !ok {
		return ErrProfileNotFound
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = r.now().UTC()
	r.records[p.ID] = p.clone()
	return nil
}

func (r *profileRepoMemory) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return ErrProfileNotFound
	}
	delete(r.records, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns newest first, like the PostgreSQL repository.
func (r *profileRepoMemory) List(_ context.Context, limit, offset int) ([]*Profile, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := len(r.order)
	start, end := pagination.Params{Limit: limit, Offset: offset}.Bounds(total)
	items := make([]*Profile, 0, end-start)
	for i := start; i < end; i++ {
		id := r.order[total-1-i]
		items = append(items, r.records[id].clone())
	}
	return items, total, nil
}
