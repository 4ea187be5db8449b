package profile

import (
	"context"
	"sync"
	"time"
)

// InMemRepo keeps profiles in process memory. Used when the service runs
// without postgres, and as the repo double in tests.
type InMemRepo struct {
	mutex    sync.Mutex
	profiles map[string]Profile
	nextID   int
}

func NewInMemRepo() *InMemRepo {
	return &InMemRepo{
		profiles: make(map[string]Profile),
		nextID:   1,
	}
}

func (r *InMemRepo) Get(_ context.Context, clientID string) (*Profile, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	p, ok := r.profiles[clientID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return &p, nil
}

func (r *InMemRepo) Upsert(_ context.Context, p Profile) (*Profile, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	now := time.Now()
	if existing, ok := r.profiles[p.ClientID]; ok {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	} else {
		p.ID = r.nextID
		r.nextID++
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	r.profiles[p.ClientID] = p
	return &p, nil
}

func (r *InMemRepo) Ensure(ctx context.Context, clientID string) (*Profile, error) {
	if p, err := r.Get(ctx, clientID); err == nil {
		return p, nil
	}
	return r.Upsert(ctx, Default(clientID))
}
