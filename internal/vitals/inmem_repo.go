package vitals

import (
	"context"
	"sync"
)

// InMemRepo keeps the latest metric record per client in process memory.
type InMemRepo struct {
	mutex   sync.Mutex
	metrics map[string]Metric
	nextID  int
}

func NewInMemRepo() *InMemRepo {
	return &InMemRepo{
		metrics: make(map[string]Metric),
		nextID:  1,
	}
}

func (r *InMemRepo) Latest(_ context.Context, clientID string) (*Metric, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	m, ok := r.metrics[clientID]
	if !ok {
		return nil, ErrMetricNotFound
	}
	return &m, nil
}

func (r *InMemRepo) Insert(_ context.Context, m Metric) (*Metric, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	m.ID = r.nextID
	r.nextID++
	r.metrics[m.ClientID] = m
	return &m, nil
}

func (r *InMemRepo) Update(_ context.Context, m *Metric) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	existing, ok := r.metrics[m.ClientID]
	if !ok || existing.ID != m.ID {
		return ErrMetricNotFound
	}
	r.metrics[m.ClientID] = *m
	return nil
}
