package vitals

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/hearthero/internal/profile"
)

type metricsRepo interface {
	Latest(ctx context.Context, clientID string) (*Metric, error)
	Insert(ctx context.Context, m Metric) (*Metric, error)
	Update(ctx context.Context, m *Metric) error
}

type profileRepo interface {
	Get(ctx context.Context, clientID string) (*profile.Profile, error)
	Ensure(ctx context.Context, clientID string) (*profile.Profile, error)
}

// Service implements the read-latest-or-create upsert for health metrics.
// Every update targets the single most recent record of the client: the
// addressed field is replaced, all others are carried over, and the record
// timestamp is refreshed. Updates for the same client are serialized with a
// per-client lock, so the read-modify-write sequence cannot interleave.
type Service struct {
	repo     metricsRepo
	profiles profileRepo

	locksMutex  sync.Mutex
	clientLocks map[string]*sync.Mutex

	// injectable for tests
	NowFunc func() time.Time
}

func NewService(repo metricsRepo, profiles profileRepo) *Service {
	return &Service{
		repo:        repo,
		profiles:    profiles,
		clientLocks: make(map[string]*sync.Mutex),
		NowFunc:     time.Now,
	}
}

func (s *Service) UpdateSteps(ctx context.Context, clientID string, steps int) (*Metric, error) {
	if steps < 0 {
		return nil, fmt.Errorf("%w: steps must be non-negative, got %d", ErrInvalidInput, steps)
	}
	return s.update(ctx, clientID, func(m *Metric) {
		m.Steps = steps
	})
}

func (s *Service) UpdateHeartRate(ctx context.Context, clientID string, heartRate int) (*Metric, error) {
	if heartRate < MinHeartRate || heartRate > MaxHeartRate {
		return nil, fmt.Errorf(
			"%w: heart rate must be in [%d, %d], got %d",
			ErrInvalidInput, MinHeartRate, MaxHeartRate, heartRate,
		)
	}
	return s.update(ctx, clientID, func(m *Metric) {
		m.HeartRate = heartRate
	})
}

func (s *Service) UpdateBloodPressure(ctx context.Context, clientID string, systolic, diastolic int) (*Metric, error) {
	if systolic < MinSystolicBP || systolic > MaxSystolicBP {
		return nil, fmt.Errorf(
			"%w: systolic must be in [%d, %d], got %d",
			ErrInvalidInput, MinSystolicBP, MaxSystolicBP, systolic,
		)
	}
	if diastolic < MinDiastolicBP || diastolic > MaxDiastolicBP {
		return nil, fmt.Errorf(
			"%w: diastolic must be in [%d, %d], got %d",
			ErrInvalidInput, MinDiastolicBP, MaxDiastolicBP, diastolic,
		)
	}
	if diastolic >= systolic {
		return nil, fmt.Errorf(
			"%w: diastolic (%d) must be lower than systolic (%d)",
			ErrInvalidInput, diastolic, systolic,
		)
	}
	return s.update(ctx, clientID, func(m *Metric) {
		m.SystolicBP = systolic
		m.DiastolicBP = diastolic
	})
}

// Today returns the current metric record of the client, materializing a
// default one when the client already has a profile but no metrics yet.
func (s *Service) Today(ctx context.Context, clientID string) (*Metric, error) {
	s.lockClient(clientID)
	defer s.unlockClient(clientID)

	m, err := s.repo.Latest(ctx, clientID)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, ErrMetricNotFound) {
		return nil, fmt.Errorf("latest metric: %w", err)
	}

	defaultMetric := Default(clientID)
	defaultMetric.Date = s.NowFunc()

	if _, err := s.profiles.Get(ctx, clientID); err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			// no profile yet, nothing to attach the record to
			return &defaultMetric, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	inserted, err := s.repo.Insert(ctx, defaultMetric)
	if err != nil {
		return nil, fmt.Errorf("insert default metric: %w", err)
	}
	return inserted, nil
}

func (s *Service) update(ctx context.Context, clientID string, mutate func(m *Metric)) (*Metric, error) {
	s.lockClient(clientID)
	defer s.unlockClient(clientID)

	// a stable owner for the metric record, created with defaults if needed
	if _, err := s.profiles.Ensure(ctx, clientID); err != nil {
		return nil, fmt.Errorf("ensure profile: %w", err)
	}

	latest, err := s.repo.Latest(ctx, clientID)
	switch {
	case err == nil:
		mutate(latest)
		latest.Date = s.NowFunc()
		if err := s.repo.Update(ctx, latest); err != nil {
			return nil, fmt.Errorf("update metric: %w", err)
		}
		return latest, nil
	case errors.Is(err, ErrMetricNotFound):
		newMetric := Default(clientID)
		mutate(&newMetric)
		newMetric.Date = s.NowFunc()
		inserted, err := s.repo.Insert(ctx, newMetric)
		if err != nil {
			return nil, fmt.Errorf("insert metric: %w", err)
		}
		return inserted, nil
	default:
		return nil, fmt.Errorf("latest metric: %w", err)
	}
}

func (s *Service) lockClient(clientID string) {
	s.locksMutex.Lock()
	lock, ok := s.clientLocks[clientID]
	if !ok {
		lock = &sync.Mutex{}
		s.clientLocks[clientID] = lock
	}
	s.locksMutex.Unlock()
	lock.Lock()
}

func (s *Service) unlockClient(clientID string) {
	s.locksMutex.Lock()
	lock := s.clientLocks[clientID]
	s.locksMutex.Unlock()
	lock.Unlock()
}
