package ai

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"festeasy/models"

	"github.com/go-redis/redis/v8"
)

const planKeyPrefix = "plan:pending:"

// PlanStore keeps the last generated plan per session until it is confirmed
// or expires.
type PlanStore interface {
	Get(ctx context.Context, sessionKey string) (*models.ReconciledPlan, error)
	Set(ctx context.Context, sessionKey string, plan *models.ReconciledPlan) error
	Clear(ctx context.Context, sessionKey string) error
}

type RedisPlanStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPlanStore(client *redis.Client, ttl time.Duration) *RedisPlanStore {
	return &RedisPlanStore{client: client, ttl: ttl}
}

// Get returns ErrNoPendingPlan when nothing is stored for sessionKey.
func (s *RedisPlanStore) Get(ctx context.Context, sessionKey string) (*models.ReconciledPlan, error) {
	data, err := s.client.Get(ctx, planKeyPrefix+sessionKey).Result()
	if err == redis.Nil {
		return nil, ErrNoPendingPlan
	}
	if err != nil {
		return nil, err
	}
	var plan models.ReconciledPlan
	if err := json.Unmarshal([]byte(data), &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *RedisPlanStore) Set(ctx context.Context, sessionKey string, plan *models.ReconciledPlan) error {
	b, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, planKeyPrefix+sessionKey, b, s.ttl).Err()
}

func (s *RedisPlanStore) Clear(ctx context.Context, sessionKey string) error {
	return s.client.Del(ctx, planKeyPrefix+sessionKey).Err()
}

type memoryEntry struct {
	plan      models.ReconciledPlan
	expiresAt time.Time
}

// MemoryPlanStore is the default PlanStore; plans vanish on restart.
type MemoryPlanStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

func NewMemoryPlanStore(ttl time.Duration) *MemoryPlanStore {
	return &MemoryPlanStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (s *MemoryPlanStore) Get(_ context.Context, sessionKey string) (*models.ReconciledPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sessionKey]
	if !ok {
		return nil, ErrNoPendingPlan
	}
	if s.ttl > 0 && !s.now().Before(e.expiresAt) {
		delete(s.entries, sessionKey)
		return nil, ErrNoPendingPlan
	}
	plan := e.plan
	return &plan, nil
}

func (s *MemoryPlanStore) Set(_ context.Context, sessionKey string, plan *models.ReconciledPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sessionKey] = memoryEntry{plan: *plan, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryPlanStore) Clear(_ context.Context, sessionKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionKey)
	return nil
}
