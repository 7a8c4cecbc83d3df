package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of the service's dependencies.
type HealthStatus struct {
	Planner   bool      `json:"planner"`
	PlanStore string    `json:"planStore"`
	Redis     *bool     `json:"redis,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthMonitor keeps the latest dependency snapshot in memory.
type HealthMonitor struct {
	mu      sync.RWMutex
	current HealthStatus

	plannerEnabled bool
	planStore      string
	redisClient    *redis.Client
}

func NewHealthMonitor(plannerEnabled bool, planStore string, redisClient *redis.Client) *HealthMonitor {
	m := &HealthMonitor{
		plannerEnabled: plannerEnabled,
		planStore:      planStore,
		redisClient:    redisClient,
	}
	m.Check(context.Background())
	return m
}

// Status returns the latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check refreshes the snapshot now.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Planner:   m.plannerEnabled,
		PlanStore: m.planStore,
		CheckedAt: time.Now(),
	}
	if m.redisClient != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		ok := m.redisClient.Ping(pingCtx).Err() == nil
		cancel()
		status.Redis = &ok
	}

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Start re-checks every interval until ctx is done.
func (m *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}
