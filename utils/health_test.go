package utils

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthMonitorWithoutRedis(t *testing.T) {
	m := NewHealthMonitor(false, "memory", nil)

	st := m.Status()
	assert.False(t, st.Planner)
	assert.Equal(t, "memory", st.PlanStore)
	assert.Nil(t, st.Redis)
	assert.False(t, st.CheckedAt.IsZero())

	again := m.Check(context.Background())
	assert.False(t, again.CheckedAt.Before(st.CheckedAt))
}

func TestHealthMonitorPingsRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	m := NewHealthMonitor(true, "redis", client)
	st := m.Status()
	require.NotNil(t, st.Redis)
	assert.True(t, *st.Redis)
	assert.True(t, st.Planner)

	mr.Close()
	st = m.Check(context.Background())
	require.NotNil(t, st.Redis)
	assert.False(t, *st.Redis)
}
