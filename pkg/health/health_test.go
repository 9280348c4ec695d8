package health

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisChecker(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	c := &RedisChecker{Client: rdb, Name: "redis"}
	check := c.Check(context.Background())
	assert.Equal(t, StatusUp, check.Status)
	assert.Equal(t, "PONG", check.Details["ping_response"])

	mr.Close()
	check = c.Check(context.Background())
	assert.Equal(t, StatusDown, check.Status)
	assert.NotEmpty(t, check.Details["error"])
}

func TestDatasetChecker(t *testing.T) {
	tests := []struct {
		name string
		rows func() int
		want Status
	}{
		{"loaded", func() int { return 12 }, StatusUp},
		{"empty", func() int { return 0 }, StatusDown},
		{"no counter", nil, StatusDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &DatasetChecker{Name: "fares", Source: "chart.csv", Rows: tt.rows}
			check := c.Check(context.Background())
			assert.Equal(t, tt.want, check.Status)
			assert.Equal(t, "chart.csv", check.Details["source"])
		})
	}
}

func TestHealthChecker(t *testing.T) {
	h := NewHealthChecker("v1.0.0")
	h.AddReadinessChecker(&DatasetChecker{Name: "airports", Rows: func() int { return 3 }})
	h.AddChecker(&DatasetChecker{Name: "optional", Rows: func() int { return 0 }})

	health := h.CheckHealth(context.Background())
	assert.Equal(t, StatusDown, health.Status)
	assert.Len(t, health.Checks, 2)
	assert.Equal(t, "v1.0.0", health.Version)

	ready := h.CheckReadiness(context.Background())
	assert.Equal(t, StatusUp, ready.Status)
	require.Len(t, ready.Checks, 1)
	assert.Contains(t, ready.Checks, "airports")

	live := h.CheckLiveness(context.Background())
	assert.Equal(t, StatusUp, live.Status)
	assert.Contains(t, live.Checks, "application")
}
