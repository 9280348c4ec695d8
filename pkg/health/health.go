package health

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Status represents the health status of a component
type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// Check represents a single health check
type Check struct {
	Name      string            `json:"name"`
	Status    Status            `json:"status"`
	Message   string            `json:"message,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
	Duration  time.Duration     `json:"duration"`
	Timestamp time.Time         `json:"timestamp"`
}

// HealthReport represents the overall health of the application
type HealthReport struct {
	Status    Status           `json:"status"`
	Version   string           `json:"version"`
	Timestamp time.Time        `json:"timestamp"`
	Checks    map[string]Check `json:"checks"`
	Uptime    time.Duration    `json:"uptime"`
}

// Checker defines the interface for health checks
type Checker interface {
	Check(ctx context.Context) Check
}

// RedisChecker checks Redis connectivity
type RedisChecker struct {
	Client *redis.Client
	Name   string
}

func (c *RedisChecker) Check(ctx context.Context) Check {
	start := time.Now()
	check := Check{
		Name:      c.Name,
		Timestamp: start,
		Details:   make(map[string]string),
	}

	pong, err := c.Client.Ping(ctx).Result()
	duration := time.Since(start)
	check.Duration = duration

	if err != nil {
		check.Status = StatusDown
		check.Message = fmt.Sprintf("Redis connection failed: %v", err)
		check.Details["error"] = err.Error()
	} else {
		check.Status = StatusUp
		check.Message = "Redis connection successful"
		check.Details["response_time"] = duration.String()
		check.Details["ping_response"] = pong
	}

	return check
}

// DatasetChecker reports whether a lookup table was loaded with at least
// one row.
type DatasetChecker struct {
	Name   string
	Source string
	Rows   func() int
}

func (c *DatasetChecker) Check(ctx context.Context) Check {
	check := Check{
		Name:      c.Name,
		Timestamp: time.Now(),
		Details:   map[string]string{"source": c.Source},
	}

	rows := 0
	if c.Rows != nil {
		rows = c.Rows()
	}
	check.Details["rows"] = fmt.Sprintf("%d", rows)

	if rows == 0 {
		check.Status = StatusDown
		check.Message = "Dataset is empty"
	} else {
		check.Status = StatusUp
		check.Message = "Dataset loaded"
	}
	return check
}

// HealthChecker orchestrates multiple health checks
type HealthChecker struct {
	checkers  []Checker
	readiness []Checker
	version   string
	startTime time.Time
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(version string) *HealthChecker {
	return &HealthChecker{
		version:   version,
		startTime: time.Now(),
	}
}

// AddChecker adds a check to the health report only.
func (h *HealthChecker) AddChecker(checker Checker) {
	h.checkers = append(h.checkers, checker)
}

// AddReadinessChecker adds a check that gates readiness as well as health.
func (h *HealthChecker) AddReadinessChecker(checker Checker) {
	h.checkers = append(h.checkers, checker)
	h.readiness = append(h.readiness, checker)
}

// CheckHealth performs all health checks
func (h *HealthChecker) CheckHealth(ctx context.Context) HealthReport {
	return h.run(ctx, h.checkers)
}

// CheckReadiness runs only the checks that gate serving traffic.
func (h *HealthChecker) CheckReadiness(ctx context.Context) HealthReport {
	return h.run(ctx, h.readiness)
}

// CheckLiveness performs liveness checks (basic application health)
func (h *HealthChecker) CheckLiveness(ctx context.Context) HealthReport {
	now := time.Now()
	return HealthReport{
		Status:    StatusUp,
		Version:   h.version,
		Timestamp: now,
		Checks: map[string]Check{
			"application": {
				Name:      "application",
				Status:    StatusUp,
				Message:   "Application is running",
				Timestamp: now,
			},
		},
		Uptime: time.Since(h.startTime),
	}
}

func (h *HealthChecker) run(ctx context.Context, checkers []Checker) HealthReport {
	checks := make(map[string]Check, len(checkers))
	overallStatus := StatusUp

	for _, checker := range checkers {
		check := checker.Check(ctx)
		checks[check.Name] = check
		if check.Status == StatusDown {
			overallStatus = StatusDown
		}
	}

	return HealthReport{
		Status:    overallStatus,
		Version:   h.version,
		Timestamp: time.Now(),
		Checks:    checks,
		Uptime:    time.Since(h.startTime),
	}
}
