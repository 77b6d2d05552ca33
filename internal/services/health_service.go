package services

import (
	"context"
	"time"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthStatus service health report
type HealthStatus struct {
	Status    string `json:"status"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
	Database  string `json:"database"`
}

// HealthService reports liveness and store reachability
type HealthService interface {
	GetStatus(ctx context.Context) (*HealthStatus, bool)
}

type healthService struct {
	db        Pinger
	version   string
	startTime time.Time
}

// NewHealthService creates a HealthService
func NewHealthService(db Pinger, version string) HealthService {
	return &healthService{
		db:        db,
		version:   version,
		startTime: time.Now(),
	}
}

// GetStatus pings the store; the bool is false when it is unreachable.
func (s *healthService) GetStatus(ctx context.Context) (*HealthStatus, bool) {
	status := &HealthStatus{
		Status:    "ok",
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   s.version,
		Database:  "ok",
	}
	if err := s.db.PingContext(ctx); err != nil {
		status.Status = "degraded"
		status.Database = err.Error()
		return status, false
	}
	return status, true
}
