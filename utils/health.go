package utils

import (
	"context"
	"sync"
	"time"
)

// Pinger is anything the health monitor can probe.
type Pinger func(ctx context.Context) error

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Services  map[string]bool `json:"services"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// Healthy reports whether every probed service answered.
func (h HealthStatus) Healthy() bool {
	for _, ok := range h.Services {
		if !ok {
			return false
		}
	}
	return true
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// CheckHealth probes every service once and stores the snapshot.
func CheckHealth(ctx context.Context, probes map[string]Pinger) HealthStatus {
	status := HealthStatus{Services: make(map[string]bool, len(probes)), CheckedAt: time.Now()}
	for name, ping := range probes {
		pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		status.Services[name] = ping(pctx) == nil
		cancel()
	}

	healthMu.Lock()
	currentHealth = status
	healthMu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks until ctx is done.
func StartHealthMonitor(ctx context.Context, interval time.Duration, probes map[string]Pinger) {
	CheckHealth(ctx, probes)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckHealth(ctx, probes)
			}
		}
	}()
}
