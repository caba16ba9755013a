package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthStatus reports reachability of the backing stores: Mongo (plans,
// bookings, agents, users) and the two Redis databases serving the content
// feed cache and the auth session cache.
type HealthStatus struct {
	Status       string    `json:"status"` // "ok" or "degraded"
	Mongo        bool      `json:"mongo"`
	FeedCache    bool      `json:"feedCache"`
	AuthSessions bool      `json:"authSessions"`
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// Healthy reports whether every dependency was reachable at the last check.
func (h HealthStatus) Healthy() bool {
	return h.Mongo && h.FeedCache && h.AuthSessions
}

// StartHealthMonitor probes the stores once immediately and then every
// minute, keeping an in-memory snapshot for the health endpoint and logging
// every transition.
func StartHealthMonitor(feedCache, authSessions *redis.Client, mongoClient *mongo.Client) {
	probe := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		next := HealthStatus{
			Mongo:        mongoClient.Ping(ctx, nil) == nil,
			FeedCache:    feedCache.Ping(ctx).Err() == nil,
			AuthSessions: authSessions.Ping(ctx).Err() == nil,
			CheckedAt:    time.Now(),
		}
		next.Status = "ok"
		if !next.Healthy() {
			next.Status = "degraded"
		}

		healthMu.Lock()
		prev := currentHealth
		currentHealth = next
		healthMu.Unlock()

		if prev.CheckedAt.IsZero() {
			return
		}
		logHealthTransition("mongodb", prev.Mongo, next.Mongo)
		logHealthTransition("feed cache", prev.FeedCache, next.FeedCache)
		logHealthTransition("auth sessions", prev.AuthSessions, next.AuthSessions)
	}

	go func() {
		probe()
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			probe()
		}
	}()
}

func logHealthTransition(name string, was, is bool) {
	switch {
	case was && !is:
		zap.L().Warn("dependency became unreachable", zap.String("dependency", name))
	case !was && is:
		zap.L().Info("dependency recovered", zap.String("dependency", name))
	}
}
