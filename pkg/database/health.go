package database

import (
	"context"
	"fmt"
	"time"
)

// PoolStatus is a snapshot of database connectivity and connection pool
// pressure, taken for the health endpoint.
type PoolStatus struct {
	PingMillis int64 `json:"ping_ms"`
	Open       int   `json:"open"`
	InUse      int   `json:"in_use"`
	Idle       int   `json:"idle"`
	MaxOpen    int   `json:"max_open"`
	Waits      int64 `json:"waits"`
	WaitMillis int64 `json:"wait_ms"`
}

// Saturated reports whether the pool is at its ceiling with callers
// queueing for a connection. The database still answers, so this is a
// degraded signal rather than an unhealthy one.
func (p *PoolStatus) Saturated() bool {
	return p.MaxOpen > 0 && p.InUse >= p.MaxOpen && p.Waits > 0
}

func (p *PoolStatus) String() string {
	return fmt.Sprintf("ping=%dms in_use=%d/%d idle=%d waits=%d",
		p.PingMillis, p.InUse, p.MaxOpen, p.Idle, p.Waits)
}

// Health pings the database and snapshots the pool counters. On ping
// failure the counters gathered so far are returned alongside the error.
func (c *Client) Health(ctx context.Context) (*PoolStatus, error) {
	db := c.DB()

	start := time.Now()
	err := db.PingContext(ctx)

	stats := db.Stats()
	return &PoolStatus{
		PingMillis: time.Since(start).Milliseconds(),
		Open:       stats.OpenConnections,
		InUse:      stats.InUse,
		Idle:       stats.Idle,
		MaxOpen:    stats.MaxOpenConnections,
		Waits:      stats.WaitCount,
		WaitMillis: stats.WaitDuration.Milliseconds(),
	}, err
}
