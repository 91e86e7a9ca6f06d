package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/conductorhq/conductor/ent"
	"github.com/conductorhq/conductor/ent/queuejob"
	"github.com/conductorhq/conductor/pkg/config"
)

// WorkerPool manages a pool of queue workers plus the orphan scanner.
type WorkerPool struct {
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	queue    *Queue
	handlers map[string]Handler
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool

	// Orphan detection state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool. Handlers are registered with
// Register before Start.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, q *Queue) *WorkerPool {
	return &WorkerPool{
		podID:    podID,
		client:   client,
		config:   cfg,
		queue:    q,
		handlers: make(map[string]Handler),
		workers:  make([]*Worker, 0, cfg.WorkerConcurrency),
		stopCh:   make(chan struct{}),
	}
}

// Register binds a handler to a queue name. Must be called before Start.
func (p *WorkerPool) Register(queueName string, h Handler) {
	p.handlers[queueName] = h
}

// Start spawns worker goroutines and the orphan scanner.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	if len(p.handlers) == 0 {
		return fmt.Errorf("no queue handlers registered")
	}
	p.started = true

	queues := make([]string, 0, len(p.handlers))
	for q := range p.handlers {
		queues = append(queues, q)
	}

	slog.Info("Starting worker pool",
		"pod_id", p.podID,
		"worker_count", p.config.WorkerConcurrency,
		"queues", queues)

	for i := 0; i < p.config.WorkerConcurrency; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.handlers, queues)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	// Start orphan scanning
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanScan(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits up to the drain timeout for
// in-flight jobs to finish. Jobs abandoned past the deadline are picked up
// by the orphan scan on the next pod.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	for _, worker := range p.workers {
		worker.signalStop()
	}

	done := make(chan struct{})
	go func() {
		for _, worker := range p.workers {
			worker.wait()
		}
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-time.After(p.config.DrainTimeout):
		slog.Warn("Drain timeout reached, abandoning in-flight jobs",
			"timeout", p.config.DrainTimeout,
			"active", p.activeJobIDs())
	}

	// Signal orphan scanner to stop
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	var depthRows []struct {
		Queue string `json:"queue"`
		Count int    `json:"count"`
	}
	errQ := p.client.QueueJob.Query().
		Where(queuejob.StatusEQ(queuejob.StatusPending)).
		GroupBy(queuejob.FieldQueue).
		Aggregate(ent.Count()).
		Scan(ctx, &depthRows)
	if errQ != nil {
		slog.Error("Failed to query queue depths for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	depths := make(map[string]int, len(depthRows))
	for _, row := range depthRows {
		depths[row.Queue] = row.Count
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errQ == nil
	isHealthy := len(p.workers) > 0 && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		QueueDepths:      depths,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}

// activeJobIDs returns IDs of jobs currently being processed (for logging).
func (p *WorkerPool) activeJobIDs() []string {
	ids := make([]string, 0, len(p.workers))
	for _, worker := range p.workers {
		if h := worker.Health(); h.CurrentJobID != "" {
			ids = append(ids, h.CurrentJobID)
		}
	}
	return ids
}
