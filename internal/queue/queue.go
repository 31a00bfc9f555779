// Package queue bounds concurrent in-flight work and serializes overflow
// with priority ordering and per-request retry. Mutations that cannot run
// immediately (offline, rate pressure) wait here until a drain pass picks
// them up.
package queue

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/leadsync/internal/retry"
)

var (
	// ErrQueueFull is returned by Enqueue when the queue is at capacity
	ErrQueueFull = errors.New("queue is full")

	// ErrRemoved settles the future of a request removed before execution
	ErrRemoved = errors.New("request removed from queue")

	// ErrCleared settles the futures of requests dropped by Clear
	ErrCleared = errors.New("queue cleared")
)

// Action is the deferred unit of work. The context is the one supplied to
// Enqueue.
type Action func(ctx context.Context) (any, error)

// Status is the lifecycle state of a queued request
type Status string

const (
	StatusPending   Status = "pending"
	StatusExecuting Status = "executing"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Config controls queue behaviour
type Config struct {
	RetryStrategy     retry.Strategy
	InitialRetryDelay time.Duration
	MaxConcurrent     int
	MaxQueueSize      int
	PersistToStorage  bool
}

// DefaultConfig returns the queue defaults: 3 concurrent, 100 capacity,
// exponential backoff starting at 1s
func DefaultConfig() Config {
	return Config{
		MaxConcurrent:     3,
		MaxQueueSize:      100,
		RetryStrategy:     retry.StrategyExponential,
		InitialRetryDelay: time.Second,
		PersistToStorage:  true,
	}
}

// Meta is the serializable part of a request. Action closures cannot be
// persisted, so a restart restores metadata only; callers that need the
// work re-done must re-enqueue it from this description.
type Meta struct {
	ID         string `json:"id"`
	Status     Status `json:"status"`
	Error      string `json:"error,omitempty"`
	Priority   int    `json:"priority"`
	EnqueuedAt int64  `json:"timestamp"` // epoch milliseconds
	Attempts   int    `json:"retries"`
	MaxRetries int    `json:"maxRetries"`
}

// MetaStore persists queue metadata
type MetaStore interface {
	SaveQueueMeta(ctx context.Context, meta []Meta) error
	LoadQueueMeta(ctx context.Context) ([]Meta, error)
}

// Result is the settled outcome of a queued request
type Result struct {
	Value any
	Err   error
}

// Future resolves once its request completes, fails past its retry
// budget, or is removed.
type Future struct {
	c chan Result
}

// Wait blocks until the request settles or the context is cancelled
func (f *Future) Wait(ctx context.Context) (any, error) {
	select {
	case res := <-f.c:
		return res.Value, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Done returns a channel that delivers the result exactly once
func (f *Future) Done() <-chan Result {
	return f.c
}

type request struct {
	ctx       context.Context
	action    Action
	future    *Future
	notBefore time.Time // retry backoff gate; zero means ready
	meta      Meta
}

// Queue is the priority request queue. Safe for concurrent use.
type Queue struct {
	cfg        Config
	store      MetaStore
	logger     *slog.Logger
	items      []*request
	restored   []Meta
	failedMeta []Meta
	active     int
	paused     bool
	mu         sync.Mutex
}

// New creates a queue. When persistence is enabled, metadata of requests
// that were pending at the last shutdown is loaded and exposed through
// RestoredMeta; the requests themselves are inert until re-enqueued.
func New(ctx context.Context, cfg Config, store MetaStore, logger *slog.Logger) *Queue {
	q := &Queue{
		cfg:    cfg,
		store:  store,
		logger: logger,
	}

	if cfg.PersistToStorage && store != nil {
		restored, err := store.LoadQueueMeta(ctx)
		if err != nil {
			logger.Error("failed to load queue metadata", "error", err)
		} else if len(restored) > 0 {
			q.restored = restored
			logger.Info("restored queue metadata (not resumable, re-enqueue required)",
				"count", len(restored))
		}
	}

	return q
}

// RestoredMeta returns the metadata loaded from the previous session
func (q *Queue) RestoredMeta() []Meta {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Meta(nil), q.restored...)
}

// Enqueue inserts the action in priority order and returns a future for
// its eventual outcome. Fails immediately with ErrQueueFull at capacity.
// Higher priority dequeues first; equal priorities keep insertion order.
func (q *Queue) Enqueue(ctx context.Context, action Action, priority, maxRetries int) (*Future, error) {
	q.mu.Lock()

	if len(q.items) >= q.cfg.MaxQueueSize {
		q.mu.Unlock()
		return nil, ErrQueueFull
	}

	req := &request{
		ctx:    ctx,
		action: action,
		future: &Future{c: make(chan Result, 1)},
		meta: Meta{
			ID:         "req_" + uuid.New().String(),
			Priority:   priority,
			EnqueuedAt: time.Now().UnixMilli(),
			MaxRetries: maxRetries,
			Status:     StatusPending,
		},
	}

	// insert before the first entry with strictly lower priority
	insertAt := len(q.items)
	for i, item := range q.items {
		if item.meta.Priority < priority {
			insertAt = i
			break
		}
	}
	q.items = append(q.items, nil)
	copy(q.items[insertAt+1:], q.items[insertAt:])
	q.items[insertAt] = req

	q.mu.Unlock()

	q.persist(ctx)
	q.drain()

	return req.future, nil
}

// drain starts pending requests while slots are free
func (q *Queue) drain() {
	for {
		q.mu.Lock()
		if q.paused || q.active >= q.cfg.MaxConcurrent {
			q.mu.Unlock()
			return
		}

		now := time.Now()
		var next *request
		for _, item := range q.items {
			if item.meta.Status == StatusPending && !item.notBefore.After(now) {
				next = item
				break
			}
		}
		if next == nil {
			q.mu.Unlock()
			return
		}

		next.meta.Status = StatusExecuting
		q.active++
		q.mu.Unlock()

		go q.run(next)
	}
}

// run executes one request and settles or reschedules it
func (q *Queue) run(req *request) {
	value, err := req.action(req.ctx)

	q.mu.Lock()
	q.active--

	if err == nil {
		req.meta.Status = StatusCompleted
		q.removeLocked(req.meta.ID)
		q.mu.Unlock()

		req.future.c <- Result{Value: value}
		q.persist(req.ctx)
		q.drain()
		return
	}

	req.meta.Error = err.Error()

	if req.meta.Attempts < req.meta.MaxRetries {
		req.meta.Attempts++
		req.meta.Status = StatusPending

		policy := retry.Policy{
			Strategy:     q.cfg.RetryStrategy,
			InitialDelay: q.cfg.InitialRetryDelay,
		}
		delay := policy.Delay(req.meta.Attempts)
		req.notBefore = time.Now().Add(delay)
		q.mu.Unlock()

		q.logger.Debug("request failed, retry scheduled",
			"id", req.meta.ID,
			"attempt", req.meta.Attempts,
			"delay", delay,
			"error", err)

		if delay > 0 {
			time.AfterFunc(delay, q.drain)
		}
		q.persist(req.ctx)
		q.drain()
		return
	}

	req.meta.Status = StatusFailed
	q.removeLocked(req.meta.ID)
	q.failedMeta = append(q.failedMeta, req.meta)
	q.mu.Unlock()

	q.logger.Warn("request exhausted retries",
		"id", req.meta.ID,
		"attempts", req.meta.Attempts,
		"error", err)

	req.future.c <- Result{Err: err}
	q.persist(req.ctx)
	q.drain()
}

// removeLocked drops a request from the slice. Caller holds the lock.
func (q *Queue) removeLocked(id string) {
	for i, item := range q.items {
		if item.meta.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return
		}
	}
}

// QueueStatus summarizes the queue for callers deciding whether to flush
type QueueStatus struct {
	TotalItems     int `json:"totalItems"`
	PendingItems   int `json:"pendingItems"`
	ExecutingItems int `json:"executingItems"`
	FailedItems    int `json:"failedItems"`
	ActiveRequests int `json:"activeRequests"`
	MaxConcurrent  int `json:"maxConcurrent"`
}

// Status reports counts by state plus the configured concurrency ceiling
func (q *Queue) Status() QueueStatus {
	q.mu.Lock()
	defer q.mu.Unlock()

	st := QueueStatus{
		TotalItems:     len(q.items),
		FailedItems:    len(q.failedMeta),
		ActiveRequests: q.active,
		MaxConcurrent:  q.cfg.MaxConcurrent,
	}
	for _, item := range q.items {
		switch item.meta.Status {
		case StatusPending:
			st.PendingItems++
		case StatusExecuting:
			st.ExecutingItems++
		}
	}
	return st
}

// Items returns metadata copies of everything currently queued
func (q *Queue) Items() []Meta {
	q.mu.Lock()
	defer q.mu.Unlock()

	items := make([]Meta, 0, len(q.items))
	for _, item := range q.items {
		items = append(items, item.meta)
	}
	return items
}

// Remove drops a pending request before it executes and settles its
// future with ErrRemoved. Executing requests cannot be removed.
func (q *Queue) Remove(ctx context.Context, id string) bool {
	q.mu.Lock()

	var target *request
	for _, item := range q.items {
		if item.meta.ID == id && item.meta.Status == StatusPending {
			target = item
			break
		}
	}
	if target == nil {
		q.mu.Unlock()
		return false
	}

	q.removeLocked(id)
	q.mu.Unlock()

	target.future.c <- Result{Err: ErrRemoved}
	q.persist(ctx)
	return true
}

// Reprioritize updates a request's priority and re-sorts the queue. Takes
// effect on the next drain pass; an executing request is not interrupted.
func (q *Queue) Reprioritize(ctx context.Context, id string, priority int) bool {
	q.mu.Lock()

	var target *request
	for _, item := range q.items {
		if item.meta.ID == id {
			target = item
			break
		}
	}
	if target == nil {
		q.mu.Unlock()
		return false
	}

	target.meta.Priority = priority
	sort.SliceStable(q.items, func(i, j int) bool {
		return q.items[i].meta.Priority > q.items[j].meta.Priority
	})
	q.mu.Unlock()

	q.persist(ctx)
	q.drain()
	return true
}

// Pause stops new requests from being dequeued. In-flight work continues.
func (q *Queue) Pause() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.paused = true
}

// Resume re-enables dequeuing and immediately triggers a drain pass
func (q *Queue) Resume() {
	q.mu.Lock()
	q.paused = false
	q.mu.Unlock()

	q.drain()
}

// Clear drops everything not currently executing, settling the dropped
// futures with ErrCleared
func (q *Queue) Clear(ctx context.Context) {
	q.mu.Lock()

	var dropped []*request
	kept := q.items[:0]
	for _, item := range q.items {
		if item.meta.Status == StatusExecuting {
			kept = append(kept, item)
		} else {
			dropped = append(dropped, item)
		}
	}
	q.items = kept
	q.failedMeta = nil
	q.mu.Unlock()

	for _, item := range dropped {
		item.future.c <- Result{Err: ErrCleared}
	}
	q.persist(ctx)
}

// persist saves metadata of pending and failed requests. Executing
// requests are skipped: their closures cannot be resumed anyway.
func (q *Queue) persist(ctx context.Context) {
	if !q.cfg.PersistToStorage || q.store == nil {
		return
	}

	q.mu.Lock()
	meta := make([]Meta, 0, len(q.items)+len(q.failedMeta))
	for _, item := range q.items {
		if item.meta.Status == StatusPending {
			meta = append(meta, item.meta)
		}
	}
	meta = append(meta, q.failedMeta...)
	q.mu.Unlock()

	if err := q.store.SaveQueueMeta(ctx, meta); err != nil {
		q.logger.Error("failed to persist queue metadata", "error", err)
	}
}
