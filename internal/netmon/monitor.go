// Package netmon maintains the single authoritative online/offline flag
// the rest of the client reads. Native connectivity signals are verified
// with a liveness probe before the flag flips, and a periodic probe
// catches silent failures the native events miss.
package netmon

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/iudanet/leadsync/internal/retry"
)

// ErrWaitTimeout is returned by WaitForOnline when the timeout elapses
// before connectivity is restored.
var ErrWaitTimeout = errors.New("timeout waiting for online status")

// Listener receives the new status on every confirmed transition
type Listener func(online bool)

// Prober performs a lightweight liveness check. A nil return means the
// backend is reachable; any error is interpreted as "still offline".
type Prober interface {
	Probe(ctx context.Context) error
}

// HTTPProber probes with a HEAD request against a ping endpoint
type HTTPProber struct {
	client *http.Client
	url    string
}

// NewHTTPProber creates a prober for the given ping URL
func NewHTTPProber(url string) *HTTPProber {
	return &HTTPProber{
		url:    url,
		client: &http.Client{},
	}
}

// Probe issues the HEAD request. Any response counts as reachable; a
// transport error does not.
func (p *HTTPProber) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.url, nil)
	if err != nil {
		return err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

// Config controls the monitor
type Config struct {
	// CheckInterval is the period of the background liveness probe
	CheckInterval time.Duration

	// OnlineThreshold bounds a single probe; a probe slower than this is
	// treated as failed
	OnlineThreshold time.Duration

	// EnableNotifications toggles listener callbacks
	EnableNotifications bool
}

// DefaultConfig returns the monitor defaults: probe every 5s, 3s budget
func DefaultConfig() Config {
	return Config{
		CheckInterval:       5 * time.Second,
		OnlineThreshold:     3 * time.Second,
		EnableNotifications: true,
	}
}

// Monitor tracks connectivity state. Safe for concurrent use.
type Monitor struct {
	cfg       Config
	prober    Prober
	logger    *slog.Logger
	stopC     chan struct{}
	onlineC   chan struct{} // closed while online transitions are awaited
	listeners map[int]Listener
	nextID    int
	online    bool
	started   bool
	mu        sync.Mutex
}

// New creates a monitor seeded with the platform's current connectivity
// signal. Call Start to run the periodic probe.
func New(cfg Config, prober Prober, logger *slog.Logger, initiallyOnline bool) *Monitor {
	m := &Monitor{
		cfg:       cfg,
		prober:    prober,
		logger:    logger,
		stopC:     make(chan struct{}),
		onlineC:   make(chan struct{}),
		listeners: make(map[int]Listener),
		online:    initiallyOnline,
	}
	if initiallyOnline {
		close(m.onlineC)
	}
	return m
}

// Start launches the periodic liveness probe. No-op when already started.
func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return
	}
	m.started = true
	// Stop closes stopC, so a restart needs a fresh channel
	m.stopC = make(chan struct{})
	stopC := m.stopC
	m.mu.Unlock()

	go m.probeLoop(ctx, stopC)
}

// Stop halts the periodic probe
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		close(m.stopC)
		m.started = false
	}
}

func (m *Monitor) probeLoop(ctx context.Context, stopC <-chan struct{}) {
	ticker := time.NewTicker(m.cfg.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.CheckNow(ctx)
		case <-stopC:
			return
		case <-ctx.Done():
			return
		}
	}
}

// CheckNow runs one probe and updates the state from its outcome
func (m *Monitor) CheckNow(ctx context.Context) bool {
	online := m.probe(ctx)
	m.setOnline(online)
	return online
}

// ReportNativeStatus feeds a native "went online"/"went offline" event
// into the monitor. A "went online" signal is confirmed with a probe
// before the state flips, to avoid false positives from captive portals;
// a "went offline" signal is taken at face value.
func (m *Monitor) ReportNativeStatus(ctx context.Context, online bool) {
	if online {
		online = m.probe(ctx)
	}
	m.setOnline(online)
}

// probe runs the liveness check inside its own timeout so a hung network
// call cannot wedge the monitor. Probe failure means "still offline".
func (m *Monitor) probe(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, m.cfg.OnlineThreshold)
	defer cancel()

	if err := m.prober.Probe(probeCtx); err != nil {
		m.logger.Debug("liveness probe failed", "error", err)
		return false
	}
	return true
}

// IsOnline returns the current confirmed state
func (m *Monitor) IsOnline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// IsOffline is the negation of IsOnline
func (m *Monitor) IsOffline() bool {
	return !m.IsOnline()
}

// OnStatusChange registers a listener invoked with the new state on every
// confirmed transition. The returned function unsubscribes it.
func (m *Monitor) OnStatusChange(listener Listener) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.listeners[id] = listener

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.listeners, id)
	}
}

// setOnline flips the state and notifies listeners on a transition
func (m *Monitor) setOnline(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}

	m.online = online
	if online {
		close(m.onlineC)
	} else {
		m.onlineC = make(chan struct{})
	}

	listeners := make([]Listener, 0, len(m.listeners))
	if m.cfg.EnableNotifications {
		for _, l := range m.listeners {
			listeners = append(listeners, l)
		}
	}
	m.mu.Unlock()

	m.logger.Info("connectivity changed", "online", online)

	for _, l := range listeners {
		m.notify(l, online)
	}
}

// notify invokes one listener, recovering a panic so one bad listener
// cannot break notification to the others
func (m *Monitor) notify(l Listener, online bool) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("status listener panicked", "panic", r)
		}
	}()
	l(online)
}

// WaitForOnline blocks until the monitor is online. A zero timeout waits
// indefinitely; otherwise ErrWaitTimeout is returned when the timeout
// elapses first.
func (m *Monitor) WaitForOnline(ctx context.Context, timeout time.Duration) error {
	m.mu.Lock()
	onlineC := m.onlineC
	m.mu.Unlock()

	var timeoutC <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		timeoutC = timer.C
	}

	select {
	case <-onlineC:
		return nil
	case <-timeoutC:
		return ErrWaitTimeout
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RetryWithBackoff runs action up to maxAttempts times. When offline, it
// first waits for connectivity with an exponentially growing timeout
// budget before attempting. The delay between attempts doubles each time;
// after the final failure the last error is returned.
func (m *Monitor) RetryWithBackoff(ctx context.Context, action func() error, maxAttempts int, initialDelay time.Duration) error {
	policy := retry.Policy{
		Strategy:     retry.StrategyExponential,
		InitialDelay: initialDelay,
		MaxAttempts:  maxAttempts,
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if m.IsOffline() {
			if err := m.WaitForOnline(ctx, policy.Delay(attempt)); err != nil {
				lastErr = err
				if attempt < maxAttempts {
					if serr := policy.Sleep(ctx, attempt); serr != nil {
						return serr
					}
				}
				continue
			}
		}

		lastErr = action()
		if lastErr == nil {
			return nil
		}

		if attempt < maxAttempts {
			if err := policy.Sleep(ctx, attempt); err != nil {
				return err
			}
		}
	}

	return lastErr
}
