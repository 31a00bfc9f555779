package netmon

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProber flips between reachable and unreachable under test control
type fakeProber struct {
	mu        sync.Mutex
	reachable bool
	probes    int
}

func (p *fakeProber) Probe(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.probes++
	if !p.reachable {
		return errors.New("connection refused")
	}
	return nil
}

func (p *fakeProber) setReachable(reachable bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reachable = reachable
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCheckNow(t *testing.T) {
	prober := &fakeProber{reachable: true}
	m := New(DefaultConfig(), prober, testLogger(), false)

	assert.True(t, m.IsOffline())
	assert.True(t, m.CheckNow(context.Background()))
	assert.True(t, m.IsOnline())

	prober.setReachable(false)
	assert.False(t, m.CheckNow(context.Background()))
	assert.True(t, m.IsOffline())
}

func TestReportNativeStatusOnlineIsProbeConfirmed(t *testing.T) {
	// native "online" signal with an unreachable backend must not flip
	prober := &fakeProber{reachable: false}
	m := New(DefaultConfig(), prober, testLogger(), false)

	m.ReportNativeStatus(context.Background(), true)
	assert.True(t, m.IsOffline())

	// offline signal is taken at face value, no probe needed
	prober.setReachable(true)
	m.CheckNow(context.Background())
	require.True(t, m.IsOnline())

	probesBefore := func() int {
		prober.mu.Lock()
		defer prober.mu.Unlock()
		return prober.probes
	}()
	m.ReportNativeStatus(context.Background(), false)
	assert.True(t, m.IsOffline())
	prober.mu.Lock()
	assert.Equal(t, probesBefore, prober.probes)
	prober.mu.Unlock()
}

func TestOnStatusChangeNotifiesOncePerTransition(t *testing.T) {
	prober := &fakeProber{reachable: false}
	m := New(DefaultConfig(), prober, testLogger(), true)

	var mu sync.Mutex
	var events []bool
	unsubscribe := m.OnStatusChange(func(online bool) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, online)
	})
	defer unsubscribe()

	ctx := context.Background()

	// repeated failing checks produce exactly one offline notification
	m.CheckNow(ctx)
	m.CheckNow(ctx)
	m.CheckNow(ctx)

	mu.Lock()
	require.Len(t, events, 1)
	assert.False(t, events[0])
	mu.Unlock()

	prober.setReachable(true)
	m.CheckNow(ctx)
	m.CheckNow(ctx)

	mu.Lock()
	require.Len(t, events, 2)
	assert.True(t, events[1])
	mu.Unlock()
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	prober := &fakeProber{reachable: false}
	m := New(DefaultConfig(), prober, testLogger(), true)

	calls := 0
	unsubscribe := m.OnStatusChange(func(online bool) { calls++ })
	unsubscribe()

	m.CheckNow(context.Background())
	assert.Equal(t, 0, calls)
}

func TestListenerPanicDoesNotBreakOthers(t *testing.T) {
	prober := &fakeProber{reachable: false}
	m := New(DefaultConfig(), prober, testLogger(), true)

	m.OnStatusChange(func(online bool) { panic("bad listener") })

	notified := false
	m.OnStatusChange(func(online bool) { notified = true })

	assert.NotPanics(t, func() {
		m.CheckNow(context.Background())
	})
	assert.True(t, notified)
}

func TestWaitForOnline(t *testing.T) {
	t.Run("returns immediately when online", func(t *testing.T) {
		m := New(DefaultConfig(), &fakeProber{reachable: true}, testLogger(), true)
		require.NoError(t, m.WaitForOnline(context.Background(), time.Second))
	})

	t.Run("times out while offline", func(t *testing.T) {
		m := New(DefaultConfig(), &fakeProber{}, testLogger(), false)
		err := m.WaitForOnline(context.Background(), 20*time.Millisecond)
		require.ErrorIs(t, err, ErrWaitTimeout)
	})

	t.Run("unblocks on transition", func(t *testing.T) {
		prober := &fakeProber{}
		m := New(DefaultConfig(), prober, testLogger(), false)

		go func() {
			time.Sleep(20 * time.Millisecond)
			prober.setReachable(true)
			m.CheckNow(context.Background())
		}()

		require.NoError(t, m.WaitForOnline(context.Background(), 2*time.Second))
		assert.True(t, m.IsOnline())
	})
}

func TestRestartResumesProbing(t *testing.T) {
	prober := &fakeProber{reachable: true}
	cfg := DefaultConfig()
	cfg.CheckInterval = 10 * time.Millisecond
	m := New(cfg, prober, testLogger(), true)

	ctx := context.Background()
	probeCount := func() int {
		prober.mu.Lock()
		defer prober.mu.Unlock()
		return prober.probes
	}

	m.Start(ctx)
	require.Eventually(t, func() bool { return probeCount() > 0 },
		time.Second, 5*time.Millisecond)
	m.Stop()

	// a second Start must launch a fresh probe loop
	countAtStop := probeCount()
	m.Start(ctx)
	defer m.Stop()

	assert.Eventually(t, func() bool { return probeCount() > countAtStop },
		time.Second, 5*time.Millisecond)
}

func TestRetryWithBackoff(t *testing.T) {
	t.Run("retries until success", func(t *testing.T) {
		m := New(DefaultConfig(), &fakeProber{reachable: true}, testLogger(), true)

		calls := 0
		err := m.RetryWithBackoff(context.Background(), func() error {
			calls++
			if calls < 3 {
				return errors.New("flaky")
			}
			return nil
		}, 5, time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		m := New(DefaultConfig(), &fakeProber{reachable: true}, testLogger(), true)

		calls := 0
		err := m.RetryWithBackoff(context.Background(), func() error {
			calls++
			return errors.New("permanent")
		}, 3, time.Millisecond)

		require.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("waits for connectivity before attempting", func(t *testing.T) {
		prober := &fakeProber{}
		m := New(DefaultConfig(), prober, testLogger(), false)

		go func() {
			time.Sleep(20 * time.Millisecond)
			prober.setReachable(true)
			m.CheckNow(context.Background())
		}()

		calls := 0
		err := m.RetryWithBackoff(context.Background(), func() error {
			calls++
			return nil
		}, 3, 500*time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.True(t, m.IsOnline())
	})
}
