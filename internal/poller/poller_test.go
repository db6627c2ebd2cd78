package poller

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"waiter/config"
	"waiter/internal/domain/entity"
	"waiter/internal/domain/service"
	"waiter/internal/errors"
	"waiter/internal/infra/metrics"
	mockSvc "waiter/internal/mocks/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type listerFunc func(ctx context.Context, statuses []entity.OrderStatus) ([]*entity.Order, error)

func (f listerFunc) ListOrders(ctx context.Context, statuses []entity.OrderStatus) ([]*entity.Order, error) {
	return f(ctx, statuses)
}

// scripted answers each call with the next response, repeating the last one.
type scripted struct {
	mu        sync.Mutex
	calls     int
	responses []response
}

type response struct {
	orders []*entity.Order
	err    error
}

func (s *scripted) ListOrders(_ context.Context, statuses []entity.OrderStatus) ([]*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := min(s.calls, len(s.responses)-1)
	s.calls++

	return s.responses[idx].orders, s.responses[idx].err
}

func (s *scripted) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.calls
}

type recordingSink struct {
	mu     sync.Mutex
	alerts []entity.ReadyAlert
}

func (r *recordingSink) OnReadyAlert(_ context.Context, alert entity.ReadyAlert) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, alert)
}

func (r *recordingSink) Alerts() []entity.ReadyAlert {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]entity.ReadyAlert(nil), r.alerts...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestPoller(lister OrderLister, sink service.AlertSink, recorder Recorder, interval time.Duration) *Poller {
	return New(lister, sink, recorder, discardLogger(), Options{Interval: interval})
}

func TestPoller_BaselineThenSingleAlert(t *testing.T) {
	lister := &scripted{responses: []response{
		{orders: ready("a", "b")},
		{orders: ready("a", "b", "c")},
	}}
	sink := mockSvc.NewMockAlertSink(t)
	sink.EXPECT().OnReadyAlert(mock.Anything, entity.ReadyAlert{Count: 1, OrderID: "c", TableNumber: 3}).Once()
	p := newTestPoller(lister, sink, nil, time.Hour)
	ctx := context.Background()

	first := p.Poll(ctx)
	assert.Equal(t, OutcomeApplied, first.Outcome)
	assert.Nil(t, first.Alert)
	assert.Equal(t, 2, first.Count)

	second := p.Poll(ctx)
	assert.Equal(t, OutcomeApplied, second.Outcome)
	require.NotNil(t, second.Alert)
	assert.True(t, second.Alert.Single())
	assert.Equal(t, 3, p.Count())
}

func TestPoller_AggregateAlert(t *testing.T) {
	lister := &scripted{responses: []response{
		{orders: ready()},
		{orders: ready("a", "b", "c")},
	}}
	sink := mockSvc.NewMockAlertSink(t)
	sink.EXPECT().OnReadyAlert(mock.Anything, entity.ReadyAlert{Count: 3}).Once()
	p := newTestPoller(lister, sink, nil, time.Hour)

	p.Poll(context.Background())
	result := p.Poll(context.Background())

	require.NotNil(t, result.Alert)
	assert.Empty(t, result.Alert.OrderID)
	assert.Zero(t, result.Alert.TableNumber)
}

func TestPoller_DepartureIsSilent(t *testing.T) {
	lister := &scripted{responses: []response{
		{orders: ready("a", "b")},
		{orders: ready("b")},
		{orders: ready()},
	}}
	sink := &recordingSink{}
	p := newTestPoller(lister, sink, nil, time.Hour)

	for range 3 {
		p.Poll(context.Background())
	}

	assert.Empty(t, sink.Alerts())
	assert.Zero(t, p.Count())
}

func TestPoller_FailureLeavesStateUntouched(t *testing.T) {
	backendDown := errors.New("connection refused")
	lister := &scripted{responses: []response{
		{orders: ready("a")},
		{err: backendDown},
		{orders: ready("a", "b")},
	}}
	sink := &recordingSink{}
	m := metrics.New()
	p := newTestPoller(lister, sink, m, time.Hour)
	ctx := context.Background()

	p.Poll(ctx)

	failed := p.Poll(ctx)
	assert.Equal(t, OutcomeFailed, failed.Outcome)
	assert.Nil(t, failed.Alert)
	assert.Equal(t, 1, failed.Count, "count stays stale on failure")
	assert.Equal(t, 1, p.Count())

	// The next success is compared against the pre-failure set.
	recovered := p.Poll(ctx)
	require.NotNil(t, recovered.Alert)
	assert.Equal(t, entity.ReadyAlert{Count: 1, OrderID: "b", TableNumber: 2}, *recovered.Alert)
	assert.Len(t, sink.Alerts(), 1)

	assert.InDelta(t, 2.0, testutil.ToFloat64(m.PollsTotal.WithLabelValues("applied")), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.PollsTotal.WithLabelValues("failed")), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.AlertsTotal.WithLabelValues("single")), 0)
	assert.InDelta(t, 2.0, testutil.ToFloat64(m.ReadyOrders), 0)
}

func TestPoller_FailureBeforeBaseline(t *testing.T) {
	lister := &scripted{responses: []response{
		{err: errors.New("timeout")},
		{orders: ready("a", "b")},
		{orders: ready("a", "b")},
	}}
	sink := &recordingSink{}
	p := newTestPoller(lister, sink, nil, time.Hour)

	assert.Equal(t, OutcomeFailed, p.Poll(context.Background()).Outcome)
	assert.Zero(t, p.Count())

	// The first success after a failed start is still the silent baseline.
	baseline := p.Poll(context.Background())
	assert.Nil(t, baseline.Alert)
	assert.Equal(t, 2, baseline.Count)
	p.Poll(context.Background())

	assert.Empty(t, sink.Alerts())
}

func TestPoller_PollsOnlyAlertStatus(t *testing.T) {
	var got []entity.OrderStatus
	lister := listerFunc(func(_ context.Context, statuses []entity.OrderStatus) ([]*entity.Order, error) {
		got = statuses

		return nil, nil
	})
	p := New(lister, &recordingSink{}, nil, discardLogger(), Options{Status: entity.OrderStatusServed})

	p.Poll(context.Background())

	assert.Equal(t, []entity.OrderStatus{entity.OrderStatusServed}, got)
}

func TestPoller_StaleResultIsDiscarded(t *testing.T) {
	var calls atomic.Int32
	slowEntered := make(chan struct{})
	releaseSlow := make(chan struct{})

	lister := listerFunc(func(_ context.Context, _ []entity.OrderStatus) ([]*entity.Order, error) {
		switch calls.Add(1) {
		case 1:
			return ready(), nil
		case 2:
			close(slowEntered)
			<-releaseSlow

			return ready("slow"), nil
		default:
			return ready("fast"), nil
		}
	})
	sink := &recordingSink{}
	m := metrics.New()
	p := newTestPoller(lister, sink, m, time.Hour)

	p.Poll(context.Background())

	slowResult := make(chan Result, 1)
	go func() {
		slowResult <- p.Poll(context.Background())
	}()
	<-slowEntered

	fast := p.Poll(context.Background())
	assert.Equal(t, OutcomeApplied, fast.Outcome)
	require.NotNil(t, fast.Alert)
	assert.Equal(t, "fast", fast.Alert.OrderID)

	close(releaseSlow)
	slow := <-slowResult
	assert.Equal(t, OutcomeStale, slow.Outcome)
	assert.Nil(t, slow.Alert)
	assert.Equal(t, 1, slow.Count)

	assert.Len(t, sink.Alerts(), 1)
	assert.Equal(t, 1, p.Count())
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.PollsTotal.WithLabelValues("stale")), 0)
}

func TestPoller_StartPollsImmediatelyThenOnSchedule(t *testing.T) {
	lister := &scripted{responses: []response{{orders: ready("a")}}}
	p := newTestPoller(lister, &recordingSink{}, nil, 10*time.Millisecond)

	require.NoError(t, p.Start())
	require.NoError(t, p.Start())
	defer p.Stop()

	require.Eventually(t, func() bool { return lister.Calls() >= 1 }, time.Second, time.Millisecond)
	require.Eventually(t, func() bool { return lister.Calls() >= 3 }, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, p.Count())
}

func TestPoller_ScheduledPollsAreSerialized(t *testing.T) {
	var inFlight, maxInFlight atomic.Int32
	lister := listerFunc(func(_ context.Context, _ []entity.OrderStatus) ([]*entity.Order, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			current := maxInFlight.Load()
			if n <= current || maxInFlight.CompareAndSwap(current, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)

		return ready(), nil
	})
	p := newTestPoller(lister, &recordingSink{}, nil, time.Millisecond)

	require.NoError(t, p.Start())
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	assert.Equal(t, int32(1), maxInFlight.Load())
}

func TestPoller_StopDiscardsInFlightResult(t *testing.T) {
	var calls atomic.Int32
	entered := make(chan struct{})

	lister := listerFunc(func(ctx context.Context, _ []entity.OrderStatus) ([]*entity.Order, error) {
		if calls.Add(1) == 1 {
			return ready(), nil
		}
		close(entered)
		<-ctx.Done()

		// A success resolving after cancellation must still be dropped.
		return ready("late-1", "late-2"), nil
	})
	sink := &recordingSink{}
	p := newTestPoller(lister, sink, nil, 5*time.Millisecond)

	require.NoError(t, p.Start())
	<-entered

	p.Stop()
	assert.Empty(t, sink.Alerts())
	assert.Zero(t, p.Count())

	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, sink.Alerts())
	assert.Equal(t, int32(2), calls.Load(), "no poll after Stop")
}

func TestPoller_StopIsIdempotentAndFinal(t *testing.T) {
	lister := &scripted{responses: []response{{orders: ready("a")}}}
	p := newTestPoller(lister, &recordingSink{}, nil, time.Hour)

	require.NoError(t, p.Start())
	require.Eventually(t, func() bool { return lister.Calls() == 1 }, time.Second, time.Millisecond)

	p.Stop()
	p.Stop()

	assert.ErrorIs(t, p.Start(), ErrStopped)

	result := p.Poll(context.Background())
	assert.Equal(t, OutcomeStopped, result.Outcome)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, 1, lister.Calls())
}

func TestPoller_StopWithoutStart(t *testing.T) {
	p := newTestPoller(&scripted{responses: []response{{}}}, &recordingSink{}, nil, time.Hour)

	done := make(chan struct{})
	go func() {
		p.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked on a poller that never started")
	}
}

func TestPoller_ConcurrentStopAndPoll(t *testing.T) {
	lister := listerFunc(func(context.Context, []entity.OrderStatus) ([]*entity.Order, error) {
		return ready("a"), nil
	})
	sink := &recordingSink{}
	p := newTestPoller(lister, sink, nil, time.Millisecond)
	require.NoError(t, p.Start())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				p.Poll(context.Background())
			}
		}()
	}
	p.Stop()
	alertsAtStop := len(sink.Alerts())
	wg.Wait()

	assert.Equal(t, alertsAtStop, len(sink.Alerts()))
	assert.Empty(t, sink.Alerts(), "a constant set never alerts")
}

func TestNewFromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Poller.Interval = time.Second
	cfg.Poller.AlertStatus = "ready"

	p, err := NewFromConfig(Params{
		Config: cfg,
		Orders: mockSvc.NewMockOrderGateway(t),
		Sink:   &recordingSink{},
		Logger: discardLogger(),
	})
	require.NoError(t, err)
	assert.Equal(t, []entity.OrderStatus{entity.OrderStatusReady}, p.statuses)
	assert.Equal(t, time.Second, p.interval)

	cfg.Poller.AlertStatus = "Cooking"
	_, err = NewFromConfig(Params{Config: cfg, Sink: &recordingSink{}, Logger: discardLogger()})
	assert.ErrorContains(t, err, "invalid poller.alertStatus")
}
