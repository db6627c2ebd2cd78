// Package poller watches the backend for orders entering the alertable
// status and raises one alert per poll for the orders that are new since the
// previous successful poll.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"waiter/config"
	"waiter/internal/domain/entity"
	"waiter/internal/domain/service"
	"waiter/internal/errors"
	"waiter/internal/infra/metrics"

	"go.uber.org/fx"
)

// DefaultInterval is the scheduled poll period.
const DefaultInterval = 10 * time.Second

// ErrStopped is returned by Start on a poller that was stopped.
var ErrStopped = errors.New("poller stopped")

// Outcome is what happened to one poll.
type Outcome string

const (
	// OutcomeApplied means the fetch result replaced the tracked set.
	OutcomeApplied Outcome = "applied"
	// OutcomeFailed means the fetch failed; nothing changed.
	OutcomeFailed Outcome = "failed"
	// OutcomeStale means a newer poll was applied first; the result was discarded.
	OutcomeStale Outcome = "stale"
	// OutcomeStopped means the poller was stopped; the result was discarded.
	OutcomeStopped Outcome = "stopped"
)

// OrderLister fetches orders by status.
type OrderLister interface {
	ListOrders(ctx context.Context, statuses []entity.OrderStatus) ([]*entity.Order, error)
}

// Recorder receives poller observations.
type Recorder interface {
	ObservePoll(result string)
	ObserveAlert(count int)
	SetReadyOrders(count int)
}

type nopRecorder struct{}

func (nopRecorder) ObservePoll(string) {}
func (nopRecorder) ObserveAlert(int) {}
func (nopRecorder) SetReadyOrders(int) {}

// Result describes one completed poll.
type Result struct {
	Outcome Outcome
	// Count is the alertable order count after the poll. It is the previous
	// count when the poll was not applied.
	Count int
	// Alert is the alert emitted by this poll, if any.
	Alert *entity.ReadyAlert
}

// Options configures a Poller.
type Options struct {
	Interval time.Duration
	Status   entity.OrderStatus
}

// Poller runs the tracker on a schedule. Scheduled polls are serialized on one
// goroutine; Poll may also be called directly and concurrently with them.
type Poller struct {
	lister   OrderLister
	sink     service.AlertSink
	recorder Recorder
	logger   *slog.Logger
	interval time.Duration
	statuses []entity.OrderStatus

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	seq   atomic.Uint64
	count atomic.Int64

	// mu guards the fields below. Alerts are delivered while it is held, so
	// the sink must not call back into the poller.
	mu          sync.Mutex
	tracker     Tracker
	lastApplied uint64
	started     bool
	stopped     bool
	stopOnce    sync.Once
}

// New creates an idle poller. Call Start to begin scheduled polling.
func New(lister OrderLister, sink service.AlertSink, recorder Recorder, logger *slog.Logger, opts Options) *Poller {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Status == "" {
		opts.Status = entity.OrderStatusReady
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Poller{
		lister:   lister,
		sink:     sink,
		recorder: recorder,
		logger:   logger.With(slog.String("component", "poller")),
		interval: opts.Interval,
		statuses: []entity.OrderStatus{opts.Status},
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config  *config.Config
	Orders  service.OrderGateway
	Sink    service.AlertSink
	Metrics *metrics.Metrics `optional:"true"`
	Logger  *slog.Logger
}

// NewFromConfig creates the poller from config.
func NewFromConfig(params Params) (*Poller, error) {
	status, ok := entity.ParseOrderStatus(params.Config.Poller.AlertStatus)
	if !ok {
		return nil, errors.Errorf("invalid poller.alertStatus %q", params.Config.Poller.AlertStatus)
	}

	var recorder Recorder
	if params.Metrics != nil {
		recorder = params.Metrics
	}

	return New(params.Orders, params.Sink, recorder, params.Logger, Options{
		Interval: params.Config.Poller.Interval,
		Status:   status,
	}), nil
}

// Start polls once immediately and then every interval until Stop.
// Starting a running poller is a no-op.
func (p *Poller) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return ErrStopped
	}
	if p.started {
		return nil
	}
	p.started = true

	p.logger.Debug("poller started", slog.Duration("interval", p.interval))
	go p.loop()

	return nil
}

func (p *Poller) loop() {
	defer close(p.done)

	p.Poll(p.ctx)

	timer := time.NewTimer(p.interval)
	defer timer.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-timer.C:
			p.Poll(p.ctx)
			timer.Reset(p.interval)
		}
	}
}

// Stop cancels the schedule and any in-flight fetch and waits for the
// scheduled loop to exit. Results arriving afterwards are discarded, so no
// alert is delivered once Stop returns. Stop is idempotent.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.stopped = true
		started := p.started
		p.mu.Unlock()

		p.cancel()
		if started {
			<-p.done
		}
		p.logger.Debug("poller stopped")
	})
}

// Count returns the alertable order count of the last applied poll.
func (p *Poller) Count() int {
	return int(p.count.Load())
}

// Poll fetches the alertable orders once and applies the result if no newer
// poll was applied in the meantime. Fetch failures never reach the caller;
// they leave the tracked state untouched.
func (p *Poller) Poll(ctx context.Context) Result {
	seq := p.seq.Add(1)

	if p.ctx.Err() != nil {
		return Result{Outcome: OutcomeStopped, Count: p.Count()}
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	unhook := context.AfterFunc(p.ctx, cancel)
	defer unhook()

	orders, err := p.lister.ListOrders(fetchCtx, p.statuses)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return Result{Outcome: OutcomeStopped, Count: p.Count()}
	}

	if err != nil {
		p.recorder.ObservePoll(string(OutcomeFailed))
		p.logger.Debug("poll failed", slog.Uint64("seq", seq), slog.Any("error", err))

		return Result{Outcome: OutcomeFailed, Count: p.Count()}
	}

	if seq <= p.lastApplied {
		p.recorder.ObservePoll(string(OutcomeStale))
		p.logger.Debug("stale poll discarded",
			slog.Uint64("seq", seq),
			slog.Uint64("last_applied", p.lastApplied),
		)

		return Result{Outcome: OutcomeStale, Count: p.Count()}
	}

	p.lastApplied = seq
	alert := p.tracker.Observe(orders)
	count := p.tracker.Count()
	p.count.Store(int64(count))
	p.recorder.SetReadyOrders(count)
	p.recorder.ObservePoll(string(OutcomeApplied))

	if alert != nil {
		p.recorder.ObserveAlert(alert.Count)
		p.logger.Info("orders ready",
			slog.Int("new", alert.Count),
			slog.Int("ready", count),
		)
		p.sink.OnReadyAlert(p.ctx, *alert)
	}

	return Result{Outcome: OutcomeApplied, Count: count, Alert: alert}
}

// Lifecycle starts the poller with the application and stops it on shutdown.
func Lifecycle(lc fx.Lifecycle, p *Poller) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return p.Start()
		},
		OnStop: func(context.Context) error {
			p.Stop()

			return nil
		},
	})
}

// Module provides the poller FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewFromConfig),
)
