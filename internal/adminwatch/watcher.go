// Package adminwatch surfaces newly placed orders to an administrator, one
// at a time, each with an auto-accept countdown. It owns its own ephemeral
// state and never writes into the shared storefront stores.
package adminwatch

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/wealthZoneai/benjour-customer-sub000/internal/domain"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/notify"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/session"
)

type State string

const (
	// StateIdle: no unacknowledged order is displayed.
	StateIdle State = "idle"
	// StateShowing: one order is displayed with an active countdown.
	StateShowing State = "showing"
)

// Outcome records how a surfaced order left the showing state.
type Outcome string

const (
	OutcomeAccepted     Outcome = "accepted"
	OutcomeAutoAccepted Outcome = "auto_accepted"
	OutcomeRejected     Outcome = "rejected"
	OutcomeDismissed    Outcome = "dismissed"
)

var (
	ErrNoOrderShowing = errors.New("no order is currently showing")
	ErrAlreadyRunning = errors.New("watcher is already running")
)

// OrderFeed is the slice of the backend client the watcher needs.
type OrderFeed interface {
	ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error
}

// SessionSource exposes the current session; polling is gated on the
// administrative role.
type SessionSource interface {
	Current() session.Session
}

// Sink observes watcher lifecycle events (audit log, event feed). Sinks are
// best-effort; their failures never influence the watcher.
type Sink interface {
	OrderSurfaced(ctx context.Context, order domain.Order)
	OrderResolved(ctx context.Context, order domain.Order, outcome Outcome, callErr error)
}

type Config struct {
	// PollInterval is how often placed orders are fetched. Default 10s.
	PollInterval time.Duration
	// Countdown is how long an order is shown before it auto-accepts.
	// Default 30s, ticking down once per second.
	Countdown time.Duration
}

func (c Config) withDefaults() Config {
	if c.PollInterval <= 0 {
		c.PollInterval = 10 * time.Second
	}
	if c.Countdown <= 0 {
		c.Countdown = 30 * time.Second
	}
	return c
}

// Watcher polls for placed orders and surfaces at most one unacknowledged
// order at a time. Acknowledged order IDs are remembered for the watcher's
// lifetime so the same order is never re-surfaced; a restart resets the set.
type Watcher struct {
	feed     OrderFeed
	sessions SessionSource
	notifier notify.Notifier
	sinks    []Sink
	cfg      Config

	mu        sync.Mutex
	state     State
	current   domain.Order
	remaining int
	acked     map[int64]struct{}

	cancel context.CancelFunc
	done   chan struct{}
}

func New(feed OrderFeed, sessions SessionSource, notifier notify.Notifier, cfg Config, sinks ...Sink) *Watcher {
	return &Watcher{
		feed:     feed,
		sessions: sessions,
		notifier: notifier,
		sinks:    sinks,
		cfg:      cfg.withDefaults(),
		state:    StateIdle,
		acked:    make(map[int64]struct{}),
	}
}

// Start launches the poll and countdown timers. They run until Stop is
// called or the context is cancelled; both paths release the tickers.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.cancel != nil {
		w.mu.Unlock()
		return ErrAlreadyRunning
	}
	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.done = make(chan struct{})
	w.mu.Unlock()

	go w.run(runCtx)
	return nil
}

// Stop cancels the timers and waits for the run loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel = nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	poll := time.NewTicker(w.cfg.PollInterval)
	defer poll.Stop()
	countdown := time.NewTicker(time.Second)
	defer countdown.Stop()

	w.pollOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-poll.C:
			w.pollOnce(ctx)
		case <-countdown.C:
			w.tick(ctx)
		}
	}
}

// pollOnce fetches placed orders and surfaces the first one not yet
// acknowledged. Nothing is fetched while an order is already showing or
// when the administrative role is gone.
func (w *Watcher) pollOnce(ctx context.Context) {
	if !w.sessions.Current().IsAdmin() {
		return
	}
	if w.State() == StateShowing {
		return
	}

	orders, err := w.feed.ListOrdersByStatus(ctx, domain.StatusPlaced)
	if err != nil {
		log.Printf("[OrderWatch] polling placed orders failed: %v", err)
		return
	}

	w.mu.Lock()
	if w.state == StateShowing {
		w.mu.Unlock()
		return
	}
	var surfaced *domain.Order
	for _, order := range orders {
		if _, seen := w.acked[order.ID]; seen {
			continue
		}
		w.state = StateShowing
		w.current = order
		w.remaining = int(w.cfg.Countdown / time.Second)
		surfaced = &order
		break
	}
	w.mu.Unlock()

	if surfaced != nil {
		notify.Infof(w.notifier, "new order #%d placed by %s", surfaced.ID, surfaced.UserID)
		for _, sink := range w.sinks {
			sink.OrderSurfaced(ctx, *surfaced)
		}
	}
}

// tick advances the countdown one second. Reaching zero triggers exactly
// the accept transition.
func (w *Watcher) tick(ctx context.Context) {
	w.mu.Lock()
	if w.state != StateShowing {
		w.mu.Unlock()
		return
	}
	w.remaining--
	expired := w.remaining <= 0
	w.mu.Unlock()

	if expired {
		_ = w.resolve(ctx, OutcomeAutoAccepted)
	}
}

// Accept transitions the shown order to preparing on the backend and
// acknowledges it.
func (w *Watcher) Accept(ctx context.Context) error {
	return w.resolve(ctx, OutcomeAccepted)
}

// Reject acknowledges the shown order without any backend call.
func (w *Watcher) Reject(ctx context.Context) error {
	return w.resolve(ctx, OutcomeRejected)
}

// Dismiss closes the popup; like Reject it acknowledges without a backend
// call.
func (w *Watcher) Dismiss(ctx context.Context) error {
	return w.resolve(ctx, OutcomeDismissed)
}

// resolve leaves the showing state. The order ID joins the acknowledged set
// before any backend call, so the popup closes optimistically: a failed
// accept call is surfaced as a notification only and the order is not
// retried in this session.
func (w *Watcher) resolve(ctx context.Context, outcome Outcome) error {
	w.mu.Lock()
	if w.state != StateShowing {
		w.mu.Unlock()
		return ErrNoOrderShowing
	}
	order := w.current
	w.acked[order.ID] = struct{}{}
	w.state = StateIdle
	w.current = domain.Order{}
	w.remaining = 0
	w.mu.Unlock()

	var callErr error
	if outcome == OutcomeAccepted || outcome == OutcomeAutoAccepted {
		callErr = w.feed.UpdateOrderStatus(ctx, order.ID, domain.StatusPreparing)
		if callErr != nil {
			notify.Errorf(w.notifier, "accepting order #%d failed: %v", order.ID, callErr)
		}
	}

	for _, sink := range w.sinks {
		sink.OrderResolved(ctx, order, outcome, callErr)
	}
	return callErr
}

// State returns the observable watcher state.
func (w *Watcher) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Showing returns the displayed order and the countdown seconds remaining.
func (w *Watcher) Showing() (domain.Order, int, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateShowing {
		return domain.Order{}, 0, false
	}
	return w.current, w.remaining, true
}

// Acknowledged reports whether an order ID has already been surfaced and
// resolved in this session.
func (w *Watcher) Acknowledged(orderID int64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.acked[orderID]
	return ok
}
