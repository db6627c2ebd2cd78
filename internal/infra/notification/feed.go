package notification

import (
	"context"
	"slices"
	"sync"
	"time"

	"waiter/internal/domain/entity"
)

// subscriberBuffer is how many toasts a slow subscriber may lag behind before
// new toasts are dropped for it.
const subscriberBuffer = 16

// Feed keeps the most recent toasts for the shell's notification list and
// fans new toasts out to live subscribers.
type Feed struct {
	mu          sync.Mutex
	limit       int
	recent      []entity.Toast
	subscribers map[uint64]chan entity.Toast
	nextID      uint64
	closed      bool
	now         func() time.Time
}

// NewFeed creates a feed remembering up to limit toasts.
func NewFeed(limit int) *Feed {
	if limit <= 0 {
		limit = 1
	}

	return &Feed{
		limit:       limit,
		recent:      make([]entity.Toast, 0, limit),
		subscribers: make(map[uint64]chan entity.Toast),
		now:         time.Now,
	}
}

// Notify stores the toast and hands it to every subscriber that has room.
func (f *Feed) Notify(_ context.Context, toast entity.Toast) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	if toast.At.IsZero() {
		toast.At = f.now()
	}

	if len(f.recent) == f.limit {
		f.recent = slices.Delete(f.recent, 0, 1)
	}
	f.recent = append(f.recent, toast)

	for _, ch := range f.subscribers {
		select {
		case ch <- toast:
		default:
		}
	}
}

// Recent returns the remembered toasts, newest first.
func (f *Feed) Recent() []entity.Toast {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := slices.Clone(f.recent)
	slices.Reverse(out)

	return out
}

// Subscribe returns a channel of new toasts and a function that ends the
// subscription. The channel is closed when the subscription ends or the feed closes.
func (f *Feed) Subscribe() (<-chan entity.Toast, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ch := make(chan entity.Toast, subscriberBuffer)
	if f.closed {
		close(ch)

		return ch, func() {}
	}

	id := f.nextID
	f.nextID++
	f.subscribers[id] = ch

	var once sync.Once

	return ch, func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()

			if sub, ok := f.subscribers[id]; ok {
				delete(f.subscribers, id)
				close(sub)
			}
		})
	}
}

// Close ends every subscription. Later toasts are ignored.
func (f *Feed) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true
	for id, ch := range f.subscribers {
		delete(f.subscribers, id)
		close(ch)
	}

	return nil
}
