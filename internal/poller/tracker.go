package poller

import (
	"waiter/internal/domain/entity"
)

// Tracker is the change-detection state machine. The zero value is
// uninitialized: the first observation only records a baseline.
//
// Tracker is not safe for concurrent use.
type Tracker struct {
	initialized bool
	previous    map[string]struct{}
}

// Initialized reports whether a baseline has been recorded.
func (t *Tracker) Initialized() bool {
	return t.initialized
}

// Count returns the number of orders in the last observation.
func (t *Tracker) Count() int {
	return len(t.previous)
}

// Observe replaces the tracked set with the ids in orders and returns an
// alert for ids that were not tracked before. The baseline observation and
// observations without new ids return nil. Ids that left the set are
// forgotten without an alert.
func (t *Tracker) Observe(orders []*entity.Order) *entity.ReadyAlert {
	current := make(map[string]struct{}, len(orders))
	var added []*entity.Order
	for _, order := range orders {
		if order == nil || order.ID == "" {
			continue
		}
		if _, dup := current[order.ID]; dup {
			continue
		}
		current[order.ID] = struct{}{}

		if _, known := t.previous[order.ID]; !known {
			added = append(added, order)
		}
	}

	wasInitialized := t.initialized
	t.previous = current
	t.initialized = true

	if !wasInitialized || len(added) == 0 {
		return nil
	}
	if len(added) == 1 {
		return &entity.ReadyAlert{
			Count:       1,
			OrderID:     added[0].ID,
			TableNumber: added[0].TableNumber,
		}
	}

	return &entity.ReadyAlert{Count: len(added)}
}
