package notification

import (
	"context"
	"fmt"
	"testing"
	"time"

	"waiter/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_RecentIsBoundedNewestFirst(t *testing.T) {
	feed := NewFeed(3)
	for i := range 5 {
		feed.Notify(context.Background(), entity.Toast{Title: fmt.Sprintf("toast-%d", i)})
	}

	recent := feed.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, "toast-4", recent[0].Title)
	assert.Equal(t, "toast-3", recent[1].Title)
	assert.Equal(t, "toast-2", recent[2].Title)
}

func TestFeed_StampsMissingTime(t *testing.T) {
	at := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	feed := NewFeed(2)
	feed.now = func() time.Time { return at }

	feed.Notify(context.Background(), entity.Toast{Title: "a"})
	earlier := at.Add(-time.Hour)
	feed.Notify(context.Background(), entity.Toast{Title: "b", At: earlier})

	recent := feed.Recent()
	assert.Equal(t, earlier, recent[0].At)
	assert.Equal(t, at, recent[1].At)
}

func TestFeed_Subscribe(t *testing.T) {
	feed := NewFeed(5)
	ch, cancel := feed.Subscribe()

	feed.Notify(context.Background(), entity.Toast{Title: "ready"})

	select {
	case toast := <-ch:
		assert.Equal(t, "ready", toast.Title)
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive the toast")
	}

	cancel()
	cancel()
	_, open := <-ch
	assert.False(t, open)

	// Notifying after unsubscribe must not panic on the closed channel.
	feed.Notify(context.Background(), entity.Toast{Title: "later"})
}

func TestFeed_SlowSubscriberDoesNotBlock(t *testing.T) {
	feed := NewFeed(1)
	_, cancel := feed.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range subscriberBuffer * 2 {
			feed.Notify(context.Background(), entity.Toast{Title: "x"})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a full subscriber")
	}
}

func TestFeed_Close(t *testing.T) {
	feed := NewFeed(5)
	ch, cancel := feed.Subscribe()

	require.NoError(t, feed.Close())
	require.NoError(t, feed.Close())

	_, open := <-ch
	assert.False(t, open)
	cancel()

	feed.Notify(context.Background(), entity.Toast{Title: "ignored"})
	assert.Empty(t, feed.Recent())

	late, _ := feed.Subscribe()
	_, open = <-late
	assert.False(t, open)
}
