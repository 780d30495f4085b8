package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	coremocks "github.com/raghavmehta/expense-ledger/mocks/port/core"
)

func newTestHub(t *testing.T) *Hub {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	return NewHub(mockLogger).(*Hub)
}

func receiveTick(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected a tick")
	}
}

func assertNoTick(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
		t.Fatal("unexpected tick")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubPublishSubscribe(t *testing.T) {
	t.Run("Subscriber receives a tick per publish", func(t *testing.T) {
		hub := newTestHub(t)

		ticks, cancel := hub.Subscribe(context.Background(), 42)
		defer cancel()

		hub.Publish(42)
		receiveTick(t, ticks)

		hub.Publish(42)
		receiveTick(t, ticks)
	})

	t.Run("Ticks are scoped to the published user", func(t *testing.T) {
		hub := newTestHub(t)

		ticks, cancel := hub.Subscribe(context.Background(), 42)
		defer cancel()

		hub.Publish(7)
		assertNoTick(t, ticks)
	})

	t.Run("Publish without subscribers never blocks", func(t *testing.T) {
		hub := newTestHub(t)

		hub.Publish(42)
		hub.Publish(42)
	})

	t.Run("Pending ticks coalesce", func(t *testing.T) {
		hub := newTestHub(t)

		ticks, cancel := hub.Subscribe(context.Background(), 42)
		defer cancel()

		hub.Publish(42)
		hub.Publish(42)
		hub.Publish(42)

		receiveTick(t, ticks)
		assertNoTick(t, ticks)
	})

	t.Run("Every subscriber of a user is signalled", func(t *testing.T) {
		hub := newTestHub(t)

		first, cancelFirst := hub.Subscribe(context.Background(), 42)
		defer cancelFirst()
		second, cancelSecond := hub.Subscribe(context.Background(), 42)
		defer cancelSecond()

		hub.Publish(42)

		receiveTick(t, first)
		receiveTick(t, second)
	})
}

func TestHubCancellation(t *testing.T) {
	t.Run("Cancel closes the channel", func(t *testing.T) {
		hub := newTestHub(t)

		ticks, cancel := hub.Subscribe(context.Background(), 42)
		cancel()

		select {
		case _, open := <-ticks:
			assert.False(t, open)
		case <-time.After(time.Second):
			t.Fatal("expected the channel to close")
		}

		// Cancel is idempotent and publish after removal is a no-op
		cancel()
		hub.Publish(42)
	})

	t.Run("Context end releases the subscription", func(t *testing.T) {
		hub := newTestHub(t)

		ctx, cancelCtx := context.WithCancel(context.Background())
		ticks, cancel := hub.Subscribe(ctx, 42)
		defer cancel()

		cancelCtx()

		select {
		case _, open := <-ticks:
			assert.False(t, open)
		case <-time.After(time.Second):
			t.Fatal("expected the channel to close")
		}
	})
}
