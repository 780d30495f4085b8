package notify

import (
	"context"
	"sync"

	"github.com/raghavmehta/expense-ledger/internal/domain/port/core"
	"github.com/raghavmehta/expense-ledger/internal/domain/port/notify"
)

// Hub is an in-process LedgerFeed. Each subscriber gets a one-slot channel;
// Publish never blocks, and a tick arriving while one is already pending is
// coalesced into it.
type Hub struct {
	mu          sync.Mutex
	subscribers map[uint64]map[*subscriber]struct{}
	logger      core.Logger
}

type subscriber struct {
	ch chan struct{}
}

// NewHub creates a new Hub
func NewHub(logger core.Logger) notify.LedgerFeed {
	return &Hub{
		subscribers: make(map[uint64]map[*subscriber]struct{}),
		logger:      logger,
	}
}

// Publish signals that the given user's transaction set changed
func (h *Hub) Publish(userID uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subscribers[userID] {
		select {
		case sub.ch <- struct{}{}:
		default:
			// A tick is already pending; the subscriber will recompute anyway
		}
	}
}

// Subscribe registers for change signals for the given user
func (h *Hub) Subscribe(ctx context.Context, userID uint64) (<-chan struct{}, func()) {
	sub := &subscriber{ch: make(chan struct{}, 1)}

	h.mu.Lock()
	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[*subscriber]struct{})
	}
	h.subscribers[userID][sub] = struct{}{}
	h.mu.Unlock()

	h.logger.Debug("Ledger feed subscription opened", map[string]any{
		"user_id": userID,
	})

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.remove(userID, sub)
		})
	}

	// Release the subscription when the caller's context ends
	go func() {
		<-ctx.Done()
		cancel()
	}()

	return sub.ch, cancel
}

func (h *Hub) remove(userID uint64, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs := h.subscribers[userID]
	if subs == nil {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(h.subscribers, userID)
	}
	close(sub.ch)
}
