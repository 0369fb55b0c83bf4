package events

import (
	"sync"
)

// subscriberBuffer is the per-subscriber channel capacity. Slow consumers
// drop token deltas rather than block the publisher; the persisted answer
// event carries the authoritative text.
const subscriberBuffer = 64

// Broker fans out transient token events to live SSE subscribers within
// this process. Tokens are never persisted, so a subscriber only sees
// deltas produced while it is connected.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan TokenPayload]struct{} // runID → subscriber channels
}

// NewBroker creates an empty broker.
func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[chan TokenPayload]struct{}),
	}
}

// Subscribe registers a token subscriber for a run. The caller must call
// Unsubscribe with the returned channel when done.
func (b *Broker) Subscribe(runID string) chan TokenPayload {
	ch := make(chan TokenPayload, subscriberBuffer)
	b.mu.Lock()
	if b.subs[runID] == nil {
		b.subs[runID] = make(map[chan TokenPayload]struct{})
	}
	b.subs[runID][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (b *Broker) Unsubscribe(runID string, ch chan TokenPayload) {
	b.mu.Lock()
	if set, ok := b.subs[runID]; ok {
		if _, ok := set[ch]; ok {
			delete(set, ch)
			close(ch)
		}
		if len(set) == 0 {
			delete(b.subs, runID)
		}
	}
	b.mu.Unlock()
}

// Publish delivers a token to all current subscribers of the run.
// Non-blocking: a full subscriber buffer drops the delta.
func (b *Broker) Publish(runID string, payload TokenPayload) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs[runID] {
		select {
		case ch <- payload:
		default:
		}
	}
}

// SubscriberCount returns the number of live subscribers for a run.
func (b *Broker) SubscriberCount(runID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[runID])
}
