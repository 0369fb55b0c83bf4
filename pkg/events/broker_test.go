package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_PublishToSubscribers(t *testing.T) {
	b := NewBroker()

	ch1 := b.Subscribe("run-1")
	ch2 := b.Subscribe("run-1")
	other := b.Subscribe("run-2")

	b.Publish("run-1", TokenPayload{Type: EventTypeToken, RunID: "run-1", Delta: "hello"})

	tok1 := <-ch1
	tok2 := <-ch2
	assert.Equal(t, "hello", tok1.Delta)
	assert.Equal(t, "hello", tok2.Delta)
	assert.Empty(t, other, "subscriber of a different run must not receive the token")
}

func TestBroker_Unsubscribe(t *testing.T) {
	b := NewBroker()

	ch := b.Subscribe("run-1")
	assert.Equal(t, 1, b.SubscriberCount("run-1"))

	b.Unsubscribe("run-1", ch)
	assert.Equal(t, 0, b.SubscriberCount("run-1"))

	_, open := <-ch
	assert.False(t, open, "channel must be closed on unsubscribe")

	// Unsubscribing again is a no-op
	b.Unsubscribe("run-1", ch)
}

func TestBroker_PublishNoSubscribers(t *testing.T) {
	b := NewBroker()
	// Must not panic or block
	b.Publish("run-1", TokenPayload{Delta: "dropped"})
}

func TestBroker_SlowSubscriberDropsTokens(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe("run-1")

	for i := 0; i < subscriberBuffer+10; i++ {
		b.Publish("run-1", TokenPayload{Delta: "x"})
	}

	// The buffer holds at most subscriberBuffer deltas; the rest were dropped.
	require.Len(t, ch, subscriberBuffer)
}
