package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesTopicSubscribersOnly(t *testing.T) {
	bus := NewBus()
	done, unsubDone := bus.Subscribe("done")
	defer unsubDone()
	failed, unsubFailed := bus.Subscribe("failed")
	defer unsubFailed()

	bus.Publish("done", 42)

	select {
	case ev := <-done:
		assert.Equal(t, "done", ev.Topic)
		assert.Equal(t, 42, ev.Data)
	default:
		t.Fatal("expected event on done topic")
	}
	select {
	case <-failed:
		t.Fatal("failed topic must not receive done events")
	default:
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	bus := NewBus()
	ch, unsub := bus.Subscribe("done")
	unsub()
	unsub() // second call is a no-op

	_, open := <-ch
	assert.False(t, open)

	// publishing after unsubscribe must not panic on the closed channel
	bus.Publish("done", "x")
}

func TestPublishNeverBlocksOnSlowSubscriber(t *testing.T) {
	bus := NewBus()
	ch, unsub := bus.Subscribe("done")
	defer unsub()

	for i := 0; i < 40; i++ {
		bus.Publish("done", i)
	}
	// buffer is 16; the rest were dropped, the publisher never stalled
	require.Len(t, ch, 16)
	ev := <-ch
	assert.Equal(t, 0, ev.Data)
}
