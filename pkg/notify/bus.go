// Package notify is a small in-process observer bus. It replaces the
// source's process-wide broadcast singleton with an injected value that has
// an explicit subscribe/unsubscribe lifecycle.
package notify

import "sync"

type Event struct {
	Topic string
	Data  any
}

type Bus struct {
	mu   sync.Mutex
	next int
	subs map[string]map[int]chan Event
}

func NewBus() *Bus {
	return &Bus{subs: map[string]map[int]chan Event{}}
}

// Subscribe returns a receive channel for topic and a function that tears
// the subscription down. After unsubscribe returns, the channel is closed
// and no further events arrive on it.
func (b *Bus) Subscribe(topic string) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan Event, 16)
	id := b.next
	b.next++
	if b.subs[topic] == nil {
		b.subs[topic] = map[int]chan Event{}
	}
	b.subs[topic][id] = ch
	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[topic][id]; ok {
			delete(b.subs[topic], id)
			close(sub)
		}
	}
}

// Publish never blocks; a subscriber that has fallen 16 events behind misses
// the event rather than stalling the publisher.
func (b *Bus) Publish(topic string, data any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs[topic] {
		select {
		case ch <- Event{Topic: topic, Data: data}:
		default:
		}
	}
}
