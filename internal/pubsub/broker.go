package pubsub

import (
	"context"
	"sync"
	"time"
)

// DefaultBuffer is the per-subscriber channel capacity.
const DefaultBuffer = 32

// Broker fans events out to every live subscriber.
// Publishing never blocks: a subscriber whose buffer is full misses the event.
type Broker[T any] struct {
	mu     sync.RWMutex
	subs   map[chan Event[T]]struct{}
	buffer int
	closed bool
}

// NewBroker returns a broker using DefaultBuffer.
func NewBroker[T any]() *Broker[T] {
	return NewBrokerWithBuffer[T](DefaultBuffer)
}

// NewBrokerWithBuffer returns a broker with a custom per-subscriber buffer.
func NewBrokerWithBuffer[T any](buffer int) *Broker[T] {
	if buffer < 1 {
		buffer = 1
	}
	return &Broker[T]{
		subs:   make(map[chan Event[T]]struct{}),
		buffer: buffer,
	}
}

// Subscribe registers a subscriber whose channel is closed when ctx ends
// or the broker is closed.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	ch := make(chan Event[T], b.buffer)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch
	}
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.remove(ch)
	}()

	return ch
}

func (b *Broker[T]) remove(ch chan Event[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[ch]; !ok {
		return
	}
	delete(b.subs, ch)
	close(ch)
}

// Publish delivers payload to every subscriber with room in its buffer.
func (b *Broker[T]) Publish(kind Kind, payload T) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}

	ev := Event[T]{Kind: kind, Payload: payload, At: time.Now()}
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Close closes every subscriber channel. Further publishes are ignored.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for ch := range b.subs {
		close(ch)
	}
	b.subs = nil
}

// Subscribers returns the number of live subscribers.
func (b *Broker[T]) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
