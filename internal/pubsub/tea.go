package pubsub

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Listener keeps one subscription alive across Bubble Tea updates.
// After handling a delivered Event, call Next again to keep listening.
type Listener[T any] struct {
	ctx context.Context
	ch  <-chan Event[T]
}

// Listen subscribes to b for the lifetime of ctx.
func Listen[T any](ctx context.Context, b *Broker[T]) *Listener[T] {
	return &Listener[T]{ctx: ctx, ch: b.Subscribe(ctx)}
}

// Next returns a command that resolves to the next Event, or nil once the
// context is done or the channel is closed.
func (l *Listener[T]) Next() tea.Cmd {
	if l == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-l.ctx.Done():
			return nil
		case ev, ok := <-l.ch:
			if !ok {
				return nil
			}
			return ev
		}
	}
}
