// Package pubsub provides a small generic publish/subscribe hub used to move
// background notifications (log entries, data reloads) into the Bubble Tea loop.
package pubsub

import "time"

// Kind labels what happened to a payload.
type Kind string

const (
	KindLogged  Kind = "logged"
	KindChanged Kind = "changed"
	KindFailed  Kind = "failed"
)

// Event is a delivered notification.
type Event[T any] struct {
	Kind    Kind
	Payload T
	At      time.Time
}
