package domain

import (
	"context"
	"time"
)

// ActionEvent describes one handler invocation for observability hooks.
type ActionEvent struct {
	Action   string
	Sender   string
	Duration time.Duration
	Messages int
	Events   int
}

// LifecycleHooks defines callbacks for dispatcher observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnActionStart func(context.Context, *ActionEvent)
	OnActionEnd   func(context.Context, *ActionEvent)
}
