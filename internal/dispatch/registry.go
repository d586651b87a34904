// Package dispatch maps action names to registered handlers and runs
// them, invoking observability hooks around each execution.
package dispatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/envirosense/actionserver/pkg/domain"
	"github.com/envirosense/actionserver/pkg/ports"
)

// Registry manages the available action handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]ports.Handler
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the structured logger used for dispatch outcomes.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithHooks registers observability hooks invoked around every dispatch.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(r *Registry) {
		r.hooks = hooks
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		handlers: make(map[string]ports.Handler),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a handler under its own name.
// A handler with the same name is overwritten.
func (r *Registry) Register(handlers ...ports.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, h := range handlers {
		r.handlers[h.Name()] = h
	}
}

// Names returns the registered action names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch looks up an action by name and executes it against the turn's
// conversation snapshot. It returns an error only when the action is not
// registered; handler-level failures are folded into the Result.
func (r *Registry) Dispatch(ctx context.Context, name string, conv *domain.Conversation) (*domain.Result, error) {
	r.mu.RLock()
	h, ok := r.handlers[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownAction, name)
	}

	event := &domain.ActionEvent{Action: name, Sender: conv.Sender}
	if r.hooks.OnActionStart != nil {
		r.hooks.OnActionStart(ctx, event)
	}

	start := time.Now()
	res := h.Execute(ctx, conv)
	if res == nil {
		// Handlers must not return nil, but a broken one should not
		// leave the dialogue engine without a response.
		res = domain.NewResult()
	}

	event.Duration = time.Since(start)
	event.Messages = len(res.Messages)
	event.Events = len(res.Events)
	if r.hooks.OnActionEnd != nil {
		r.hooks.OnActionEnd(ctx, event)
	}

	r.logger.Debug("action dispatched",
		"action", name,
		"sender", conv.Sender,
		"messages", event.Messages,
		"events", event.Events,
		"duration", event.Duration,
	)
	return res, nil
}
