package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/envirosense/actionserver/pkg/domain"
	"github.com/stretchr/testify/assert"
)

type stubHandler struct {
	name   string
	result *domain.Result
	calls  int
}

func (h *stubHandler) Name() string { return h.name }

func (h *stubHandler) Execute(ctx context.Context, conv *domain.Conversation) *domain.Result {
	h.calls++
	return h.result
}

func TestDispatchRunsRegisteredHandler(t *testing.T) {
	want := domain.NewResult()
	want.Utter("hello")
	h := &stubHandler{name: "action_greet", result: want}

	r := New()
	r.Register(h)

	res, err := r.Dispatch(context.Background(), "action_greet", &domain.Conversation{})
	assert.NoError(t, err)
	assert.Equal(t, want, res)
	assert.Equal(t, 1, h.calls)
}

func TestDispatchUnknownAction(t *testing.T) {
	r := New()

	_, err := r.Dispatch(context.Background(), "action_missing", &domain.Conversation{})
	assert.True(t, errors.Is(err, domain.ErrUnknownAction))
	assert.Contains(t, err.Error(), "action_missing")
}

func TestDispatchNeverReturnsNilResult(t *testing.T) {
	r := New()
	r.Register(&stubHandler{name: "action_broken", result: nil})

	res, err := r.Dispatch(context.Background(), "action_broken", &domain.Conversation{})
	assert.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res.Messages)
	assert.Empty(t, res.Events)
}

func TestDispatchInvokesHooks(t *testing.T) {
	result := domain.NewResult()
	result.Utter("one")
	result.Emit(domain.ClearSlot("symptom"))

	var started, ended []string
	var endedEvent *domain.ActionEvent
	hooks := domain.LifecycleHooks{
		OnActionStart: func(ctx context.Context, e *domain.ActionEvent) {
			started = append(started, e.Action)
		},
		OnActionEnd: func(ctx context.Context, e *domain.ActionEvent) {
			ended = append(ended, e.Action)
			endedEvent = e
		},
	}

	r := New(WithHooks(hooks))
	r.Register(&stubHandler{name: "action_greet", result: result})

	_, err := r.Dispatch(context.Background(), "action_greet", &domain.Conversation{Sender: "s1"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"action_greet"}, started)
	assert.Equal(t, []string{"action_greet"}, ended)
	assert.Equal(t, "s1", endedEvent.Sender)
	assert.Equal(t, 1, endedEvent.Messages)
	assert.Equal(t, 1, endedEvent.Events)
}

func TestNamesSorted(t *testing.T) {
	r := New()
	r.Register(
		&stubHandler{name: "action_b"},
		&stubHandler{name: "action_a"},
	)

	assert.Equal(t, []string{"action_a", "action_b"}, r.Names())
}
