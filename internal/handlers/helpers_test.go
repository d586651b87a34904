package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/envirosense/actionserver/internal/backend"
	"github.com/envirosense/actionserver/internal/handlers"
	"github.com/envirosense/actionserver/internal/knowledge"
	"github.com/envirosense/actionserver/internal/moderation"
	"github.com/envirosense/actionserver/pkg/domain"
	"github.com/stretchr/testify/assert"
)

// fakeBackend records every request the handler under test issues.
type fakeBackend struct {
	mu       sync.Mutex
	requests []*http.Request
	handler  http.HandlerFunc
	server   *httptest.Server
}

func newFakeBackend(t *testing.T, fn http.HandlerFunc) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{handler: fn}
	fb.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		fb.requests = append(fb.requests, r)
		fb.mu.Unlock()
		if fb.handler != nil {
			fb.handler(w, r)
		}
	}))
	t.Cleanup(fb.server.Close)
	return fb
}

func (fb *fakeBackend) calls() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return len(fb.requests)
}

func newDeps(fb *fakeBackend) handlers.Deps {
	d := handlers.Deps{
		Filter:    moderation.NewFilter(),
		Knowledge: knowledge.Builtin(),
	}
	if fb != nil {
		d.API = backend.New(fb.server.URL)
	}
	return d
}

func authedConv(text string) *domain.Conversation {
	return &domain.Conversation{Text: text, Token: "test-token"}
}

func assertOnlyTemplate(t *testing.T, res *domain.Result, name string) {
	t.Helper()
	assert.Equal(t, []domain.Message{domain.Templated(name)}, res.Messages)
}

func assertModerated(t *testing.T, res *domain.Result) {
	t.Helper()
	assertOnlyTemplate(t, res, domain.TemplateModerationWarning)
	assert.Equal(t, []domain.Event{domain.RevertUserUtterance()}, res.Events)
}
