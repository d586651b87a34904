package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/envirosense/actionserver/internal/handlers"
	"github.com/envirosense/actionserver/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardTopThreeWithoutAuth(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/leaderboard", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "leaderboard is public")
		fmt.Fprint(w, `[
			{"username":"ana","ecoPoints":300},
			{"username":"bruno","ecoPoints":250},
			{"username":"clara","ecoPoints":200},
			{"username":"diego","ecoPoints":150}
		]`)
	})
	h := handlers.NewLeaderboardTop(newDeps(fb))

	// No token on purpose: the handler must still work.
	res := h.Execute(context.Background(), &domain.Conversation{Text: "who is on top"})

	require.Len(t, res.Messages, 1)
	text := res.Messages[0].Text
	assert.Contains(t, text, "Here are the current top contributors:")
	assert.Contains(t, text, "- 1. ana (300 points)")
	assert.Contains(t, text, "- 3. clara (200 points)")
	assert.NotContains(t, text, "diego")
}

func TestLeaderboardEmpty(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	})
	h := handlers.NewLeaderboardTop(newDeps(fb))

	res := h.Execute(context.Background(), &domain.Conversation{Text: "leaderboard"})

	assert.Equal(t, []domain.Message{domain.Text("The leaderboard is currently empty.")}, res.Messages)
}

func TestLeaderboardFailure(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})
	h := handlers.NewLeaderboardTop(newDeps(fb))

	res := h.Execute(context.Background(), &domain.Conversation{Text: "leaderboard"})

	assert.Equal(t, []domain.Message{domain.Text("Sorry, I couldn't fetch the leaderboard right now.")}, res.Messages)
}

func TestLeaderboardModeration(t *testing.T) {
	fb := newFakeBackend(t, nil)
	h := handlers.NewLeaderboardTop(newDeps(fb))

	res := h.Execute(context.Background(), &domain.Conversation{Text: "stupid leaderboard"})

	assertModerated(t, res)
	assert.Zero(t, fb.calls())
}
