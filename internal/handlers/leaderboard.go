package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/envirosense/actionserver/pkg/domain"
)

// maxListedContributors caps how many leaderboard entries are shown.
const maxListedContributors = 3

// LeaderboardTop shows the current top contributors. The leaderboard is
// public, so no auth gate applies.
type LeaderboardTop struct {
	deps Deps
}

// NewLeaderboardTop creates the leaderboard handler.
func NewLeaderboardTop(d Deps) *LeaderboardTop {
	return &LeaderboardTop{deps: d}
}

func (h *LeaderboardTop) Name() string {
	return "action_get_leaderboard_top"
}

func (h *LeaderboardTop) Execute(ctx context.Context, conv *domain.Conversation) *domain.Result {
	if res := h.deps.moderationGate(conv); res != nil {
		return res
	}

	res := domain.NewResult()
	var leaderboard []struct {
		Username  string `json:"username"`
		EcoPoints int    `json:"ecoPoints"`
	}
	if err := h.deps.API.Get(ctx, "/users/leaderboard", "", &leaderboard); err != nil {
		h.deps.logger().Error("failed to fetch leaderboard", "err", err)
		res.Utter("Sorry, I couldn't fetch the leaderboard right now.")
		return res
	}

	if len(leaderboard) == 0 {
		res.Utter("The leaderboard is currently empty.")
		return res
	}

	if len(leaderboard) > maxListedContributors {
		leaderboard = leaderboard[:maxListedContributors]
	}
	lines := make([]string, 0, len(leaderboard))
	for i, u := range leaderboard {
		lines = append(lines, fmt.Sprintf("- %d. %s (%d points)",
			i+1, orDefault(u.Username), u.EcoPoints))
	}
	res.Utterf("Here are the current top contributors:\n%s", strings.Join(lines, "\n"))
	return res
}
