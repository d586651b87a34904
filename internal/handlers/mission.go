package handlers

import (
	"context"

	"github.com/envirosense/actionserver/pkg/domain"
)

// DailyMission fetches the mission assigned to the user for today.
type DailyMission struct {
	deps Deps
}

// NewDailyMission creates the daily-mission handler.
func NewDailyMission(d Deps) *DailyMission {
	return &DailyMission{deps: d}
}

func (h *DailyMission) Name() string {
	return "action_get_daily_mission"
}

func (h *DailyMission) Execute(ctx context.Context, conv *domain.Conversation) *domain.Result {
	if res := h.deps.moderationGate(conv); res != nil {
		return res
	}

	token, ok := conv.AuthToken()
	if !ok {
		return needLogin()
	}

	res := domain.NewResult()
	var mission struct {
		Description string `json:"description"`
	}
	if err := h.deps.API.Get(ctx, "/missions/today", token, &mission); err != nil {
		h.deps.logger().Error("failed to fetch daily mission", "err", err)
		res.Utter("Sorry, I couldn't fetch your daily mission right now.")
		return res
	}

	desc := mission.Description
	if desc == "" {
		desc = "No mission assigned today."
	}
	res.Utterf("Today's mission: %s", desc)
	return res
}
