package handlers

import (
	"context"

	"github.com/envirosense/actionserver/pkg/domain"
)

// EcoPoints fetches the user's current Eco-Points total from their
// profile.
type EcoPoints struct {
	deps Deps
}

// NewEcoPoints creates the eco-points handler.
func NewEcoPoints(d Deps) *EcoPoints {
	return &EcoPoints{deps: d}
}

func (h *EcoPoints) Name() string {
	return "action_get_eco_points"
}

func (h *EcoPoints) Execute(ctx context.Context, conv *domain.Conversation) *domain.Result {
	if res := h.deps.moderationGate(conv); res != nil {
		return res
	}

	token, ok := conv.AuthToken()
	if !ok {
		return needLogin()
	}

	res := domain.NewResult()
	var profile struct {
		EcoPoints int `json:"ecoPoints"`
	}
	if err := h.deps.API.Get(ctx, "/users/profile", token, &profile); err != nil {
		h.deps.logger().Error("failed to fetch eco points", "err", err)
		res.Utter("Sorry, I couldn't fetch your Eco-Points right now.")
		return res
	}

	res.Utterf("You currently have %d Eco-Points!", profile.EcoPoints)
	return res
}
