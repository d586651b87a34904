package handlers

import (
	"context"

	"github.com/envirosense/actionserver/pkg/domain"
)

// HealthEffects emits the general pollution health-effects template. The
// same template serves logged-in and logged-out users.
type HealthEffects struct {
	deps Deps
}

// NewHealthEffects creates the health-effects handler.
func NewHealthEffects(d Deps) *HealthEffects {
	return &HealthEffects{deps: d}
}

func (h *HealthEffects) Name() string {
	return "action_health_effects"
}

func (h *HealthEffects) Execute(ctx context.Context, conv *domain.Conversation) *domain.Result {
	if res := h.deps.moderationGate(conv); res != nil {
		return res
	}

	res := domain.NewResult()
	res.UtterTemplate(domain.TemplateHealthEffects)
	return res
}
