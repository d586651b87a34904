package handlers

import (
	"context"

	"github.com/envirosense/actionserver/pkg/domain"
)

// Fallback answers anything outside the assistant's scope and rewinds
// the utterance so it does not derail the dialogue policy.
type Fallback struct {
	deps Deps
}

// NewFallback creates the general-knowledge fallback handler.
func NewFallback(d Deps) *Fallback {
	return &Fallback{deps: d}
}

func (h *Fallback) Name() string {
	return "action_general_knowledge_fallback"
}

func (h *Fallback) Execute(ctx context.Context, conv *domain.Conversation) *domain.Result {
	h.deps.logger().Debug("fallback triggered", "text", conv.Text)

	res := domain.NewResult()
	res.UtterTemplate(domain.TemplateOutOfScope)
	res.Emit(domain.RevertUserUtterance())
	return res
}
