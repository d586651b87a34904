package handlers

import (
	"context"
	"strings"

	"github.com/envirosense/actionserver/pkg/domain"
)

// pollutantEntity is the entity type the NLU extracts pollutant names as.
const pollutantEntity = "pollutant"

const clarifyPollutant = "Which pollutant are you asking about? I know about CO, SO2, Ozone, PM2.5, PM10, etc."

// ExplainPollutant answers questions about known pollutants from the
// static knowledge base. It works for logged-out users: no auth gate, no
// backend call.
type ExplainPollutant struct {
	deps Deps
}

// NewExplainPollutant creates the pollutant-explainer handler.
func NewExplainPollutant(d Deps) *ExplainPollutant {
	return &ExplainPollutant{deps: d}
}

func (h *ExplainPollutant) Name() string {
	return "action_explain_pollutant"
}

func (h *ExplainPollutant) Execute(ctx context.Context, conv *domain.Conversation) *domain.Result {
	if res := h.deps.moderationGate(conv); res != nil {
		return res
	}

	// Entity extraction is authoritative; the raw-text scan is only a
	// backup for when the NLU produced nothing.
	pollutants := conv.EntityValues(pollutantEntity)
	if len(pollutants) == 0 {
		pollutants = h.deps.Knowledge.Scan(conv.Text)
	}

	res := domain.NewResult()
	if len(pollutants) == 0 {
		res.Utter(clarifyPollutant)
		return res
	}

	answers := make([]string, 0, len(pollutants))
	for _, p := range pollutants {
		if desc, ok := h.deps.Knowledge.Describe(p); ok {
			answers = append(answers, desc)
		} else {
			answers = append(answers, "I don't have specific information on '"+p+"'.")
		}
	}
	res.Utter(strings.Join(answers, "\n\n"))
	return res
}
