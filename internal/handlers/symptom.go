package handlers

import (
	"context"
	"time"

	"github.com/envirosense/actionserver/pkg/domain"
)

const symptomSlot = "symptom"

// ReportSymptom submits the symptom collected by the symptom form to the
// health endpoint. It runs after the form, so it consumes a slot rather
// than free text and skips the moderation gate.
type ReportSymptom struct {
	deps Deps
}

// NewReportSymptom creates the symptom-reporting handler.
func NewReportSymptom(d Deps) *ReportSymptom {
	return &ReportSymptom{deps: d}
}

func (h *ReportSymptom) Name() string {
	return "action_report_symptom"
}

func (h *ReportSymptom) Execute(ctx context.Context, conv *domain.Conversation) *domain.Result {
	token, ok := conv.AuthToken()
	if !ok {
		// The form may have run without a login; drop its slot too.
		return needLogin(symptomSlot)
	}

	symptom, ok := conv.Slot(symptomSlot)
	if !ok {
		// Defensive: the form should have filled it.
		res := domain.NewResult()
		res.Utter("I seem to have missed the symptom. Could you please try reporting it again?")
		return res
	}

	res := domain.NewResult()
	payload := map[string]string{
		"symptom":   symptom,
		"timestamp": h.deps.now().Format(time.RFC3339),
	}
	if err := h.deps.API.Post(ctx, "/health/report", token, payload, nil); err != nil {
		h.deps.logger().Error("failed to report symptom", "err", err)
		res.Utterf("Sorry, I couldn't log your symptom '%s' right now. Please try again later.", symptom)
	} else {
		res.Utterf("Got it. I've logged your symptom: '%s'. Thank you for contributing!", symptom)
	}

	// The slot is transient; reset it whatever the backend said.
	res.Emit(domain.ClearSlot(symptomSlot))
	return res
}
