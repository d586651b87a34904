package handlers

import (
	"context"

	"github.com/envirosense/actionserver/pkg/domain"
)

const reportLocationSlot = "report_location"

// CreateHealthReport creates a health report for the location collected
// by the health-report form.
type CreateHealthReport struct {
	deps Deps
}

// NewCreateHealthReport creates the health-report handler.
func NewCreateHealthReport(d Deps) *CreateHealthReport {
	return &CreateHealthReport{deps: d}
}

func (h *CreateHealthReport) Name() string {
	return "action_create_health_report"
}

func (h *CreateHealthReport) Execute(ctx context.Context, conv *domain.Conversation) *domain.Result {
	token, ok := conv.AuthToken()
	if !ok {
		return needLogin(reportLocationSlot)
	}

	location, ok := conv.Slot(reportLocationSlot)
	if !ok {
		res := domain.NewResult()
		res.Utter("I seem to have missed the location. Could you please try creating the report again?")
		return res
	}

	res := domain.NewResult()
	payload := map[string]string{
		"location": location,
		"details":  "Report created via chatbot",
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := h.deps.API.Post(ctx, "/reports", token, payload, &created); err != nil {
		h.deps.logger().Error("failed to create health report", "err", err, "location", location)
		res.Utterf("Sorry, I couldn't create the health report for %s right now.", location)
	} else {
		res.Utterf("Okay, I've created a new health report (ID: %s) for %s. You can add more details on the website.",
			orDefault(created.ID), location)
	}

	res.Emit(domain.ClearSlot(reportLocationSlot))
	return res
}
