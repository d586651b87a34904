package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/envirosense/actionserver/pkg/domain"
)

// maxListedReports caps how many recent reports are echoed back in chat.
const maxListedReports = 5

// MyReports lists the user's most recent environmental reports.
type MyReports struct {
	deps Deps
}

// NewMyReports creates the report-listing handler.
func NewMyReports(d Deps) *MyReports {
	return &MyReports{deps: d}
}

func (h *MyReports) Name() string {
	return "action_get_my_reports"
}

func (h *MyReports) Execute(ctx context.Context, conv *domain.Conversation) *domain.Result {
	if res := h.deps.moderationGate(conv); res != nil {
		return res
	}

	token, ok := conv.AuthToken()
	if !ok {
		return needLogin()
	}

	res := domain.NewResult()
	var reports []struct {
		ID       string `json:"id"`
		Location struct {
			Name string `json:"name"`
		} `json:"location"`
	}
	if err := h.deps.API.Get(ctx, "/reports/mine", token, &reports); err != nil {
		h.deps.logger().Error("failed to fetch reports", "err", err)
		res.Utter("Sorry, I couldn't fetch your reports right now.")
		return res
	}

	if len(reports) == 0 {
		res.Utter("You haven't submitted any reports recently.")
		return res
	}

	if len(reports) > maxListedReports {
		reports = reports[:maxListedReports]
	}
	lines := make([]string, 0, len(reports))
	for _, r := range reports {
		lines = append(lines, fmt.Sprintf("- Report ID: %s, Location: %s",
			orDefault(r.ID), orDefault(r.Location.Name)))
	}
	res.Utterf("Here are your recent reports:\n%s", strings.Join(lines, "\n"))
	return res
}

// orDefault substitutes the placeholder the chat uses for missing fields.
func orDefault(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
