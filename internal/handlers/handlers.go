// Package handlers implements the action flows: each handler composes
// the moderation filter, the conversation accessors, and the backend
// client or knowledge base into one intent-specific side effect.
//
// Handlers never fail upward. Missing auth, tripped moderation, and
// backend errors all become user-facing messages inside the returned
// Result, so the dialogue engine always receives a response.
package handlers

import (
	"io"
	"log/slog"
	"time"

	"github.com/envirosense/actionserver/internal/backend"
	"github.com/envirosense/actionserver/internal/knowledge"
	"github.com/envirosense/actionserver/internal/moderation"
	"github.com/envirosense/actionserver/pkg/domain"
	"github.com/envirosense/actionserver/pkg/ports"
)

// Deps carries the shared collaborators injected into every handler.
type Deps struct {
	API       *backend.Client
	Filter    *moderation.Filter
	Knowledge *knowledge.Base
	Logger    *slog.Logger

	// Now supplies timestamps for created records; defaults to time.Now.
	Now func() time.Time
}

func (d Deps) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// All returns every handler the server registers, built over the shared
// dependencies.
func All(d Deps) []ports.Handler {
	return []ports.Handler{
		NewEcoPoints(d),
		NewMyReports(d),
		NewDailyMission(d),
		NewLeaderboardTop(d),
		NewReportSymptom(d),
		NewCreateHealthReport(d),
		NewSendConnectionRequest(d),
		NewExplainPollutant(d),
		NewHealthEffects(d),
		NewFallback(d),
		NewValidateSymptomForm(d),
	}
}

// moderationGate returns the short-circuit result when the latest user
// text trips the filter: the warning template plus a rewind, and no
// further work. It returns nil when the turn may proceed.
func (d Deps) moderationGate(conv *domain.Conversation) *domain.Result {
	if conv.Text == "" || !d.Filter.Flagged(conv.Text) {
		return nil
	}
	res := domain.NewResult()
	res.UtterTemplate(domain.TemplateModerationWarning)
	res.Emit(domain.RevertUserUtterance())
	return res
}

// needLogin builds the login-required result, optionally clearing slots
// the handler was about to consume.
func needLogin(clearSlots ...string) *domain.Result {
	res := domain.NewResult()
	res.UtterTemplate(domain.TemplateNeedLogin)
	for _, name := range clearSlots {
		res.Emit(domain.ClearSlot(name))
	}
	return res
}
