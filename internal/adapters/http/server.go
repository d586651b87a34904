// Package http adapts the dialogue engine's action webhook to the
// dispatch core: it decodes the tracker payload into a Conversation,
// dispatches the named action, and encodes the resulting messages and
// events back onto the wire.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/envirosense/actionserver/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/mitchellh/mapstructure"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dispatcher is the slice of the dispatch core the adapter needs.
type Dispatcher interface {
	Dispatch(ctx context.Context, name string, conv *domain.Conversation) (*domain.Result, error)
	Names() []string
}

// Server translates webhook HTTP traffic for a Dispatcher.
type Server struct {
	dispatcher Dispatcher
	logger     *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for the action server.
func NewHandler(d Dispatcher, opts ...Option) http.Handler {
	s := &Server{
		dispatcher: d,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Post("/webhook", s.handleWebhook)
	r.Get("/health", s.handleHealth)
	r.Get("/actions", s.handleActions)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// -- Wire types --

type webhookRequest struct {
	NextAction string  `json:"next_action"`
	SenderID   string  `json:"sender_id"`
	Tracker    tracker `json:"tracker"`
}

type tracker struct {
	SenderID      string         `json:"sender_id"`
	Slots         map[string]any `json:"slots"`
	LatestMessage latestMessage  `json:"latest_message"`
}

type latestMessage struct {
	Text     string         `json:"text"`
	Entities []wireEntity   `json:"entities"`
	Metadata map[string]any `json:"metadata"`
}

type wireEntity struct {
	Entity string `json:"entity"`
	Value  any    `json:"value"`
}

// authMetadata is the typed shape of the untyped metadata map.
type authMetadata struct {
	Token string `mapstructure:"token"`
}

type webhookResponse struct {
	Events    []domain.Event   `json:"events"`
	Responses []domain.Message `json:"responses"`
}

type errorResponse struct {
	Error      string `json:"error"`
	ActionName string `json:"action_name,omitempty"`
}

// -- Handlers --

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var body webhookRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if body.NextAction == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "next_action is required"})
		return
	}

	conv, err := conversationFromWire(&body)
	if err != nil {
		s.logger.Error("failed to map tracker payload", "err", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid tracker payload"})
		return
	}

	result, err := s.dispatcher.Dispatch(r.Context(), body.NextAction, conv)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownAction) {
			writeJSON(w, http.StatusNotFound, errorResponse{
				Error:      fmt.Sprintf("no registered action found for name '%s'", body.NextAction),
				ActionName: body.NextAction,
			})
			return
		}
		s.logger.Error("dispatch failed", "err", err, "action", body.NextAction)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "dispatch failed"})
		return
	}

	s.logger.Info("action executed",
		"action", body.NextAction,
		"sender", conv.Sender,
		"responses", len(result.Messages),
	)
	writeJSON(w, http.StatusOK, responseFromResult(result))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleActions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"actions": s.dispatcher.Names()})
}

// -- Mapping --

func conversationFromWire(req *webhookRequest) (*domain.Conversation, error) {
	t := &req.Tracker

	slots := make(map[string]string)
	if t.Slots != nil {
		// Slot values arrive untyped; non-string values are stringified
		// and explicit nulls drop out.
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &slots,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build slot decoder: %w", err)
		}
		filled := make(map[string]any, len(t.Slots))
		for name, value := range t.Slots {
			if value != nil {
				filled[name] = value
			}
		}
		if err := dec.Decode(filled); err != nil {
			return nil, fmt.Errorf("failed to decode slots: %w", err)
		}
	}

	var meta authMetadata
	if t.LatestMessage.Metadata != nil {
		if err := mapstructure.Decode(t.LatestMessage.Metadata, &meta); err != nil {
			return nil, fmt.Errorf("failed to decode metadata: %w", err)
		}
	}

	entities := make([]domain.Entity, 0, len(t.LatestMessage.Entities))
	for _, e := range t.LatestMessage.Entities {
		entities = append(entities, domain.Entity{
			Type:  e.Entity,
			Value: fmt.Sprintf("%v", e.Value),
		})
	}

	sender := t.SenderID
	if sender == "" {
		sender = req.SenderID
	}

	return &domain.Conversation{
		Sender:   sender,
		Text:     t.LatestMessage.Text,
		Entities: entities,
		Slots:    slots,
		Token:    meta.Token,
	}, nil
}

func responseFromResult(res *domain.Result) webhookResponse {
	out := webhookResponse{
		Events:    res.Events,
		Responses: res.Messages,
	}
	// The wire format wants arrays, never null.
	if out.Events == nil {
		out.Events = []domain.Event{}
	}
	if out.Responses == nil {
		out.Responses = []domain.Message{}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
