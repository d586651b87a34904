// Package actionserver assembles the EnviroSense conversational action
// server: a registry of intent handlers dispatched by the external
// dialogue engine, each performing one side effect (backend API call,
// knowledge lookup, or form validation) against a per-turn conversation
// snapshot.
package actionserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	httpadapter "github.com/envirosense/actionserver/internal/adapters/http"
	redisadapter "github.com/envirosense/actionserver/internal/adapters/redis"
	"github.com/envirosense/actionserver/internal/backend"
	"github.com/envirosense/actionserver/internal/config"
	"github.com/envirosense/actionserver/internal/dispatch"
	"github.com/envirosense/actionserver/internal/handlers"
	"github.com/envirosense/actionserver/internal/knowledge"
	"github.com/envirosense/actionserver/internal/logging"
	"github.com/envirosense/actionserver/internal/moderation"
	"github.com/envirosense/actionserver/pkg/domain"
	"github.com/envirosense/actionserver/pkg/ports"
)

// Server is the assembled action server. It is safe for concurrent use:
// handlers are stateless and the only process-wide state is the
// read-only knowledge table.
type Server struct {
	cfg        config.Config
	registry   *dispatch.Registry
	logger     *slog.Logger
	hooks      domain.LifecycleHooks
	httpClient *http.Client
	knowledge  ports.KnowledgeSource
	now        func() time.Time
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithHooks registers observability hooks around every dispatch.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Server) {
		s.hooks = hooks
	}
}

// WithHTTPClient replaces the backend transport (timeouts, test doubles).
func WithHTTPClient(hc *http.Client) Option {
	return func(s *Server) {
		s.httpClient = hc
	}
}

// WithKnowledgeSource injects a custom knowledge source, bypassing the
// configured one.
func WithKnowledgeSource(src ports.KnowledgeSource) Option {
	return func(s *Server) {
		s.knowledge = src
	}
}

// WithClock sets the time source used for created records.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// New assembles the server from configuration: moderation filter,
// knowledge base, backend client, and the full handler registry.
func New(cfg config.Config, opts ...Option) (*Server, error) {
	s := &Server{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	if s.httpClient == nil {
		s.httpClient = &http.Client{Timeout: time.Duration(cfg.Backend.Timeout)}
	}

	kb, err := s.buildKnowledge()
	if err != nil {
		return nil, err
	}

	api := backend.New(cfg.Backend.BaseURL,
		backend.WithHTTPClient(s.httpClient),
		backend.WithLogger(s.logger),
	)
	filter := moderation.NewFilter(cfg.Moderation.ExtraWords...)

	s.registry = dispatch.New(
		dispatch.WithLogger(s.logger),
		dispatch.WithHooks(s.hooks),
	)
	s.registry.Register(handlers.All(handlers.Deps{
		API:       api,
		Filter:    filter,
		Knowledge: kb,
		Logger:    s.logger,
		Now:       s.now,
	})...)

	return s, nil
}

func (s *Server) buildKnowledge() (*knowledge.Base, error) {
	if s.knowledge != nil {
		return knowledge.FromSource(context.Background(), s.knowledge)
	}

	kc := s.cfg.Knowledge
	switch kc.Source {
	case "", config.KnowledgeBuiltin:
		return knowledge.Builtin(), nil
	case config.KnowledgeFile:
		return knowledge.LoadFile(kc.File)
	case config.KnowledgeRedis:
		var srcOpts []redisadapter.Option
		if kc.Redis.Key != "" {
			srcOpts = append(srcOpts, redisadapter.WithKey(kc.Redis.Key))
		}
		src := redisadapter.New(kc.Redis.Addr, kc.Redis.Password, kc.Redis.DB, srcOpts...)
		defer src.Close()
		return knowledge.FromSource(context.Background(), src)
	default:
		return nil, fmt.Errorf("unknown knowledge source: %s", kc.Source)
	}
}

// Dispatch executes the named action against a conversation snapshot.
// This is the inbound invocation contract for embedding hosts; the HTTP
// adapter goes through it too.
func (s *Server) Dispatch(ctx context.Context, action string, conv *domain.Conversation) (*domain.Result, error) {
	return s.registry.Dispatch(ctx, action, conv)
}

// Actions returns the registered action names.
func (s *Server) Actions() []string {
	return s.registry.Names()
}

// Handler returns the webhook HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return httpadapter.NewHandler(s.registry, httpadapter.WithLogger(s.logger))
}
