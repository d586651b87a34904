package ports

import (
	"context"

	"github.com/envirosense/actionserver/pkg/domain"
)

// Handler is the capability every action implements: a stable name used
// as dispatch key, and an execution over the turn's conversation snapshot.
//
// Execute never fails from the dispatcher's point of view: auth gaps,
// moderation hits, and backend errors are all folded into the returned
// Result so the dialogue engine always gets a response. Handlers must be
// stateless; concurrent invocations for different sessions share nothing
// but read-only data.
type Handler interface {
	Name() string
	Execute(ctx context.Context, conv *domain.Conversation) *domain.Result
}
