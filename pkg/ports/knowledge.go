package ports

import "context"

// KnowledgeSource provides the static topic table at process start.
// The table is loaded once and never mutated afterwards.
type KnowledgeSource interface {
	Load(ctx context.Context) (map[string]string, error)
}
