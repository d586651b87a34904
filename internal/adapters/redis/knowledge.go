// Package redis provides a knowledge source backed by a Redis hash of
// alias→description entries. The hash is read once at startup; the table
// never changes at runtime.
package redis

import (
	"context"
	"fmt"

	backend "github.com/redis/go-redis/v9"
)

const defaultKey = "envirosense:knowledge"

// Source implements ports.KnowledgeSource over Redis.
type Source struct {
	client *backend.Client
	key    string
}

// Option configures the Source.
type Option func(*Source)

// WithKey sets the hash key holding the entries.
func WithKey(key string) Option {
	return func(s *Source) {
		s.key = key
	}
}

// New creates a source with its own client.
func New(addr, password string, db int, opts ...Option) *Source {
	client := backend.NewClient(&backend.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a source from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Source {
	s := &Source{
		client: client,
		key:    defaultKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads all alias→description entries from the hash.
func (s *Source) Load(ctx context.Context) (map[string]string, error) {
	entries, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge hash %s: %w", s.key, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("knowledge hash %s is empty", s.key)
	}
	return entries, nil
}

// Close closes the redis client.
func (s *Source) Close() error {
	return s.client.Close()
}
