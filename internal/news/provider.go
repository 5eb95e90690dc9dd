package news

import (
	"context"
	"errors"
)

// Query is one search request against a single provider. Text is the
// full query variant (team plus tactical keyword); Team carries the bare
// team name for providers that filter instead of search.
type Query struct {
	Text     string
	Team     string
	Limit    int
	Language string
}

// Provider fetches raw articles from one external news source.
// Implementations map provider-specific fields onto Item and must honor
// ctx cancellation; callers treat any error as that query yielding
// nothing.
type Provider interface {
	Search(ctx context.Context, q Query) ([]Item, error)
	Name() string
}

var (
	// ErrRateLimited is returned when a provider answers with HTTP 429.
	// The query is treated as empty and never retried within a request.
	ErrRateLimited = errors.New("news provider rate limit exceeded")

	// ErrUnavailable is returned when a provider cannot be reached or
	// answers with a server error.
	ErrUnavailable = errors.New("news provider unavailable")
)
