package client

import (
	"context"
	"sync/atomic"

	"github.com/eximdesk/eximdesk-api/internal/domain/entity"
	"github.com/eximdesk/eximdesk-api/pkg/pagination"
)

// ErrStaleResult is returned when a newer search was issued while this one
// was in flight; its result must be discarded.
type staleError struct{}

func (staleError) Error() string { return "search result superseded by a newer query" }

// ErrStaleResult marks a search response that arrived after a newer query was
// issued.
var ErrStaleResult error = staleError{}

// Searcher issues invoice list queries and guarantees that only the latest
// query's result is delivered. Responses arriving out of order, for example
// when a slow earlier request completes after a faster later one, are
// discarded instead of overwriting newer results.
type Searcher struct {
	client *Client
	gen    atomic.Uint64
}

// NewSearcher creates a Searcher on top of an API client.
func NewSearcher(client *Client) *Searcher {
	return &Searcher{client: client}
}

// Search runs an invoice list query. If another Search call starts before
// this one's response arrives, the result is dropped and ErrStaleResult is
// returned.
func (s *Searcher) Search(ctx context.Context, params InvoiceListParams) (*pagination.Result[entity.Invoice], error) {
	gen := s.gen.Add(1)

	result, err := s.client.ListInvoices(ctx, params)

	// A newer query has been issued since this one started.
	if s.gen.Load() != gen {
		return nil, ErrStaleResult
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}
