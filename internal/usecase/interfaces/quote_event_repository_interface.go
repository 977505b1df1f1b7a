package interfaces

import (
	"context"

	"villaweb/internal/domain/entities"
)

// IQuoteEventRepository abstracts the append-only audit trail.
//
// Events are immutable: the interface deliberately offers no update or
// delete operation.
type IQuoteEventRepository interface {
	Append(ctx context.Context, event entities.QuoteEvent) error

	// ListByQuoteID returns events ordered newest-first.
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuoteEvent, error)
}
