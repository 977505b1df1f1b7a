package interfaces

import (
	"context"

	"villaweb/internal/domain/entities"
)

// QuoteFilter narrows the admin listing. Zero values mean "no filter";
// Search matches folio, client name and client email case-insensitively.
type QuoteFilter struct {
	Search      string
	Status      entities.QuoteStatus
	ProjectType entities.ProjectType
	Page        int
	Limit       int
}

// IQuoteRepository abstracts DynamoDB persistence for quotes and their
// secondary records (flattened answers, package line items).
//
// Lookup conventions follow the store layer contract used across usecases:
// a read that matches nothing returns a zero-value entity and a nil error;
// only transport/storage failures surface as errors.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByToken(ctx context.Context, token string) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)

	InsertAnswers(ctx context.Context, answers []entities.QuoteAnswer) error
	ListAnswersByQuoteID(ctx context.Context, quoteID string) ([]entities.QuoteAnswer, error)

	InsertItems(ctx context.Context, items []entities.QuoteItem) error
	ListItemsByQuoteID(ctx context.Context, quoteID string) ([]entities.QuoteItem, error)

	// ListFoliosByPrefix returns every folio starting with the given
	// "VW-<year>-" prefix; folio allocation takes max+1 over the result.
	ListFoliosByPrefix(ctx context.Context, prefix string) ([]string, error)

	// List returns one admin page ordered by creation time descending,
	// plus the total match count before pagination.
	List(ctx context.Context, filter QuoteFilter) ([]entities.Quote, int, error)
}
