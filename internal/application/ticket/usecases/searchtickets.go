package usecases

import (
	"context"

	"tansy/internal/domain/ticket"
	"tansy/internal/shared/errors"
	"tansy/internal/shared/logger"
)

type SearchTicketsQuery struct {
	Query string
}

type SearchTicketsResult struct {
	Tickets []TicketSummaryDTO
}

type SearchTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewSearchTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *SearchTicketsUseCase {
	return &SearchTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute runs a substring search over title, description and tags.
// Callers route blank queries to the listing instead; a blank query
// here is rejected rather than silently matching everything.
func (uc *SearchTicketsUseCase) Execute(ctx context.Context, query SearchTicketsQuery) (*SearchTicketsResult, error) {
	if query.Query == "" {
		return nil, errors.NewValidationError("search query cannot be empty")
	}

	tickets, err := uc.ticketRepo.Search(ctx, query.Query)
	if err != nil {
		uc.logger.Errorw("failed to search tickets", "query", query.Query, "error", err)
		return nil, err
	}

	return &SearchTicketsResult{
		Tickets: toTicketSummaryDTOs(tickets),
	}, nil
}
