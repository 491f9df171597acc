package usecases

import (
	"context"

	"tansy/internal/domain/ticket"
	vo "tansy/internal/domain/ticket/valueobjects"
	"tansy/internal/shared/errors"
	"tansy/internal/shared/logger"
)

// ListTicketsQuery holds optional equality filters. An empty string
// means "match all values of that field"; set filters combine with AND.
type ListTicketsQuery struct {
	Status   string
	Priority string
	Assignee string
}

type ListTicketsResult struct {
	Tickets []TicketSummaryDTO
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	tickets, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	return &ListTicketsResult{
		Tickets: toTicketSummaryDTOs(tickets),
	}, nil
}

func (uc *ListTicketsUseCase) buildFilter(query ListTicketsQuery) (ticket.Filter, error) {
	var filter ticket.Filter

	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return ticket.Filter{}, errors.NewValidationError("invalid status filter", query.Status)
		}
		filter.Status = &status
	}

	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return ticket.Filter{}, errors.NewValidationError("invalid priority filter", query.Priority)
		}
		filter.Priority = &priority
	}

	if query.Assignee != "" {
		assignee := query.Assignee
		filter.Assignee = &assignee
	}

	return filter, nil
}
