package usecases

import (
	"context"

	"tansy/internal/domain/ticket"
	"tansy/internal/shared/errors"
	"tansy/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute returns the ticket, or a not-found error the caller must
// handle as a defined outcome rather than a fault.
func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		}
		return nil, err
	}

	dto := toTicketDTO(t)
	return &dto, nil
}
