package usecases

import (
	"context"
	"time"

	"tansy/internal/domain/ticket"
	vo "tansy/internal/domain/ticket/valueobjects"
	"tansy/internal/shared/errors"
	"tansy/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	Status      string
	Priority    string
	Requester   string
	Assignee    string
	Tags        string
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	Priority  string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	status := vo.DefaultStatus
	if cmd.Status != "" {
		status = vo.Status(cmd.Status)
	}
	priority := vo.DefaultPriority
	if cmd.Priority != "" {
		priority = vo.Priority(cmd.Priority)
	}

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		status,
		priority,
		cmd.Requester,
		cmd.Assignee,
		cmd.Tags,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status().String(),
		Priority:  newTicket.Priority().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}

	if cmd.Status != "" && !vo.Status(cmd.Status).IsValid() {
		return errors.NewValidationError("invalid status", cmd.Status)
	}

	if cmd.Priority != "" && !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority", cmd.Priority)
	}

	return nil
}
