package usecases

import (
	"context"

	"tansy/internal/domain/ticket"
	vo "tansy/internal/domain/ticket/valueobjects"
	"tansy/internal/shared/errors"
	"tansy/internal/shared/logger"
)

// UpdateTicketCommand is a sparse patch: nil fields are left untouched,
// set fields are written, and updated_at is refreshed whenever anything
// is written. Presence distinguishes "not mentioned" from "cleared".
type UpdateTicketCommand struct {
	TicketID    uint
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	Requester   *string
	Assignee    *string
	Tags        *string
}

type UpdateTicketResult struct {
	TicketID uint
	Updated  bool
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	patch, err := uc.buildPatch(cmd)
	if err != nil {
		uc.logger.Errorw("invalid update ticket command", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	updated, err := uc.ticketRepo.UpdateFields(ctx, cmd.TicketID, patch)
	if err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if updated {
		uc.logger.Infow("ticket updated", "ticket_id", cmd.TicketID)
	}

	return &UpdateTicketResult{
		TicketID: cmd.TicketID,
		Updated:  updated,
	}, nil
}

func (uc *UpdateTicketUseCase) buildPatch(cmd UpdateTicketCommand) (ticket.Patch, error) {
	patch := ticket.Patch{
		Title:       cmd.Title,
		Description: cmd.Description,
		Requester:   cmd.Requester,
		Assignee:    cmd.Assignee,
		Tags:        cmd.Tags,
	}

	if cmd.Status != nil {
		status := vo.Status(*cmd.Status)
		patch.Status = &status
	}
	if cmd.Priority != nil {
		priority := vo.Priority(*cmd.Priority)
		patch.Priority = &priority
	}

	if err := patch.Validate(); err != nil {
		return ticket.Patch{}, errors.NewValidationError(err.Error())
	}

	return patch, nil
}
