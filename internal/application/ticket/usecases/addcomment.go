package usecases

import (
	"context"
	"time"

	"tansy/internal/domain/ticket"
	"tansy/internal/shared/errors"
	"tansy/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID uint
	Author   string
	Body     string
}

type AddCommentResult struct {
	CommentID uint
	TicketID  uint
	CreatedAt time.Time
}

type AddCommentUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewAddCommentUseCase(
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Execute appends a comment. The ticket's updated_at is deliberately
// not bumped: only direct field edits count as ticket activity.
func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid add comment command", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	comment, err := ticket.NewComment(cmd.TicketID, cmd.Author, cmd.Body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Errorw("failed to append comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("comment added", "ticket_id", cmd.TicketID, "comment_id", comment.ID())

	return &AddCommentResult{
		CommentID: comment.ID(),
		TicketID:  cmd.TicketID,
		CreatedAt: comment.CreatedAt(),
	}, nil
}

func (uc *AddCommentUseCase) validateCommand(cmd AddCommentCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if len(cmd.Body) == 0 {
		return errors.NewValidationError("comment body cannot be empty")
	}
	return nil
}
