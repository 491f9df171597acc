package usecases

import (
	"context"

	"tansy/internal/domain/ticket"
	"tansy/internal/shared/errors"
	"tansy/internal/shared/logger"
	"tansy/internal/shared/mapper"
)

type ListCommentsQuery struct {
	TicketID uint
}

type ListCommentsResult struct {
	Comments []CommentDTO
}

type ListCommentsUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewListCommentsUseCase(
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) (*ListCommentsResult, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	comments, err := uc.commentRepo.GetByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	return &ListCommentsResult{Comments: mapper.MapSlice(comments, toCommentDTO)}, nil
}
