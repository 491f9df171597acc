package repository

import (
	"context"

	"gorm.io/gorm"

	"tansy/internal/domain/ticket"
	"tansy/internal/infrastructure/persistence/mappers"
	"tansy/internal/infrastructure/persistence/models"
	db "tansy/internal/shared/db"
	"tansy/internal/shared/errors"
	"tansy/internal/shared/mapper"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(database *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

// Create appends the comment. Existence of the ticket is not checked
// here: the foreign key rejects the write for a missing ticket, which
// surfaces as a constraint violation.
func (r *CommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return translateWriteError("failed to append comment", err)
	}

	return c.SetID(model.ID)
}

// GetByTicketID returns comments in creation order. Ascending id is
// monotonic with insertion time.
func (r *CommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var commentModels []models.CommentModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("id ASC").
		Find(&commentModels).Error; err != nil {
		return nil, errors.NewStorageError("failed to load comments", err.Error())
	}

	return mapper.MapSliceWithError(commentModels, func(m models.CommentModel) (*ticket.Comment, error) {
		return r.mapper.CommentToDomain(&m)
	})
}
