package mappers

import (
	"fmt"

	"tansy/internal/domain/ticket"
	vo "tansy/internal/domain/ticket/valueobjects"
	"tansy/internal/infrastructure/persistence/models"
	"tansy/internal/shared/biztime"
)

// TicketMapper handles the conversion between ticket domain entities
// and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// CommentToModel converts a comment domain entity to a persistence model.
	CommentToModel(c *ticket.Comment) *models.CommentModel

	// CommentToDomain converts a comment persistence model to a domain entity.
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		Requester:   t.Requester(),
		Assignee:    t.Assignee(),
		Tags:        t.Tags(),
		CreatedAt:   biztime.FormatTimestamp(t.CreatedAt()),
		UpdatedAt:   biztime.FormatTimestamp(t.UpdatedAt()),
	}
}

// ToDomain converts a ticket persistence model to a domain entity.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}

	createdAt, err := biztime.ParseTimestamp(model.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("ticket %d created_at: %w", model.ID, err)
	}
	updatedAt, err := biztime.ParseTimestamp(model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("ticket %d updated_at: %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		status,
		priority,
		model.Requester,
		model.Assignee,
		model.Tags,
		createdAt,
		updatedAt,
	)
}

// CommentToModel converts a comment domain entity to a persistence model.
func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		Author:    c.Author(),
		Body:      c.Body(),
		CreatedAt: biztime.FormatTimestamp(c.CreatedAt()),
	}
}

// CommentToDomain converts a comment persistence model to a domain entity.
func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	createdAt, err := biztime.ParseTimestamp(model.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("comment %d created_at: %w", model.ID, err)
	}

	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.Author,
		model.Body,
		createdAt,
	)
}
