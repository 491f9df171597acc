package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"tansy/internal/domain/ticket"
	vo "tansy/internal/domain/ticket/valueobjects"
	"tansy/internal/infrastructure/persistence/mappers"
	"tansy/internal/infrastructure/persistence/models"
	"tansy/internal/shared/biztime"
	db "tansy/internal/shared/db"
	"tansy/internal/shared/errors"
	"tansy/internal/shared/mapper"
)

// ticketListOrder is the fixed triage ordering for listings, built from
// the domain rank tables and pushed down to the store: status rank,
// then priority rank, then newest first. Not user-configurable.
var ticketListOrder = buildTicketListOrder()

func buildTicketListOrder() string {
	var b strings.Builder

	b.WriteString("CASE status")
	for _, s := range vo.Statuses {
		if s.Rank() == vo.StatusElseRank {
			// closed shares the else bucket with unknown values
			continue
		}
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", s, s.Rank())
	}
	fmt.Fprintf(&b, " ELSE %d END, CASE priority", vo.StatusElseRank)

	for _, p := range vo.Priorities {
		if p.Rank() == vo.PriorityElseRank {
			// low shares the else bucket with unknown values
			continue
		}
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", p, p.Rank())
	}
	fmt.Fprintf(&b, " ELSE %d END, created_at DESC", vo.PriorityElseRank)

	return b.String()
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(database *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return translateWriteError("failed to create ticket", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found", fmt.Sprintf("id=%d", id))
		}
		return nil, errors.NewStorageError("failed to find ticket", err.Error())
	}

	return r.mapper.ToDomain(&model)
}

// UpdateFields applies only the fields present in the patch and always
// refreshes updated_at. An empty patch performs no store write and
// reports false; so does an id with no matching row. Neither outcome
// is an error.
func (r *TicketRepository) UpdateFields(ctx context.Context, id uint, patch ticket.Patch) (bool, error) {
	cols := patchColumns(patch)
	if len(cols) == 0 {
		return false, nil
	}
	cols["updated_at"] = biztime.FormatTimestamp(biztime.NowUTC())

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", id).
		Updates(cols)

	if result.Error != nil {
		return false, translateWriteError("failed to update ticket", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Assignee != nil {
		query = query.Where("assignee = ?", *filter.Assignee)
	}

	var ticketModels []models.TicketModel
	if err := query.Order(ticketListOrder).Find(&ticketModels).Error; err != nil {
		return nil, errors.NewStorageError("failed to list tickets", err.Error())
	}

	return r.toDomainSlice(ticketModels)
}

// Search matches the substring against title, description or tags.
// Matching is case-insensitive per SQLite's default LIKE collation.
// Ordering is recency only; search results are exploratory, not
// triage-ordered like List.
func (r *TicketRepository) Search(ctx context.Context, query string) ([]*ticket.Ticket, error) {
	like := "%" + query + "%"
	tx := db.GetTxFromContext(ctx, r.db)

	var ticketModels []models.TicketModel
	if err := tx.
		Model(&models.TicketModel{}).
		Where("title LIKE ? OR description LIKE ? OR tags LIKE ?", like, like, like).
		Order("updated_at DESC").
		Find(&ticketModels).Error; err != nil {
		return nil, errors.NewStorageError("failed to search tickets", err.Error())
	}

	return r.toDomainSlice(ticketModels)
}

func (r *TicketRepository) FindAll(ctx context.Context) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ticketModels []models.TicketModel
	if err := tx.
		Model(&models.TicketModel{}).
		Order("id ASC").
		Find(&ticketModels).Error; err != nil {
		return nil, errors.NewStorageError("failed to fetch tickets", err.Error())
	}

	return r.toDomainSlice(ticketModels)
}

func (r *TicketRepository) toDomainSlice(ticketModels []models.TicketModel) ([]*ticket.Ticket, error) {
	return mapper.MapSliceWithError(ticketModels, func(m models.TicketModel) (*ticket.Ticket, error) {
		return r.mapper.ToDomain(&m)
	})
}

// patchColumns maps the patch onto the fixed column whitelist. Column
// names never come from caller input.
func patchColumns(patch ticket.Patch) map[string]any {
	cols := make(map[string]any)

	if patch.Title != nil {
		cols["title"] = *patch.Title
	}
	if patch.Description != nil {
		cols["description"] = *patch.Description
	}
	if patch.Status != nil {
		cols["status"] = patch.Status.String()
	}
	if patch.Priority != nil {
		cols["priority"] = patch.Priority.String()
	}
	if patch.Requester != nil {
		cols["requester"] = *patch.Requester
	}
	if patch.Assignee != nil {
		cols["assignee"] = *patch.Assignee
	}
	if patch.Tags != nil {
		cols["tags"] = *patch.Tags
	}

	return cols
}

func translateWriteError(message string, err error) error {
	if errors.IsStorageConstraintError(err) {
		return errors.NewConstraintError(message, err.Error())
	}
	return errors.NewStorageError(message, err.Error())
}
