package ticket

import (
	"context"

	vo "tansy/internal/domain/ticket/valueobjects"
)

// Filter narrows a ticket listing with optional equality predicates.
// A nil field matches all values of that field; set fields combine
// conjunctively.
type Filter struct {
	Status   *vo.Status
	Priority *vo.Priority
	Assignee *string
}

type TicketRepository interface {
	// Create persists a new ticket and assigns its storage id.
	Create(ctx context.Context, t *Ticket) error

	// GetByID returns the ticket or a not-found error.
	GetByID(ctx context.Context, id uint) (*Ticket, error)

	// UpdateFields applies a sparse patch and refreshes updated_at.
	// It returns false without writing when the patch is empty, and
	// false when no row matched the id.
	UpdateFields(ctx context.Context, id uint, patch Patch) (bool, error)

	// List returns tickets matching the filter in fixed triage order:
	// status rank, then priority rank, then created_at descending.
	List(ctx context.Context, filter Filter) ([]*Ticket, error)

	// Search returns tickets whose title, description or tags contain
	// the substring, ordered by updated_at descending.
	Search(ctx context.Context, query string) ([]*Ticket, error)

	// FindAll returns every ticket ordered by ascending id.
	FindAll(ctx context.Context) ([]*Ticket, error)
}

type CommentRepository interface {
	// Create appends a comment. A missing ticket surfaces as a
	// constraint violation from the storage foreign key.
	Create(ctx context.Context, c *Comment) error

	// GetByTicketID returns the ticket's comments in creation order.
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}
