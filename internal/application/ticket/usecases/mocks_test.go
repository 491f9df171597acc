package usecases

import (
	"context"
	"io"
	"log/slog"

	"tansy/internal/domain/ticket"
	"tansy/internal/shared/logger"
)

// mockTicketRepository implements ticket.TicketRepository with
// per-method hooks. Unset hooks fail loudly via nil dereference, which
// keeps each test explicit about the calls it expects.
type mockTicketRepository struct {
	CreateFunc       func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc      func(ctx context.Context, id uint) (*ticket.Ticket, error)
	UpdateFieldsFunc func(ctx context.Context, id uint, patch ticket.Patch) (bool, error)
	ListFunc         func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error)
	SearchFunc       func(ctx context.Context, query string) ([]*ticket.Ticket, error)
	FindAllFunc      func(ctx context.Context) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	return m.CreateFunc(ctx, t)
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockTicketRepository) UpdateFields(ctx context.Context, id uint, patch ticket.Patch) (bool, error) {
	return m.UpdateFieldsFunc(ctx, id, patch)
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	return m.ListFunc(ctx, filter)
}

func (m *mockTicketRepository) Search(ctx context.Context, query string) ([]*ticket.Ticket, error) {
	return m.SearchFunc(ctx, query)
}

func (m *mockTicketRepository) FindAll(ctx context.Context) ([]*ticket.Ticket, error) {
	return m.FindAllFunc(ctx)
}

type mockCommentRepository struct {
	CreateFunc        func(ctx context.Context, c *ticket.Comment) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	return m.CreateFunc(ctx, c)
}

func (m *mockCommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	return m.GetByTicketIDFunc(ctx, ticketID)
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
