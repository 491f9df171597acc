package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tansy/internal/domain/ticket"
	"tansy/internal/shared/errors"
)

func TestCreateTicketUseCase_Execute(t *testing.T) {
	var saved *ticket.Ticket
	repo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = tk
			return tk.SetID(42)
		},
	}
	uc := NewCreateTicketUseCase(repo, testLogger())

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:     "printer on fire",
		Status:    "in_progress",
		Priority:  "urgent",
		Requester: "alice",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(42), result.TicketID)
	assert.Equal(t, "in_progress", result.Status)
	assert.Equal(t, "urgent", result.Priority)
	require.NotNil(t, saved)
	assert.Equal(t, "printer on fire", saved.Title())
}

func TestCreateTicketUseCase_Defaults(t *testing.T) {
	repo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return tk.SetID(1)
		},
	}
	uc := NewCreateTicketUseCase(repo, testLogger())

	result, err := uc.Execute(context.Background(), CreateTicketCommand{Title: "minimal"})
	require.NoError(t, err)

	assert.Equal(t, "open", result.Status)
	assert.Equal(t, "medium", result.Priority)
}

func TestCreateTicketUseCase_Validation(t *testing.T) {
	tests := []struct {
		name string
		cmd  CreateTicketCommand
	}{
		{"missing title", CreateTicketCommand{}},
		{"invalid status", CreateTicketCommand{Title: "t", Status: "pending"}},
		{"invalid priority", CreateTicketCommand{Title: "t", Priority: "blocker"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockTicketRepository{
				CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
					t.Fatal("repository should not be called")
					return nil
				},
			}
			uc := NewCreateTicketUseCase(repo, testLogger())

			_, err := uc.Execute(context.Background(), tt.cmd)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestCreateTicketUseCase_RepositoryError(t *testing.T) {
	repo := &mockTicketRepository{
		CreateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			return errors.NewStorageError("disk gone")
		},
	}
	uc := NewCreateTicketUseCase(repo, testLogger())

	_, err := uc.Execute(context.Background(), CreateTicketCommand{Title: "t"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeStorage, errors.GetAppError(err).Type)
}
