package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tansy/internal/domain/ticket"
	"tansy/internal/shared/errors"
)

func TestCommentRepository_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	ticketRepo := NewTicketRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	ticketID := seedTicket(t, db, "printer jam", "open", "medium", "", "", "2024-01-01T00:00:00Z")

	first, err := ticket.NewComment(ticketID, "alice", "looking into it")
	require.NoError(t, err)
	require.NoError(t, commentRepo.Create(ctx, first))
	assert.NotZero(t, first.ID())

	second, err := ticket.NewComment(ticketID, "", "fixed")
	require.NoError(t, err)
	require.NoError(t, commentRepo.Create(ctx, second))

	comments, err := commentRepo.GetByTicketID(ctx, ticketID)
	require.NoError(t, err)
	require.Len(t, comments, 2)

	assert.Equal(t, "looking into it", comments[0].Body())
	assert.Equal(t, "alice", comments[0].Author())
	assert.Equal(t, "fixed", comments[1].Body())
	assert.Empty(t, comments[1].Author())
	assert.Less(t, comments[0].ID(), comments[1].ID(), "creation order")

	// Appending comments is not ticket activity: updated_at stays put.
	assert.Equal(t, "2024-01-01T00:00:00Z", fetchModel(t, db, ticketID).UpdatedAt)

	// The ticket's fetched state is unchanged by its comments.
	got, err := ticketRepo.GetByID(ctx, ticketID)
	require.NoError(t, err)
	assert.Equal(t, "printer jam", got.Title())
}

func TestCommentRepository_MissingTicket(t *testing.T) {
	db := setupTestDB(t)
	commentRepo := NewCommentRepository(db)

	comment, err := ticket.NewComment(9999, "alice", "shouting into the void")
	require.NoError(t, err)

	err = commentRepo.Create(context.Background(), comment)
	require.Error(t, err)
	assert.True(t, errors.IsConstraintViolation(err), "foreign key rejects comments on absent tickets")
}

func TestCommentRepository_EmptyForUnknownTicket(t *testing.T) {
	db := setupTestDB(t)
	commentRepo := NewCommentRepository(db)

	comments, err := commentRepo.GetByTicketID(context.Background(), 9999)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCommentRepository_CascadeDelete(t *testing.T) {
	db := setupTestDB(t)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	ticketID := seedTicket(t, db, "short-lived", "open", "medium", "", "", "2024-01-01T00:00:00Z")

	comment, err := ticket.NewComment(ticketID, "alice", "note")
	require.NoError(t, err)
	require.NoError(t, commentRepo.Create(ctx, comment))

	require.NoError(t, db.Exec("DELETE FROM tickets WHERE id = ?", ticketID).Error)

	comments, err := commentRepo.GetByTicketID(ctx, ticketID)
	require.NoError(t, err)
	assert.Empty(t, comments, "comments cascade with their ticket")
}

var _ ticket.CommentRepository = (*CommentRepository)(nil)
