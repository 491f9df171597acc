package repository

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tansy/internal/application/ticket/usecases"
	"tansy/internal/domain/ticket"
	"tansy/internal/shared/logger"
)

// TestExport_RoundTrip drives the export use case against the real
// store: the parsed CSV must reproduce every listed ticket's raw field
// values with no transformation or loss.
func TestExport_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	seedTicket(t, db, "printer on fire", "open", "urgent", "bob", "hardware,printer", "2024-01-02T00:00:00Z")
	seedTicket(t, db, `says "broken", maybe`, "closed", "low", "", "", "2024-01-01T00:00:00Z")

	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	data, err := usecases.NewExportTicketsUseCase(repo, log).Execute(ctx)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	listed, err := repo.List(ctx, ticket.Filter{})
	require.NoError(t, err)
	require.Len(t, records, len(listed)+1, "one row per listed ticket plus the header")

	byID := make(map[string]*ticket.Ticket, len(listed))
	for _, tk := range listed {
		byID[strconv.FormatUint(uint64(tk.ID()), 10)] = tk
	}

	for _, record := range records[1:] {
		tk, ok := byID[record[0]]
		require.True(t, ok, "exported id %s missing from listing", record[0])

		assert.Equal(t, tk.Title(), record[1])
		assert.Equal(t, tk.Description(), record[2])
		assert.Equal(t, tk.Status().String(), record[3])
		assert.Equal(t, tk.Priority().String(), record[4])
		assert.Equal(t, tk.Requester(), record[5])
		assert.Equal(t, tk.Assignee(), record[6])
		assert.Equal(t, tk.Tags(), record[7])
	}

	// Export order is ascending id, regardless of triage order.
	assert.Less(t, records[1][0], records[2][0])
}
