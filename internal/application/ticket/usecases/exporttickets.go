package usecases

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"

	"tansy/internal/domain/ticket"
	"tansy/internal/shared/biztime"
	"tansy/internal/shared/errors"
	"tansy/internal/shared/logger"
)

// exportHeader lists every stored ticket column, in column order.
var exportHeader = []string{
	"id",
	"title",
	"description",
	"status",
	"priority",
	"requester",
	"assignee",
	"tags",
	"created_at",
	"updated_at",
}

type ExportTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewExportTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ExportTicketsUseCase {
	return &ExportTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute serializes every ticket, ordered by ascending id, to CSV.
// Field values are written exactly as stored: enum strings raw,
// timestamps in their stored form, no reformatting.
func (uc *ExportTicketsUseCase) Execute(ctx context.Context) ([]byte, error) {
	tickets, err := uc.ticketRepo.FindAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to fetch tickets for export", "error", err)
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, errors.NewStorageError("failed to encode export header", err.Error())
	}

	for _, t := range tickets {
		record := []string{
			strconv.FormatUint(uint64(t.ID()), 10),
			t.Title(),
			t.Description(),
			t.Status().String(),
			t.Priority().String(),
			t.Requester(),
			t.Assignee(),
			t.Tags(),
			biztime.FormatTimestamp(t.CreatedAt()),
			biztime.FormatTimestamp(t.UpdatedAt()),
		}
		if err := w.Write(record); err != nil {
			return nil, errors.NewStorageError("failed to encode export row", err.Error())
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.NewStorageError("failed to flush export", err.Error())
	}

	uc.logger.Infow("tickets exported", "count", len(tickets))

	return buf.Bytes(), nil
}
