package usecases

import (
	"tansy/internal/domain/ticket"
	"tansy/internal/shared/biztime"
	"tansy/internal/shared/mapper"
)

// TicketDTO carries the full ticket, timestamps in their stored string
// form.
type TicketDTO struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Requester   string `json:"requester"`
	Assignee    string `json:"assignee"`
	Tags        string `json:"tags"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// TicketSummaryDTO is the listing row: every ticket column except the
// description.
type TicketSummaryDTO struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	Priority  string `json:"priority"`
	Assignee  string `json:"assignee"`
	Requester string `json:"requester"`
	Tags      string `json:"tags"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type CommentDTO struct {
	ID        uint   `json:"id"`
	TicketID  uint   `json:"ticket_id"`
	Author    string `json:"author"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

func toTicketDTO(t *ticket.Ticket) TicketDTO {
	return TicketDTO{
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

func toTicketSummaryDTO(t *ticket.Ticket) TicketSummaryDTO {
	return TicketSummaryDTO{
		ID:        t.ID(),
		Title:     t.Title(),
		Status:    t.Status().String(),
		Priority:  t.Priority().String(),
		Assignee:  t.Assignee(),
		Requester: t.Requester(),
		Tags:      t.Tags(),
		CreatedAt: biztime.FormatTimestamp(t.CreatedAt()),
		UpdatedAt: biztime.FormatTimestamp(t.UpdatedAt()),
	}
}

func toTicketSummaryDTOs(tickets []*ticket.Ticket) []TicketSummaryDTO {
	return mapper.MapSlice(tickets, toTicketSummaryDTO)
}

func toCommentDTO(c *ticket.Comment) CommentDTO {
	return CommentDTO{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		Author:    c.Author(),
		Body:      c.Body(),
		CreatedAt: biztime.FormatTimestamp(c.CreatedAt()),
	}
}
