package ticket

import (
	"github.com/gin-gonic/gin"

	"tansy/internal/application/ticket/usecases"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,ticketstatus"`
	Priority    string `json:"priority" binding:"omitempty,ticketpriority"`
	Requester   string `json:"requester"`
	Assignee    string `json:"assignee"`
	Tags        string `json:"tags"`
}

func (r CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		Requester:   r.Requester,
		Assignee:    r.Assignee,
		Tags:        r.Tags,
	}
}

// UpdateTicketRequest is a sparse patch: absent JSON fields stay nil
// and are left untouched; present fields, including empty strings for
// the clearable ones, are written.
type UpdateTicketRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,ticketstatus"`
	Priority    *string `json:"priority" binding:"omitempty,ticketpriority"`
	Requester   *string `json:"requester"`
	Assignee    *string `json:"assignee"`
	Tags        *string `json:"tags"`
}

func (r UpdateTicketRequest) ToCommand(ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		Requester:   r.Requester,
		Assignee:    r.Assignee,
		Tags:        r.Tags,
	}
}

type AddCommentRequest struct {
	Author string `json:"author"`
	Body   string `json:"body" binding:"required"`
}

// ListTicketsParams carries the query string of GET /tickets. A
// non-blank q switches the request to search; filters and search are
// never combined.
type ListTicketsParams struct {
	Status   string
	Priority string
	Assignee string
	Query    string
}

func parseListTicketsParams(c *gin.Context) ListTicketsParams {
	return ListTicketsParams{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Assignee: c.Query("assignee"),
		Query:    c.Query("q"),
	}
}
