package ticket

import (
	"fmt"
	"time"

	"tansy/internal/shared/biztime"

	vo "tansy/internal/domain/ticket/valueobjects"
)

// Ticket is the aggregate root of the tracker. It is created once,
// mutated only through sparse field patches, and never deleted.
type Ticket struct {
	id          uint
	title       string
	description string
	status      vo.Status
	priority    vo.Priority
	requester   string
	assignee    string
	tags        string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(
	title string,
	description string,
	status vo.Status,
	priority vo.Priority,
	requester string,
	assignee string,
	tags string,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	now := biztime.NowUTC()

	return &Ticket{
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		requester:   requester,
		assignee:    assignee,
		tags:        tags,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	status vo.Status,
	priority vo.Priority,
	requester string,
	assignee string,
	tags string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		requester:   requester,
		assignee:    assignee,
		tags:        tags,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Requester() string {
	return t.requester
}

func (t *Ticket) Assignee() string {
	return t.assignee
}

// Tags returns the raw comma-separated tag string. Tags are free-form
// labels, stored without normalization or uniqueness.
func (t *Ticket) Tags() string {
	return t.tags
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}
