package models

// TicketModel mirrors the tickets table created by the SQL migrations.
// Timestamps are RFC3339 UTC strings; their lexicographic order equals
// chronological order.
type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description string `gorm:"type:text;not null;default:''"`
	Status      string `gorm:"size:20;not null;default:open;index:idx_tickets_status"`
	Priority    string `gorm:"size:20;not null;default:medium;index:idx_tickets_priority"`
	Requester   string `gorm:"not null;default:''"`
	Assignee    string `gorm:"not null;default:'';index:idx_tickets_assignee"`
	Tags        string `gorm:"type:text;not null;default:''"`
	CreatedAt   string `gorm:"size:25;not null"`
	UpdatedAt   string `gorm:"size:25;not null"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

// CommentModel mirrors the ticket_comments table. Rows cascade-delete
// with their ticket.
type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index:idx_ticket_comments_ticket_id"`
	Author    string `gorm:"not null;default:''"`
	Body      string `gorm:"type:text;not null"`
	CreatedAt string `gorm:"size:25;not null"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}
