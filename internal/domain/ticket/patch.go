package ticket

import (
	"fmt"

	vo "tansy/internal/domain/ticket/valueobjects"
)

// Patch is a sparse set of field assignments for an existing ticket.
// Presence, not value, drives whether a field is written: a nil field
// is left untouched, a non-nil pointer to an empty string clears the
// field. The id and both timestamps are not patchable; updated_at is
// refreshed by the repository on every applied patch.
type Patch struct {
	Title       *string
	Description *string
	Status      *vo.Status
	Priority    *vo.Priority
	Requester   *string
	Assignee    *string
	Tags        *string
}

// IsEmpty reports whether the patch mentions no fields. Applying an
// empty patch is a defined no-op: no store write, no updated_at bump.
func (p Patch) IsEmpty() bool {
	return p.Title == nil &&
		p.Description == nil &&
		p.Status == nil &&
		p.Priority == nil &&
		p.Requester == nil &&
		p.Assignee == nil &&
		p.Tags == nil
}

// Validate checks the fields the patch mentions. Any status may be
// patched to any other status; there is no transition workflow.
func (p Patch) Validate() error {
	if p.Title != nil && len(*p.Title) == 0 {
		return fmt.Errorf("title cannot be empty")
	}
	if p.Status != nil && !p.Status.IsValid() {
		return fmt.Errorf("invalid status: %s", *p.Status)
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", *p.Priority)
	}
	return nil
}
