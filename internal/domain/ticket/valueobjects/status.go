package valueobjects

import "fmt"

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusClosed     Status = "closed"
)

// DefaultStatus is assigned when a ticket is created without an
// explicit status.
const DefaultStatus = StatusOpen

// Statuses lists all valid statuses in rank order.
var Statuses = []Status{
	StatusOpen,
	StatusInProgress,
	StatusClosed,
}

var validStatuses = map[Status]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusClosed:     true,
}

// statusRanks is the fixed rank table used for triage ordering.
// Open work surfaces first, closed work last. Values absent from the
// table share the closed bucket.
var statusRanks = map[Status]int{
	StatusOpen:       0,
	StatusInProgress: 1,
	StatusClosed:     2,
}

// StatusElseRank is the rank bucket for statuses not present in the
// rank table, which coincides with the closed bucket.
const StatusElseRank = 2

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

// Rank returns the triage sort rank of the status. Unknown values rank
// together with closed.
func (s Status) Rank() int {
	if rank, ok := statusRanks[s]; ok {
		return rank
	}
	return StatusElseRank
}

func (s Status) IsOpen() bool {
	return s == StatusOpen
}

func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return st, nil
}
