package valueobjects

import (
	"fmt"
	"strings"
)

// TicketStatus is the lifecycle state of a ticket. Wire values are the
// original application's French labels.
type TicketStatus string

const (
	StatusNew        TicketStatus = "nouveau"
	StatusInProgress TicketStatus = "en cours"
	StatusClosed     TicketStatus = "fermé"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusNew:        true,
	StatusInProgress: true,
	StatusClosed:     true,
}

// statusSortRanks orders statuses for display. Rank 2 is intentionally
// unassigned: the legacy ordering scheme reserved it for an assignment state
// that never shipped, and downstream consumers depend on the exact ranks.
var statusSortRanks = map[TicketStatus]int{
	StatusNew:        1,
	StatusInProgress: 3,
	StatusClosed:     4,
}

// unrankedSortValue places unrecognized statuses and priorities after every
// known value when sorting.
const unrankedSortValue = 999

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) IsNew() bool {
	return ts == StatusNew
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

// SortRank returns the display ordering rank of the status. The lookup is
// case-insensitive; unrecognized values sort last.
func (ts TicketStatus) SortRank() int {
	if rank, ok := statusSortRanks[TicketStatus(strings.ToLower(string(ts)))]; ok {
		return rank
	}
	return unrankedSortValue
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
