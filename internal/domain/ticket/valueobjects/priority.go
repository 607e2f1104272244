package valueobjects

import (
	"fmt"
	"strings"
)

// Priority is the urgency level of a ticket. Wire values are the original
// application's French labels.
type Priority string

const (
	PriorityLow      Priority = "bas"
	PriorityMedium   Priority = "moyen"
	PriorityHigh     Priority = "élevé"
	PriorityCritical Priority = "critique"
)

// DefaultPriority is assigned when a ticket is created without one.
const DefaultPriority = PriorityMedium

var validPriorities = map[Priority]bool{
	PriorityLow:      true,
	PriorityMedium:   true,
	PriorityHigh:     true,
	PriorityCritical: true,
}

var prioritySortRanks = map[Priority]int{
	PriorityCritical: 1,
	PriorityHigh:     2,
	PriorityMedium:   3,
	PriorityLow:      4,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

func (p Priority) IsLow() bool {
	return p == PriorityLow
}

func (p Priority) IsMedium() bool {
	return p == PriorityMedium
}

func (p Priority) IsHigh() bool {
	return p == PriorityHigh
}

func (p Priority) IsCritical() bool {
	return p == PriorityCritical
}

// SortRank returns the display ordering rank of the priority, most urgent
// first. The lookup is case-insensitive; unrecognized values sort last.
func (p Priority) SortRank() int {
	if rank, ok := prioritySortRanks[Priority(strings.ToLower(string(p)))]; ok {
		return rank
	}
	return unrankedSortValue
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}
