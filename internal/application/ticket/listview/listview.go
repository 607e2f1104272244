// Package listview holds the client-facing working set over a fetched page
// of tickets: toggleable rank sorts and text search, computed without going
// back to the store.
package listview

import (
	"sort"
	"strings"

	"guildesk/internal/application/ticket/dto"
	vo "guildesk/internal/domain/ticket/valueobjects"
)

// SortMode identifies the active toggle sort. At most one is active.
type SortMode int

const (
	SortNone SortMode = iota
	SortByPriority
	SortByStatus
)

// View wraps a fetch-time snapshot of ticket list items. The snapshot is
// immutable; every read derives from it, so toggling a sort off restores
// the original order exactly.
type View struct {
	snapshot []dto.TicketListItemDTO
	mode     SortMode
	search   string
}

// New builds a view over items. The slice is copied; later mutation of the
// caller's slice does not affect the view.
func New(items []dto.TicketListItemDTO) *View {
	snapshot := make([]dto.TicketListItemDTO, len(items))
	copy(snapshot, items)
	return &View{snapshot: snapshot}
}

// ToggleSortByPriority flips the priority sort. Activating it deactivates
// the status sort. Reports whether the sort is active after the call.
func (v *View) ToggleSortByPriority() bool {
	if v.mode == SortByPriority {
		v.mode = SortNone
		return false
	}
	v.mode = SortByPriority
	return true
}

// ToggleSortByStatus flips the status sort. Activating it deactivates the
// priority sort. Reports whether the sort is active after the call.
func (v *View) ToggleSortByStatus() bool {
	if v.mode == SortByStatus {
		v.mode = SortNone
		return false
	}
	v.mode = SortByStatus
	return true
}

// SetSearch sets the text filter. Matching is case-insensitive substring
// over title, description and category.
func (v *View) SetSearch(query string) {
	v.search = strings.ToLower(strings.TrimSpace(query))
}

// ClearFilters drops the search text and any active sort, returning the
// view to the snapshot order.
func (v *View) ClearFilters() {
	v.search = ""
	v.mode = SortNone
}

// Mode returns the active sort mode.
func (v *View) Mode() SortMode {
	return v.mode
}

// Items returns the visible items: the snapshot under the active sort
// (stable, so equal ranks keep snapshot order), then the search filter.
func (v *View) Items() []dto.TicketListItemDTO {
	items := make([]dto.TicketListItemDTO, len(v.snapshot))
	copy(items, v.snapshot)

	switch v.mode {
	case SortByPriority:
		sort.SliceStable(items, func(i, j int) bool {
			return vo.Priority(items[i].Priority).SortRank() < vo.Priority(items[j].Priority).SortRank()
		})
	case SortByStatus:
		sort.SliceStable(items, func(i, j int) bool {
			return vo.TicketStatus(items[i].Status).SortRank() < vo.TicketStatus(items[j].Status).SortRank()
		})
	}

	if v.search == "" {
		return items
	}

	filtered := items[:0]
	for _, item := range items {
		if v.matches(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func (v *View) matches(item dto.TicketListItemDTO) bool {
	return strings.Contains(strings.ToLower(item.Title), v.search) ||
		strings.Contains(strings.ToLower(item.Description), v.search) ||
		strings.Contains(strings.ToLower(item.Category), v.search)
}
