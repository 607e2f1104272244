package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guildesk/internal/application/ticket/dto"
)

func makeItems(priorities ...string) []dto.TicketListItemDTO {
	items := make([]dto.TicketListItemDTO, 0, len(priorities))
	for i, p := range priorities {
		items = append(items, dto.TicketListItemDTO{
			ID:       uint(i + 1),
			Title:    "Ticket",
			Priority: p,
			Status:   "nouveau",
			Category: "DPS",
		})
	}
	return items
}

func priorities(items []dto.TicketListItemDTO) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Priority)
	}
	return out
}

func ids(items []dto.TicketListItemDTO) []uint {
	out := make([]uint, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestView_SortByPriority(t *testing.T) {
	v := New(makeItems("bas", "critique", "moyen"))

	require.True(t, v.ToggleSortByPriority())
	assert.Equal(t, []string{"critique", "moyen", "bas"}, priorities(v.Items()))
}

func TestView_ToggleOffRestoresSnapshotOrder(t *testing.T) {
	original := makeItems("bas", "critique", "moyen")
	v := New(original)

	before := ids(v.Items())
	v.ToggleSortByPriority()
	require.False(t, v.ToggleSortByPriority())

	assert.Equal(t, before, ids(v.Items()))
}

func TestView_SortsAreMutuallyExclusive(t *testing.T) {
	v := New([]dto.TicketListItemDTO{
		{ID: 1, Priority: "bas", Status: "fermé"},
		{ID: 2, Priority: "critique", Status: "nouveau"},
		{ID: 3, Priority: "moyen", Status: "en cours"},
	})

	v.ToggleSortByPriority()
	require.True(t, v.ToggleSortByStatus())
	assert.Equal(t, SortByStatus, v.Mode())

	// nouveau(1) < en cours(3) < fermé(4)
	assert.Equal(t, []uint{2, 3, 1}, ids(v.Items()))
}

func TestView_SortIsStableForEqualRanks(t *testing.T) {
	v := New(makeItems("moyen", "critique", "moyen", "moyen"))

	v.ToggleSortByPriority()
	assert.Equal(t, []uint{2, 1, 3, 4}, ids(v.Items()))
}

func TestView_UnknownValuesSortLast(t *testing.T) {
	v := New(makeItems("urgent", "bas", "critique"))

	v.ToggleSortByPriority()
	assert.Equal(t, []string{"critique", "bas", "urgent"}, priorities(v.Items()))
}

func TestView_SearchAppliedAfterSort(t *testing.T) {
	v := New([]dto.TicketListItemDTO{
		{ID: 1, Title: "Regear after ZvZ", Priority: "bas", Category: "DPS"},
		{ID: 2, Title: "Healer regear", Priority: "critique", Category: "Heal"},
		{ID: 3, Title: "Roster question", Priority: "moyen", Category: "Support"},
	})

	v.ToggleSortByPriority()
	v.SetSearch("REGEAR")

	items := v.Items()
	assert.Equal(t, []uint{2, 1}, ids(items))
}

func TestView_SearchMatchesCategory(t *testing.T) {
	v := New([]dto.TicketListItemDTO{
		{ID: 1, Title: "Set lost", Category: "Heal"},
		{ID: 2, Title: "Set lost", Category: "Tank"},
	})

	v.SetSearch("heal")
	assert.Equal(t, []uint{1}, ids(v.Items()))
}

func TestView_ClearFilters(t *testing.T) {
	original := makeItems("bas", "critique", "moyen")
	v := New(original)

	v.ToggleSortByPriority()
	v.SetSearch("nothing matches this")
	require.Empty(t, v.Items())

	v.ClearFilters()
	assert.Equal(t, SortNone, v.Mode())
	assert.Equal(t, ids(original), ids(v.Items()))
}

func TestView_SnapshotIsIsolatedFromCaller(t *testing.T) {
	original := makeItems("bas", "critique")
	v := New(original)

	original[0].Priority = "critique"
	assert.Equal(t, "bas", v.Items()[0].Priority)
}
