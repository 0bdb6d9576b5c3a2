package salesview

import (
	"testing"

	"github.com/airvoucher/av_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_TwentyFiveByAmountAscending(t *testing.T) {
	records := distinctAmounts(25)
	state := DefaultState()
	state.SortField = SortAmount
	state.SortDirection = SortAsc

	page1 := Apply(records, state)
	require.Len(t, page1.Records, 10)
	assert.Equal(t, []string{"1.00", "2.00", "3.00", "4.00", "5.00", "6.00", "7.00", "8.00", "9.00", "10.00"}, amounts(page1.Records))
	assert.Equal(t, 3, page1.TotalPages)
	assert.Equal(t, 25, page1.Filtered)
	assert.True(t, page1.HasNext)
	assert.False(t, page1.HasPrev)

	state.Page = 3
	page3 := Apply(records, state)
	assert.Equal(t, []string{"21.00", "22.00", "23.00", "24.00", "25.00"}, amounts(page3.Records))
	assert.Equal(t, 21, page3.StartIndex)
	assert.Equal(t, 25, page3.EndIndex)
	assert.False(t, page3.HasNext)
}

func TestApply_PagesReconstructFilteredSequence(t *testing.T) {
	records := distinctAmounts(37)
	state := DefaultState()

	first := Apply(records, state)
	var joined []domain.SaleRecord
	for p := 1; p <= first.TotalPages; p++ {
		state.Page = p
		joined = append(joined, Apply(records, state).Records...)
	}

	assert.Equal(t, ids(Sort(records, SortDate, SortDesc)), ids(joined))
}

func TestApply_PageCount(t *testing.T) {
	for n, want := range map[int]int{0: 1, 1: 1, 10: 1, 11: 2, 20: 2, 21: 3, 99: 10} {
		assert.Equal(t, want, Apply(distinctAmounts(n), DefaultState()).TotalPages, "n=%d", n)
	}
}

func TestApply_ClampsPage(t *testing.T) {
	records := distinctAmounts(12)

	state := DefaultState()
	state.Page = 99
	high := Apply(records, state)
	assert.Equal(t, 2, high.CurrentPage)
	assert.Equal(t, 2, high.State.Page)
	assert.Len(t, high.Records, 2)

	state.Page = -3
	low := Apply(records, state)
	assert.Equal(t, 1, low.CurrentPage)
}

func TestApply_EmptyResult(t *testing.T) {
	state := DefaultState()
	state.Search = "nothing matches this"

	result := Apply(distinctAmounts(5), state)
	assert.Empty(t, result.Records)
	assert.Equal(t, 0, result.Filtered)
	assert.Equal(t, 1, result.TotalPages)
	assert.Equal(t, 1, result.CurrentPage)
}

func TestFilterState_Reset(t *testing.T) {
	prev := DefaultState()
	prev.Page = 3

	same := prev
	assert.Equal(t, 3, same.Reset(prev).Page, "page change alone keeps the page")

	changedFilter := prev
	changedFilter.VoucherType = domain.VoucherOTT
	assert.Equal(t, 1, changedFilter.Reset(prev).Page)

	changedSearch := prev
	changedSearch.Search = "spaza"
	assert.Equal(t, 1, changedSearch.Reset(prev).Page)

	changedDir := prev
	changedDir.SortDirection = SortAsc
	assert.Equal(t, 1, changedDir.Reset(prev).Page)

	normalizedEqual := prev
	normalizedEqual.VoucherType = ""
	assert.Equal(t, 3, normalizedEqual.Reset(prev).Page, "empty select is the same as all")
}

func TestToggleSort(t *testing.T) {
	state := DefaultState()
	state.Page = 4

	flipped := ToggleSort(state, SortDate)
	assert.Equal(t, SortAsc, flipped.SortDirection)
	assert.Equal(t, 1, flipped.Page)

	back := ToggleSort(flipped, SortDate)
	assert.Equal(t, SortDesc, back.SortDirection)

	other := ToggleSort(flipped, SortAmount)
	assert.Equal(t, SortAmount, other.SortField)
	assert.Equal(t, SortDesc, other.SortDirection)
}

func TestParseSortDirection(t *testing.T) {
	assert.Equal(t, SortAsc, ParseSortDirection("ASC"))
	assert.Equal(t, SortDesc, ParseSortDirection("desc"))
	assert.Equal(t, SortDesc, ParseSortDirection(""))
	assert.Equal(t, SortDesc, ParseSortDirection("sideways"))
}
