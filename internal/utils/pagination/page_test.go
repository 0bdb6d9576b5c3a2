package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10), "empty list still has one page")
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(25, 10))
	assert.Equal(t, 3, TotalPages(25, 0), "non-positive page size falls back to the default")
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 3))
	assert.Equal(t, 1, ClampPage(-4, 3))
	assert.Equal(t, 2, ClampPage(2, 3))
	assert.Equal(t, 3, ClampPage(9, 3))
	assert.Equal(t, 1, ClampPage(5, 0))
}

func TestPage_Bounds(t *testing.T) {
	items := seq(25)

	first, meta := Page(items, 1, 10)
	assert.Equal(t, seq(10), first)
	assert.Equal(t, Meta{CurrentPage: 1, PageSize: 10, TotalItems: 25, TotalPages: 3, HasNext: true, StartIndex: 1, EndIndex: 10}, meta)

	last, meta := Page(items, 3, 10)
	assert.Equal(t, []int{20, 21, 22, 23, 24}, last)
	assert.False(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
	assert.Equal(t, 21, meta.StartIndex)
	assert.Equal(t, 25, meta.EndIndex)

	clamped, meta := Page(items, 7, 10)
	assert.Equal(t, last, clamped, "page past the end is clamped to the last page")
	assert.Equal(t, 3, meta.CurrentPage)
}

func TestPage_Empty(t *testing.T) {
	out, meta := Page([]int{}, 4, 10)
	require.NotNil(t, out)
	assert.Empty(t, out)
	assert.Equal(t, 1, meta.CurrentPage)
	assert.Equal(t, 1, meta.TotalPages)
	assert.Zero(t, meta.StartIndex)
	assert.Zero(t, meta.EndIndex)
}

func TestPage_ConcatenationReconstructs(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 37, 100} {
		items := seq(n)
		var joined []int
		pages := TotalPages(n, DefaultPageSize)
		for p := 1; p <= pages; p++ {
			chunk, _ := Page(items, p, DefaultPageSize)
			joined = append(joined, chunk...)
		}
		if n == 0 {
			assert.Empty(t, joined)
			continue
		}
		assert.Equal(t, items, joined, "n=%d", n)
	}
}

func TestPage_DoesNotAliasInput(t *testing.T) {
	items := seq(5)
	out, _ := Page(items, 1, 10)
	out[0] = 99
	assert.Equal(t, 0, items[0])
}
