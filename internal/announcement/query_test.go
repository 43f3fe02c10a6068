package announcement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeList(titles ...string) []Announcement {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	list := make([]Announcement, 0, len(titles))
	// Prepend like the repository does: newest first.
	for i, title := range titles {
		a := Announcement{
			ID:       title,
			Title:    title,
			Message:  "message for " + title,
			Author:   "Ms. Athena",
			Verified: true,
			Date:     base.Add(time.Duration(i) * time.Hour),
		}
		list = append([]Announcement{a}, list...)
	}
	return list
}

func TestQuerySortByTitleAscending(t *testing.T) {
	list := makeList("Exam Reminder", "Field Trip", "Grade Policy")

	page := Query(list, Filter{SortBy: SortByTitle, SortOrder: "asc", Page: 1})

	require.Len(t, page.Items, 3)
	assert.Equal(t, "Exam Reminder", page.Items[0].Title)
	assert.Equal(t, "Field Trip", page.Items[1].Title)
	assert.Equal(t, "Grade Policy", page.Items[2].Title)
}

func TestQuerySecondPageHoldsOldestEntities(t *testing.T) {
	list := makeList("a1", "a2", "a3", "a4", "a5", "a6", "a7")

	page := Query(list, Filter{SortBy: SortByDate, SortOrder: "desc", Page: 2})

	assert.Equal(t, 2, page.PageCount)
	assert.Equal(t, 7, page.Total)
	require.Len(t, page.Items, 2)
	// Date desc puts the two oldest publishes on the last page.
	assert.Equal(t, "a2", page.Items[0].Title)
	assert.Equal(t, "a1", page.Items[1].Title)
}

func TestQueryNoMatchClampsToPageOne(t *testing.T) {
	list := makeList("Exam Reminder", "Field Trip")

	page := Query(list, Filter{Keyword: "nomatch", SortBy: SortByDate, SortOrder: "desc", Page: 1})

	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 1, page.PageCount)
	assert.Equal(t, 1, page.Page)
}

func TestQueryOutOfRangePageClamps(t *testing.T) {
	list := makeList("a1", "a2", "a3", "a4", "a5", "a6", "a7")

	t.Run("too high", func(t *testing.T) {
		page := Query(list, Filter{SortBy: SortByDate, SortOrder: "desc", Page: 99})
		assert.Equal(t, 2, page.Page)
		assert.Len(t, page.Items, 2)
	})

	t.Run("zero and negative", func(t *testing.T) {
		page := Query(list, Filter{SortBy: SortByDate, SortOrder: "desc", Page: -3})
		assert.Equal(t, 1, page.Page)
		assert.Len(t, page.Items, PageSize)
	})
}

func TestQueryFilterIsCaseInsensitiveAcrossFields(t *testing.T) {
	list := []Announcement{
		{ID: "1", Title: "Exam Reminder", Message: "bring pencils", Author: "Ms. Athena"},
		{ID: "2", Title: "Field Trip", Message: "visit the MUSEUM", Author: "Mr. Zeus"},
		{ID: "3", Title: "Grade Policy", Message: "updated rubric", Author: "Ms. Athena"},
	}

	byAuthor := Query(list, Filter{Keyword: "athena", Page: 1})
	assert.Equal(t, 2, byAuthor.Total)

	byMessage := Query(list, Filter{Keyword: "museum", Page: 1})
	require.Equal(t, 1, byMessage.Total)
	assert.Equal(t, "Field Trip", byMessage.Items[0].Title)

	blank := Query(list, Filter{Keyword: "   ", Page: 1})
	assert.Equal(t, 3, blank.Total)
}

func TestQueryIsStableAndPure(t *testing.T) {
	list := makeList("Exam Reminder", "Field Trip", "Grade Policy")

	first := Query(list, Filter{SortBy: SortByTitle, SortOrder: "asc", Page: 1})
	second := Query(list, Filter{SortBy: SortByTitle, SortOrder: "asc", Page: 1})
	assert.Equal(t, first.Items, second.Items, "identical parameters must return identical items")

	// The input snapshot keeps its stored (newest-first) order.
	assert.Equal(t, "Grade Policy", list[0].Title)
	assert.Equal(t, "Exam Reminder", list[2].Title)
}

func TestQueryZeroDateSortsEarliest(t *testing.T) {
	list := makeList("Exam Reminder", "Field Trip")
	list = append(list, Announcement{ID: "legacy", Title: "Legacy Notice"}) // no date

	page := Query(list, Filter{SortBy: SortByDate, SortOrder: "asc", Page: 1})

	require.NotEmpty(t, page.Items)
	assert.Equal(t, "Legacy Notice", page.Items[0].Title)
}

func TestQueryDescendingInvertsComparator(t *testing.T) {
	list := makeList("Exam Reminder", "Field Trip", "Grade Policy")

	page := Query(list, Filter{SortBy: SortByTitle, SortOrder: "desc", Page: 1})

	require.Len(t, page.Items, 3)
	assert.Equal(t, "Grade Policy", page.Items[0].Title)
	assert.Equal(t, "Exam Reminder", page.Items[2].Title)
}
