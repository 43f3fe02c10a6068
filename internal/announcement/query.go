package announcement

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort keys accepted by Query.
const (
	SortByDate   = "date"
	SortByTitle  = "title"
	SortByAuthor = "author"
)

// Query filters, sorts, and windows a snapshot of announcements.
// It is pure: the input slice is never reordered or mutated, and calling it
// repeatedly with the same arguments returns the same result.
//
// Filtering is a case-insensitive substring match over title, message, and
// author; a blank keyword matches everything. Sorting is stable; an unknown
// sort key falls back to date, and zero dates sort earliest. The requested
// page is clamped to [1, max(1, ceil(total/PageSize))] instead of erroring.
func Query(all []Announcement, f Filter) Page {
	matched := filterAnnouncements(all, f.Keyword)
	sortAnnouncements(matched, f.SortBy, f.SortOrder)

	total := len(matched)
	pageCount := (total + PageSize - 1) / PageSize
	if pageCount < 1 {
		pageCount = 1
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}

	start := (page - 1) * PageSize
	if start > total {
		start = total
	}
	end := start + PageSize
	if end > total {
		end = total
	}

	items := make([]Announcement, end-start)
	copy(items, matched[start:end])

	return Page{
		Items:     items,
		Page:      page,
		PageCount: pageCount,
		Total:     total,
	}
}

func filterAnnouncements(all []Announcement, keyword string) []Announcement {
	out := make([]Announcement, 0, len(all))

	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return append(out, all...)
	}

	for _, a := range all {
		if strings.Contains(strings.ToLower(a.Title), needle) ||
			strings.Contains(strings.ToLower(a.Message), needle) ||
			strings.Contains(strings.ToLower(a.Author), needle) {
			out = append(out, a)
		}
	}
	return out
}

func sortAnnouncements(list []Announcement, sortBy, sortOrder string) {
	dir := 1
	if strings.EqualFold(sortOrder, "desc") {
		dir = -1
	}

	// Collators keep internal buffers, so build one per call rather than
	// sharing across goroutines.
	col := collate.New(language.Und, collate.IgnoreCase)

	var cmp func(a, b Announcement) int
	switch sortBy {
	case SortByTitle:
		cmp = func(a, b Announcement) int { return col.CompareString(a.Title, b.Title) }
	case SortByAuthor:
		cmp = func(a, b Announcement) int { return col.CompareString(a.Author, b.Author) }
	default:
		cmp = func(a, b Announcement) int {
			switch {
			case a.Date.Before(b.Date):
				return -1
			case a.Date.After(b.Date):
				return 1
			default:
				return 0
			}
		}
	}

	sort.SliceStable(list, func(i, j int) bool {
		return dir*cmp(list[i], list[j]) < 0
	})
}
