package listing

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Name comparison uses Spanish collation so that accented names ("Ángel",
// "Núñez") sort where staff expect them, not by byte value. Collators are
// not safe for concurrent use, so each sort builds its own.
func newCollator() *collate.Collator {
	return collate.New(language.Spanish, collate.IgnoreCase)
}

// SortByName returns a new slice sorted ascending by display name under
// Spanish collation. The sort is stable: records with equal names keep
// their input order.
func SortByName[T any](records []T, name func(T) string) []T {
	out := make([]T, len(records))
	copy(out, records)

	c := newCollator()
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(name(out[i]), name(out[j])) < 0
	})
	return out
}

// dateLayouts covers the date spellings the core API has answered with.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// ParseDate parses a backend date string. Missing or unparseable dates
// yield the zero time, which sorts as earliest.
func ParseDate(raw string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// SortByDateDesc returns a new slice sorted by date descending (most
// recent first). Records whose date is missing or unparseable are
// treated as earliest and end up last. The sort is stable.
func SortByDateDesc[T any](records []T, date func(T) string) []T {
	out := make([]T, len(records))
	copy(out, records)

	parsed := make([]time.Time, len(out))
	for i, rec := range out {
		parsed[i] = ParseDate(date(rec))
	}

	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return parsed[idx[a]].After(parsed[idx[b]])
	})

	sorted := make([]T, len(out))
	for i, j := range idx {
		sorted[i] = out[j]
	}
	return sorted
}
