// Package listing implements the shared listing semantics of the
// back-office screens: free-text filtering over per-entity searchable
// fields, status filtering with an ALL sentinel, stable Spanish-collation
// sorting, and stale-fetch suppression.
package listing

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/rapicredit/backoffice/internal/models"
)

// foldTransform strips diacritics so "maria" finds "María".
var foldTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold lowercases and strips diacritics for accent-insensitive matching.
func fold(s string) string {
	folded, _, err := transform.String(foldTransform, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// Filter returns the records matching both the free-text query and the
// status filter. A record matches the query when it is a case- and
// accent-insensitive substring of ANY of its searchable fields; the
// empty query matches everything. The two criteria combine with logical
// AND. The input slice is never mutated. A nil active func means the
// entity has no active flag; the status filter is then a no-op.
func Filter[T any](records []T, query string, estado models.StatusFilter, fields func(T) []string, active func(T) bool) []T {
	query = fold(strings.TrimSpace(query))

	out := make([]T, 0, len(records))
	for _, rec := range records {
		if active != nil && !estado.Matches(active(rec)) {
			continue
		}
		if query != "" && !matchesQuery(rec, query, fields) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func matchesQuery[T any](rec T, foldedQuery string, fields func(T) []string) bool {
	for _, field := range fields(rec) {
		if strings.Contains(fold(field), foldedQuery) {
			return true
		}
	}
	return false
}
