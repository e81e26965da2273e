// Package list provides paging and filtering of option lists for select
// prompts.
package list

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// An Option is a value with its index in the unfiltered, unpaged source
// list. The index identifies the option, for example when looking up whether
// it is checked.
type Option[T any] struct {
	Index int
	Value T
}

// String returns the display text of the value. Values implementing
// fmt.Stringer control their own representation.
func (o Option[T]) String() string {
	return fmt.Sprint(o.Value)
}

// Options wraps values with their index.
func Options[T any](values []T) []Option[T] {
	out := make([]Option[T], len(values))
	for i, v := range values {
		out[i] = Option[T]{Index: i, Value: v}
	}
	return out
}

// NoCursor is the cursor of a page without a highlighted row.
const NoCursor = -1

// A Page is a bounded window over a list.
type Page[T any] struct {
	Content []T

	// Cursor is the index into Content of the highlighted row, or NoCursor.
	Cursor int

	// First is set if the page starts at the beginning of the list, Last if
	// it ends at the end of it.
	First bool
	Last  bool

	// Total is the length of the whole list.
	Total int
}

// IsCursor reports whether row i of the page is highlighted.
func (p Page[T]) IsCursor(i int) bool {
	return p.Cursor != NoCursor && p.Cursor == i
}

// Paginate returns the page of at most pageSize items that contains the
// item at cursor. The cursor is kept in the middle of the page, except near
// either end of the list. A cursor outside the list selects no row and
// returns the first page.
func Paginate[T any](items []T, cursor, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	n := len(items)
	if cursor < 0 || cursor >= n {
		cursor = NoCursor
	}
	if n <= pageSize {
		return Page[T]{Content: items, Cursor: cursor, First: true, Last: true, Total: n}
	}

	start := 0
	if cursor != NoCursor {
		half := pageSize / 2
		switch {
		case cursor < half:
			start = 0
		case cursor >= n-(pageSize-half):
			start = n - pageSize
		default:
			start = cursor - half
		}
	}
	end := start + pageSize

	p := Page[T]{
		Content: items[start:end],
		Cursor:  NoCursor,
		First:   start == 0,
		Last:    end == n,
		Total:   n,
	}
	if cursor != NoCursor {
		p.Cursor = cursor - start
	}
	return p
}

// maxDistance is the Levenshtein distance below which an option is
// considered a match for a misspelled filter.
const maxDistance = 3

// minFuzzyLen is the number of runes a filter needs before misspellings are
// tolerated. Shorter filters would match almost everything.
const minFuzzyLen = 3

// Filter returns the options matching input, in order. An option matches if
// its text contains the input, ignoring case, or if the input is close to the
// option text. An empty input matches everything.
func Filter[T any](options []Option[T], input string) []Option[T] {
	if input == "" {
		return options
	}
	want := strings.ToLower(input)
	fuzzy := utf8.RuneCountInString(want) >= minFuzzyLen
	out := make([]Option[T], 0, len(options))
	for _, o := range options {
		text := strings.ToLower(o.String())
		if strings.Contains(text, want) {
			out = append(out, o)
			continue
		}
		if fuzzy && levenshtein.Distance(want, text, nil) < maxDistance {
			out = append(out, o)
		}
	}
	return out
}
