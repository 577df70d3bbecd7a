// Package pager slices ordered collections into fixed-size pages.
package pager

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// PerPage is the page size used by every post listing.
const PerPage = 10

// Collection is an ordered, countable sequence that can be fetched in windows.
type Collection[T any] interface {
	Count(ctx context.Context) (int, error)
	Slice(ctx context.Context, offset, limit int) ([]T, error)
}

// Page is one window of a collection plus navigation metadata.
type Page[T any] struct {
	Items    []T
	Number   int
	NumPages int
	Count    int
	PerPage  int
}

func (p Page[T]) Len() int { return len(p.Items) }

func (p Page[T]) HasNext() bool { return p.Number < p.NumPages }

func (p Page[T]) HasPrevious() bool { return p.Number > 1 }

func (p Page[T]) HasOtherPages() bool { return p.HasNext() || p.HasPrevious() }

func (p Page[T]) NextPageNumber() int {
	if !p.HasNext() {
		return p.Number
	}
	return p.Number + 1
}

func (p Page[T]) PreviousPageNumber() int {
	if !p.HasPrevious() {
		return p.Number
	}
	return p.Number - 1
}

// StartIndex is the 1-based position of the first item on the page, 0 when empty.
func (p Page[T]) StartIndex() int {
	if p.Count == 0 {
		return 0
	}
	return (p.Number-1)*p.PerPage + 1
}

// EndIndex is the 1-based position of the last item on the page.
func (p Page[T]) EndIndex() int {
	if p.Count == 0 {
		return 0
	}
	return p.StartIndex() + len(p.Items) - 1
}

// PageRange returns 1..NumPages.
func (p Page[T]) PageRange() []int {
	out := make([]int, p.NumPages)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// ParseNumber reads a raw page query value. Absent or malformed input yields 0.
// Out of range numbers saturate so that Paginate clamps them to the first or last page.
func ParseNumber(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return n
		}
		return 0
	}
	return n
}

// NumPages returns how many pages count items fill. An empty collection has one page.
func NumPages(count, perPage int) int {
	if count <= 0 {
		return 1
	}
	return (count + perPage - 1) / perPage
}

// Paginate returns the requested page of items. Requests below 1 resolve to the
// first page and requests past the end resolve to the last page.
func Paginate[T any](ctx context.Context, items Collection[T], perPage int, requested int) (Page[T], error) {
	if perPage <= 0 {
		return Page[T]{}, fmt.Errorf("page size must be greater than zero")
	}
	count, err := items.Count(ctx)
	if err != nil {
		return Page[T]{}, err
	}
	numPages := NumPages(count, perPage)
	number := requested
	if number < 1 {
		number = 1
	}
	if number > numPages {
		number = numPages
	}

	page := Page[T]{
		Number:   number,
		NumPages: numPages,
		Count:    count,
		PerPage:  perPage,
	}
	if count == 0 {
		page.Items = []T{}
		return page, nil
	}
	page.Items, err = items.Slice(ctx, (number-1)*perPage, perPage)
	if err != nil {
		return Page[T]{}, err
	}
	return page, nil
}

// SliceCollection adapts an in-memory slice to Collection.
type SliceCollection[T any] []T

func (s SliceCollection[T]) Count(context.Context) (int, error) {
	return len(s), nil
}

func (s SliceCollection[T]) Slice(_ context.Context, offset, limit int) ([]T, error) {
	if offset >= len(s) {
		return []T{}, nil
	}
	end := offset + limit
	if end > len(s) {
		end = len(s)
	}
	out := make([]T, end-offset)
	copy(out, s[offset:end])
	return out, nil
}
