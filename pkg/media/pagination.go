package media

import "context"

// PageFetcher returns the page behind nextLink; an empty nextLink asks for
// the first page.
type PageFetcher[T any] func(ctx context.Context, nextLink string) (*Collection[T], error)

// PaginationIterator walks the items of a list operation across pages,
// following @odata.nextLink until it is absent or empty.
type PaginationIterator[T any] struct {
	ctx      context.Context //nolint:containedctx
	fetch    PageFetcher[T]
	items    []T
	index    int
	nextLink string
	started  bool
	pages    int
	err      error
}

// NewPaginationIterator creates a new pagination iterator.
func NewPaginationIterator[T any](ctx context.Context, fetch PageFetcher[T]) *PaginationIterator[T] {
	return &PaginationIterator[T]{
		ctx:   ctx,
		fetch: fetch,
	}
}

// HasNext reports whether Next will return an item or a pending error.
// It fetches pages as needed and skips empty ones.
func (it *PaginationIterator[T]) HasNext() bool {
	for it.index >= len(it.items) {
		if it.err != nil {
			return true
		}

		if it.started && it.nextLink == "" {
			return false
		}

		it.fetchPage()
	}

	return true
}

// Next returns the next item.
func (it *PaginationIterator[T]) Next() (*T, error) {
	if !it.HasNext() {
		return nil, ErrNoMoreItems
	}

	if it.err != nil {
		err := it.err
		it.err = nil

		return nil, err
	}

	item := &it.items[it.index]
	it.index++

	return item, nil
}

// Pages returns the number of pages fetched so far.
func (it *PaginationIterator[T]) Pages() int {
	return it.pages
}

// All drains the iterator.
func (it *PaginationIterator[T]) All() ([]T, error) {
	var all []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return all, err
		}

		all = append(all, *item)
	}

	return all, nil
}

// ForEach calls fn for every remaining item, stopping at the first error.
func (it *PaginationIterator[T]) ForEach(fn func(*T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

func (it *PaginationIterator[T]) fetchPage() {
	page, err := it.fetch(it.ctx, it.nextLink)

	it.started = true
	it.pages++
	it.items = nil
	it.index = 0
	it.nextLink = ""

	if err != nil {
		it.err = err

		return
	}

	if page != nil {
		it.items = page.Value
		it.nextLink = page.NextLink()
	}
}
