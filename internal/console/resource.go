// Package console holds the view state behind the interactive console:
// list resources with their loading and error flags, and the ballot
// detail selection. It performs no rendering.
package console

import (
	"context"
	"sync"
)

// Resource is the settled or in-progress result of one fetch.
type Resource[T any] struct {
	Data    T
	Loading bool
	Error   string // display-only; "" when the last fetch succeeded
	Err     error  // underlying failure for logging
}

// Failed reports whether the last fetch failed.
func (r Resource[T]) Failed() bool { return r.Error != "" }

// FetchFunc retrieves a fresh snapshot from the API.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// List is a list resource fetched in full on every load. Overlapping loads
// are not coalesced; the last one to finish wins.
type List[T any] struct {
	fetch    FetchFunc[T]
	errorMsg string

	mu  sync.Mutex
	res Resource[[]T]
}

// NewList creates an empty List. errorMsg is the display string stored on
// any failure.
func NewList[T any](fetch FetchFunc[T], errorMsg string) *List[T] {
	return &List[T]{
		fetch:    fetch,
		errorMsg: errorMsg,
		res:      Resource[[]T]{Data: []T{}},
	}
}

// Load fetches the list. On failure the data is emptied, the error string
// is set and Loading is cleared; no error is returned.
func (l *List[T]) Load(ctx context.Context) Resource[[]T] {
	l.mu.Lock()
	l.res.Loading = true
	l.mu.Unlock()

	items, err := l.fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.res = Resource[[]T]{Data: []T{}, Error: l.errorMsg, Err: err}
		return l.res
	}
	if items == nil {
		items = []T{}
	}
	l.res = Resource[[]T]{Data: items}
	return l.res
}

// State returns the current resource.
func (l *List[T]) State() Resource[[]T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.res
}
