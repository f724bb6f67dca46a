// internal/listview/reload.go
package listview

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// Loader is the invalidate-and-reload half of a list: concurrent reload
// requests collapse into one in-flight fetch, and every caller gets that
// fetch's result.
type Loader[T any] struct {
	sf    singleflight.Group
	fetch func(ctx context.Context) ([]T, error)
}

func NewLoader[T any](fetch func(ctx context.Context) ([]T, error)) *Loader[T] {
	return &Loader[T]{fetch: fetch}
}

// Load fetches the full result set. A reload already in flight absorbs this
// request instead of issuing a duplicate fetch.
func (l *Loader[T]) Load(ctx context.Context) ([]T, error) {
	result, err, _ := l.sf.Do("reload", func() (interface{}, error) {
		return l.fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.([]T), nil
}

// LoadInto feeds the result into the view. The view itself drops the result
// when it has been closed in the meantime.
func (l *Loader[T]) LoadInto(ctx context.Context, view *View[T]) {
	items, err := l.Load(ctx)
	if err != nil {
		view.SetError(err)
		return
	}
	view.SetItems(items)
}
