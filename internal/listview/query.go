// Package listview holds the client-resident list logic: filtering,
// pagination windowing, the row interaction workflow, and reload
// coordination over a fully materialized result set.
package listview

import (
	"strings"
	"sync"
)

// PageSizes are the only page sizes the pagination controls offer.
var PageSizes = []int{10, 25, 50}

const DefaultPageSize = 10

// Params is the full filter and windowing state of one list.
type Params struct {
	Search    string
	Threshold float64
	Page      int // zero-based
	PageSize  int
}

// Fields designates which fields of a row the engine filters on.
type Fields[T any] struct {
	SearchText func(T) string
	Numeric    func(T) float64
}

// Apply filters items by case-insensitive substring match and numeric
// threshold (>=), then cuts the requested page window. It returns the window
// and the total filtered count, and never re-orders its input.
func Apply[T any](items []T, p Params, f Fields[T]) ([]T, int) {
	needle := strings.ToLower(p.Search)

	filtered := []T{}
	for _, item := range items {
		if needle != "" {
			if f.SearchText == nil || !strings.Contains(strings.ToLower(f.SearchText(item)), needle) {
				continue
			}
		}
		if p.Threshold != 0 {
			if f.Numeric == nil || f.Numeric(item) < p.Threshold {
				continue
			}
		}
		filtered = append(filtered, item)
	}

	size := p.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	start := p.Page * size
	if start >= len(filtered) {
		return []T{}, len(filtered)
	}
	end := start + size
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], len(filtered)
}

// ValidPageSize reports whether n is one of the offered page sizes.
func ValidPageSize(n int) bool {
	for _, s := range PageSizes {
		if n == s {
			return true
		}
	}
	return false
}

// Phase is the display state of a view.
type Phase int

const (
	Loading Phase = iota
	Failed
	Ready
)

// View is the stateful face of the engine: every setter recomputes the
// window synchronously. A closed view discards any further data, so a fetch
// that completes after teardown has no effect.
type View[T any] struct {
	mu     sync.Mutex
	fields Fields[T]
	items  []T
	params Params
	phase  Phase
	err    error
	rows   []T
	total  int
	closed bool
}

func NewView[T any](fields Fields[T]) *View[T] {
	return &View[T]{
		fields: fields,
		params: Params{PageSize: DefaultPageSize},
		phase:  Loading,
	}
}

func (v *View[T]) recompute() {
	v.rows, v.total = Apply(v.items, v.params, v.fields)
}

// SetItems installs a freshly fetched result set.
func (v *View[T]) SetItems(items []T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.items = items
	v.phase = Ready
	v.err = nil
	v.recompute()
}

// SetError puts the view into the failed state, keeping prior items out of
// the rendered rows.
func (v *View[T]) SetError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.phase = Failed
	v.err = err
}

func (v *View[T]) SetSearch(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.params.Search = s
	v.recompute()
}

func (v *View[T]) SetThreshold(t float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.params.Threshold = t
	v.recompute()
}

func (v *View[T]) SetPage(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if page < 0 {
		page = 0
	}
	v.params.Page = page
	v.recompute()
}

// SetPageSize switches to one of the offered sizes and resets the page index
// to zero. Sizes outside the offered set are ignored.
func (v *View[T]) SetPageSize(size int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !ValidPageSize(size) {
		return
	}
	v.params.PageSize = size
	v.params.Page = 0
	v.recompute()
}

// Rows returns the current window plus the total filtered count for the
// pagination controls.
func (v *View[T]) Rows() ([]T, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.rows, v.total
}

func (v *View[T]) Params() Params {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.params
}

func (v *View[T]) Phase() Phase {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.phase
}

func (v *View[T]) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// Empty reports the explicit no-records state: loaded fine, nothing matched.
func (v *View[T]) Empty() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.phase == Ready && v.total == 0
}

// Close tears the view down; late SetItems/SetError calls become no-ops.
func (v *View[T]) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}
