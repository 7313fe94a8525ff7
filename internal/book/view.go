package book

// Predicate decides membership of a single element in a filtered view.
type Predicate[T any] func(T) bool

// FilteredView is a predicate-constrained projection of a backing list. It is
// bound to its source at construction and re-derives its contents whenever
// the predicate changes or Refresh is invoked (the AddressBook does the
// latter from its mutation hook, so the projection is always current by the
// time a mutation returns).
type FilteredView[T any] struct {
	source func() []T
	pred   Predicate[T]
	items  []T
}

// NewFilteredView builds a view over source with the show-all predicate.
func NewFilteredView[T any](source func() []T) *FilteredView[T] {
	v := &FilteredView[T]{
		source: source,
		pred:   func(T) bool { return true },
	}
	v.Refresh()
	return v
}

// SetPredicate replaces the active filter and re-evaluates immediately.
func (v *FilteredView[T]) SetPredicate(pred Predicate[T]) error {
	if pred == nil {
		return ErrNilPredicate
	}
	v.pred = pred
	v.Refresh()
	return nil
}

// ShowAll resets the view to the unfiltered projection.
func (v *FilteredView[T]) ShowAll() {
	v.pred = func(T) bool { return true }
	v.Refresh()
}

// Refresh re-derives the contents from the backing list, preserving its order.
func (v *FilteredView[T]) Refresh() {
	src := v.source()
	v.items = v.items[:0]
	for _, it := range src {
		if v.pred(it) {
			v.items = append(v.items, it)
		}
	}
}

// AsList returns the current filtered contents in backing-store order.
// Callers must not mutate the returned slice.
func (v *FilteredView[T]) AsList() []T { return v.items }

// Len returns the current filtered element count.
func (v *FilteredView[T]) Len() int { return len(v.items) }
