package symbols

import (
	"iter"
	"slices"
)

// registry is an insertion-ordered map. Replacing a value keeps its slot;
// deleting a key closes the gap.
type registry[T any] struct {
	order []string
	items map[string]T
}

func newRegistry[T any]() *registry[T] {
	return &registry[T]{items: make(map[string]T)}
}

func (r *registry[T]) get(key string) (T, bool) {
	v, ok := r.items[key]
	return v, ok
}

// set stores v under key and reports whether an entry was replaced.
func (r *registry[T]) set(key string, v T) bool {
	_, replaced := r.items[key]
	if !replaced {
		r.order = append(r.order, key)
	}
	r.items[key] = v
	return replaced
}

func (r *registry[T]) delete(key string) (T, bool) {
	v, ok := r.items[key]
	if !ok {
		return v, false
	}
	delete(r.items, key)
	if i := slices.Index(r.order, key); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return v, true
}

func (r *registry[T]) len() int {
	return len(r.order)
}

func (r *registry[T]) clear() {
	r.order = nil
	clear(r.items)
}

// values walks the registry as it is at each step, so entries added during
// iteration are visited.
func (r *registry[T]) values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(r.order); i++ {
			if !yield(r.items[r.order[i]]) {
				return
			}
		}
	}
}
