package content

import (
	"slices"
	"strconv"
	"strings"
)

// Registry is an immutable, ordered collection of records of one kind.
type Registry[T Record] struct {
	kind     Kind
	items    []T
	declared []string
}

// NewRegistry copies items into a new registry. When declared categories are
// given they fix the category set and its order; otherwise the set is derived
// from the records.
func NewRegistry[T Record](kind Kind, items []T, declared ...string) *Registry[T] {
	return &Registry[T]{
		kind:     kind,
		items:    slices.Clone(items),
		declared: slices.Clone(declared),
	}
}

func (r *Registry[T]) Kind() Kind { return r.kind }
func (r *Registry[T]) Len() int   { return len(r.items) }

// All returns every record in registry order.
func (r *Registry[T]) All() []T {
	return slices.Clone(r.items)
}

// Categories returns All followed by the declared categories, or by the
// union of record categories in first-appearance order.
func (r *Registry[T]) Categories() []string {
	cats := []string{All}
	if len(r.declared) > 0 {
		return append(cats, r.declared...)
	}
	seen := map[string]bool{}
	for _, item := range r.items {
		for _, c := range item.CategorySet() {
			if c == "" || c == All || seen[c] {
				continue
			}
			seen[c] = true
			cats = append(cats, c)
		}
	}
	return cats
}

// HasCategory reports whether category is part of the category set.
func (r *Registry[T]) HasCategory(category string) bool {
	return slices.Contains(r.Categories(), category)
}

// Filter returns the records filed under category, keeping registry order.
// The empty category and All return the whole registry.
func (r *Registry[T]) Filter(category string) []T {
	if IsAll(category) {
		return r.All()
	}
	var out []T
	for _, item := range r.items {
		if slices.Contains(item.CategorySet(), category) {
			out = append(out, item)
		}
	}
	return out
}

// Lookup finds a record by key.
func (r *Registry[T]) Lookup(key string) (T, bool) {
	for _, item := range r.items {
		if item.Key() == key {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// BySlug finds a record by its URL slug.
func (r *Registry[T]) BySlug(slug string) (T, bool) {
	for _, item := range r.items {
		if item.Slug() == slug {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Uncovered returns the keys of records that no non-All category selects.
func (r *Registry[T]) Uncovered() []string {
	var keys []string
	for _, i := range r.uncovered() {
		keys = append(keys, r.items[i].Key())
	}
	return keys
}

func (r *Registry[T]) uncovered() []int {
	covered := make([]bool, len(r.items))
	for _, c := range r.Categories()[1:] {
		for i, item := range r.items {
			if slices.Contains(item.CategorySet(), c) {
				covered[i] = true
			}
		}
	}
	var idx []int
	for i, ok := range covered {
		if !ok {
			idx = append(idx, i)
		}
	}
	return idx
}

// summarizer is implemented by records whose card shows a summary.
type summarizer interface {
	Summary() string
}

// Validate checks the registry for entries that would break listing or
// lookup. It never fails; every problem is returned as a Warning.
func (r *Registry[T]) Validate() []Warning {
	var warnings []Warning
	add := func(i int, key, problem string) {
		warnings = append(warnings, Warning{Kind: r.kind, Index: i, Key: key, Problem: problem})
	}

	keys := map[string]int{}
	slugs := map[string]int{}
	declared := map[string]bool{}
	for _, c := range r.declared {
		declared[c] = true
	}

	for i, item := range r.items {
		key := item.Key()
		if strings.TrimSpace(key) == "" {
			add(i, "", "empty title")
			continue
		}
		if j, dup := keys[key]; dup {
			add(i, key, "duplicate title, first used at index "+strconv.Itoa(j))
		} else {
			keys[key] = i
		}
		if slug := item.Slug(); slug == "" {
			add(i, key, "title produces an empty slug")
		} else if j, dup := slugs[slug]; dup && r.items[j].Key() != key {
			add(i, key, "slug "+slug+" collides with index "+strconv.Itoa(j))
		} else {
			slugs[slug] = i
		}

		if s, ok := any(item).(summarizer); ok && strings.TrimSpace(s.Summary()) == "" {
			add(i, key, "empty description")
		}

		cats := item.CategorySet()
		if len(cats) == 0 {
			add(i, key, "no categories")
			continue
		}
		for _, c := range cats {
			if strings.TrimSpace(c) == "" {
				add(i, key, "empty category")
			} else if c == All {
				add(i, key, "category "+All+" is reserved")
			} else if len(declared) > 0 && !declared[c] {
				add(i, key, "category "+c+" is not declared")
			}
		}
	}

	for _, i := range r.uncovered() {
		item := r.items[i]
		if item.Key() != "" && len(item.CategorySet()) > 0 {
			add(i, item.Key(), "not reachable from any category")
		}
	}
	return warnings
}

// IsAll reports whether category selects the whole registry.
func IsAll(category string) bool {
	return category == "" || category == All
}
