package roster

import (
	"iter"
	"slices"
)

// UniqueList is an ordered collection that rejects two items sharing a key.
// Identity is decided by the key function alone, so two students with the
// same id but different names collide.
type UniqueList[T any] struct {
	kind  string
	key   func(T) string
	items []T
	index map[string]int
}

// NewUniqueList returns an empty list. kind names the entity in errors.
func NewUniqueList[T any](kind string, key func(T) string) *UniqueList[T] {
	return &UniqueList[T]{
		kind:  kind,
		key:   key,
		index: make(map[string]int),
	}
}

// Len returns the number of items.
func (l *UniqueList[T]) Len() int {
	return len(l.items)
}

// Contains reports whether an item with the same identity as item exists.
func (l *UniqueList[T]) Contains(item T) bool {
	return l.ContainsKey(l.key(item))
}

// ContainsKey reports whether an item with the given key exists.
func (l *UniqueList[T]) ContainsKey(key string) bool {
	_, ok := l.index[key]
	return ok
}

// Get returns the item with the given key.
func (l *UniqueList[T]) Get(key string) (T, bool) {
	pos, ok := l.index[key]
	if !ok {
		var zero T
		return zero, false
	}
	return l.items[pos], true
}

// Add appends item, failing if its identity is already present.
func (l *UniqueList[T]) Add(item T) error {
	key := l.key(item)
	if l.ContainsKey(key) {
		return &DuplicateError{Kind: l.kind, Key: key}
	}
	l.index[key] = len(l.items)
	l.items = append(l.items, item)
	return nil
}

// Set replaces target with replacement at the same position.
// The replacement may keep target's identity but must not take the identity
// of a different item.
func (l *UniqueList[T]) Set(target, replacement T) error {
	oldKey := l.key(target)
	pos, ok := l.index[oldKey]
	if !ok {
		return &NotFoundError{Kind: l.kind, Key: oldKey}
	}

	newKey := l.key(replacement)
	if other, exists := l.index[newKey]; exists && other != pos {
		return &DuplicateError{Kind: l.kind, Key: newKey}
	}

	delete(l.index, oldKey)
	l.items[pos] = replacement
	l.index[newKey] = pos
	return nil
}

// Remove deletes the item with the same identity as item.
func (l *UniqueList[T]) Remove(item T) error {
	return l.RemoveKey(l.key(item))
}

// RemoveKey deletes the item with the given key.
func (l *UniqueList[T]) RemoveKey(key string) error {
	pos, ok := l.index[key]
	if !ok {
		return &NotFoundError{Kind: l.kind, Key: key}
	}
	l.items = slices.Delete(l.items, pos, pos+1)
	l.reindex()
	return nil
}

// SetAll replaces the whole contents with items. On a duplicate the list is
// left untouched.
func (l *UniqueList[T]) SetAll(items []T) error {
	index := make(map[string]int, len(items))
	for i, item := range items {
		key := l.key(item)
		if _, exists := index[key]; exists {
			return &DuplicateError{Kind: l.kind, Key: key}
		}
		index[key] = i
	}
	l.items = slices.Clone(items)
	l.index = index
	return nil
}

// All iterates the items in insertion order.
func (l *UniqueList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range l.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Items returns a copy of the items in insertion order.
func (l *UniqueList[T]) Items() []T {
	return slices.Clone(l.items)
}

// Keys returns the item keys in insertion order.
func (l *UniqueList[T]) Keys() []string {
	keys := make([]string, 0, len(l.items))
	for _, item := range l.items {
		keys = append(keys, l.key(item))
	}
	return keys
}

func (l *UniqueList[T]) reindex() {
	clear(l.index)
	for i, item := range l.items {
		l.index[l.key(item)] = i
	}
}
