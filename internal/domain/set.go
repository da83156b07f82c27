package domain

// OrderedSet keeps insertion order. The zero value is not usable; use NewOrderedSet.
type OrderedSet[T comparable] struct {
	items []T
	index map[T]int
}

func NewOrderedSet[T comparable](items ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{index: make(map[T]int)}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add inserts v and reports whether it was absent.
func (s *OrderedSet[T]) Add(v T) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = len(s.items)
	s.items = append(s.items, v)
	return true
}

func (s *OrderedSet[T]) Contains(v T) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[v]
	return ok
}

func (s *OrderedSet[T]) Remove(v T) bool {
	i, ok := s.index[v]
	if !ok {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, v)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j]] = j
	}
	return true
}

func (s *OrderedSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Items returns a copy of the members in insertion order.
func (s *OrderedSet[T]) Items() []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Intersect returns the members of s also in o, in s's order.
func (s *OrderedSet[T]) Intersect(o *OrderedSet[T]) []T {
	var out []T
	if s == nil {
		return out
	}
	for _, it := range s.items {
		if o.Contains(it) {
			out = append(out, it)
		}
	}
	return out
}

func (s *OrderedSet[T]) Clone() *OrderedSet[T] {
	if s == nil {
		return NewOrderedSet[T]()
	}
	return NewOrderedSet(s.items...)
}
