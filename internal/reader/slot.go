package reader

import "errors"

var ErrReentrantRead = errors.New("object is already being read")

type slotState int

const (
	unread slotState = iota
	reading
	cached
)

// slot memoizes one object. A failed read leaves it unread so the read can be
// retried after the sources are fixed.
type slot[T any] struct {
	state slotState
	value T
}

func (s *slot[T]) reset() {
	var zero T
	s.state = unread
	s.value = zero
}

func (s *slot[T]) isCached() bool { return s.state == cached }

func load[T any](s *slot[T], read func() (T, error)) (T, error) {
	var zero T
	switch s.state {
	case cached:
		return s.value, nil
	case reading:
		return zero, ErrReentrantRead
	}
	s.state = reading
	v, err := read()
	if err != nil {
		s.state = unread
		return zero, err
	}
	s.state = cached
	s.value = v
	return v, nil
}

type resetter interface {
	reset()
	isCached() bool
}

// kindSet is a bit set of source kinds.
type kindSet uint16

func kinds(ks ...Kind) kindSet {
	var s kindSet
	for _, k := range ks {
		s |= 1 << k
	}
	return s
}

func (s kindSet) has(k Kind) bool { return s&(1<<k) != 0 }

type entry struct {
	name string
	deps kindSet
	slot resetter
}
