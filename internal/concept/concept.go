// Package concept reconciles the concept declared by an enclosing collection with
// the concept an entity declares for itself, and records the outcome per entity.
package concept

import (
	"github.com/Harshitk-cp/mcdaxml/internal/domain"
	"github.com/Harshitk-cp/mcdaxml/internal/errsink"
)

// Resolve combines an outer (container) and inner (entity) concept. An unmarked
// input counts as absent. ok is false when both are marked and disagree.
func Resolve(outer, inner domain.Concept) (domain.Concept, bool) {
	switch {
	case !inner.IsMarked():
		return outer, true
	case !outer.IsMarked():
		return inner, true
	case outer == inner:
		return inner, true
	}
	return domain.ConceptUnmarked, false
}

type Resolver struct {
	sink errsink.Sink
}

func NewResolver(sink errsink.Sink) *Resolver {
	return &Resolver{sink: sink}
}

// Resolve reports a conflicting marking for alt. ok is false when alt has no concept
// and must be rejected.
func (r *Resolver) Resolve(alt domain.Alternative, outer, inner domain.Concept) (domain.Concept, bool, error) {
	c, ok := Resolve(outer, inner)
	if ok {
		return c, true, nil
	}
	err := r.sink.Report(domain.ErrConflictingMarking,
		"alternative %q is marked %s inside a collection declared %s", alt.ID, inner, outer)
	return domain.ConceptUnmarked, false, err
}

// Marking accumulates the resolved concept of each entity seen during one read,
// and which entities were inactive.
type Marking struct {
	concepts map[domain.Alternative]domain.Concept
	order    *domain.OrderedSet[domain.Alternative]
	inactive *domain.OrderedSet[domain.Alternative]
}

func NewMarking() *Marking {
	return &Marking{
		concepts: make(map[domain.Alternative]domain.Concept),
		order:    domain.NewOrderedSet[domain.Alternative](),
		inactive: domain.NewOrderedSet[domain.Alternative](),
	}
}

// Record stores the first concept seen for alt; later records keep the first.
func (m *Marking) Record(alt domain.Alternative, c domain.Concept, active bool) {
	if m.order.Add(alt) {
		m.concepts[alt] = c
	}
	if !active {
		m.inactive.Add(alt)
	}
}

func (m *Marking) Concept(alt domain.Alternative) (domain.Concept, bool) {
	c, ok := m.concepts[alt]
	return c, ok
}

func (m *Marking) IsMarked(alt domain.Alternative) bool {
	return m.concepts[alt].IsMarked()
}

func (m *Marking) IsInactive(alt domain.Alternative) bool {
	return m.inactive.Contains(alt)
}

func (m *Marking) Entities() []domain.Alternative { return m.order.Items() }

func (m *Marking) Inactive() []domain.Alternative { return m.inactive.Items() }
