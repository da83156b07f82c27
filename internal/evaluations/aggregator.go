// Package evaluations merges performance tables read from several fragments and
// splits them between real alternatives and profiles.
package evaluations

import (
	"strings"

	"github.com/Harshitk-cp/mcdaxml/internal/domain"
	"github.com/Harshitk-cp/mcdaxml/internal/errsink"
)

// Role is the part of the problem a performance table is declared for.
type Role int

const (
	RoleUnmarked Role = iota
	RoleAlternatives
	RoleProfiles
)

func (r Role) String() string {
	switch r {
	case RoleAlternatives:
		return "alternatives"
	case RoleProfiles:
		return "profiles"
	default:
		return "unmarked"
	}
}

// RoleOf maps a table's mcdaConcept text to its role.
func RoleOf(declared string) Role {
	switch strings.ToLower(strings.TrimSpace(declared)) {
	case "alternatives", "real", "alternativesevaluations":
		return RoleAlternatives
	case "profiles", "fictive", "profilesevaluations":
		return RoleProfiles
	}
	return RoleUnmarked
}

type Aggregator struct {
	sink errsink.Sink
}

func New(sink errsink.Sink) *Aggregator {
	return &Aggregator{sink: sink}
}

// Merge combines two matrices into a new one. Rows on one side only pass through,
// identical rows appear once, and a row whose values differ between the sides is
// reported and left out of the result.
func (a *Aggregator) Merge(existing, incoming domain.Evaluations) (*domain.EvaluationsMatrix, error) {
	out := domain.ToMatrix(existing)
	if err := a.mergeInto(out, incoming, domain.NewOrderedSet[domain.Alternative]()); err != nil {
		return nil, err
	}
	return out, nil
}

// MergeAll folds fragments in order. A row rejected once stays out even if a later
// fragment repeats it.
func (a *Aggregator) MergeAll(fragments ...domain.Evaluations) (*domain.EvaluationsMatrix, error) {
	out := domain.NewEvaluationsMatrix()
	rejected := domain.NewOrderedSet[domain.Alternative]()
	for _, f := range fragments {
		if err := a.mergeInto(out, f, rejected); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (a *Aggregator) mergeInto(out *domain.EvaluationsMatrix, incoming domain.Evaluations, rejected *domain.OrderedSet[domain.Alternative]) error {
	if incoming == nil {
		return nil
	}
	cols := incoming.Columns()
	for _, alt := range incoming.Rows() {
		if rejected.Contains(alt) {
			continue
		}
		row, _ := incoming.Row(alt)
		current, exists := out.Row(alt)
		if !exists {
			out.PutRow(alt, cols, row)
			continue
		}
		if domain.RowsEqual(current, row) {
			continue
		}
		if err := a.sink.Report(domain.ErrDuplicateValue, "evaluations of %q differ between fragments", alt.ID); err != nil {
			return err
		}
		out.RemoveRow(alt)
		rejected.Add(alt)
	}
	return nil
}

// Tables groups matrices by role, each group merged in document order.
type Tables struct {
	Alternatives *domain.EvaluationsMatrix
	Profiles     *domain.EvaluationsMatrix
	Unmarked     *domain.EvaluationsMatrix
}

// Group merges the given tables by role.
func (a *Aggregator) Group(roles []Role, matrices []domain.Evaluations) (Tables, error) {
	byRole := make(map[Role][]domain.Evaluations)
	for i, m := range matrices {
		byRole[roles[i]] = append(byRole[roles[i]], m)
	}
	var t Tables
	var err error
	if t.Alternatives, err = a.MergeAll(byRole[RoleAlternatives]...); err != nil {
		return Tables{}, err
	}
	if t.Profiles, err = a.MergeAll(byRole[RoleProfiles]...); err != nil {
		return Tables{}, err
	}
	if t.Unmarked, err = a.MergeAll(byRole[RoleUnmarked]...); err != nil {
		return Tables{}, err
	}
	return t, nil
}

// Split projects unmarked evaluations onto the two roles: rows of known profiles go to
// profiles, every other row to alternatives. No cell is copied.
func Split(unmarked *domain.EvaluationsMatrix, profiles *domain.OrderedSet[domain.Alternative]) (alternatives, profs *domain.EvaluationsView) {
	return unmarked.Exclude(profiles), unmarked.Restrict(profiles)
}

// Assemble returns the evaluations of one role: the tables declared for it merged with
// the unmarked rows it owns. When nothing was declared for the role the owned
// projection is returned as is.
func (a *Aggregator) Assemble(declared *domain.EvaluationsMatrix, owned domain.Evaluations) (domain.Evaluations, error) {
	if declared == nil || declared.IsEmpty() {
		return owned, nil
	}
	if owned == nil || owned.IsEmpty() {
		return declared, nil
	}
	return a.Merge(declared, owned)
}
