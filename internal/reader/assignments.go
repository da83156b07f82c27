package reader

import (
	"context"

	"github.com/Harshitk-cp/mcdaxml/internal/domain"
	"github.com/Harshitk-cp/mcdaxml/internal/mapper"
)

type assignmentsResult struct {
	shared *domain.Assignments
	groups map[string]*domain.Assignments
	names  []string
}

// ReadAssignments returns the assignments of unnamed collections.
func (r *Reader) ReadAssignments(ctx context.Context) (*domain.Assignments, error) {
	res, err := r.readAssignments(ctx)
	if err != nil {
		return nil, err
	}
	return res.shared, nil
}

func (r *Reader) readAssignments(ctx context.Context) (assignmentsResult, error) {
	return load(&r.assignments, func() (assignmentsResult, error) {
		doc, err := r.document(ctx, KindAssignments)
		if err != nil {
			return assignmentsResult{}, err
		}
		colls, err := mapper.ReadAssignmentsCollections(doc, r.sink)
		if err != nil {
			return assignmentsResult{}, err
		}

		var cp *domain.CategoriesProfiles
		if r.configured(KindCategories) {
			if cp, err = r.ReadCategoriesProfiles(ctx); err != nil {
				return assignmentsResult{}, err
			}
			if len(cp.Categories()) == 0 {
				cp = nil
			}
		}

		res := assignmentsResult{shared: domain.NewAssignments(), groups: make(map[string]*domain.Assignments)}
		for _, coll := range colls {
			target := res.shared
			if coll.Name != "" {
				if target = res.groups[coll.Name]; target == nil {
					target = domain.NewAssignments()
					res.groups[coll.Name] = target
					res.names = append(res.names, coll.Name)
				}
			}
			for _, as := range coll.Assignments {
				ok, err := r.checkAssignment(cp, as)
				if err != nil {
					return assignmentsResult{}, err
				}
				if !ok {
					continue
				}
				if target.Put(as) {
					continue
				}
				if err := r.sink.Report(domain.ErrDuplicateValue, "alternative %q assigned more than once", as.Alternative.ID); err != nil {
					return assignmentsResult{}, err
				}
			}
		}
		return res, nil
	})
}

func (r *Reader) checkAssignment(cp *domain.CategoriesProfiles, as *domain.Assignment) (bool, error) {
	if cp == nil {
		return true, nil
	}
	for _, c := range as.Categories() {
		if cp.HasCategory(c) {
			continue
		}
		err := r.sink.Report(domain.ErrUnknownReference, "alternative %q assigned to unknown category %q", as.Alternative.ID, c.ID)
		return false, err
	}
	return true, nil
}

// ReadDecisionMakers returns the decision makers listed as parameters followed by
// those naming an assignments collection, without repeats.
func (r *Reader) ReadDecisionMakers(ctx context.Context) ([]domain.DecisionMaker, error) {
	return load(&r.decisionMakers, func() ([]domain.DecisionMaker, error) {
		doc, err := r.document(ctx, KindDecisionMakers)
		if err != nil {
			return nil, err
		}
		labels, err := mapper.ReadDecisionMakerLabels(doc, r.sink)
		if err != nil {
			return nil, err
		}
		seen := domain.NewOrderedSet[domain.DecisionMaker]()
		for _, l := range append(labels, mapper.ReadAssignmentsNames(doc)...) {
			dm, err := domain.NewDecisionMaker(l)
			if err != nil {
				if err := r.sink.Report(domain.ErrMissingRequiredField, "decision maker: %v", err); err != nil {
					return nil, err
				}
				continue
			}
			seen.Add(dm)
		}
		return seen.Items(), nil
	})
}

// ReadGroupAssignments returns the assignments of each named collection keyed by
// decision maker. When decision makers are declared, collections of anyone else are
// dropped.
func (r *Reader) ReadGroupAssignments(ctx context.Context) (map[domain.DecisionMaker]*domain.Assignments, error) {
	return load(&r.groupAssignments, func() (map[domain.DecisionMaker]*domain.Assignments, error) {
		res, err := r.readAssignments(ctx)
		if err != nil {
			return nil, err
		}
		dms, err := r.ReadDecisionMakers(ctx)
		if err != nil {
			return nil, err
		}
		known := domain.NewOrderedSet(dms...)

		out := make(map[domain.DecisionMaker]*domain.Assignments, len(res.names))
		for _, name := range res.names {
			dm := domain.DecisionMaker{ID: name}
			if known.Len() > 0 && !known.Contains(dm) {
				if err := r.sink.Report(domain.ErrUnknownReference, "assignments of unknown decision maker %q", name); err != nil {
					return nil, err
				}
				continue
			}
			out[dm] = res.groups[name]
		}
		return out, nil
	})
}
