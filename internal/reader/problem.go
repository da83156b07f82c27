package reader

import (
	"context"

	"github.com/Harshitk-cp/mcdaxml/internal/domain"
)

// ReadSortingData reads what a sorting method needs. Alternatives and profiles are
// disjoint.
func (r *Reader) ReadSortingData(ctx context.Context) (*domain.SortingData, error) {
	return load(&r.sortingData, func() (*domain.SortingData, error) {
		var (
			d   domain.SortingData
			err error
		)
		if d.Alternatives, err = r.ReadAlternatives(ctx); err != nil {
			return nil, err
		}
		if d.Profiles, err = r.ReadProfiles(ctx); err != nil {
			return nil, err
		}
		if d.AlternativesEvaluations, err = r.ReadAlternativesEvaluations(ctx); err != nil {
			return nil, err
		}
		if d.ProfilesEvaluations, err = r.ReadProfilesEvaluations(ctx); err != nil {
			return nil, err
		}
		if d.Criteria, err = r.ReadCriteria(ctx); err != nil {
			return nil, err
		}
		if d.CategoriesProfiles, err = r.ReadCategoriesProfiles(ctx); err != nil {
			return nil, err
		}
		return &d, nil
	})
}

// ReadProblem reads every object the sources describe.
func (r *Reader) ReadProblem(ctx context.Context) (*domain.Problem, error) {
	return load(&r.problem, func() (*domain.Problem, error) {
		sd, err := r.ReadSortingData(ctx)
		if err != nil {
			return nil, err
		}
		p := &domain.Problem{
			Alternatives:            sd.Alternatives,
			Profiles:                sd.Profiles,
			AlternativesEvaluations: sd.AlternativesEvaluations,
			ProfilesEvaluations:     sd.ProfilesEvaluations,
			Criteria:                sd.Criteria,
			CategoriesProfiles:      sd.CategoriesProfiles,
		}
		if p.InactiveAlternatives, err = r.ReadInactiveAlternatives(ctx); err != nil {
			return nil, err
		}
		if p.Coalitions, err = r.ReadCoalitions(ctx); err != nil {
			return nil, err
		}
		if p.Assignments, err = r.ReadAssignments(ctx); err != nil {
			return nil, err
		}
		if p.DecisionMakers, err = r.ReadDecisionMakers(ctx); err != nil {
			return nil, err
		}
		if p.GroupAssignments, err = r.ReadGroupAssignments(ctx); err != nil {
			return nil, err
		}
		return p, nil
	})
}
