package reader

import (
	"context"

	"github.com/Harshitk-cp/mcdaxml/internal/domain"
	"github.com/Harshitk-cp/mcdaxml/internal/evaluations"
	"github.com/Harshitk-cp/mcdaxml/internal/mapper"
	"go.uber.org/zap"
)

type evaluationsResult struct {
	alternatives domain.Evaluations
	profiles     domain.Evaluations
}

// ReadAlternativesEvaluations returns the performances of real alternatives: tables
// declared for alternatives plus every unmarked row that is not a profile's.
func (r *Reader) ReadAlternativesEvaluations(ctx context.Context) (domain.Evaluations, error) {
	res, err := r.readEvaluations(ctx)
	if err != nil {
		return nil, err
	}
	return res.alternatives, nil
}

// ReadProfilesEvaluations returns the performances of profiles: tables declared for
// profiles plus the unmarked rows of known profiles.
func (r *Reader) ReadProfilesEvaluations(ctx context.Context) (domain.Evaluations, error) {
	res, err := r.readEvaluations(ctx)
	if err != nil {
		return nil, err
	}
	return res.profiles, nil
}

// readEvaluations reads both roles at once. When both kinds resolve to the same
// source its tables are grouped once and projected twice.
func (r *Reader) readEvaluations(ctx context.Context) (evaluationsResult, error) {
	return load(&r.evaluations, func() (evaluationsResult, error) {
		profiles, err := r.ReadProfiles(ctx)
		if err != nil {
			return evaluationsResult{}, err
		}
		profileSet := domain.NewOrderedSet(profiles...)
		agg := evaluations.New(r.sink)

		grouped := make(map[string]evaluations.Tables)
		tablesOf := func(kind Kind) (evaluations.Tables, error) {
			key := ""
			if src := r.EffectiveSource(kind); src != nil {
				key = src.ID()
			}
			if t, ok := grouped[key]; ok {
				r.logger.Debug("evaluations shared", zap.Stringer("kind", kind), zap.String("source", key))
				return t, nil
			}
			doc, err := r.document(ctx, kind)
			if err != nil {
				return evaluations.Tables{}, err
			}
			tables, err := mapper.ReadPerformanceTables(doc, r.sink)
			if err != nil {
				return evaluations.Tables{}, err
			}
			roles := make([]evaluations.Role, len(tables))
			matrices := make([]domain.Evaluations, len(tables))
			for i, t := range tables {
				roles[i] = evaluations.RoleOf(t.Declared)
				matrices[i] = t.Matrix
			}
			t, err := agg.Group(roles, matrices)
			if err != nil {
				return evaluations.Tables{}, err
			}
			grouped[key] = t
			return t, nil
		}

		at, err := tablesOf(KindAlternativesEvaluations)
		if err != nil {
			return evaluationsResult{}, err
		}
		pt, err := tablesOf(KindProfilesEvaluations)
		if err != nil {
			return evaluationsResult{}, err
		}

		altOwned, _ := evaluations.Split(at.Unmarked, profileSet)
		_, profOwned := evaluations.Split(pt.Unmarked, profileSet)
		alts, err := agg.Assemble(at.Alternatives, altOwned)
		if err != nil {
			return evaluationsResult{}, err
		}
		profs, err := agg.Assemble(pt.Profiles, profOwned)
		if err != nil {
			return evaluationsResult{}, err
		}
		return evaluationsResult{alternatives: alts, profiles: profs}, nil
	})
}
