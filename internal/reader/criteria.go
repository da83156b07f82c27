package reader

import (
	"context"

	"github.com/Harshitk-cp/mcdaxml/internal/domain"
	"github.com/Harshitk-cp/mcdaxml/internal/mapper"
)

func (r *Reader) ReadCriteria(ctx context.Context) (*domain.Criteria, error) {
	return load(&r.criteria, func() (*domain.Criteria, error) {
		doc, err := r.document(ctx, KindCriteria)
		if err != nil {
			return nil, err
		}
		return mapper.ReadCriteria(doc, r.sink)
	})
}

// ReadCoalitions returns the criteria weights and the majority threshold. When a
// criteria source is configured, weights of criteria it does not declare are dropped.
func (r *Reader) ReadCoalitions(ctx context.Context) (*domain.Coalitions, error) {
	return load(&r.coalitions, func() (*domain.Coalitions, error) {
		doc, err := r.document(ctx, KindCoalitions)
		if err != nil {
			return nil, err
		}
		weights, err := mapper.ReadCriteriaValues(doc, mapper.ConceptWeights, "", r.sink)
		if err != nil {
			return nil, err
		}

		var known *domain.Criteria
		if r.configured(KindCriteria) {
			if known, err = r.ReadCriteria(ctx); err != nil {
				return nil, err
			}
		}

		c := domain.NewCoalitions()
		for _, w := range weights {
			if known != nil && !known.Known(w.Criterion) {
				if err := r.sink.Report(domain.ErrUnknownReference, "weight given for unknown criterion %q", w.Criterion.ID); err != nil {
					return nil, err
				}
				continue
			}
			c.SetWeight(w.Criterion, w.Value)
		}

		if c.MajorityThreshold, err = mapper.ReadMajorityThreshold(doc, r.sink); err != nil {
			return nil, err
		}
		return c, nil
	})
}
