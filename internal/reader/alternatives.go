package reader

import (
	"context"

	"github.com/Harshitk-cp/mcdaxml/internal/domain"
	"github.com/Harshitk-cp/mcdaxml/internal/mapper"
	"github.com/Harshitk-cp/mcdaxml/internal/parsing"
)

type alternativesResult struct {
	reals    parsing.Result
	fictives parsing.Result
	inactive []domain.Alternative
}

// ReadAlternatives returns the active real alternatives.
func (r *Reader) ReadAlternatives(ctx context.Context) ([]domain.Alternative, error) {
	res, err := r.readAlternatives(ctx)
	if err != nil {
		return nil, err
	}
	return res.reals.Alternatives, nil
}

// ReadInactiveAlternatives returns every entity declared inactive, real or fictive,
// in document order.
func (r *Reader) ReadInactiveAlternatives(ctx context.Context) ([]domain.Alternative, error) {
	res, err := r.readAlternatives(ctx)
	if err != nil {
		return nil, err
	}
	return res.inactive, nil
}

func (r *Reader) readAlternatives(ctx context.Context) (alternativesResult, error) {
	return load(&r.alternatives, func() (alternativesResult, error) {
		doc, err := r.document(ctx, KindAlternatives)
		if err != nil {
			return alternativesResult{}, err
		}
		colls, err := mapper.ReadAlternativesCollections(doc, r.sink)
		if err != nil {
			return alternativesResult{}, err
		}
		reals, fictives, err := parsing.Partition(r.strategy, colls, r.sink)
		if err != nil {
			return alternativesResult{}, err
		}
		inactive := domain.NewOrderedSet(reals.Inactive...)
		for _, a := range fictives.Inactive {
			inactive.Add(a)
		}
		return alternativesResult{reals: reals, fictives: fictives, inactive: inactive.Items()}, nil
	})
}

// ReadCategoriesProfiles returns the active categories, worst first, with the
// profiles bounding them. Bounds naming an unknown category are dropped, as are
// bounds held by a real alternative.
func (r *Reader) ReadCategoriesProfiles(ctx context.Context) (*domain.CategoriesProfiles, error) {
	return load(&r.categories, func() (*domain.CategoriesProfiles, error) {
		doc, err := r.document(ctx, KindCategories)
		if err != nil {
			return nil, err
		}
		entries, err := mapper.ReadCategories(doc, r.sink)
		if err != nil {
			return nil, err
		}
		cp := domain.NewCategoriesProfiles()
		inactive := domain.NewOrderedSet[domain.Category]()
		for _, e := range entries {
			if e.Active {
				cp.AddCategory(e.Category)
			} else {
				inactive.Add(e.Category)
			}
		}

		bounds, err := mapper.ReadCategoriesProfiles(doc, r.sink)
		if err != nil {
			return nil, err
		}
		for _, b := range bounds {
			ok, err := r.checkBound(cp, inactive, b)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			if !cp.Bound(b.Profile, b.Lower, b.Upper) {
				if err := r.sink.Report(domain.ErrDuplicateValue, "profile %q bounds more than one pair of categories", b.Profile.ID); err != nil {
					return nil, err
				}
			}
		}
		if len(cp.Profiles()) == 0 {
			return cp, nil
		}

		alts, err := r.readAlternatives(ctx)
		if err != nil {
			return nil, err
		}
		if err := r.dropOverlap(cp.Profiles(), alts.reals.Alternatives, cp.RemoveProfile); err != nil {
			return nil, err
		}
		return cp, nil
	})
}

// checkBound tells whether both categories of a profile bound are known. A bound on
// an inactive category is dropped without a report.
func (r *Reader) checkBound(cp *domain.CategoriesProfiles, inactive *domain.OrderedSet[domain.Category], b mapper.ProfileBound) (bool, error) {
	for _, c := range []domain.Category{b.Lower, b.Upper} {
		if c.ID == "" || cp.HasCategory(c) {
			continue
		}
		if inactive.Contains(c) {
			return false, nil
		}
		err := r.sink.Report(domain.ErrUnknownReference, "profile %q refers to unknown category %q", b.Profile.ID, c.ID)
		return false, err
	}
	return true, nil
}

// ReadProfiles returns the profiles: entities read as fictive alternatives followed
// by the profiles bounding categories. An entity that is also a real alternative is
// reported and left out.
func (r *Reader) ReadProfiles(ctx context.Context) ([]domain.Alternative, error) {
	return load(&r.profiles, func() ([]domain.Alternative, error) {
		alts, err := r.readAlternatives(ctx)
		if err != nil {
			return nil, err
		}
		cp, err := r.ReadCategoriesProfiles(ctx)
		if err != nil {
			return nil, err
		}
		profiles := domain.NewOrderedSet(alts.fictives.Alternatives...)
		for _, p := range cp.Profiles() {
			profiles.Add(p)
		}
		if err := r.dropOverlap(profiles.Items(), alts.reals.Alternatives, func(p domain.Alternative) { profiles.Remove(p) }); err != nil {
			return nil, err
		}
		return profiles.Items(), nil
	})
}

// dropOverlap reports every profile that is also a real alternative and hands it to
// drop.
func (r *Reader) dropOverlap(profiles, reals []domain.Alternative, drop func(domain.Alternative)) error {
	for _, p := range parsing.Overlap(profiles, reals) {
		if err := r.sink.Report(domain.ErrConflictingMarking, "%q is both an alternative and a profile", p.ID); err != nil {
			return err
		}
		drop(p)
	}
	return nil
}
