// Package writer renders a problem as an exchange document that the reader reads
// back unchanged.
package writer

import (
	"fmt"
	"io"
	"sort"

	"github.com/Harshitk-cp/mcdaxml/internal/buildconfig"
	"github.com/Harshitk-cp/mcdaxml/internal/domain"
	"github.com/Harshitk-cp/mcdaxml/internal/mapper"
	"github.com/Harshitk-cp/mcdaxml/internal/xmltree"
	"go.uber.org/zap"
)

type Option func(*Writer)

// WithOrder fixes the order of alternatives and criteria in the output. Members not
// listed follow in their own order.
func WithOrder(alternatives []domain.Alternative, criteria []domain.Criterion) Option {
	return func(w *Writer) {
		w.altOrder = alternatives
		w.critOrder = criteria
	}
}

// OmitEmpty skips elements that would have no content.
func OmitEmpty() Option {
	return func(w *Writer) { w.omitEmpty = true }
}

func WithLogger(logger *zap.Logger) Option {
	return func(w *Writer) {
		if logger != nil {
			w.logger = logger
		}
	}
}

type Writer struct {
	altOrder  []domain.Alternative
	critOrder []domain.Criterion
	omitEmpty bool
	logger    *zap.Logger
}

func New(opts ...Option) *Writer {
	w := &Writer{logger: zap.NewNop()}
	for _, o := range opts {
		o(w)
	}
	return w
}

// Write renders p to out.
func (w *Writer) Write(out io.Writer, p *domain.Problem) error {
	root := w.Build(p)
	if err := xmltree.Marshal(out, root); err != nil {
		return fmt.Errorf("write problem: %w", err)
	}
	w.logger.Debug("problem written", zap.Int("elements", len(root.Children)))
	return nil
}

// Build returns the document tree of p. Real alternatives go to one <alternatives>
// collection. Profiles are written through <categoriesProfiles>; profiles bounding
// no category are written as a fictive collection, the real one then being marked
// real. Such a document reads back unchanged under the auto or seek-concept
// strategies only: take-all reads the fictive collection as alternatives.
func (w *Writer) Build(p *domain.Problem) *xmltree.Node {
	root := xmltree.New(xmltree.RootTag)
	root.Append(xmltree.New(mapper.TagProjectReference).Append(
		xmltree.NewText("comment", "generated by "+buildconfig.Generator()),
	))

	var bounded *domain.OrderedSet[domain.Alternative]
	if p.CategoriesProfiles != nil {
		bounded = p.CategoriesProfiles.ProfileSet()
	}
	var unbounded []domain.Alternative
	for _, a := range p.Profiles {
		if !bounded.Contains(a) {
			unbounded = append(unbounded, a)
		}
	}

	inactive := domain.NewOrderedSet(p.InactiveAlternatives...)
	alts := append(append([]domain.Alternative(nil), p.Alternatives...), p.InactiveAlternatives...)
	if len(unbounded) == 0 {
		w.add(root, len(alts) == 0, mapper.WriteAlternatives(w.ordered(alts), "", inactive))
	} else {
		root.Append(
			mapper.WriteAlternatives(w.ordered(alts), domain.ConceptReal.String(), inactive),
			mapper.WriteAlternatives(unbounded, domain.ConceptFictive.String(), nil),
		)
	}

	if p.Criteria != nil {
		empty := p.Criteria.Len() == 0 && len(p.Criteria.Inactive()) == 0
		w.add(root, empty, mapper.WriteCriteria(p.Criteria, w.critOrder))
	}

	w.add(root, isEmpty(p.AlternativesEvaluations),
		mapper.WritePerformanceTable(p.AlternativesEvaluations, "alternatives", w.altOrder, w.critOrder))
	w.add(root, isEmpty(p.ProfilesEvaluations),
		mapper.WritePerformanceTable(p.ProfilesEvaluations, "profiles", p.Profiles, w.critOrder))

	if c := p.Coalitions; c != nil {
		var weights []mapper.CriterionValue
		for _, cr := range mapper.MergeOrder(w.critOrder, c.Criteria()) {
			v, _ := c.Weight(cr)
			weights = append(weights, mapper.CriterionValue{Criterion: cr, Value: v})
		}
		w.add(root, len(weights) == 0, mapper.WriteCriteriaValues(weights, mapper.ConceptWeights, ""))
		if c.MajorityThreshold != nil {
			root.Append(mapper.WriteMajorityThreshold(*c.MajorityThreshold))
		}
	}
	if len(p.DecisionMakers) > 0 {
		root.Append(mapper.WriteDecisionMakers(p.DecisionMakers))
	}

	if cp := p.CategoriesProfiles; cp != nil {
		w.add(root, len(cp.Categories()) == 0, mapper.WriteCategories(cp.Categories()))
		w.add(root, len(cp.Profiles()) == 0, mapper.WriteCategoriesProfiles(cp))
	}

	if p.Assignments != nil {
		w.add(root, p.Assignments.Len() == 0, mapper.WriteAssignments(p.Assignments, "", w.altOrder))
	}
	for _, dm := range groupOrder(p.DecisionMakers, p.GroupAssignments) {
		root.Append(mapper.WriteAssignments(p.GroupAssignments[dm], dm.ID, w.altOrder))
	}
	return root
}

func (w *Writer) add(root *xmltree.Node, empty bool, n *xmltree.Node) {
	if empty && w.omitEmpty {
		return
	}
	root.Append(n)
}

func (w *Writer) ordered(alts []domain.Alternative) []domain.Alternative {
	return mapper.MergeOrder(w.altOrder, alts)
}

func isEmpty(e domain.Evaluations) bool {
	return e == nil || e.IsEmpty()
}

// groupOrder lists the decision makers having assignments: declared ones first, the
// rest by ID.
func groupOrder(declared []domain.DecisionMaker, groups map[domain.DecisionMaker]*domain.Assignments) []domain.DecisionMaker {
	var rest []domain.DecisionMaker
	for dm := range groups {
		rest = append(rest, dm)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].Less(rest[j]) })
	return mapper.MergeOrder(declared, rest)
}
