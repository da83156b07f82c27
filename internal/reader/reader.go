// Package reader assembles a decision problem from one or more XML sources and
// memoizes every object it reads until one of the sources it depends on changes.
package reader

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/Harshitk-cp/mcdaxml/internal/config"
	"github.com/Harshitk-cp/mcdaxml/internal/domain"
	"github.com/Harshitk-cp/mcdaxml/internal/errsink"
	"github.com/Harshitk-cp/mcdaxml/internal/parsing"
	"github.com/Harshitk-cp/mcdaxml/internal/source"
	"github.com/Harshitk-cp/mcdaxml/internal/xmltree"
	"go.uber.org/zap"
)

var ErrInvalidKind = errors.New("invalid source kind")

// Reader reads a problem from a main source and optional dedicated sources, one per
// Kind. A Reader is not safe for concurrent use; callers serialize access.
type Reader struct {
	sources  [kindCount]source.Source
	sink     *errsink.Manager
	strategy parsing.Strategy
	logger   *zap.Logger

	// parsed documents keyed by source ID; nil marks a document that failed to
	// parse or validate and contributes nothing
	docs map[string]*xmltree.Node

	alternatives     slot[alternativesResult]
	categories       slot[*domain.CategoriesProfiles]
	profiles         slot[[]domain.Alternative]
	evaluations      slot[evaluationsResult]
	criteria         slot[*domain.Criteria]
	coalitions       slot[*domain.Coalitions]
	assignments      slot[assignmentsResult]
	decisionMakers   slot[[]domain.DecisionMaker]
	groupAssignments slot[map[domain.DecisionMaker]*domain.Assignments]
	sortingData      slot[*domain.SortingData]
	problem          slot[*domain.Problem]

	entries []entry
}

// New returns a reader collecting diagnostics and choosing the alternatives strategy
// automatically.
func New(logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Reader{
		sink:     errsink.NewManager(errsink.StrategyCollect, logger),
		strategy: parsing.StrategyAuto,
		logger:   logger,
		docs:     make(map[string]*xmltree.Node),
	}

	all := kinds(Kinds()...)
	r.register("alternatives", &r.alternatives, KindAlternatives)
	r.register("categories", &r.categories, KindAlternatives, KindCategories)
	r.register("profiles", &r.profiles, KindAlternatives, KindCategories)
	r.register("evaluations", &r.evaluations,
		KindAlternatives, KindCategories, KindAlternativesEvaluations, KindProfilesEvaluations)
	r.register("criteria", &r.criteria, KindCriteria)
	r.register("coalitions", &r.coalitions, KindCoalitions, KindCriteria)
	r.register("assignments", &r.assignments, KindAlternatives, KindAssignments, KindCategories)
	r.register("decision_makers", &r.decisionMakers, KindDecisionMakers)
	r.register("group_assignments", &r.groupAssignments,
		KindAlternatives, KindAssignments, KindCategories, KindDecisionMakers)
	r.entries = append(r.entries,
		entry{name: "sorting_data", deps: all, slot: &r.sortingData},
		entry{name: "problem", deps: all, slot: &r.problem},
	)
	return r
}

// NewFromConfig builds a reader with the strategies named in the environment.
func NewFromConfig(logger *zap.Logger) (*Reader, error) {
	es, err := errsink.ParseStrategy(config.ErrorStrategy())
	if err != nil {
		return nil, err
	}
	as, err := parsing.ParseStrategy(config.AlternativesStrategy())
	if err != nil {
		return nil, err
	}
	r := New(logger)
	r.SetErrorStrategy(es)
	r.SetAlternativesStrategy(as)
	return r, nil
}

func (r *Reader) register(name string, s resetter, deps ...Kind) {
	r.entries = append(r.entries, entry{name: name, deps: kinds(deps...), slot: s})
}

// SetSource sets the source of kind, nil to unset it, and drops every cached object
// that may have been read from it.
func (r *Reader) SetSource(kind Kind, src source.Source) error {
	if kind < KindMain || kind >= kindCount {
		return fmt.Errorf("%w: %d", ErrInvalidKind, kind)
	}
	r.sources[kind] = src
	r.invalidate(kind)
	return nil
}

// SetMainSource is SetSource(KindMain, src).
func (r *Reader) SetMainSource(src source.Source) {
	r.sources[KindMain] = src
	r.invalidate(KindMain)
}

// Source returns the source set for kind, without fallback.
func (r *Reader) Source(kind Kind) source.Source {
	if kind < KindMain || kind >= kindCount {
		return nil
	}
	return r.sources[kind]
}

// EffectiveSource returns the source kind is read from: its own when set, the main
// source otherwise.
func (r *Reader) EffectiveSource(kind Kind) source.Source {
	if kind == KindMain {
		return r.sources[KindMain]
	}
	return source.Effective(r.Source(kind), r.sources[KindMain])
}

// SetErrorStrategy changes how malformed input is handled. Cached objects are kept;
// diagnostics collected so far are dropped. Documents rejected so far are read again,
// so the new strategy sees their errors.
func (r *Reader) SetErrorStrategy(s errsink.Strategy) {
	r.sink.SetStrategy(s)
	maps.DeleteFunc(r.docs, func(_ string, root *xmltree.Node) bool { return root == nil })
}

func (r *Reader) ErrorStrategy() errsink.Strategy { return r.sink.Strategy() }

// SetAlternativesStrategy changes how alternatives are told apart from profiles and
// drops everything derived from that split.
func (r *Reader) SetAlternativesStrategy(s parsing.Strategy) {
	r.strategy = s
	r.invalidate(KindAlternatives)
}

func (r *Reader) AlternativesStrategy() parsing.Strategy { return r.strategy }

// Diagnostics returns what the collect strategy gathered so far.
func (r *Reader) Diagnostics() []*domain.ReadError {
	return r.sink.Diagnostics()
}

// ClearDiagnostics drops the collected diagnostics.
func (r *Reader) ClearDiagnostics() {
	r.sink.Clear()
}

func (r *Reader) invalidate(kind Kind) {
	clear(r.docs)
	var dropped []string
	for _, e := range r.entries {
		if kind != KindMain && !e.deps.has(kind) {
			continue
		}
		if e.slot.isCached() {
			dropped = append(dropped, e.name)
		}
		e.slot.reset()
	}
	r.logger.Debug("cache invalidated",
		zap.Stringer("kind", kind),
		zap.Strings("dropped", dropped),
	)
}

// document returns the parsed root of the effective source of kind. A kind without
// any source yields an empty root, as does a document rejected by the sink.
func (r *Reader) document(ctx context.Context, kind Kind) (*xmltree.Node, error) {
	src := r.EffectiveSource(kind)
	if src == nil {
		return emptyRoot(), nil
	}
	id := src.ID()
	if root, ok := r.docs[id]; ok {
		r.logger.Debug("document cache hit", zap.String("source", id), zap.Stringer("kind", kind))
		if root == nil {
			return emptyRoot(), nil
		}
		return root, nil
	}

	data, err := source.ReadAll(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("read %s source: %w", kind, err)
	}
	root, err := xmltree.Parse(data)
	if err == nil {
		err = xmltree.Validate(root)
	}
	if err != nil {
		if rerr := r.sink.Report(domain.ErrStructuralInvalidity, "%s: %v", id, err); rerr != nil {
			return nil, rerr
		}
		r.docs[id] = nil
		return emptyRoot(), nil
	}
	r.logger.Debug("document parsed",
		zap.String("source", id),
		zap.Int("bytes", len(data)),
		zap.Int("elements", len(root.Children)),
	)
	r.docs[id] = root
	return root, nil
}

// configured tells whether kind has any source, dedicated or main.
func (r *Reader) configured(kind Kind) bool {
	return r.EffectiveSource(kind) != nil
}

func emptyRoot() *xmltree.Node {
	return xmltree.New(xmltree.RootTag)
}
