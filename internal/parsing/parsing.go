// Package parsing decides which entities of the alternatives collections are real
// alternatives and which are profiles.
package parsing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Harshitk-cp/mcdaxml/internal/concept"
	"github.com/Harshitk-cp/mcdaxml/internal/domain"
	"github.com/Harshitk-cp/mcdaxml/internal/errsink"
	"github.com/Harshitk-cp/mcdaxml/internal/mapper"
)

var ErrInvalidStrategy = errors.New("invalid alternatives parsing strategy")

type Strategy string

const (
	// StrategyAuto picks TakeAll for at most one collection, SeekConcept otherwise.
	StrategyAuto Strategy = "auto"
	// StrategyTakeAll accepts every entity whatever its marking.
	StrategyTakeAll Strategy = "take_all"
	// StrategySeekConcept accepts entities of collections declaring the wanted concept.
	StrategySeekConcept Strategy = "seek_concept"
	// StrategyUseMarking accepts entities whose resolved concept matches; unmarked
	// entities count as real.
	StrategyUseMarking Strategy = "use_marking"
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyAuto, "":
		return StrategyAuto, nil
	case StrategyTakeAll:
		return StrategyTakeAll, nil
	case StrategySeekConcept:
		return StrategySeekConcept, nil
	case StrategyUseMarking:
		return StrategyUseMarking, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStrategy, s)
}

// Select resolves StrategyAuto given the number of collections present.
func Select(s Strategy, collections int) Strategy {
	if s != StrategyAuto && s != "" {
		return s
	}
	if collections <= 1 {
		return StrategyTakeAll
	}
	return StrategySeekConcept
}

// Result is the outcome of one Parse call. Alternatives holds the accepted active
// entities, Inactive the accepted inactive ones.
type Result struct {
	Alternatives []domain.Alternative
	Inactive     []domain.Alternative
	Marking      *concept.Marking
}

type Parser interface {
	Parse(collections []mapper.AlternativesCollection, want domain.Concept) (Result, error)
}

// New returns the parser for s; StrategyAuto is resolved against collections.
func New(s Strategy, collections int, sink errsink.Sink) Parser {
	switch Select(s, collections) {
	case StrategySeekConcept:
		return &seekConcept{walker{sink: sink}}
	case StrategyUseMarking:
		return &useMarking{walker{sink: sink}}
	default:
		return &takeAll{walker{sink: sink}}
	}
}

// walker holds the traversal shared by every strategy: resolve each entity's concept,
// record it, and ask accept whether it belongs to the result.
type walker struct {
	sink errsink.Sink
}

func (w walker) walk(collections []mapper.AlternativesCollection, skip func(int, mapper.AlternativesCollection) (bool, error), accept func(domain.Concept) bool) (Result, error) {
	resolver := concept.NewResolver(w.sink)
	marking := concept.NewMarking()
	visible := domain.NewOrderedSet[domain.Alternative]()
	inactive := domain.NewOrderedSet[domain.Alternative]()

	for i, coll := range collections {
		if skip != nil {
			skipped, err := skip(i, coll)
			if err != nil {
				return Result{}, err
			}
			if skipped {
				continue
			}
		}
		outer := coll.DeclaredConcept()
		for _, e := range coll.Entries {
			c, ok, err := resolver.Resolve(e.Alternative, outer, e.Concept)
			if err != nil {
				return Result{}, err
			}
			if !ok {
				continue
			}
			marking.Record(e.Alternative, c, e.Active)
			if !accept(c) {
				continue
			}
			if e.Active {
				visible.Add(e.Alternative)
			} else {
				inactive.Add(e.Alternative)
			}
		}
	}
	for _, a := range inactive.Items() {
		visible.Remove(a)
	}
	return Result{Alternatives: visible.Items(), Inactive: inactive.Items(), Marking: marking}, nil
}

type takeAll struct{ walker }

func (p *takeAll) Parse(collections []mapper.AlternativesCollection, _ domain.Concept) (Result, error) {
	return p.walk(collections, nil, func(domain.Concept) bool { return true })
}

type seekConcept struct{ walker }

func (p *seekConcept) Parse(collections []mapper.AlternativesCollection, want domain.Concept) (Result, error) {
	skip := func(i int, coll mapper.AlternativesCollection) (bool, error) {
		if coll.Declared == "" {
			err := p.sink.Report(domain.ErrMissingRequiredField,
				"alternatives collection #%d has no mcdaConcept", i+1)
			return true, err
		}
		return !strings.EqualFold(coll.Declared, want.String()), nil
	}
	return p.walk(collections, skip, func(domain.Concept) bool { return true })
}

type useMarking struct{ walker }

func (p *useMarking) Parse(collections []mapper.AlternativesCollection, want domain.Concept) (Result, error) {
	return p.walk(collections, nil, func(c domain.Concept) bool { return Matches(c, want) })
}

// Matches tells whether a resolved concept answers a request for want. Anything not
// marked fictive answers a request for real alternatives.
func Matches(c, want domain.Concept) bool {
	if want == domain.ConceptFictive {
		return c == domain.ConceptFictive
	}
	return c != domain.ConceptFictive
}

// Overlap returns the entities present in both a and b, in a's order. Results of
// SeekConcept and UseMarking for real and fictive never overlap.
func Overlap(a, b []domain.Alternative) []domain.Alternative {
	return domain.NewOrderedSet(a...).Intersect(domain.NewOrderedSet(b...))
}

// Partition runs the parser once for real and once for fictive alternatives,
// reporting each distinct problem a single time. Under TakeAll every entity is real
// and the fictive result is empty.
func Partition(s Strategy, collections []mapper.AlternativesCollection, sink errsink.Sink) (reals, fictives Result, err error) {
	s = Select(s, len(collections))
	p := New(s, len(collections), errsink.Once(sink))
	if reals, err = p.Parse(collections, domain.ConceptReal); err != nil {
		return Result{}, Result{}, err
	}
	if s == StrategyTakeAll {
		return reals, Result{Marking: reals.Marking}, nil
	}
	if fictives, err = p.Parse(collections, domain.ConceptFictive); err != nil {
		return Result{}, Result{}, err
	}
	return reals, fictives, nil
}
