package mapper

import (
	"fmt"

	"github.com/Harshitk-cp/mcdaxml/internal/domain"
	"github.com/Harshitk-cp/mcdaxml/internal/errsink"
	"github.com/Harshitk-cp/mcdaxml/internal/xmltree"
)

// AssignmentsCollection is one <alternativesAffectations>. Name identifies the decision
// maker it belongs to, empty for a shared collection.
type AssignmentsCollection struct {
	Name        string
	Assignments []*domain.Assignment
}

func ReadAssignmentsCollections(root *xmltree.Node, sink errsink.Sink) ([]AssignmentsCollection, error) {
	var out []AssignmentsCollection
	for _, n := range root.ChildrenNamed(TagAffectations) {
		coll := AssignmentsCollection{Name: attrOrEmpty(n, AttrName)}
		for i, an := range n.ChildrenNamed("alternativeAffectation") {
			as, ok, err := readAssignment(an, i, sink)
			if err != nil {
				return nil, err
			}
			if ok {
				coll.Assignments = append(coll.Assignments, as)
			}
		}
		out = append(out, coll)
	}
	return out, nil
}

// ReadAssignmentsNames returns the name attributes of the <alternativesAffectations>
// children of root, in document order. Unnamed collections are skipped.
func ReadAssignmentsNames(root *xmltree.Node) []string {
	var out []string
	for _, n := range root.ChildrenNamed(TagAffectations) {
		if name := attrOrEmpty(n, AttrName); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// readAssignment reads either a single <categoryID> or a <categoriesSet>; having both
// or neither is ambiguous.
func readAssignment(n *xmltree.Node, pos int, sink errsink.Sink) (*domain.Assignment, bool, error) {
	where := fmt.Sprintf("alternativeAffectation #%d", pos+1)
	id, ok, err := requiredText(n, "alternativeID", where, sink)
	if !ok {
		return nil, false, err
	}
	where = fmt.Sprintf("assignment of %q", id)
	as := domain.NewAssignment(domain.Alternative{ID: id})

	single := n.ChildrenNamed("categoryID")
	sets := n.ChildrenNamed("categoriesSet")
	if len(single)+len(sets) != 1 {
		err := sink.Report(domain.ErrAmbiguousCardinality, "%s: expected one categoryID or one categoriesSet, found %d", where, len(single)+len(sets))
		return nil, false, err
	}
	if len(single) == 1 {
		if single[0].Text() == "" {
			err := sink.Report(domain.ErrMissingRequiredField, "%s: empty categoryID", where)
			return nil, false, err
		}
		as.Add(domain.Category{ID: single[0].Text()})
		return as, true, nil
	}

	for _, el := range sets[0].ChildrenNamed("element") {
		cid, ok, err := requiredText(el, "categoryID", where, sink)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			continue
		}
		cat := domain.Category{ID: cid}
		vn, ok, err := atMostOne(el, "value", where, sink)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			continue
		}
		var added bool
		if vn != nil {
			v, ok, err := readNumber(vn, where+" credibility", sink)
			if err != nil {
				return nil, false, err
			}
			if !ok {
				continue
			}
			added = as.AddWithCredibility(cat, v)
		} else {
			added = as.Add(cat)
		}
		if !added {
			if err := sink.Report(domain.ErrDuplicateValue, "%s: category %q listed more than once", where, cid); err != nil {
				return nil, false, err
			}
		}
	}
	if as.Len() == 0 {
		err := sink.Report(domain.ErrMissingRequiredField, "%s: no category", where)
		return nil, false, err
	}
	return as, true, nil
}

// WriteAssignments renders assignments in alternative order. A single category without
// credibility is written as <categoryID>, anything else as a <categoriesSet>.
func WriteAssignments(a *domain.Assignments, name string, order []domain.Alternative) *xmltree.Node {
	n := xmltree.New(TagAffectations)
	if name != "" {
		n.SetAttr(AttrName, name)
	}
	for _, alt := range MergeOrder(order, a.Alternatives()) {
		as, _ := a.Get(alt)
		an := xmltree.New("alternativeAffectation").Append(xmltree.NewText("alternativeID", alt.ID))
		cats := as.Categories()
		if len(cats) == 1 && !as.HasCredibilities() {
			an.Append(xmltree.NewText("categoryID", cats[0].ID))
		} else {
			set := xmltree.New("categoriesSet")
			for _, c := range cats {
				el := xmltree.New("element").Append(xmltree.NewText("categoryID", c.ID))
				if v, ok := as.Credibility(c); ok {
					el.Append(valueNode("value", v))
				}
				set.Append(el)
			}
			an.Append(set)
		}
		n.Append(an)
	}
	return n
}
