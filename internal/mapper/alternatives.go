package mapper

import (
	"fmt"

	"github.com/Harshitk-cp/mcdaxml/internal/domain"
	"github.com/Harshitk-cp/mcdaxml/internal/errsink"
	"github.com/Harshitk-cp/mcdaxml/internal/xmltree"
)

// AlternativeEntry is one <alternative> as written, before any classification.
type AlternativeEntry struct {
	Alternative domain.Alternative
	Name        string
	Concept     domain.Concept
	Active      bool
}

// AlternativesCollection is one <alternatives> element. Declared is the raw
// mcdaConcept text, empty when the attribute is absent.
type AlternativesCollection struct {
	Declared string
	Entries  []AlternativeEntry
}

func (c AlternativesCollection) DeclaredConcept() domain.Concept {
	return domain.ParseConcept(c.Declared)
}

// ReadAlternativesCollections reads every <alternatives> child of root in document order.
func ReadAlternativesCollections(root *xmltree.Node, sink errsink.Sink) ([]AlternativesCollection, error) {
	var out []AlternativesCollection
	for _, n := range root.ChildrenNamed(TagAlternatives) {
		c, err := ReadAlternatives(n, sink)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func ReadAlternatives(n *xmltree.Node, sink errsink.Sink) (AlternativesCollection, error) {
	coll := AlternativesCollection{Declared: conceptAttr(n)}
	for i, an := range n.ChildrenNamed(TagAlternative) {
		entry, ok, err := readAlternative(an, i, sink)
		if err != nil {
			return AlternativesCollection{}, err
		}
		if ok {
			coll.Entries = append(coll.Entries, entry)
		}
	}
	return coll, nil
}

func readAlternative(n *xmltree.Node, pos int, sink errsink.Sink) (AlternativeEntry, bool, error) {
	where := fmt.Sprintf("alternative #%d", pos+1)
	id, ok, err := requiredAttr(n, AttrID, where, sink)
	if !ok {
		return AlternativeEntry{}, false, err
	}
	where = fmt.Sprintf("alternative %q", id)
	entry := AlternativeEntry{Alternative: domain.Alternative{ID: id}, Active: true}
	entry.Name, _ = n.Attr(AttrName)

	typ, ok, err := atMostOne(n, "type", where, sink)
	if !ok {
		return AlternativeEntry{}, false, err
	}
	if typ != nil {
		entry.Concept = domain.ParseConcept(typ.Text())
		if !entry.Concept.IsMarked() {
			err := sink.Report(domain.ErrStructuralInvalidity, "%s: unknown type %q", where, typ.Text())
			return AlternativeEntry{}, false, err
		}
	}

	entry.Active, ok, err = readBool(n, "active", where, true, sink)
	if !ok {
		return AlternativeEntry{}, false, err
	}
	return entry, true, nil
}

// WriteAlternatives renders alternatives as one <alternatives> element. declared is
// written as mcdaConcept when non-empty and inactive lists members to mark inactive.
func WriteAlternatives(alts []domain.Alternative, declared string, inactive *domain.OrderedSet[domain.Alternative]) *xmltree.Node {
	n := xmltree.New(TagAlternatives)
	if declared != "" {
		n.SetAttr(AttrConcept, declared)
	}
	for _, a := range alts {
		an := xmltree.New(TagAlternative, xmltree.Attr{Name: AttrID, Value: a.ID})
		if inactive.Contains(a) {
			an.Append(xmltree.NewText("active", "false"))
		}
		n.Append(an)
	}
	return n
}
