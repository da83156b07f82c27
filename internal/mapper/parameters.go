package mapper

import (
	"strings"

	"github.com/Harshitk-cp/mcdaxml/internal/domain"
	"github.com/Harshitk-cp/mcdaxml/internal/errsink"
	"github.com/Harshitk-cp/mcdaxml/internal/xmltree"
)

const (
	ConceptWeights           = "weights"
	ConceptMajorityThreshold = "majorityThreshold"
	ConceptDecisionMakers    = "decisionMakers"
)

func matchConcept(n *xmltree.Node, concept string) bool {
	return strings.EqualFold(conceptAttr(n), concept)
}

func attrOrEmpty(n *xmltree.Node, name string) string {
	v, _ := n.Attr(name)
	return v
}

// ReadMajorityThreshold reads <methodParameters mcdaConcept="majorityThreshold">.
// It returns nil when the document has none; more than one is ambiguous.
func ReadMajorityThreshold(root *xmltree.Node, sink errsink.Sink) (*float64, error) {
	var params []*xmltree.Node
	for _, mp := range root.ChildrenNamed(TagMethodParameters) {
		if matchConcept(mp, ConceptMajorityThreshold) {
			params = append(params, mp.ChildrenNamed("parameter")...)
		}
	}
	switch len(params) {
	case 0:
		return nil, nil
	case 1:
	default:
		return nil, sink.Report(domain.ErrAmbiguousCardinality, "expected at most one majority threshold, found %d", len(params))
	}
	v, ok, err := readValue(params[0], "majority threshold", sink)
	if !ok {
		return nil, err
	}
	return &v, nil
}

// ReadDecisionMakerLabels returns the labels under
// <methodParameters mcdaConcept="decisionMakers">, in document order.
func ReadDecisionMakerLabels(root *xmltree.Node, sink errsink.Sink) ([]string, error) {
	var out []string
	for _, mp := range root.ChildrenNamed(TagMethodParameters) {
		if !matchConcept(mp, ConceptDecisionMakers) {
			continue
		}
		for _, p := range mp.ChildrenNamed("parameter") {
			v, ok, err := exactlyOne(p, "value", "decision maker parameter", sink)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			label, ok, err := requiredText(v, "label", "decision maker parameter", sink)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, label)
			}
		}
	}
	return out, nil
}

func WriteMajorityThreshold(v float64) *xmltree.Node {
	return xmltree.New(TagMethodParameters, xmltree.Attr{Name: AttrConcept, Value: ConceptMajorityThreshold}).
		Append(xmltree.New("parameter").Append(valueNode("value", v)))
}

func WriteDecisionMakers(dms []domain.DecisionMaker) *xmltree.Node {
	n := xmltree.New(TagMethodParameters, xmltree.Attr{Name: AttrConcept, Value: ConceptDecisionMakers})
	for _, dm := range dms {
		n.Append(xmltree.New("parameter").Append(
			xmltree.New("value").Append(xmltree.NewText("label", dm.ID)),
		))
	}
	return n
}
