// Package mapper converts single XML fragments to domain values and back. Each read
// function reports malformed content to the sink; when the sink lets the read go on,
// the offending item is skipped.
package mapper

import (
	"strconv"
	"strings"

	"github.com/Harshitk-cp/mcdaxml/internal/domain"
	"github.com/Harshitk-cp/mcdaxml/internal/errsink"
	"github.com/Harshitk-cp/mcdaxml/internal/xmltree"
)

// Tags of the exchange grammar.
const (
	TagAlternatives       = "alternatives"
	TagAlternative        = "alternative"
	TagCriteria           = "criteria"
	TagCriterion          = "criterion"
	TagPerformanceTable   = "performanceTable"
	TagCriteriaValues     = "criteriaValues"
	TagMethodParameters   = "methodParameters"
	TagCategories         = "categories"
	TagCategory           = "category"
	TagCategoriesProfiles = "categoriesProfiles"
	TagAffectations       = "alternativesAffectations"
	TagProjectReference   = "projectReference"

	AttrID      = "id"
	AttrName    = "name"
	AttrConcept = "mcdaConcept"
)

// exactlyOne returns the only child named tag. ok is false when the count is wrong and
// the report did not abort.
func exactlyOne(n *xmltree.Node, tag, where string, sink errsink.Sink) (*xmltree.Node, bool, error) {
	children := n.ChildrenNamed(tag)
	if len(children) == 1 {
		return children[0], true, nil
	}
	err := sink.Report(domain.ErrAmbiguousCardinality, "%s: expected exactly one <%s>, found %d", where, tag, len(children))
	return nil, false, err
}

// atMostOne returns the child named tag or nil when absent.
func atMostOne(n *xmltree.Node, tag, where string, sink errsink.Sink) (*xmltree.Node, bool, error) {
	children := n.ChildrenNamed(tag)
	switch len(children) {
	case 0:
		return nil, true, nil
	case 1:
		return children[0], true, nil
	}
	err := sink.Report(domain.ErrAmbiguousCardinality, "%s: expected at most one <%s>, found %d", where, tag, len(children))
	return nil, false, err
}

func requiredAttr(n *xmltree.Node, name, where string, sink errsink.Sink) (string, bool, error) {
	v, ok := n.Attr(name)
	if ok && strings.TrimSpace(v) != "" {
		return v, true, nil
	}
	err := sink.Report(domain.ErrMissingRequiredField, "%s: missing %s attribute", where, name)
	return "", false, err
}

// requiredText reads the text of the only child named tag, e.g. <alternativeID>.
func requiredText(n *xmltree.Node, tag, where string, sink errsink.Sink) (string, bool, error) {
	c, ok, err := exactlyOne(n, tag, where, sink)
	if !ok {
		return "", false, err
	}
	if c.Text() == "" {
		err := sink.Report(domain.ErrMissingRequiredField, "%s: empty <%s>", where, tag)
		return "", false, err
	}
	return c.Text(), true, nil
}

// readBool reads an optional boolean child, returning def when absent.
func readBool(n *xmltree.Node, tag, where string, def bool, sink errsink.Sink) (bool, bool, error) {
	c, ok, err := atMostOne(n, tag, where, sink)
	if !ok {
		return def, false, err
	}
	if c == nil {
		return def, true, nil
	}
	switch strings.ToLower(c.Text()) {
	case "true", "1":
		return true, true, nil
	case "false", "0":
		return false, true, nil
	}
	err = sink.Report(domain.ErrStructuralInvalidity, "%s: <%s> is not a boolean: %q", where, tag, c.Text())
	return def, false, err
}

var numericTags = []string{"real", "integer", "rational"}

// readNumber reads the single numeric element inside a value-like node such as
// <value> or <constant>.
func readNumber(n *xmltree.Node, where string, sink errsink.Sink) (float64, bool, error) {
	var found []*xmltree.Node
	for _, tag := range numericTags {
		found = append(found, n.ChildrenNamed(tag)...)
	}
	if len(found) != 1 {
		err := sink.Report(domain.ErrAmbiguousCardinality, "%s: expected exactly one numeric value, found %d", where, len(found))
		return 0, false, err
	}
	num := found[0]
	switch num.Name {
	case "rational":
		return readRational(num, where, sink)
	default:
		v, perr := strconv.ParseFloat(num.Text(), 64)
		if perr != nil {
			err := sink.Report(domain.ErrStructuralInvalidity, "%s: <%s> is not a number: %q", where, num.Name, num.Text())
			return 0, false, err
		}
		if num.Name == "integer" && v != float64(int64(v)) {
			err := sink.Report(domain.ErrStructuralInvalidity, "%s: <integer> is not an integer: %q", where, num.Text())
			return 0, false, err
		}
		return v, true, nil
	}
}

func readRational(n *xmltree.Node, where string, sink errsink.Sink) (float64, bool, error) {
	numText, ok, err := requiredText(n, "numerator", where, sink)
	if !ok {
		return 0, false, err
	}
	denText, ok, err := requiredText(n, "denominator", where, sink)
	if !ok {
		return 0, false, err
	}
	num, err1 := strconv.ParseFloat(numText, 64)
	den, err2 := strconv.ParseFloat(denText, 64)
	if err1 != nil || err2 != nil || den == 0 {
		err := sink.Report(domain.ErrStructuralInvalidity, "%s: invalid rational %s/%s", where, numText, denText)
		return 0, false, err
	}
	return num / den, true, nil
}

// readValue reads <value> (exactly one) under n.
func readValue(n *xmltree.Node, where string, sink errsink.Sink) (float64, bool, error) {
	v, ok, err := exactlyOne(n, "value", where, sink)
	if !ok {
		return 0, false, err
	}
	return readNumber(v, where, sink)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func valueNode(tag string, v float64) *xmltree.Node {
	return xmltree.New(tag).Append(xmltree.NewText("real", formatNumber(v)))
}

func conceptAttr(n *xmltree.Node) string {
	v, _ := n.Attr(AttrConcept)
	return strings.TrimSpace(v)
}
