package mapper

import (
	"fmt"

	"github.com/Harshitk-cp/mcdaxml/internal/domain"
	"github.com/Harshitk-cp/mcdaxml/internal/errsink"
	"github.com/Harshitk-cp/mcdaxml/internal/xmltree"
)

// ReadCriteria reads every <criteria> child of root. Duplicate ids keep the first
// declaration.
func ReadCriteria(root *xmltree.Node, sink errsink.Sink) (*domain.Criteria, error) {
	out := domain.NewCriteria()
	for _, cn := range root.ChildrenNamed(TagCriteria) {
		for i, n := range cn.ChildrenNamed(TagCriterion) {
			info, ok, err := readCriterion(n, i, sink)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			if !out.Add(info) {
				if err := sink.Report(domain.ErrDuplicateValue, "criterion %q declared more than once", info.Criterion.ID); err != nil {
					return nil, err
				}
			}
		}
	}
	return out, nil
}

func readCriterion(n *xmltree.Node, pos int, sink errsink.Sink) (domain.CriterionInfo, bool, error) {
	id, ok, err := requiredAttr(n, AttrID, fmt.Sprintf("criterion #%d", pos+1), sink)
	if !ok {
		return domain.CriterionInfo{}, false, err
	}
	where := fmt.Sprintf("criterion %q", id)
	info := domain.CriterionInfo{Criterion: domain.Criterion{ID: id}}
	info.Name, _ = n.Attr(AttrName)

	if info.Active, ok, err = readBool(n, "active", where, true, sink); !ok {
		return domain.CriterionInfo{}, false, err
	}

	sn, ok, err := atMostOne(n, "scale", where, sink)
	if !ok {
		return domain.CriterionInfo{}, false, err
	}
	if sn != nil {
		scale, ok, err := readScale(sn, where, sink)
		if !ok {
			return domain.CriterionInfo{}, false, err
		}
		info.Scale = scale
	}

	tn, ok, err := atMostOne(n, "thresholds", where, sink)
	if !ok {
		return domain.CriterionInfo{}, false, err
	}
	if tn != nil {
		th, ok, err := readThresholds(tn, where, sink)
		if !ok {
			return domain.CriterionInfo{}, false, err
		}
		info.Thresholds = th
	}
	return info, true, nil
}

func readScale(n *xmltree.Node, where string, sink errsink.Sink) (*domain.Scale, bool, error) {
	q, ok, err := exactlyOne(n, "quantitative", where+" scale", sink)
	if !ok {
		return nil, false, err
	}
	scale := &domain.Scale{Direction: domain.DirectionMax}
	dir, ok, err := atMostOne(q, "preferenceDirection", where, sink)
	if !ok {
		return nil, false, err
	}
	if dir != nil {
		if !domain.ValidPreferenceDirection(dir.Text()) {
			err := sink.Report(domain.ErrStructuralInvalidity, "%s: invalid preference direction %q", where, dir.Text())
			return nil, false, err
		}
		scale.Direction = domain.PreferenceDirection(dir.Text())
	}
	for _, bound := range []struct {
		tag string
		dst **float64
	}{{"minimum", &scale.Min}, {"maximum", &scale.Max}} {
		bn, ok, err := atMostOne(q, bound.tag, where, sink)
		if !ok {
			return nil, false, err
		}
		if bn == nil {
			continue
		}
		v, ok, err := readNumber(bn, where+" "+bound.tag, sink)
		if !ok {
			return nil, false, err
		}
		*bound.dst = &v
	}
	return scale, true, nil
}

// readThresholds skips individual bad thresholds but keeps the criterion.
func readThresholds(n *xmltree.Node, where string, sink errsink.Sink) (domain.Thresholds, bool, error) {
	var th domain.Thresholds
	for _, tn := range n.ChildrenNamed("threshold") {
		kind := conceptAttr(tn)
		if kind == "" {
			if err := sink.Report(domain.ErrMissingRequiredField, "%s: threshold without mcdaConcept", where); err != nil {
				return th, false, err
			}
			continue
		}
		if !domain.ValidThresholdType(kind) {
			if err := sink.Report(domain.ErrStructuralInvalidity, "%s: unknown threshold %q", where, kind); err != nil {
				return th, false, err
			}
			continue
		}
		cn, ok, err := exactlyOne(tn, "constant", where+" "+kind+" threshold", sink)
		if err != nil {
			return th, false, err
		}
		if !ok {
			continue
		}
		v, ok, err := readNumber(cn, where+" "+kind+" threshold", sink)
		if err != nil {
			return th, false, err
		}
		if !ok {
			continue
		}
		if th.Get(domain.ThresholdType(kind)) != nil {
			if err := sink.Report(domain.ErrDuplicateValue, "%s: %s threshold given more than once", where, kind); err != nil {
				return th, false, err
			}
			continue
		}
		th.Set(domain.ThresholdType(kind), v)
	}
	return th, true, nil
}

// CriterionValue is one <criterionValue>.
type CriterionValue struct {
	Criterion domain.Criterion
	Value     float64
}

// ReadCriteriaValues reads the <criteriaValues> children of root whose mcdaConcept
// equals concept (any case) and whose name attribute equals name.
func ReadCriteriaValues(root *xmltree.Node, concept, name string, sink errsink.Sink) ([]CriterionValue, error) {
	var out []CriterionValue
	seen := make(map[domain.Criterion]bool)
	for _, cv := range root.ChildrenNamed(TagCriteriaValues) {
		if !matchConcept(cv, concept) || attrOrEmpty(cv, AttrName) != name {
			continue
		}
		for i, n := range cv.ChildrenNamed("criterionValue") {
			where := fmt.Sprintf("criterionValue #%d", i+1)
			id, ok, err := requiredText(n, "criterionID", where, sink)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			v, ok, err := readValue(n, fmt.Sprintf("value of criterion %q", id), sink)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			c := domain.Criterion{ID: id}
			if seen[c] {
				if err := sink.Report(domain.ErrDuplicateValue, "%s for criterion %q given more than once", concept, id); err != nil {
					return nil, err
				}
				continue
			}
			seen[c] = true
			out = append(out, CriterionValue{Criterion: c, Value: v})
		}
	}
	return out, nil
}

// WriteCriteria renders criteria (visible and inactive) in the given order.
func WriteCriteria(c *domain.Criteria, order []domain.Criterion) *xmltree.Node {
	n := xmltree.New(TagCriteria)
	all := append(c.List(), c.Inactive()...)
	for _, cr := range MergeOrder(order, all) {
		info, _ := c.Info(cr)
		cn := xmltree.New(TagCriterion, xmltree.Attr{Name: AttrID, Value: cr.ID})
		if info.Name != "" {
			cn.SetAttr(AttrName, info.Name)
		}
		if !info.Active {
			cn.Append(xmltree.NewText("active", "false"))
		}
		if info.Scale != nil {
			q := xmltree.New("quantitative").Append(xmltree.NewText("preferenceDirection", string(info.Scale.Direction)))
			if info.Scale.Min != nil {
				q.Append(xmltree.New("minimum").Append(xmltree.NewText("real", formatNumber(*info.Scale.Min))))
			}
			if info.Scale.Max != nil {
				q.Append(xmltree.New("maximum").Append(xmltree.NewText("real", formatNumber(*info.Scale.Max))))
			}
			cn.Append(xmltree.New("scale").Append(q))
		}
		if !info.Thresholds.IsEmpty() {
			tn := xmltree.New("thresholds")
			for _, kind := range []domain.ThresholdType{domain.ThresholdIndifference, domain.ThresholdPreference, domain.ThresholdVeto} {
				if v := info.Thresholds.Get(kind); v != nil {
					tn.Append(xmltree.New("threshold", xmltree.Attr{Name: AttrConcept, Value: string(kind)}).
						Append(valueNode("constant", *v)))
				}
			}
			cn.Append(tn)
		}
		n.Append(cn)
	}
	return n
}

// WriteCriteriaValues renders weights as <criteriaValues mcdaConcept=concept>.
func WriteCriteriaValues(values []CriterionValue, concept, name string) *xmltree.Node {
	n := xmltree.New(TagCriteriaValues, xmltree.Attr{Name: AttrConcept, Value: concept})
	if name != "" {
		n.SetAttr(AttrName, name)
	}
	for _, cv := range values {
		n.Append(xmltree.New("criterionValue").Append(
			xmltree.NewText("criterionID", cv.Criterion.ID),
			valueNode("value", cv.Value),
		))
	}
	return n
}
