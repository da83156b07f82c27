package mapper

import (
	"fmt"

	"github.com/Harshitk-cp/mcdaxml/internal/domain"
	"github.com/Harshitk-cp/mcdaxml/internal/errsink"
	"github.com/Harshitk-cp/mcdaxml/internal/xmltree"
)

// PerformanceTable is one <performanceTable> with its declared concept.
type PerformanceTable struct {
	Declared string
	Matrix   *domain.EvaluationsMatrix
}

func ReadPerformanceTables(root *xmltree.Node, sink errsink.Sink) ([]PerformanceTable, error) {
	var out []PerformanceTable
	for _, n := range root.ChildrenNamed(TagPerformanceTable) {
		m, err := ReadPerformanceTable(n, sink)
		if err != nil {
			return nil, err
		}
		out = append(out, PerformanceTable{Declared: conceptAttr(n), Matrix: m})
	}
	return out, nil
}

// ReadPerformanceTable reads one table. A second value for a pair already filled
// is reported and dropped; the first value stays.
func ReadPerformanceTable(n *xmltree.Node, sink errsink.Sink) (*domain.EvaluationsMatrix, error) {
	m := domain.NewEvaluationsMatrix()
	for i, rowNode := range n.ChildrenNamed("alternativePerformances") {
		where := fmt.Sprintf("alternativePerformances #%d", i+1)
		id, ok, err := requiredText(rowNode, "alternativeID", where, sink)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		alt := domain.Alternative{ID: id}
		for _, perf := range rowNode.ChildrenNamed("performance") {
			pwhere := fmt.Sprintf("performance of %q", id)
			cid, ok, err := requiredText(perf, "criterionID", pwhere, sink)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			v, ok, err := readValue(perf, fmt.Sprintf("performance (%s, %s)", id, cid), sink)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			if !m.Put(alt, domain.Criterion{ID: cid}, v) {
				if err := sink.Report(domain.ErrDuplicateValue, "performance (%s, %s) given more than once", id, cid); err != nil {
					return nil, err
				}
			}
		}
	}
	return m, nil
}

// WritePerformanceTable renders rows in rowOrder and columns in colOrder; rows or
// columns absent from the order are appended in the matrix's own order.
func WritePerformanceTable(e domain.Evaluations, declared string, rowOrder []domain.Alternative, colOrder []domain.Criterion) *xmltree.Node {
	n := xmltree.New(TagPerformanceTable)
	if declared != "" {
		n.SetAttr(AttrConcept, declared)
	}
	if e == nil {
		return n
	}
	cols := MergeOrder(colOrder, e.Columns())
	for _, a := range MergeOrder(rowOrder, e.Rows()) {
		row, ok := e.Row(a)
		if !ok {
			continue
		}
		rn := xmltree.New("alternativePerformances").Append(xmltree.NewText("alternativeID", a.ID))
		for _, c := range cols {
			v, ok := row[c]
			if !ok {
				continue
			}
			rn.Append(xmltree.New("performance").Append(
				xmltree.NewText("criterionID", c.ID),
				valueNode("value", v),
			))
		}
		n.Append(rn)
	}
	return n
}

// MergeOrder returns the members of actual, ordered first by preferred then by
// their own order.
func MergeOrder[T comparable](preferred, actual []T) []T {
	present := domain.NewOrderedSet(actual...)
	out := domain.NewOrderedSet[T]()
	for _, p := range preferred {
		if present.Contains(p) {
			out.Add(p)
		}
	}
	for _, a := range actual {
		out.Add(a)
	}
	return out.Items()
}
