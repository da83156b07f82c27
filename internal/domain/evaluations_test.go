package domain

import (
	"reflect"
	"testing"
)

var (
	a1 = Alternative{ID: "a1"}
	a2 = Alternative{ID: "a2"}
	p1 = Alternative{ID: "p1"}
	g1 = Criterion{ID: "g1"}
	g2 = Criterion{ID: "g2"}
)

func sample() *EvaluationsMatrix {
	m := NewEvaluationsMatrix()
	m.Put(a1, g1, 1)
	m.Put(a1, g2, 2)
	m.Put(p1, g1, 5)
	m.Put(a2, g2, 4)
	return m
}

func TestEvaluationsMatrix(t *testing.T) {
	m := sample()
	if m.Put(a1, g1, 9) {
		t.Error("Put on a filled pair should return false")
	}
	if v, _ := m.Value(a1, g1); v != 1 {
		t.Errorf("first value should win, got %v", v)
	}
	if m.Len() != 4 {
		t.Errorf("Len() = %d, want 4", m.Len())
	}
	if !reflect.DeepEqual(m.Rows(), []Alternative{a1, p1, a2}) {
		t.Errorf("Rows() = %v", m.Rows())
	}

	if !m.RemoveRow(a1) || m.HasRow(a1) {
		t.Fatal("RemoveRow should drop the row")
	}
	if m.Len() != 2 {
		t.Errorf("Len() after remove = %d, want 2", m.Len())
	}
	if !reflect.DeepEqual(m.Columns(), []Criterion{g1, g2}) {
		t.Errorf("Columns() = %v, columns still in use should stay", m.Columns())
	}

	m.RemoveRow(p1)
	if !reflect.DeepEqual(m.Columns(), []Criterion{g2}) {
		t.Errorf("Columns() = %v, want [g2] once no row holds g1", m.Columns())
	}
	m.RemoveRow(a2)
	if len(m.Columns()) != 0 || !m.IsEmpty() {
		t.Errorf("Columns() = %v on an empty matrix", m.Columns())
	}
}

func TestEvaluationsViews(t *testing.T) {
	m := sample()
	profiles := NewOrderedSet(p1)

	alts := m.Exclude(profiles)
	profs := m.Restrict(profiles)

	if !reflect.DeepEqual(alts.Rows(), []Alternative{a1, a2}) {
		t.Errorf("Exclude rows = %v", alts.Rows())
	}
	if !reflect.DeepEqual(profs.Rows(), []Alternative{p1}) {
		t.Errorf("Restrict rows = %v", profs.Rows())
	}
	if !reflect.DeepEqual(profs.Columns(), []Criterion{g1}) {
		t.Errorf("Restrict columns = %v", profs.Columns())
	}
	if _, ok := alts.Value(p1, g1); ok {
		t.Error("excluded row should not be visible")
	}
	if alts.Len()+profs.Len() != m.Len() {
		t.Error("views should partition the cells")
	}

	// views share cells with the matrix
	m.Put(a2, g1, 3)
	if v, ok := alts.Value(a2, g1); !ok || v != 3 {
		t.Errorf("view should see later writes, got %v %v", v, ok)
	}
}

func TestEvaluationsEqual(t *testing.T) {
	m := sample()
	if !EvaluationsEqual(m, ToMatrix(m)) {
		t.Error("a matrix should equal its copy")
	}
	if !EvaluationsEqual(nil, NewEvaluationsMatrix()) {
		t.Error("nil and empty should compare equal")
	}

	other := NewEvaluationsMatrix()
	other.Put(p1, g1, 5)
	if !EvaluationsEqual(m.Restrict(NewOrderedSet(p1)), other) {
		t.Error("a view should equal a matrix with the same cells")
	}
	other.Put(p1, g2, 1)
	if EvaluationsEqual(m.Restrict(NewOrderedSet(p1)), other) {
		t.Error("extra cells should make evaluations differ")
	}
}
