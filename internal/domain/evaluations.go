package domain

// Evaluations is a read-only partial function from (alternative, criterion) to a value.
type Evaluations interface {
	Rows() []Alternative
	Columns() []Criterion
	HasRow(a Alternative) bool
	Row(a Alternative) (map[Criterion]float64, bool)
	Value(a Alternative, c Criterion) (float64, bool)
	Len() int
	IsEmpty() bool
}

// EvaluationsMatrix stores at most one value per (alternative, criterion) pair.
// Rows and columns keep first-seen order.
type EvaluationsMatrix struct {
	rows  *OrderedSet[Alternative]
	cols  *OrderedSet[Criterion]
	cells map[Alternative]map[Criterion]float64
	size  int
}

func NewEvaluationsMatrix() *EvaluationsMatrix {
	return &EvaluationsMatrix{
		rows:  NewOrderedSet[Alternative](),
		cols:  NewOrderedSet[Criterion](),
		cells: make(map[Alternative]map[Criterion]float64),
	}
}

// Put stores v at (a, c). It returns false and leaves the matrix untouched when the
// pair already holds a value.
func (m *EvaluationsMatrix) Put(a Alternative, c Criterion, v float64) bool {
	row, ok := m.cells[a]
	if !ok {
		row = make(map[Criterion]float64)
		m.cells[a] = row
	}
	if _, dup := row[c]; dup {
		return false
	}
	row[c] = v
	m.rows.Add(a)
	m.cols.Add(c)
	m.size++
	return true
}

// PutRow copies a whole row, in the given column order.
func (m *EvaluationsMatrix) PutRow(a Alternative, cols []Criterion, values map[Criterion]float64) {
	for _, c := range cols {
		if v, ok := values[c]; ok {
			m.Put(a, c, v)
		}
	}
}

// RemoveRow drops the row of a, and every column no other row has a value for.
func (m *EvaluationsMatrix) RemoveRow(a Alternative) bool {
	row, ok := m.cells[a]
	if !ok {
		return false
	}
	m.size -= len(row)
	delete(m.cells, a)
	m.rows.Remove(a)
	for c := range row {
		if !m.hasColumn(c) {
			m.cols.Remove(c)
		}
	}
	return true
}

func (m *EvaluationsMatrix) hasColumn(c Criterion) bool {
	for _, row := range m.cells {
		if _, ok := row[c]; ok {
			return true
		}
	}
	return false
}

func (m *EvaluationsMatrix) Rows() []Alternative { return m.rows.Items() }

func (m *EvaluationsMatrix) Columns() []Criterion { return m.cols.Items() }

func (m *EvaluationsMatrix) HasRow(a Alternative) bool { return m.rows.Contains(a) }

func (m *EvaluationsMatrix) Row(a Alternative) (map[Criterion]float64, bool) {
	row, ok := m.cells[a]
	if !ok {
		return nil, false
	}
	out := make(map[Criterion]float64, len(row))
	for c, v := range row {
		out[c] = v
	}
	return out, true
}

func (m *EvaluationsMatrix) Value(a Alternative, c Criterion) (float64, bool) {
	v, ok := m.cells[a][c]
	return v, ok
}

func (m *EvaluationsMatrix) Len() int { return m.size }

func (m *EvaluationsMatrix) IsEmpty() bool { return m.size == 0 }

// Restrict returns a projection showing only rows in set. Cells are shared, not copied.
func (m *EvaluationsMatrix) Restrict(set *OrderedSet[Alternative]) *EvaluationsView {
	return &EvaluationsView{base: m, set: set, include: true}
}

// Exclude returns a projection hiding the rows in set.
func (m *EvaluationsMatrix) Exclude(set *OrderedSet[Alternative]) *EvaluationsView {
	return &EvaluationsView{base: m, set: set, include: false}
}

// EvaluationsView is a filtered, read-only projection of an EvaluationsMatrix.
type EvaluationsView struct {
	base    *EvaluationsMatrix
	set     *OrderedSet[Alternative]
	include bool
}

func (v *EvaluationsView) HasRow(a Alternative) bool {
	return v.base.HasRow(a) && v.set.Contains(a) == v.include
}

func (v *EvaluationsView) Rows() []Alternative {
	var out []Alternative
	for _, a := range v.base.rows.items {
		if v.set.Contains(a) == v.include {
			out = append(out, a)
		}
	}
	return out
}

func (v *EvaluationsView) Columns() []Criterion {
	seen := make(map[Criterion]bool)
	for _, a := range v.Rows() {
		for c := range v.base.cells[a] {
			seen[c] = true
		}
	}
	var out []Criterion
	for _, c := range v.base.cols.items {
		if seen[c] {
			out = append(out, c)
		}
	}
	return out
}

func (v *EvaluationsView) Row(a Alternative) (map[Criterion]float64, bool) {
	if !v.HasRow(a) {
		return nil, false
	}
	return v.base.Row(a)
}

func (v *EvaluationsView) Value(a Alternative, c Criterion) (float64, bool) {
	if !v.HasRow(a) {
		return 0, false
	}
	return v.base.Value(a, c)
}

func (v *EvaluationsView) Len() int {
	n := 0
	for _, a := range v.Rows() {
		n += len(v.base.cells[a])
	}
	return n
}

func (v *EvaluationsView) IsEmpty() bool { return v.Len() == 0 }

// ToMatrix copies any Evaluations into a standalone matrix.
func ToMatrix(e Evaluations) *EvaluationsMatrix {
	if m, ok := e.(*EvaluationsMatrix); ok {
		return m.Clone()
	}
	out := NewEvaluationsMatrix()
	if e == nil {
		return out
	}
	cols := e.Columns()
	for _, a := range e.Rows() {
		row, _ := e.Row(a)
		out.PutRow(a, cols, row)
	}
	return out
}

func (m *EvaluationsMatrix) Clone() *EvaluationsMatrix {
	out := NewEvaluationsMatrix()
	if m == nil {
		return out
	}
	cols := m.cols.items
	for _, a := range m.rows.items {
		out.PutRow(a, cols, m.cells[a])
	}
	return out
}

// EvaluationsEqual compares contents, ignoring row and column order.
func EvaluationsEqual(a, b Evaluations) bool {
	if a == nil || b == nil {
		return (a == nil || a.IsEmpty()) && (b == nil || b.IsEmpty())
	}
	if a.Len() != b.Len() {
		return false
	}
	for _, alt := range a.Rows() {
		ra, _ := a.Row(alt)
		rb, ok := b.Row(alt)
		if !ok || !RowsEqual(ra, rb) {
			return false
		}
	}
	return true
}

func RowsEqual(a, b map[Criterion]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for c, v := range a {
		w, ok := b[c]
		if !ok || w != v {
			return false
		}
	}
	return true
}
