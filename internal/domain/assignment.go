package domain

// Assignment places one alternative in one or more categories, optionally with a
// credibility per category.
type Assignment struct {
	Alternative   Alternative          `json:"alternative"`
	categories    *OrderedSet[Category]
	credibilities map[Category]float64
}

func NewAssignment(a Alternative) *Assignment {
	return &Assignment{
		Alternative:   a,
		categories:    NewOrderedSet[Category](),
		credibilities: make(map[Category]float64),
	}
}

// Add returns false when the category is already part of the assignment.
func (as *Assignment) Add(c Category) bool {
	return as.categories.Add(c)
}

func (as *Assignment) AddWithCredibility(c Category, credibility float64) bool {
	if !as.categories.Add(c) {
		return false
	}
	as.credibilities[c] = credibility
	return true
}

func (as *Assignment) Categories() []Category { return as.categories.Items() }

func (as *Assignment) Credibility(c Category) (float64, bool) {
	v, ok := as.credibilities[c]
	return v, ok
}

func (as *Assignment) HasCredibilities() bool { return len(as.credibilities) > 0 }

func (as *Assignment) Len() int { return as.categories.Len() }

func (as *Assignment) Equal(o *Assignment) bool {
	if as.Alternative != o.Alternative || as.Len() != o.Len() {
		return false
	}
	for _, c := range as.categories.items {
		if !o.categories.Contains(c) {
			return false
		}
		v, ok := as.credibilities[c]
		w, ok2 := o.credibilities[c]
		if ok != ok2 || v != w {
			return false
		}
	}
	return true
}

// Assignments maps alternatives to their assignment, in first-seen order.
type Assignments struct {
	order *OrderedSet[Alternative]
	byAlt map[Alternative]*Assignment
}

func NewAssignments() *Assignments {
	return &Assignments{order: NewOrderedSet[Alternative](), byAlt: make(map[Alternative]*Assignment)}
}

// Put returns false when the alternative already has an assignment.
func (a *Assignments) Put(as *Assignment) bool {
	if !a.order.Add(as.Alternative) {
		return false
	}
	a.byAlt[as.Alternative] = as
	return true
}

func (a *Assignments) Get(alt Alternative) (*Assignment, bool) {
	as, ok := a.byAlt[alt]
	return as, ok
}

func (a *Assignments) Alternatives() []Alternative { return a.order.Items() }

func (a *Assignments) Len() int { return a.order.Len() }

func (a *Assignments) Equal(o *Assignments) bool {
	if a.Len() != o.Len() {
		return false
	}
	for alt, as := range a.byAlt {
		other, ok := o.byAlt[alt]
		if !ok || !as.Equal(other) {
			return false
		}
	}
	return true
}
