package domain

type PreferenceDirection string

const (
	DirectionMax PreferenceDirection = "max"
	DirectionMin PreferenceDirection = "min"
)

func ValidPreferenceDirection(d string) bool {
	switch PreferenceDirection(d) {
	case DirectionMax, DirectionMin:
		return true
	}
	return false
}

// Scale is a quantitative scale. Min and Max are optional bounds.
type Scale struct {
	Direction PreferenceDirection `json:"direction"`
	Min       *float64            `json:"min,omitempty"`
	Max       *float64            `json:"max,omitempty"`
}

type ThresholdType string

const (
	ThresholdPreference   ThresholdType = "preference"
	ThresholdIndifference ThresholdType = "indifference"
	ThresholdVeto         ThresholdType = "veto"
)

func ValidThresholdType(t string) bool {
	switch ThresholdType(t) {
	case ThresholdPreference, ThresholdIndifference, ThresholdVeto:
		return true
	}
	return false
}

type Thresholds struct {
	Preference   *float64 `json:"preference,omitempty"`
	Indifference *float64 `json:"indifference,omitempty"`
	Veto         *float64 `json:"veto,omitempty"`
}

func (t Thresholds) Get(kind ThresholdType) *float64 {
	switch kind {
	case ThresholdPreference:
		return t.Preference
	case ThresholdIndifference:
		return t.Indifference
	case ThresholdVeto:
		return t.Veto
	}
	return nil
}

func (t *Thresholds) Set(kind ThresholdType, v float64) {
	switch kind {
	case ThresholdPreference:
		t.Preference = &v
	case ThresholdIndifference:
		t.Indifference = &v
	case ThresholdVeto:
		t.Veto = &v
	}
}

func (t Thresholds) IsEmpty() bool {
	return t.Preference == nil && t.Indifference == nil && t.Veto == nil
}

type CriterionInfo struct {
	Criterion  Criterion  `json:"criterion"`
	Name       string     `json:"name,omitempty"`
	Scale      *Scale     `json:"scale,omitempty"`
	Thresholds Thresholds `json:"thresholds"`
	Active     bool       `json:"active"`
}

// Criteria holds the visible (active) criteria in document order and keeps the
// inactive ones apart so their exclusion stays observable.
type Criteria struct {
	visible  *OrderedSet[Criterion]
	inactive *OrderedSet[Criterion]
	info     map[Criterion]CriterionInfo
}

func NewCriteria() *Criteria {
	return &Criteria{
		visible:  NewOrderedSet[Criterion](),
		inactive: NewOrderedSet[Criterion](),
		info:     make(map[Criterion]CriterionInfo),
	}
}

// Add records a criterion. It returns false if the criterion is already known.
func (c *Criteria) Add(info CriterionInfo) bool {
	if _, ok := c.info[info.Criterion]; ok {
		return false
	}
	c.info[info.Criterion] = info
	if info.Active {
		c.visible.Add(info.Criterion)
	} else {
		c.inactive.Add(info.Criterion)
	}
	return true
}

func (c *Criteria) List() []Criterion     { return c.visible.Items() }
func (c *Criteria) Inactive() []Criterion { return c.inactive.Items() }
func (c *Criteria) Set() *OrderedSet[Criterion] {
	return c.visible.Clone()
}

func (c *Criteria) Contains(cr Criterion) bool { return c.visible.Contains(cr) }

// Known reports whether the criterion was declared, active or not.
func (c *Criteria) Known(cr Criterion) bool {
	_, ok := c.info[cr]
	return ok
}

func (c *Criteria) Info(cr Criterion) (CriterionInfo, bool) {
	i, ok := c.info[cr]
	return i, ok
}

func (c *Criteria) Len() int { return c.visible.Len() }

// Coalitions holds criteria weights and the majority threshold of a concordance rule.
type Coalitions struct {
	weights           map[Criterion]float64
	order             *OrderedSet[Criterion]
	MajorityThreshold *float64 `json:"majority_threshold,omitempty"`
}

func NewCoalitions() *Coalitions {
	return &Coalitions{weights: make(map[Criterion]float64), order: NewOrderedSet[Criterion]()}
}

// SetWeight returns false if the criterion already carries a weight.
func (c *Coalitions) SetWeight(cr Criterion, w float64) bool {
	if _, ok := c.weights[cr]; ok {
		return false
	}
	c.weights[cr] = w
	c.order.Add(cr)
	return true
}

func (c *Coalitions) Weight(cr Criterion) (float64, bool) {
	w, ok := c.weights[cr]
	return w, ok
}

func (c *Coalitions) Criteria() []Criterion { return c.order.Items() }

func (c *Coalitions) Sum() float64 {
	var s float64
	for _, w := range c.weights {
		s += w
	}
	return s
}

func (c *Coalitions) IsEmpty() bool {
	return c.order.Len() == 0 && c.MajorityThreshold == nil
}
