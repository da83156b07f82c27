package domain

// CategoriesProfiles orders categories from worst to best and keeps the profile that
// separates each category from the next one up.
type CategoriesProfiles struct {
	categories *OrderedSet[Category]
	profiles   *OrderedSet[Alternative]
	lower      map[Alternative]Category
	upper      map[Alternative]Category
}

func NewCategoriesProfiles() *CategoriesProfiles {
	return &CategoriesProfiles{
		categories: NewOrderedSet[Category](),
		profiles:   NewOrderedSet[Alternative](),
		lower:      make(map[Alternative]Category),
		upper:      make(map[Alternative]Category),
	}
}

// AddCategory appends a category above the ones already present.
func (cp *CategoriesProfiles) AddCategory(c Category) bool {
	return cp.categories.Add(c)
}

// Bound records profile p as the boundary between lower and upper. Either side may be
// the zero Category when the profile bounds only one category.
func (cp *CategoriesProfiles) Bound(p Alternative, lower, upper Category) bool {
	if !cp.profiles.Add(p) {
		return false
	}
	if lower.ID != "" {
		cp.lower[p] = lower
	}
	if upper.ID != "" {
		cp.upper[p] = upper
	}
	return true
}

func (cp *CategoriesProfiles) Categories() []Category { return cp.categories.Items() }

func (cp *CategoriesProfiles) Profiles() []Alternative { return cp.profiles.Items() }

func (cp *CategoriesProfiles) ProfileSet() *OrderedSet[Alternative] { return cp.profiles.Clone() }

func (cp *CategoriesProfiles) HasCategory(c Category) bool { return cp.categories.Contains(c) }

func (cp *CategoriesProfiles) Lower(p Alternative) (Category, bool) {
	c, ok := cp.lower[p]
	return c, ok
}

func (cp *CategoriesProfiles) Upper(p Alternative) (Category, bool) {
	c, ok := cp.upper[p]
	return c, ok
}

// RemoveProfile drops a profile together with its bounds.
func (cp *CategoriesProfiles) RemoveProfile(p Alternative) {
	cp.profiles.Remove(p)
	delete(cp.lower, p)
	delete(cp.upper, p)
}

func (cp *CategoriesProfiles) IsEmpty() bool {
	return cp.categories.Len() == 0 && cp.profiles.Len() == 0
}
