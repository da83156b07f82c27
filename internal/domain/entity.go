package domain

import (
	"fmt"
	"strings"
)

// Alternative is an option under evaluation. Profiles (category boundaries) are
// alternatives too; which role an alternative plays is decided when reading.
type Alternative struct {
	ID string `json:"id"`
}

type Criterion struct {
	ID string `json:"id"`
}

type Category struct {
	ID string `json:"id"`
}

type DecisionMaker struct {
	ID string `json:"id"`
}

func NewAlternative(id string) (Alternative, error) {
	if err := checkID("alternative", id); err != nil {
		return Alternative{}, err
	}
	return Alternative{ID: id}, nil
}

func NewCriterion(id string) (Criterion, error) {
	if err := checkID("criterion", id); err != nil {
		return Criterion{}, err
	}
	return Criterion{ID: id}, nil
}

func NewCategory(id string) (Category, error) {
	if err := checkID("category", id); err != nil {
		return Category{}, err
	}
	return Category{ID: id}, nil
}

func NewDecisionMaker(id string) (DecisionMaker, error) {
	if err := checkID("decision maker", id); err != nil {
		return DecisionMaker{}, err
	}
	return DecisionMaker{ID: id}, nil
}

func checkID(what, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s id: %w", what, ErrMissingRequiredField)
	}
	return nil
}

func (a Alternative) String() string   { return a.ID }
func (c Criterion) String() string     { return c.ID }
func (c Category) String() string      { return c.ID }
func (d DecisionMaker) String() string { return d.ID }

func (a Alternative) Less(o Alternative) bool     { return a.ID < o.ID }
func (c Criterion) Less(o Criterion) bool         { return c.ID < o.ID }
func (c Category) Less(o Category) bool           { return c.ID < o.ID }
func (d DecisionMaker) Less(o DecisionMaker) bool { return d.ID < o.ID }

// Alternatives builds a slice of alternatives from ids, mostly for tests and fixtures.
func Alternatives(ids ...string) []Alternative {
	out := make([]Alternative, len(ids))
	for i, id := range ids {
		out[i] = Alternative{ID: id}
	}
	return out
}
