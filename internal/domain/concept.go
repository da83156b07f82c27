package domain

import "strings"

// Concept marks an alternative as a real alternative or a fictive one (a profile).
// The zero value is ConceptUnmarked and is never silently treated as either.
type Concept int

const (
	ConceptUnmarked Concept = iota
	ConceptReal
	ConceptFictive
)

func (c Concept) String() string {
	switch c {
	case ConceptReal:
		return "real"
	case ConceptFictive:
		return "fictive"
	default:
		return "unmarked"
	}
}

// ParseConcept maps "real" and "fictive" (any case, surrounding space ignored) to
// their concept. Any other text yields ConceptUnmarked.
func ParseConcept(s string) Concept {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "real":
		return ConceptReal
	case "fictive":
		return ConceptFictive
	}
	return ConceptUnmarked
}

func (c Concept) IsMarked() bool {
	return c != ConceptUnmarked
}
