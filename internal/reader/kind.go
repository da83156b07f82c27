package reader

import "fmt"

// Kind names a source slot of the reader. Every kind but KindMain falls back to
// the main source when unset.
type Kind int

const (
	KindMain Kind = iota
	KindAlternatives
	KindCriteria
	KindAlternativesEvaluations
	KindProfilesEvaluations
	KindCategories
	KindCoalitions
	KindAssignments
	KindDecisionMakers
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindMain:
		return "main"
	case KindAlternatives:
		return "alternatives"
	case KindCriteria:
		return "criteria"
	case KindAlternativesEvaluations:
		return "alternatives_evaluations"
	case KindProfilesEvaluations:
		return "profiles_evaluations"
	case KindCategories:
		return "categories"
	case KindCoalitions:
		return "coalitions"
	case KindAssignments:
		return "assignments"
	case KindDecisionMakers:
		return "decision_makers"
	}
	return "unknown"
}

// Kinds lists every source kind.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := KindMain; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind maps a kind name as printed by String back to its Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
}
