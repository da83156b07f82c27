package domain

// Problem is the aggregate read from (or written to) one source configuration.
// Alternatives and Profiles never share a member.
type Problem struct {
	Alternatives            []Alternative
	InactiveAlternatives    []Alternative
	Profiles                []Alternative
	AlternativesEvaluations Evaluations
	ProfilesEvaluations     Evaluations
	Criteria                *Criteria
	Coalitions              *Coalitions
	CategoriesProfiles      *CategoriesProfiles
	Assignments             *Assignments
	DecisionMakers          []DecisionMaker
	GroupAssignments        map[DecisionMaker]*Assignments
}

// SortingData is the subset of a problem needed to run a sorting method.
type SortingData struct {
	Alternatives            []Alternative
	Profiles                []Alternative
	AlternativesEvaluations Evaluations
	ProfilesEvaluations     Evaluations
	Criteria                *Criteria
	CategoriesProfiles      *CategoriesProfiles
}
