package mapper

import (
	"errors"
	"testing"

	"github.com/Harshitk-cp/mcdaxml/internal/domain"
	"github.com/Harshitk-cp/mcdaxml/internal/errsink"
	"github.com/Harshitk-cp/mcdaxml/internal/xmltree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, doc string) *xmltree.Node {
	t.Helper()
	root, err := xmltree.Parse([]byte(doc))
	require.NoError(t, err)
	return root
}

func collect() *errsink.Manager {
	return errsink.NewManager(errsink.StrategyCollect, nil)
}

func TestReadAlternatives(t *testing.T) {
	root := parse(t, `<XMCDA>
	  <alternatives mcdaConcept="Real">
	    <alternative id="a1" name="One"/>
	    <alternative id="a2"><type>fictive</type><active>false</active></alternative>
	    <alternative name="no id"/>
	    <alternative id="a3"><type>maybe</type></alternative>
	  </alternatives>
	  <alternatives><alternative id="a4"/></alternatives>
	</XMCDA>`)
	sink := collect()

	colls, err := ReadAlternativesCollections(root, sink)
	require.NoError(t, err)
	require.Len(t, colls, 2)

	assert.Equal(t, "Real", colls[0].Declared)
	assert.Equal(t, domain.ConceptReal, colls[0].DeclaredConcept())
	require.Len(t, colls[0].Entries, 2)
	assert.Equal(t, AlternativeEntry{Alternative: domain.Alternative{ID: "a1"}, Name: "One", Active: true}, colls[0].Entries[0])
	assert.Equal(t, domain.ConceptFictive, colls[0].Entries[1].Concept)
	assert.False(t, colls[0].Entries[1].Active)

	assert.Equal(t, "", colls[1].Declared)
	assert.Equal(t, domain.ConceptUnmarked, colls[1].DeclaredConcept())

	diags := sink.Diagnostics()
	require.Len(t, diags, 2)
	assert.True(t, errors.Is(diags[0], domain.ErrMissingRequiredField))
	assert.True(t, errors.Is(diags[1], domain.ErrStructuralInvalidity))
}

func TestReadAlternativesThrowStopsAtFirstProblem(t *testing.T) {
	root := parse(t, `<XMCDA><alternatives><alternative/><alternative id="a1"/></alternatives></XMCDA>`)
	_, err := ReadAlternativesCollections(root, errsink.NewManager(errsink.StrategyThrow, nil))
	assert.ErrorIs(t, err, domain.ErrMissingRequiredField)
}

func TestReadPerformanceTableDuplicateCellKeepsFirst(t *testing.T) {
	root := parse(t, `<XMCDA><performanceTable mcdaConcept="alternatives">
	  <alternativePerformances><alternativeID>a1</alternativeID>
	    <performance><criterionID>g1</criterionID><value><real>1</real></value></performance>
	    <performance><criterionID>g1</criterionID><value><real>5</real></value></performance>
	    <performance><criterionID>g2</criterionID><value><rational><numerator>1</numerator><denominator>4</denominator></rational></value></performance>
	  </alternativePerformances>
	  <alternativePerformances><alternativeID>a2</alternativeID>
	    <performance><criterionID>g1</criterionID><value><integer>3</integer></value></performance>
	    <performance><criterionID>g2</criterionID><value><real>1</real><real>2</real></value></performance>
	  </alternativePerformances>
	</performanceTable></XMCDA>`)
	sink := collect()

	tables, err := ReadPerformanceTables(root, sink)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "alternatives", tables[0].Declared)

	m := tables[0].Matrix
	v, ok := m.Value(domain.Alternative{ID: "a1"}, domain.Criterion{ID: "g1"})
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
	v, _ = m.Value(domain.Alternative{ID: "a1"}, domain.Criterion{ID: "g2"})
	assert.Equal(t, 0.25, v)
	v, _ = m.Value(domain.Alternative{ID: "a2"}, domain.Criterion{ID: "g1"})
	assert.Equal(t, 3.0, v)
	_, ok = m.Value(domain.Alternative{ID: "a2"}, domain.Criterion{ID: "g2"})
	assert.False(t, ok)
	assert.Equal(t, 3, m.Len())

	diags := sink.Diagnostics()
	require.Len(t, diags, 2)
	assert.True(t, errors.Is(diags[0], domain.ErrDuplicateValue))
	assert.True(t, errors.Is(diags[1], domain.ErrAmbiguousCardinality))
}

func TestReadCriteria(t *testing.T) {
	root := parse(t, `<XMCDA><criteria>
	  <criterion id="g1" name="price">
	    <scale><quantitative><preferenceDirection>min</preferenceDirection>
	      <minimum><real>0</real></minimum><maximum><real>100</real></maximum></quantitative></scale>
	    <thresholds>
	      <threshold mcdaConcept="indifference"><constant><real>1</real></constant></threshold>
	      <threshold mcdaConcept="preference"><constant><real>2</real></constant></threshold>
	      <threshold mcdaConcept="preference"><constant><real>3</real></constant></threshold>
	    </thresholds>
	  </criterion>
	  <criterion id="g2"><active>false</active></criterion>
	  <criterion id="g1"/>
	</criteria></XMCDA>`)
	sink := collect()

	crit, err := ReadCriteria(root, sink)
	require.NoError(t, err)
	assert.Equal(t, []domain.Criterion{{ID: "g1"}}, crit.List())
	assert.Equal(t, []domain.Criterion{{ID: "g2"}}, crit.Inactive())
	assert.True(t, crit.Known(domain.Criterion{ID: "g2"}))

	info, ok := crit.Info(domain.Criterion{ID: "g1"})
	require.True(t, ok)
	assert.Equal(t, "price", info.Name)
	require.NotNil(t, info.Scale)
	assert.Equal(t, domain.DirectionMin, info.Scale.Direction)
	assert.Equal(t, 100.0, *info.Scale.Max)
	assert.Equal(t, 1.0, *info.Thresholds.Indifference)
	assert.Equal(t, 2.0, *info.Thresholds.Preference)
	assert.Nil(t, info.Thresholds.Veto)

	diags := sink.Diagnostics()
	require.Len(t, diags, 2)
	assert.True(t, errors.Is(diags[0], domain.ErrDuplicateValue))
	assert.True(t, errors.Is(diags[1], domain.ErrDuplicateValue))
}

func TestReadCriteriaValuesAndParameters(t *testing.T) {
	root := parse(t, `<XMCDA>
	  <criteriaValues mcdaConcept="weights">
	    <criterionValue><criterionID>g1</criterionID><value><real>0.4</real></value></criterionValue>
	    <criterionValue><criterionID>g2</criterionID><value><real>0.6</real></value></criterionValue>
	    <criterionValue><criterionID>g1</criterionID><value><real>0.9</real></value></criterionValue>
	  </criteriaValues>
	  <criteriaValues mcdaConcept="weights" name="dm1">
	    <criterionValue><criterionID>g1</criterionID><value><real>1</real></value></criterionValue>
	  </criteriaValues>
	  <methodParameters mcdaConcept="majorityThreshold"><parameter><value><real>0.7</real></value></parameter></methodParameters>
	  <methodParameters mcdaConcept="decisionMakers">
	    <parameter><value><label>dm1</label></value></parameter>
	    <parameter><value><label>dm2</label></value></parameter>
	  </methodParameters>
	</XMCDA>`)
	sink := collect()

	weights, err := ReadCriteriaValues(root, ConceptWeights, "", sink)
	require.NoError(t, err)
	assert.Equal(t, []CriterionValue{{domain.Criterion{ID: "g1"}, 0.4}, {domain.Criterion{ID: "g2"}, 0.6}}, weights)
	require.Len(t, sink.Diagnostics(), 1)

	named, err := ReadCriteriaValues(root, ConceptWeights, "dm1", sink)
	require.NoError(t, err)
	assert.Len(t, named, 1)

	maj, err := ReadMajorityThreshold(root, sink)
	require.NoError(t, err)
	require.NotNil(t, maj)
	assert.Equal(t, 0.7, *maj)

	labels, err := ReadDecisionMakerLabels(root, sink)
	require.NoError(t, err)
	assert.Equal(t, []string{"dm1", "dm2"}, labels)
}

func TestReadCategoriesAndProfiles(t *testing.T) {
	root := parse(t, `<XMCDA>
	  <categories>
	    <category id="good"><rank><integer>3</integer></rank></category>
	    <category id="bad"><rank><integer>1</integer></rank></category>
	    <category id="medium"><rank><integer>2</integer></rank></category>
	  </categories>
	  <categoriesProfiles>
	    <categoryProfile><alternativeID>p1</alternativeID>
	      <limits><lowerCategory><categoryID>bad</categoryID></lowerCategory><upperCategory><categoryID>medium</categoryID></upperCategory></limits>
	    </categoryProfile>
	    <categoryProfile><alternativeID>p2</alternativeID><limits/></categoryProfile>
	  </categoriesProfiles>
	</XMCDA>`)
	sink := collect()

	cats, err := ReadCategories(root, sink)
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, "bad", cats[0].Category.ID)
	assert.Equal(t, "medium", cats[1].Category.ID)
	assert.Equal(t, "good", cats[2].Category.ID)

	bounds, err := ReadCategoriesProfiles(root, sink)
	require.NoError(t, err)
	require.Len(t, bounds, 1)
	assert.Equal(t, ProfileBound{
		Profile: domain.Alternative{ID: "p1"},
		Lower:   domain.Category{ID: "bad"},
		Upper:   domain.Category{ID: "medium"},
	}, bounds[0])
	require.Len(t, sink.Diagnostics(), 1)
	assert.ErrorIs(t, sink.Diagnostics()[0], domain.ErrMissingRequiredField)
}

func TestReadCategoriesRejectsFractionalRank(t *testing.T) {
	root := parse(t, `<XMCDA>
	  <categories>
	    <category id="bad"><rank><real>1.5</real></rank></category>
	    <category id="good"><rank><real>2</real></rank></category>
	  </categories>
	</XMCDA>`)
	sink := collect()

	cats, err := ReadCategories(root, sink)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "good", cats[0].Category.ID)
	assert.Equal(t, 2, cats[0].Rank)
	require.Len(t, sink.Diagnostics(), 1)
	assert.ErrorIs(t, sink.Diagnostics()[0], domain.ErrStructuralInvalidity)

	_, err = ReadCategories(root, errsink.NewManager(errsink.StrategyThrow, nil))
	assert.ErrorIs(t, err, domain.ErrStructuralInvalidity)
}

func TestReadAssignments(t *testing.T) {
	root := parse(t, `<XMCDA>
	  <alternativesAffectations>
	    <alternativeAffectation><alternativeID>a1</alternativeID><categoryID>c1</categoryID></alternativeAffectation>
	    <alternativeAffectation><alternativeID>a2</alternativeID>
	      <categoriesSet>
	        <element><categoryID>c1</categoryID><value><real>0.3</real></value></element>
	        <element><categoryID>c2</categoryID><value><real>0.7</real></value></element>
	        <element><categoryID>c2</categoryID></element>
	      </categoriesSet>
	    </alternativeAffectation>
	    <alternativeAffectation><alternativeID>a3</alternativeID></alternativeAffectation>
	  </alternativesAffectations>
	  <alternativesAffectations name="dm1">
	    <alternativeAffectation><alternativeID>a1</alternativeID><categoryID>c2</categoryID></alternativeAffectation>
	  </alternativesAffectations>
	</XMCDA>`)
	sink := collect()

	colls, err := ReadAssignmentsCollections(root, sink)
	require.NoError(t, err)
	require.Len(t, colls, 2)
	assert.Equal(t, "", colls[0].Name)
	assert.Equal(t, "dm1", colls[1].Name)

	require.Len(t, colls[0].Assignments, 2)
	a2 := colls[0].Assignments[1]
	assert.Equal(t, []domain.Category{{ID: "c1"}, {ID: "c2"}}, a2.Categories())
	cred, ok := a2.Credibility(domain.Category{ID: "c2"})
	require.True(t, ok)
	assert.Equal(t, 0.7, cred)

	diags := sink.Diagnostics()
	require.Len(t, diags, 2)
	assert.ErrorIs(t, diags[0], domain.ErrDuplicateValue)
	assert.ErrorIs(t, diags[1], domain.ErrAmbiguousCardinality)
}

func TestWriteThenReadAssignments(t *testing.T) {
	as := domain.NewAssignments()
	one := domain.NewAssignment(domain.Alternative{ID: "a1"})
	one.Add(domain.Category{ID: "c1"})
	two := domain.NewAssignment(domain.Alternative{ID: "a2"})
	two.AddWithCredibility(domain.Category{ID: "c1"}, 0.5)
	as.Put(one)
	as.Put(two)

	root := xmltree.New(xmltree.RootTag).Append(WriteAssignments(as, "dm1", nil))
	colls, err := ReadAssignmentsCollections(root, collect())
	require.NoError(t, err)
	require.Len(t, colls, 1)
	assert.Equal(t, "dm1", colls[0].Name)
	back := domain.NewAssignments()
	for _, a := range colls[0].Assignments {
		back.Put(a)
	}
	assert.True(t, as.Equal(back))
}

func TestMergeOrder(t *testing.T) {
	got := MergeOrder([]string{"c", "x", "a"}, []string{"a", "b", "c"})
	assert.Equal(t, []string{"c", "a", "b"}, got)
}
