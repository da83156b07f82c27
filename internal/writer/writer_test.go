package writer

import (
	"bytes"
	"context"
	"testing"

	"github.com/Harshitk-cp/mcdaxml/internal/buildconfig"
	"github.com/Harshitk-cp/mcdaxml/internal/domain"
	"github.com/Harshitk-cp/mcdaxml/internal/parsing"
	"github.com/Harshitk-cp/mcdaxml/internal/reader"
	"github.com/Harshitk-cp/mcdaxml/internal/source"
	"github.com/Harshitk-cp/mcdaxml/internal/xmltree"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const problemDoc = `<XMCDA>
  <alternatives>
    <alternative id="a1"/>
    <alternative id="a2"/>
    <alternative id="a3"><active>false</active></alternative>
  </alternatives>
  <criteria>
    <criterion id="g1"><scale><quantitative><preferenceDirection>max</preferenceDirection>
      <minimum><real>0</real></minimum><maximum><real>10</real></maximum></quantitative></scale>
      <thresholds><threshold mcdaConcept="preference"><constant><real>1.5</real></constant></threshold></thresholds>
    </criterion>
    <criterion id="g2"/>
  </criteria>
  <performanceTable>
    <alternativePerformances><alternativeID>a1</alternativeID>
      <performance><criterionID>g1</criterionID><value><real>3</real></value></performance>
      <performance><criterionID>g2</criterionID><value><rational><numerator>1</numerator><denominator>4</denominator></rational></value></performance>
    </alternativePerformances>
    <alternativePerformances><alternativeID>a2</alternativeID>
      <performance><criterionID>g1</criterionID><value><real>7</real></value></performance>
    </alternativePerformances>
    <alternativePerformances><alternativeID>p1</alternativeID>
      <performance><criterionID>g1</criterionID><value><real>5</real></value></performance>
    </alternativePerformances>
  </performanceTable>
  <criteriaValues mcdaConcept="weights">
    <criterionValue><criterionID>g1</criterionID><value><real>0.7</real></value></criterionValue>
    <criterionValue><criterionID>g2</criterionID><value><real>0.3</real></value></criterionValue>
  </criteriaValues>
  <methodParameters mcdaConcept="majorityThreshold"><parameter><value><real>0.6</real></value></parameter></methodParameters>
  <categories>
    <category id="bad"><rank><integer>1</integer></rank></category>
    <category id="good"><rank><integer>2</integer></rank></category>
  </categories>
  <categoriesProfiles>
    <categoryProfile><alternativeID>p1</alternativeID>
      <limits><lowerCategory><categoryID>bad</categoryID></lowerCategory><upperCategory><categoryID>good</categoryID></upperCategory></limits>
    </categoryProfile>
  </categoriesProfiles>
  <alternativesAffectations>
    <alternativeAffectation><alternativeID>a1</alternativeID><categoryID>good</categoryID></alternativeAffectation>
  </alternativesAffectations>
  <alternativesAffectations name="dm1">
    <alternativeAffectation><alternativeID>a1</alternativeID>
      <categoriesSet>
        <element><categoryID>bad</categoryID><value><real>0.4</real></value></element>
        <element><categoryID>good</categoryID><value><real>0.6</real></value></element>
      </categoriesSet>
    </alternativeAffectation>
  </alternativesAffectations>
</XMCDA>`

func read(t *testing.T, src source.Source) *domain.Problem {
	t.Helper()
	r := reader.New(nil)
	r.SetAlternativesStrategy(parsing.StrategyTakeAll)
	r.SetMainSource(src)
	p, err := r.ReadProblem(context.Background())
	require.NoError(t, err)
	require.Empty(t, r.Diagnostics())
	return p
}

func assertSameProblem(t *testing.T, want, got *domain.Problem) {
	t.Helper()
	if diff := cmp.Diff(want.Alternatives, got.Alternatives); diff != "" {
		t.Errorf("alternatives mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, want.InactiveAlternatives, got.InactiveAlternatives)
	assert.Equal(t, want.Profiles, got.Profiles)
	assert.True(t, domain.EvaluationsEqual(want.AlternativesEvaluations, got.AlternativesEvaluations))
	assert.True(t, domain.EvaluationsEqual(want.ProfilesEvaluations, got.ProfilesEvaluations))

	assert.Equal(t, want.Criteria.List(), got.Criteria.List())
	for _, c := range want.Criteria.List() {
		wi, _ := want.Criteria.Info(c)
		gi, ok := got.Criteria.Info(c)
		require.True(t, ok)
		assert.Equal(t, wi, gi)
	}

	assert.Equal(t, want.Coalitions.Criteria(), got.Coalitions.Criteria())
	assert.InDelta(t, want.Coalitions.Sum(), got.Coalitions.Sum(), 1e-9)
	assert.Equal(t, want.Coalitions.MajorityThreshold, got.Coalitions.MajorityThreshold)

	assert.Equal(t, want.CategoriesProfiles.Categories(), got.CategoriesProfiles.Categories())
	assert.Equal(t, want.CategoriesProfiles.Profiles(), got.CategoriesProfiles.Profiles())

	assert.True(t, want.Assignments.Equal(got.Assignments))
	assert.Equal(t, want.DecisionMakers, got.DecisionMakers)
	require.Len(t, got.GroupAssignments, len(want.GroupAssignments))
	for dm, as := range want.GroupAssignments {
		assert.True(t, as.Equal(got.GroupAssignments[dm]), "group %s", dm)
	}
}

func TestRoundTrip(t *testing.T) {
	original := read(t, source.NewMemoryString(problemDoc))
	require.Equal(t, domain.Alternatives("p1"), original.Profiles)

	var buf bytes.Buffer
	require.NoError(t, New().Write(&buf, original))

	again := read(t, source.NewMemory(buf.Bytes()))
	assertSameProblem(t, original, again)
}

func TestRoundTripUnboundedProfiles(t *testing.T) {
	r := reader.New(nil)
	r.SetMainSource(source.NewMemoryString(`<XMCDA>
	  <alternatives mcdaConcept="real"><alternative id="a1"/></alternatives>
	  <alternatives mcdaConcept="fictive"><alternative id="p1"/></alternatives>
	</XMCDA>`))
	p, err := r.ReadProblem(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(OmitEmpty()).Write(&buf, p))

	r2 := reader.New(nil)
	r2.SetMainSource(source.NewMemory(buf.Bytes()))
	again, err := r2.ReadProblem(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Alternatives("a1"), again.Alternatives)
	assert.Equal(t, domain.Alternatives("p1"), again.Profiles)
	assert.Empty(t, r2.Diagnostics())
}

func TestTakeAllReadsUnboundedProfilesAsAlternatives(t *testing.T) {
	p := &domain.Problem{
		Alternatives: domain.Alternatives("a1"),
		Profiles:     domain.Alternatives("p1"),
	}
	var buf bytes.Buffer
	require.NoError(t, New(OmitEmpty()).Write(&buf, p))

	r := reader.New(nil)
	r.SetAlternativesStrategy(parsing.StrategyTakeAll)
	r.SetMainSource(source.NewMemory(buf.Bytes()))
	again, err := r.ReadProblem(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Alternatives("a1", "p1"), again.Alternatives)
	assert.Empty(t, again.Profiles)
}

func TestBuildProjectReference(t *testing.T) {
	root := New().Build(&domain.Problem{})
	ref, ok := root.Child("projectReference")
	require.True(t, ok)
	comment, ok := ref.Child("comment")
	require.True(t, ok)
	assert.Equal(t, "generated by "+buildconfig.Generator(), comment.Text())
	require.NoError(t, xmltree.Validate(root))
}

func TestOmitEmpty(t *testing.T) {
	p := &domain.Problem{
		Alternatives:            domain.Alternatives("a1"),
		Criteria:                domain.NewCriteria(),
		AlternativesEvaluations: domain.NewEvaluationsMatrix(),
		Coalitions:              domain.NewCoalitions(),
		CategoriesProfiles:      domain.NewCategoriesProfiles(),
		Assignments:             domain.NewAssignments(),
	}

	full := New().Build(p)
	assert.Len(t, full.ChildrenNamed("performanceTable"), 2)
	assert.Len(t, full.ChildrenNamed("categories"), 1)

	sparse := New(OmitEmpty()).Build(p)
	var names []string
	for _, c := range sparse.Children {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"projectReference", "alternatives"}, names)
}

func TestWithOrder(t *testing.T) {
	m := domain.NewEvaluationsMatrix()
	m.Put(domain.Alternative{ID: "a1"}, domain.Criterion{ID: "g1"}, 1)
	m.Put(domain.Alternative{ID: "a2"}, domain.Criterion{ID: "g1"}, 2)
	p := &domain.Problem{
		Alternatives:            domain.Alternatives("a1", "a2"),
		AlternativesEvaluations: m,
	}

	root := New(WithOrder(domain.Alternatives("a2"), nil)).Build(p)
	alts, ok := root.Child("alternatives")
	require.True(t, ok)
	var ids []string
	for _, a := range alts.ChildrenNamed("alternative") {
		id, _ := a.Attr("id")
		ids = append(ids, id)
	}
	assert.Equal(t, []string{"a2", "a1"}, ids)

	table, ok := root.Child("performanceTable")
	require.True(t, ok)
	rows := table.ChildrenNamed("alternativePerformances")
	require.Len(t, rows, 2)
	first, _ := rows[0].Child("alternativeID")
	assert.Equal(t, "a2", first.Text())
}
