package xmltree

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `<?xml version="1.0" encoding="UTF-8"?>
<xmcda:XMCDA xmlns:xmcda="http://www.decision-deck.org/2009/XMCDA-2.1.0">
  <alternatives mcdaConcept="real">
    <alternative id="a1" name="First"><active>true</active></alternative>
    <alternative id="a2"/>
  </alternatives>
  <criteria/>
</xmcda:XMCDA>`

func TestParseDropsNamespaces(t *testing.T) {
	root, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, Validate(root))

	assert.Equal(t, "XMCDA", root.Name)
	_, hasNS := root.Attr("xmcda")
	assert.False(t, hasNS)

	alts := root.ChildrenNamed("alternatives")
	require.Len(t, alts, 1)
	concept, ok := alts[0].Attr("mcdaConcept")
	require.True(t, ok)
	assert.Equal(t, "real", concept)

	items := alts[0].ChildrenNamed("alternative")
	require.Len(t, items, 2)
	id, _ := items[0].Attr("id")
	assert.Equal(t, "a1", id)
	active, ok := items[0].Child("active")
	require.True(t, ok)
	assert.Equal(t, "true", active.Text())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("   "))
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = Parse([]byte("<XMCDA><alternatives></XMCDA>"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	root, err := Parse([]byte(`<other/>`))
	require.NoError(t, err)
	assert.ErrorIs(t, Validate(root), ErrInvalidRoot)

	root, err = Parse([]byte(`<XMCDA><bogus/></XMCDA>`))
	require.NoError(t, err)
	assert.ErrorIs(t, Validate(root), ErrUnknownTag)

	assert.ErrorIs(t, Validate(nil), ErrEmptyDocument)
}

func TestMarshalRoundTrip(t *testing.T) {
	root := New(RootTag).Append(
		New("alternatives", Attr{Name: "mcdaConcept", Value: "real"}).Append(
			New("alternative", Attr{Name: "id", Value: "a<1>"}).Append(NewText("active", "false")),
		),
	)

	var buf bytes.Buffer
	require.NoError(t, Marshal(&buf, root))
	assert.Contains(t, buf.String(), "xmlns:xmcda=")

	back, err := Parse(buf.Bytes())
	require.NoError(t, err)
	require.NoError(t, Validate(back))
	alt := back.ChildrenNamed("alternatives")[0].ChildrenNamed("alternative")[0]
	id, _ := alt.Attr("id")
	assert.Equal(t, "a<1>", id)
	active, _ := alt.Child("active")
	assert.Equal(t, "false", active.Text())
}
