package portfolio

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument_Defaults(t *testing.T) {
	doc := NewDocument()

	p, err := doc.Decode()
	require.NoError(t, err)

	assert.Equal(t, "professional", p.StylePreferences.Theme)
	assert.Equal(t, "#4B96FF", p.StylePreferences.PrimaryColor)
	assert.Empty(t, p.Skills)
	assert.Empty(t, p.Projects)
	assert.Nil(t, p.Resume)
}

func TestUpdateSection_ObjectShallowMerge(t *testing.T) {
	doc := NewDocument()

	doc, err := doc.UpdateSection(SectionPersonalInfo, json.RawMessage(`{"fullName":"Ada Lovelace"}`))
	require.NoError(t, err)

	doc, err = doc.UpdateSection(SectionPersonalInfo, json.RawMessage(`{"professionalTitle":"Engineer"}`))
	require.NoError(t, err)

	p, err := doc.Decode()
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", p.PersonalInfo.FullName)
	assert.Equal(t, "Engineer", p.PersonalInfo.ProfessionalTitle)
}

func TestUpdateSection_NestedObjectTravelsWhole(t *testing.T) {
	doc := NewDocument()

	doc, err := doc.UpdateSection(SectionContactInfo,
		json.RawMessage(`{"email":"ada@example.com","socialLinks":{"github":"https://github.com/ada"}}`))
	require.NoError(t, err)

	// Resubmitting socialLinks replaces the nested object entirely; only
	// top-level contactInfo keys merge.
	doc, err = doc.UpdateSection(SectionContactInfo,
		json.RawMessage(`{"socialLinks":{"linkedin":"https://linkedin.com/in/ada"}}`))
	require.NoError(t, err)

	p, err := doc.Decode()
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", p.ContactInfo.Email)
	assert.Equal(t, "https://linkedin.com/in/ada", p.ContactInfo.SocialLinks.LinkedIn)
	assert.Empty(t, p.ContactInfo.SocialLinks.GitHub)
}

func TestUpdateSection_ArrayReplacesWholesale(t *testing.T) {
	doc := NewDocument()

	doc, err := doc.UpdateSection(SectionSkills, json.RawMessage(`["Go","Postgres"]`))
	require.NoError(t, err)

	doc, err = doc.UpdateSection(SectionSkills, json.RawMessage(`["Rust"]`))
	require.NoError(t, err)

	p, err := doc.Decode()
	require.NoError(t, err)

	assert.Equal(t, []string{"Rust"}, p.Skills)
}

func TestUpdateSection_NonArrayResetsArraySection(t *testing.T) {
	doc := NewDocument()

	doc, err := doc.UpdateSection(SectionSkills, json.RawMessage(`["Go"]`))
	require.NoError(t, err)

	doc, err = doc.UpdateSection(SectionSkills, json.RawMessage(`{"oops":true}`))
	require.NoError(t, err)

	p, err := doc.Decode()
	require.NoError(t, err)

	assert.Empty(t, p.Skills)
}

func TestUpdateSection_NullResetsArraySection(t *testing.T) {
	doc := NewDocument()

	doc, err := doc.UpdateSection(SectionSkills, json.RawMessage(`["Go"]`))
	require.NoError(t, err)

	doc, err = doc.UpdateSection(SectionSkills, json.RawMessage(`null`))
	require.NoError(t, err)

	raw, ok := doc.Section(SectionSkills)
	require.True(t, ok)
	assert.JSONEq(t, `[]`, string(raw))

	p, err := doc.Decode()
	require.NoError(t, err)
	assert.NotNil(t, p.Skills)
	assert.Empty(t, p.Skills)
}

func TestUpdateSection_NonObjectIntoObjectSection(t *testing.T) {
	doc := NewDocument()

	_, err := doc.UpdateSection(SectionPersonalInfo, json.RawMessage(`[1,2,3]`))
	assert.ErrorIs(t, err, ErrNotObject)
}

func TestUpdateSection_UnknownSection(t *testing.T) {
	doc := NewDocument()

	_, err := doc.UpdateSection("darkMode", json.RawMessage(`true`))
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestUpdateSection_ScalarOverwrite(t *testing.T) {
	doc := NewDocument()

	doc, err := doc.UpdateSection(SectionResume, json.RawMessage(`"https://cdn.example.com/resume.pdf"`))
	require.NoError(t, err)

	p, err := doc.Decode()
	require.NoError(t, err)
	require.NotNil(t, p.Resume)
	assert.Equal(t, "https://cdn.example.com/resume.pdf", *p.Resume)

	doc, err = doc.UpdateSection(SectionResume, json.RawMessage(`null`))
	require.NoError(t, err)

	p, err = doc.Decode()
	require.NoError(t, err)
	assert.Nil(t, p.Resume)
}

func TestUpdateSection_PriorSnapshotUntouched(t *testing.T) {
	before := NewDocument()

	after, err := before.UpdateSection(SectionSkills, json.RawMessage(`["Go"]`))
	require.NoError(t, err)

	pBefore, err := before.Decode()
	require.NoError(t, err)
	pAfter, err := after.Decode()
	require.NoError(t, err)

	assert.Empty(t, pBefore.Skills)
	assert.Equal(t, []string{"Go"}, pAfter.Skills)
}

func TestDocument_JSONRoundTrip(t *testing.T) {
	doc := NewDocument()
	doc, err := doc.UpdateSection(SectionPersonalInfo, json.RawMessage(`{"fullName":"Ada Lovelace"}`))
	require.NoError(t, err)
	doc, err = doc.UpdateSection(SectionSkills, json.RawMessage(`["OCaml"]`))
	require.NoError(t, err)

	payload, err := json.Marshal(doc)
	require.NoError(t, err)

	restored := &Document{}
	require.NoError(t, json.Unmarshal(payload, restored))

	p, err := restored.Decode()
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", p.PersonalInfo.FullName)
	assert.Equal(t, []string{"OCaml"}, p.Skills)
}

func TestDocument_UnmarshalDropsUnknownSections(t *testing.T) {
	restored := &Document{}
	require.NoError(t, json.Unmarshal([]byte(`{"skills":["Go"],"darkMode":true}`), restored))

	_, ok := restored.Section("darkMode")
	assert.False(t, ok)

	p, err := restored.Decode()
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, p.Skills)
	assert.Equal(t, "professional", p.StylePreferences.Theme)
}
