package portfolio

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSkills_CommaString(t *testing.T) {
	got := NormalizeSkills(json.RawMessage(`"JS, React, Node.js"`))
	assert.Equal(t, []string{"JS", "React", "Node.js"}, got)
}

func TestNormalizeSkills_ListWithBlanks(t *testing.T) {
	got := NormalizeSkills(json.RawMessage(`["JS","","  React  ","   "]`))
	assert.Equal(t, []string{"JS", "React"}, got)
}

func TestNormalizeSkills_OtherEncodings(t *testing.T) {
	assert.Empty(t, NormalizeSkills(nil))
	assert.Empty(t, NormalizeSkills(json.RawMessage(`42`)))
	assert.Empty(t, NormalizeSkills(json.RawMessage(`{"go":true}`)))
}

func TestNormalizeProjects_UntitledPlaceholder(t *testing.T) {
	got := NormalizeProjects([]Project{
		{Title: "  ", Description: " built a thing "},
		{Title: "Compiler", Description: "Parses stuff"},
	})

	assert.Equal(t, "Untitled Project", got[0].Title)
	assert.Equal(t, "built a thing", got[0].Description)
	assert.Equal(t, "Compiler", got[1].Title)
}

func TestLegacyDocument_ToProfile(t *testing.T) {
	legacy := &LegacyDocument{
		Name:     " Ada Lovelace ",
		Skills:   json.RawMessage(`"OCaml, Go"`),
		Projects: []Project{{Title: "Engine", Description: "Analytical"}},
		SocialLinks: &SocialLinks{
			GitHub: "https://github.com/ada",
		},
	}

	p := legacy.ToProfile()

	assert.Equal(t, "Ada Lovelace", p.PersonalInfo.FullName)
	assert.Equal(t, []string{"OCaml", "Go"}, p.Skills)
	assert.Len(t, p.Projects, 1)
	assert.Equal(t, "https://github.com/ada", p.ContactInfo.SocialLinks.GitHub)
	assert.Equal(t, "professional", p.StylePreferences.Theme)
}

func TestIsLegacyShape(t *testing.T) {
	assert.True(t, IsLegacyShape(json.RawMessage(`{"name":"Ada","skills":["Go"]}`)))
	assert.False(t, IsLegacyShape(json.RawMessage(`{"personalInfo":{"fullName":"Ada"}}`)))
	assert.False(t, IsLegacyShape(json.RawMessage(`not json`)))
}

func TestDecodeStoredProfile_BothShapes(t *testing.T) {
	legacy, err := DecodeStoredProfile(json.RawMessage(`{"name":"Ada","skills":"Go, Rust","projects":[]}`))
	require.NoError(t, err)
	assert.Equal(t, "Ada", legacy.PersonalInfo.FullName)
	assert.Equal(t, []string{"Go", "Rust"}, legacy.Skills)

	nested, err := DecodeStoredProfile(json.RawMessage(`{"personalInfo":{"fullName":"Grace"}}`))
	require.NoError(t, err)
	assert.Equal(t, "Grace", nested.PersonalInfo.FullName)
	assert.NotNil(t, nested.Skills)
	assert.NotNil(t, nested.Projects)
}
