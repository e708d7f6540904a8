package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewView_DefaultsEverything(t *testing.T) {
	v := NewView(&Portfolio{UniqueID: "abc123de"})

	assert.Equal(t, "Anonymous", v.Name)
	assert.NotNil(t, v.Skills)
	assert.NotNil(t, v.Projects)
	assert.NotNil(t, v.WorkExperience)
	assert.NotNil(t, v.Education)
	assert.NotNil(t, v.Hobbies)
	assert.NotNil(t, v.CustomSections)
	assert.Empty(t, v.SocialLinks)
	assert.Equal(t, "professional", v.Style.Theme)
}

func TestNewView_GeneratedTextWins(t *testing.T) {
	p := &Portfolio{
		Profile: Profile{
			PersonalInfo: PersonalInfo{FullName: "Ada", Bio: "typed bio"},
			Projects: []Project{
				{Title: "Engine", Description: "typed", GeneratedDescription: "polished"},
				{Title: "Loom", Description: "typed only"},
			},
		},
		GeneratedContent: GeneratedContent{Bio: "generated bio", Tagline: "Professional Go developer"},
	}

	v := NewView(p)

	assert.Equal(t, "generated bio", v.Bio)
	assert.Equal(t, "Professional Go developer", v.Tagline)
	assert.Equal(t, "polished", v.Projects[0].Description)
	assert.Equal(t, "typed only", v.Projects[1].Description)
	assert.NotNil(t, v.Projects[0].Technologies)
}

func TestNewView_DropsEmptySocialLinks(t *testing.T) {
	p := &Portfolio{
		Profile: Profile{
			PersonalInfo: PersonalInfo{FullName: "Ada"},
			ContactInfo: ContactInfo{
				SocialLinks: SocialLinks{GitHub: "https://github.com/ada", Twitter: "  "},
			},
		},
	}

	v := NewView(p)

	assert.Equal(t, map[string]string{"github": "https://github.com/ada"}, v.SocialLinks)
}
