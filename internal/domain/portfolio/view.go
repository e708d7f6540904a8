package portfolio

import "strings"

// View is the read model handed to portfolio pages. Every field is
// defaulted here, at one boundary, so renderers can consume it without
// nil checks no matter which optional sections the stored document is
// missing or which historical shape it was written in.
type View struct {
	Name        string            `json:"name"`
	Title       string            `json:"title"`
	Bio         string            `json:"bio"`
	Tagline     string            `json:"tagline"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Location    string            `json:"location"`
	SocialLinks map[string]string `json:"socialLinks"`
	Skills      []string          `json:"skills"`
	Projects    []ProjectView     `json:"projects"`

	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Certifications []Certification  `json:"certifications"`
	Hobbies        []string         `json:"hobbies"`
	Languages      []Language       `json:"languages"`
	Achievements   []Achievement    `json:"achievements"`
	Testimonials   []Testimonial    `json:"testimonials"`
	CustomSections []CustomSection  `json:"customSections"`

	Style StylePreferences `json:"style"`
}

type ProjectView struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// NewView builds the render model for a persisted portfolio. Generated text
// wins over user text when present; empty social links are omitted so the
// renderer can iterate the map directly.
func NewView(p *Portfolio) *View {
	v := &View{
		Name:        p.PersonalInfo.FullName,
		Title:       p.PersonalInfo.ProfessionalTitle,
		Bio:         firstNonEmpty(p.GeneratedContent.Bio, p.PersonalInfo.Bio),
		Tagline:     p.GeneratedContent.Tagline,
		Email:       p.ContactInfo.Email,
		Phone:       p.ContactInfo.Phone,
		Location:    p.ContactInfo.Location,
		SocialLinks: presentSocialLinks(p.ContactInfo.SocialLinks),
		Skills:      p.Skills,
		Style:       p.StylePreferences,

		WorkExperience: p.WorkExperience,
		Education:      p.Education,
		Certifications: p.Certifications,
		Hobbies:        p.Hobbies,
		Languages:      p.Languages,
		Achievements:   p.Achievements,
		Testimonials:   p.Testimonials,
		CustomSections: p.CustomSections,
	}

	if v.Name == "" {
		v.Name = "Anonymous"
	}
	if v.Skills == nil {
		v.Skills = []string{}
	}
	if v.Style.Theme == "" {
		v.Style = NewProfile().StylePreferences
	}

	v.Projects = make([]ProjectView, len(p.Projects))
	for i, proj := range p.Projects {
		techs := proj.Technologies
		if techs == nil {
			techs = []string{}
		}
		v.Projects[i] = ProjectView{
			Title:        proj.Title,
			Description:  firstNonEmpty(proj.GeneratedDescription, proj.Description),
			Technologies: techs,
		}
	}

	if v.WorkExperience == nil {
		v.WorkExperience = []WorkExperience{}
	}
	if v.Education == nil {
		v.Education = []Education{}
	}
	if v.Certifications == nil {
		v.Certifications = []Certification{}
	}
	if v.Hobbies == nil {
		v.Hobbies = []string{}
	}
	if v.Languages == nil {
		v.Languages = []Language{}
	}
	if v.Achievements == nil {
		v.Achievements = []Achievement{}
	}
	if v.Testimonials == nil {
		v.Testimonials = []Testimonial{}
	}
	if v.CustomSections == nil {
		v.CustomSections = []CustomSection{}
	}

	return v
}

func presentSocialLinks(s SocialLinks) map[string]string {
	links := map[string]string{
		"linkedin":  s.LinkedIn,
		"github":    s.GitHub,
		"twitter":   s.Twitter,
		"portfolio": s.Portfolio,
		"blog":      s.Blog,
	}
	for k, v := range links {
		if strings.TrimSpace(v) == "" {
			delete(links, k)
		}
	}
	return links
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
