package portfolio

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"
)

type PersonalInfo struct {
	FullName          string  `json:"fullName"`
	ProfessionalTitle string  `json:"professionalTitle"`
	Bio               string  `json:"bio"`
	ProfilePicture    *string `json:"profilePicture"`
}

type SocialLinks struct {
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Twitter   string `json:"twitter"`
	Portfolio string `json:"portfolio"`
	Blog      string `json:"blog"`
}

type ContactInfo struct {
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Location    string      `json:"location"`
	SocialLinks SocialLinks `json:"socialLinks"`
}

type Project struct {
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	GeneratedDescription string   `json:"generatedDescription,omitempty"`
	Technologies         []string `json:"technologies,omitempty"`
}

type WorkExperience struct {
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartYear   string `json:"startYear"`
	EndYear     string `json:"endYear"`
	GPA         string `json:"gpa,omitempty"`
}

type Certification struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Year         string `json:"year"`
	CredentialID string `json:"credentialId,omitempty"`
}

type Language struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// Language proficiency levels.
const (
	ProficiencyBeginner     = "Beginner"
	ProficiencyIntermediate = "Intermediate"
	ProficiencyAdvanced     = "Advanced"
	ProficiencyFluent       = "Fluent"
	ProficiencyNative       = "Native"
)

type Achievement struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Year         string `json:"year"`
	Description  string `json:"description,omitempty"`
}

type Testimonial struct {
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Company  string  `json:"company"`
	Content  string  `json:"content"`
	Avatar   *string `json:"avatar,omitempty"`
}

type StylePreferences struct {
	Theme          string `json:"theme"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	FontFamily     string `json:"fontFamily"`
	Layout         string `json:"layout"`
}

type CustomSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Profile is the canonical nested shape of a profile document, shared by
// the form session, the generation API, and the persistence model.
type Profile struct {
	PersonalInfo     PersonalInfo     `json:"personalInfo"`
	ContactInfo      ContactInfo      `json:"contactInfo"`
	Skills           []string         `json:"skills"`
	Projects         []Project        `json:"projects"`
	WorkExperience   []WorkExperience `json:"workExperience"`
	Education        []Education      `json:"education"`
	Certifications   []Certification  `json:"certifications"`
	Hobbies          []string         `json:"hobbies"`
	Languages        []Language       `json:"languages"`
	Achievements     []Achievement    `json:"achievements"`
	Testimonials     []Testimonial    `json:"testimonials"`
	StylePreferences StylePreferences `json:"stylePreferences"`
	Resume           *string          `json:"resume"`
	CustomSections   []CustomSection  `json:"customSections"`
}

// NewProfile returns a profile with every section at its fixed default.
func NewProfile() *Profile {
	return &Profile{
		PersonalInfo:   PersonalInfo{},
		ContactInfo:    ContactInfo{},
		Skills:         []string{},
		Projects:       []Project{},
		WorkExperience: []WorkExperience{},
		Education:      []Education{},
		Certifications: []Certification{},
		Hobbies:        []string{},
		Languages:      []Language{},
		Achievements:   []Achievement{},
		Testimonials:   []Testimonial{},
		StylePreferences: StylePreferences{
			Theme:          "professional",
			PrimaryColor:   "#4B96FF",
			SecondaryColor: "#FFA2B6",
			FontFamily:     "sans-serif",
			Layout:         "standard",
		},
		Resume:         nil,
		CustomSections: []CustomSection{},
	}
}

type GeneratedContent struct {
	Bio     string `json:"bio"`
	Tagline string `json:"tagline"`
}

// Portfolio is the server-owned persisted copy of a submitted profile,
// enriched with generated text and addressable by its short unique id.
type Portfolio struct {
	Profile
	GeneratedContent GeneratedContent `json:"generatedContent"`
	UniqueID         string           `json:"uniqueId"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// NewUniqueID returns a short random identifier. Collisions are not checked
// here; the storage layer enforces uniqueness and retries on violation.
func NewUniqueID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

type Repository interface {
	Save(ctx context.Context, p *Portfolio) error
	FindByUniqueID(ctx context.Context, uniqueID string) (*Portfolio, error)
}
