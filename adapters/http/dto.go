package http

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/ShuitaMandhan12/PortfolioSense/internal/domain/portfolio"
	"github.com/ShuitaMandhan12/PortfolioSense/internal/domain/session"
)

// Response envelope shared by every endpoint.
func envelope(data any) gin.H {
	return gin.H{"success": true, "data": data}
}

// GeneratePortfolioRequest is the canonical nested submission body. Skills
// stay raw because clients have historically sent either a sequence or a
// comma-separated string.
type GeneratePortfolioRequest struct {
	PersonalInfo     portfolio.PersonalInfo      `json:"personalInfo"`
	ContactInfo      portfolio.ContactInfo       `json:"contactInfo"`
	Skills           json.RawMessage             `json:"skills"`
	Projects         []portfolio.Project         `json:"projects"`
	WorkExperience   []portfolio.WorkExperience  `json:"workExperience"`
	Education        []portfolio.Education       `json:"education"`
	Certifications   []portfolio.Certification   `json:"certifications"`
	Hobbies          []string                    `json:"hobbies"`
	Languages        []portfolio.Language        `json:"languages"`
	Achievements     []portfolio.Achievement     `json:"achievements"`
	Testimonials     []portfolio.Testimonial     `json:"testimonials"`
	StylePreferences *portfolio.StylePreferences `json:"stylePreferences"`
	Resume           *string                     `json:"resume"`
	CustomSections   []portfolio.CustomSection   `json:"customSections"`
}

func (r *GeneratePortfolioRequest) ToProfile() *portfolio.Profile {
	p := portfolio.NewProfile()
	p.PersonalInfo = r.PersonalInfo
	p.ContactInfo = r.ContactInfo

	if r.Skills != nil {
		p.Skills = portfolio.NormalizeSkills(r.Skills)
	} else {
		p.Skills = nil
	}
	// Projects must be distinguishable from "absent" for validation.
	p.Projects = r.Projects

	if r.WorkExperience != nil {
		p.WorkExperience = r.WorkExperience
	}
	if r.Education != nil {
		p.Education = r.Education
	}
	if r.Certifications != nil {
		p.Certifications = r.Certifications
	}
	if r.Hobbies != nil {
		p.Hobbies = r.Hobbies
	}
	if r.Languages != nil {
		p.Languages = r.Languages
	}
	if r.Achievements != nil {
		p.Achievements = r.Achievements
	}
	if r.Testimonials != nil {
		p.Testimonials = r.Testimonials
	}
	if r.StylePreferences != nil {
		p.StylePreferences = *r.StylePreferences
	}
	if r.CustomSections != nil {
		p.CustomSections = r.CustomSections
	}
	p.Resume = r.Resume
	return p
}

// LegacyGenerateRequest is the flat body accepted by the older endpoint.
type LegacyGenerateRequest portfolio.LegacyDocument

func (r *LegacyGenerateRequest) ToProfile() *portfolio.Profile {
	l := portfolio.LegacyDocument(*r)
	return l.ToProfile()
}

// CreatedPortfolioDTO mirrors the historical create response: the id is
// duplicated alongside the full persisted document for link display.
type CreatedPortfolioDTO struct {
	UniqueID  string               `json:"uniqueId"`
	Portfolio *portfolio.Portfolio `json:"portfolio"`
}

// Session DTOs

type SessionDTO struct {
	ID          string                 `json:"id"`
	Step        int                    `json:"step"`
	TotalSteps  int                    `json:"totalSteps"`
	Submitting  bool                   `json:"submitting"`
	PortfolioID string                 `json:"portfolioId,omitempty"`
	Options     *session.OutputOptions `json:"options,omitempty"`
	Document    *portfolio.Document    `json:"document"`
}

func ToSessionDTO(s *session.FormSession) SessionDTO {
	return SessionDTO{
		ID:          s.ID.String(),
		Step:        s.Step,
		TotalSteps:  session.TotalSteps,
		Submitting:  s.Submitting,
		PortfolioID: s.PortfolioID,
		Options:     s.Options,
		Document:    s.Document,
	}
}

type SubmitSessionRequest struct {
	SaveAsDraft bool     `json:"saveAsDraft"`
	PublicLink  bool     `json:"publicLink"`
	Formats     []string `json:"formats"`
}

func (r *SubmitSessionRequest) ToOptions() session.OutputOptions {
	return session.OutputOptions{
		SaveAsDraft: r.SaveAsDraft,
		PublicLink:  r.PublicLink,
		Formats:     r.Formats,
	}
}

type SubmittedSessionDTO struct {
	Session   SessionDTO           `json:"session"`
	UniqueID  string               `json:"uniqueId"`
	Portfolio *portfolio.Portfolio `json:"portfolio"`
}

type UploadAssetDTO struct {
	URL string `json:"url"`
}
