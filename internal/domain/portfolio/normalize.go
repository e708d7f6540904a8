package portfolio

import (
	"encoding/json"
	"strings"
)

// NormalizeSkills accepts the two wire encodings of the skills section, an
// already-split sequence or a single comma-separated string, and returns the
// cleaned sequence. Blank entries are dropped, surrounding whitespace is
// trimmed, and any other encoding yields an empty sequence.
func NormalizeSkills(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return cleanSkills(list)
	}

	var joined string
	if err := json.Unmarshal(raw, &joined); err == nil {
		return cleanSkills(strings.Split(joined, ","))
	}

	return []string{}
}

func cleanSkills(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// NormalizeProjects trims project fields and fills the placeholder title
// used for unnamed entries.
func NormalizeProjects(in []Project) []Project {
	out := make([]Project, len(in))
	for i, p := range in {
		title := strings.TrimSpace(p.Title)
		if title == "" {
			title = "Untitled Project"
		}
		out[i] = Project{
			Title:                title,
			Description:          strings.TrimSpace(p.Description),
			GeneratedDescription: p.GeneratedDescription,
			Technologies:         p.Technologies,
		}
	}
	return out
}

// LegacyDocument is the flat request/storage shape that predates the nested
// profile. It is adapted to the canonical shape in exactly one place, here.
type LegacyDocument struct {
	Name        string          `json:"name"`
	Skills      json.RawMessage `json:"skills"`
	Projects    []Project       `json:"projects"`
	SocialLinks *SocialLinks    `json:"socialLinks"`
}

// ToProfile lifts a legacy flat document into the canonical nested shape.
// Every field the legacy shape does not carry keeps its default.
func (l *LegacyDocument) ToProfile() *Profile {
	p := NewProfile()
	p.PersonalInfo.FullName = strings.TrimSpace(l.Name)
	p.Skills = NormalizeSkills(l.Skills)
	if l.Projects != nil {
		p.Projects = NormalizeProjects(l.Projects)
	} else {
		p.Projects = nil
	}
	if l.SocialLinks != nil {
		p.ContactInfo.SocialLinks = *l.SocialLinks
	}
	return p
}

// IsLegacyShape reports whether a stored raw document uses the flat shape.
// Flat documents carry a top-level "name" and no "personalInfo".
func IsLegacyShape(raw json.RawMessage) bool {
	var probe struct {
		Name         *string         `json:"name"`
		PersonalInfo json.RawMessage `json:"personalInfo"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	return probe.PersonalInfo == nil && probe.Name != nil
}

// DecodeStoredProfile reads a stored document of either shape into the
// canonical profile. Missing sections come back defaulted, never nil maps
// or dangling pointers, so readers don't have to guard field access.
func DecodeStoredProfile(raw json.RawMessage) (*Profile, error) {
	if IsLegacyShape(raw) {
		var legacy LegacyDocument
		if err := json.Unmarshal(raw, &legacy); err != nil {
			return nil, err
		}
		return legacy.ToProfile(), nil
	}
	p := NewProfile()
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, err
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Projects == nil {
		p.Projects = []Project{}
	}
	return p, nil
}
