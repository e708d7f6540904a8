package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"
)

// SectionKind fixes the update semantics of a document section. The
// classification is part of the section registry and never changes for
// the lifetime of a document: array sections are replaced wholesale on
// every update, object sections are shallow-merged key by key, scalar
// sections are overwritten.
type SectionKind int

const (
	ObjectSection SectionKind = iota
	ArraySection
	ScalarSection
)

const (
	SectionPersonalInfo     = "personalInfo"
	SectionContactInfo      = "contactInfo"
	SectionSkills           = "skills"
	SectionProjects         = "projects"
	SectionWorkExperience   = "workExperience"
	SectionEducation        = "education"
	SectionCertifications   = "certifications"
	SectionHobbies          = "hobbies"
	SectionLanguages        = "languages"
	SectionAchievements     = "achievements"
	SectionTestimonials     = "testimonials"
	SectionStylePreferences = "stylePreferences"
	SectionResume           = "resume"
	SectionCustomSections   = "customSections"
)

var sectionKinds = map[string]SectionKind{
	SectionPersonalInfo:     ObjectSection,
	SectionContactInfo:      ObjectSection,
	SectionSkills:           ArraySection,
	SectionProjects:         ArraySection,
	SectionWorkExperience:   ArraySection,
	SectionEducation:        ArraySection,
	SectionCertifications:   ArraySection,
	SectionHobbies:          ArraySection,
	SectionLanguages:        ArraySection,
	SectionAchievements:     ArraySection,
	SectionTestimonials:     ArraySection,
	SectionStylePreferences: ObjectSection,
	SectionResume:           ScalarSection,
	SectionCustomSections:   ArraySection,
}

var (
	ErrUnknownSection = errors.New("unknown section")
	ErrNotObject      = errors.New("section value must be a JSON object")
)

// KindOf reports the registered kind for a section name.
func KindOf(name string) (SectionKind, bool) {
	k, ok := sectionKinds[name]
	return k, ok
}

// Document is the canonical in-progress profile. It holds every section as
// raw JSON so the merge protocol can operate uniformly regardless of the
// section's concrete shape. A zero Document is not usable; construct with
// NewDocument.
type Document struct {
	sections map[string]json.RawMessage
}

func NewDocument() *Document {
	defaults, err := json.Marshal(NewProfile())
	if err != nil {
		panic(fmt.Sprintf("marshal default profile: %v", err))
	}
	doc := &Document{}
	if err := json.Unmarshal(defaults, &doc.sections); err != nil {
		panic(fmt.Sprintf("unmarshal default profile: %v", err))
	}
	return doc
}

// Section returns the raw value of one section.
func (d *Document) Section(name string) (json.RawMessage, bool) {
	v, ok := d.sections[name]
	return v, ok
}

// Snapshot returns a copy of every section. Mutating the returned map does
// not affect the document.
func (d *Document) Snapshot() map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(d.sections))
	for k, v := range d.sections {
		cp := make(json.RawMessage, len(v))
		copy(cp, v)
		out[k] = cp
	}
	return out
}

// UpdateSection applies one section update and returns the resulting
// document. The receiver is left untouched, so a caller holding the prior
// snapshot keeps it intact.
//
// Array sections take the supplied sequence as the complete new value; a
// value that is not a JSON array resets the section to an empty sequence
// instead of failing the update. Object sections shallow-merge the supplied
// keys over the current value, leaving unspecified keys alone; nested
// objects such as contactInfo.socialLinks are single keys at this level and
// therefore travel whole. Scalar sections are overwritten.
func (d *Document) UpdateSection(name string, value json.RawMessage) (*Document, error) {
	kind, ok := sectionKinds[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}

	next := &Document{sections: d.Snapshot()}

	switch kind {
	case ArraySection:
		// A literal null decodes into a nil slice without error; it resets
		// the section like any other non-array value.
		var probe []json.RawMessage
		if err := json.Unmarshal(value, &probe); err != nil || probe == nil {
			next.sections[name] = json.RawMessage(`[]`)
		} else {
			next.sections[name] = append(json.RawMessage(nil), value...)
		}

	case ObjectSection:
		var current, partial map[string]json.RawMessage
		if err := json.Unmarshal(next.sections[name], &current); err != nil {
			current = map[string]json.RawMessage{}
		}
		if err := json.Unmarshal(value, &partial); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNotObject, name)
		}
		for k, v := range partial {
			current[k] = v
		}
		merged, err := json.Marshal(current)
		if err != nil {
			return nil, fmt.Errorf("merge section %q: %w", name, err)
		}
		next.sections[name] = merged

	case ScalarSection:
		next.sections[name] = append(json.RawMessage(nil), value...)
	}

	return next, nil
}

// Decode materializes the document into the typed profile model.
func (d *Document) Decode() (*Profile, error) {
	raw, err := json.Marshal(d.sections)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	p := NewProfile()
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return p, nil
}

func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.sections)
}

// UnmarshalJSON restores a document from stored JSON. Sections absent from
// the payload keep their defaults; unknown keys are dropped so the section
// registry stays authoritative.
func (d *Document) UnmarshalJSON(data []byte) error {
	var incoming map[string]json.RawMessage
	if err := json.Unmarshal(data, &incoming); err != nil {
		return err
	}
	fresh := NewDocument()
	for name := range sectionKinds {
		if v, ok := incoming[name]; ok {
			fresh.sections[name] = v
		}
	}
	d.sections = fresh.sections
	return nil
}
