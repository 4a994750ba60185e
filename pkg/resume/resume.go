// Package resume defines the resume document aggregate shared by the API
// service, the export worker and the editing client.
package resume

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Template selects one of the fixed presentation layouts.
type Template string

const (
	TemplateA Template = "template-a"
	TemplateB Template = "template-b"
	TemplateC Template = "template-c"
	TemplateD Template = "template-d"
)

// DefaultTemplate is used whenever a record carries no template id.
const DefaultTemplate = TemplateB

// Valid reports whether t is one of the known template ids.
func (t Template) Valid() bool {
	switch t {
	case TemplateA, TemplateB, TemplateC, TemplateD:
		return true
	}
	return false
}

// DisplayName returns the user-facing template label.
func (t Template) DisplayName() string {
	switch t {
	case TemplateA:
		return "Template A"
	case TemplateB:
		return "Template B"
	case TemplateC:
		return "Template C (ATS-Friendly)"
	case TemplateD:
		return "Template D (Plain)"
	}
	return string(DefaultTemplate)
}

// HeaderAlignment positions the header block of a rendered resume.
type HeaderAlignment string

const (
	AlignLeft   HeaderAlignment = "left"
	AlignCenter HeaderAlignment = "center"
	AlignRight  HeaderAlignment = "right"
)

// DefaultThemeColor is the brand blue applied to new resumes.
const DefaultThemeColor = "#0EA5E9"

// ExperienceItem is one entry of the work history collection.
type ExperienceItem struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Description  string   `json:"description"`
	BulletPoints []string `json:"bulletPoints"`
}

// EducationItem is one entry of the education collection.
type EducationItem struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// ProjectItem is one entry of the projects collection.
type ProjectItem struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Description  string   `json:"description"`
	BulletPoints []string `json:"bulletPoints"`
	URL          string   `json:"url,omitempty"`
}

// SkillItem is one entry of the skills collection. Proficiency is a
// percentage in [0,100].
type SkillItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
}

// Resume is the root document aggregate. Dates inside collections are
// free-text tokens ("Jan 2020", "Present") and are never parsed.
type Resume struct {
	ID              string           `json:"id"`
	RemoteID        uint             `json:"remoteId,omitempty"`
	Name            string           `json:"name"`
	Title           string           `json:"title"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	Location        string           `json:"location"`
	Website         string           `json:"website"`
	Summary         string           `json:"summary"`
	ThemeColor      string           `json:"themeColor"`
	Declaration     string           `json:"declaration"`
	ProfileImage    string           `json:"profileImage,omitempty"`
	HeaderAlignment HeaderAlignment  `json:"headerAlignment"`
	TemplateID      Template         `json:"templateId"`
	Experiences     []ExperienceItem `json:"experiences"`
	Education       []EducationItem  `json:"education"`
	Projects        []ProjectItem    `json:"projects"`
	Skills          []SkillItem      `json:"skills"`
	LastUpdated     time.Time        `json:"lastUpdated"`
}

// New returns a resume with default scalar values and empty collections.
// The client-assigned id stays stable across local/remote persistence.
func New() Resume {
	return Resume{
		ID:              NewID(),
		Name:            "Untitled Resume",
		ThemeColor:      DefaultThemeColor,
		HeaderAlignment: AlignLeft,
		TemplateID:      DefaultTemplate,
		Experiences:     []ExperienceItem{},
		Education:       []EducationItem{},
		Projects:        []ProjectItem{},
		Skills:          []SkillItem{},
		LastUpdated:     time.Now().UTC(),
	}
}

// NewID mints a client-side resume identifier.
func NewID() string {
	return fmt.Sprintf("resume-%s", uuid.NewString())
}

// NewItemID mints an identifier for a collection item. Ids are unique within
// their collection and never reused.
func NewItemID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}

// Clone returns a deep copy. The editor session works on a clone so the
// store's authoritative copy is only replaced on successful save.
func (r Resume) Clone() Resume {
	out := r
	out.Experiences = make([]ExperienceItem, len(r.Experiences))
	for i, e := range r.Experiences {
		e.BulletPoints = append([]string(nil), e.BulletPoints...)
		out.Experiences[i] = e
	}
	out.Education = append([]EducationItem(nil), r.Education...)
	out.Projects = make([]ProjectItem, len(r.Projects))
	for i, p := range r.Projects {
		p.BulletPoints = append([]string(nil), p.BulletPoints...)
		out.Projects[i] = p
	}
	out.Skills = append([]SkillItem(nil), r.Skills...)
	return out
}
