package resume

// Patch carries a partial set of field updates. Nil pointers and nil slices
// leave the corresponding field untouched; to clear a collection, pass an
// empty non-nil slice.
type Patch struct {
	Name            *string
	Title           *string
	Email           *string
	Phone           *string
	Location        *string
	Website         *string
	Summary         *string
	ThemeColor      *string
	Declaration     *string
	ProfileImage    *string
	HeaderAlignment *HeaderAlignment
	TemplateID      *Template
	Experiences     []ExperienceItem
	Education       []EducationItem
	Projects        []ProjectItem
	Skills          []SkillItem
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.Name == nil && p.Title == nil && p.Email == nil && p.Phone == nil &&
		p.Location == nil && p.Website == nil && p.Summary == nil &&
		p.ThemeColor == nil && p.Declaration == nil && p.ProfileImage == nil &&
		p.HeaderAlignment == nil && p.TemplateID == nil &&
		p.Experiences == nil && p.Education == nil && p.Projects == nil &&
		p.Skills == nil
}

// Apply merges the patch into a copy of r and returns it. Fields absent from
// the patch are carried over unchanged; identity and bookkeeping fields are
// never touched here.
func (r Resume) Apply(p Patch) Resume {
	out := r.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.Phone != nil {
		out.Phone = *p.Phone
	}
	if p.Location != nil {
		out.Location = *p.Location
	}
	if p.Website != nil {
		out.Website = *p.Website
	}
	if p.Summary != nil {
		out.Summary = *p.Summary
	}
	if p.ThemeColor != nil {
		out.ThemeColor = *p.ThemeColor
	}
	if p.Declaration != nil {
		out.Declaration = *p.Declaration
	}
	if p.ProfileImage != nil {
		out.ProfileImage = *p.ProfileImage
	}
	if p.HeaderAlignment != nil {
		out.HeaderAlignment = *p.HeaderAlignment
	}
	if p.TemplateID != nil {
		out.TemplateID = *p.TemplateID
	}
	if p.Experiences != nil {
		out.Experiences = append([]ExperienceItem(nil), p.Experiences...)
	}
	if p.Education != nil {
		out.Education = append([]EducationItem(nil), p.Education...)
	}
	if p.Projects != nil {
		out.Projects = append([]ProjectItem(nil), p.Projects...)
	}
	if p.Skills != nil {
		out.Skills = append([]SkillItem(nil), p.Skills...)
	}
	return out
}

// String returns a pointer suitable for Patch fields.
func String(s string) *string { return &s }

// TemplateOf returns a pointer suitable for Patch.TemplateID.
func TemplateOf(t Template) *Template { return &t }

// AlignmentOf returns a pointer suitable for Patch.HeaderAlignment.
func AlignmentOf(a HeaderAlignment) *HeaderAlignment { return &a }
