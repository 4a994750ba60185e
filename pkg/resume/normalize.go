package resume

// Normalize backfills fields that older records may lack. It is the single
// migration-on-read point: every resume read from the remote API, the local
// fallback store or the database passes through here before any consumer
// sees it.
func Normalize(r Resume) Resume {
	if !r.TemplateID.Valid() {
		r.TemplateID = DefaultTemplate
	}
	switch r.HeaderAlignment {
	case AlignLeft, AlignCenter, AlignRight:
	default:
		r.HeaderAlignment = AlignLeft
	}
	if r.ThemeColor == "" {
		r.ThemeColor = DefaultThemeColor
	}
	if r.Experiences == nil {
		r.Experiences = []ExperienceItem{}
	}
	if r.Education == nil {
		r.Education = []EducationItem{}
	}
	if r.Projects == nil {
		r.Projects = []ProjectItem{}
	}
	if r.Skills == nil {
		r.Skills = []SkillItem{}
	}
	for i := range r.Experiences {
		if r.Experiences[i].BulletPoints == nil {
			r.Experiences[i].BulletPoints = []string{}
		}
	}
	for i := range r.Projects {
		if r.Projects[i].BulletPoints == nil {
			r.Projects[i].BulletPoints = []string{}
		}
	}
	return r
}
