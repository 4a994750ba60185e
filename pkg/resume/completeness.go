package resume

// Check is one row of the completeness report shown on the review tab.
// Required checks gate export and sharing; recommended ones never block.
type Check struct {
	Name     string
	Passed   bool
	Required bool
}

// Completeness evaluates the fixed, ordered list of checks over a resume.
func Completeness(r Resume) []Check {
	return []Check{
		{Name: "Personal Information", Passed: r.Name != "" && r.Title != "", Required: true},
		{Name: "Contact Information", Passed: r.Email != "" || r.Phone != "", Required: true},
		{Name: "Professional Summary", Passed: r.Summary != "", Required: true},
		{Name: "Work Experience", Passed: len(r.Experiences) > 0},
		{Name: "Education", Passed: len(r.Education) > 0},
		{Name: "Skills", Passed: len(r.Skills) > 0},
	}
}

// ExportReady reports whether every required check passes.
func ExportReady(r Resume) bool {
	for _, c := range Completeness(r) {
		if c.Required && !c.Passed {
			return false
		}
	}
	return true
}

// FailedRequired lists the names of unmet required checks, in report order.
func FailedRequired(r Resume) []string {
	var names []string
	for _, c := range Completeness(r) {
		if c.Required && !c.Passed {
			names = append(names, c.Name)
		}
	}
	return names
}
