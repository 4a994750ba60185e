// Package ai provides canned writing suggestions for the editor. It mimics
// an LLM-backed service behind a stable interface so a real provider can be
// dropped in later without touching the handlers.
package ai

import (
	"fmt"
	"strings"
)

// Suggestion kinds accepted by Suggest.
const (
	KindSummary      = "summary"
	KindBulletPoints = "bullet_points"
)

// Suggester produces text suggestions for a resume section.
type Suggester struct{}

// NewSuggester builds the canned suggester.
func NewSuggester() *Suggester {
	return &Suggester{}
}

// Suggest returns suggestions for the given kind. For summaries the role is
// woven into a few ready-made phrasings; for bullet points the role and
// company seed action-verb lines the user can edit down.
func (s *Suggester) Suggest(kind, role, company string) ([]string, error) {
	role = strings.TrimSpace(role)
	company = strings.TrimSpace(company)

	switch kind {
	case KindSummary:
		if role == "" {
			role = "professional"
		}
		return []string{
			fmt.Sprintf("Results-driven %s with a track record of delivering high-quality work on schedule and collaborating effectively across teams.", role),
			fmt.Sprintf("Detail-oriented %s who combines strong technical skills with clear communication to drive projects from concept to completion.", role),
			fmt.Sprintf("Adaptable %s passionate about continuous learning, known for turning ambiguous requirements into dependable outcomes.", role),
		}, nil
	case KindBulletPoints:
		subject := role
		if subject == "" {
			subject = "key initiatives"
		}
		at := ""
		if company != "" {
			at = " at " + company
		}
		return []string{
			fmt.Sprintf("Led %s%s, improving delivery speed and quality across the team.", subject, at),
			fmt.Sprintf("Collaborated with cross-functional partners%s to ship projects on time and within scope.", at),
			"Identified and resolved process bottlenecks, reducing turnaround time for recurring work.",
			"Mentored junior colleagues and documented practices that raised overall team output.",
		}, nil
	default:
		return nil, fmt.Errorf("unknown suggestion kind %q", kind)
	}
}
