package render

import (
	"strings"
	"testing"

	"github.com/junaifcp/swift-resume/pkg/resume"
)

func sampleResume() resume.Resume {
	r := resume.New()
	r.Name = "Ada Lovelace"
	r.Title = "Engineer"
	r.Email = "ada@example.com"
	r.Summary = "Built things."
	r.Skills = []resume.SkillItem{{ID: "s1", Name: "Go", Proficiency: 80}}
	return r
}

func TestProfileImageOnlyInTemplateA(t *testing.T) {
	r := sampleResume()
	r.ProfileImage = "data:image/png;base64,AAAA"

	for _, tpl := range []resume.Template{resume.TemplateA, resume.TemplateB, resume.TemplateC, resume.TemplateD} {
		r.TemplateID = tpl
		out, err := HTML(r)
		if err != nil {
			t.Fatalf("%s: %v", tpl, err)
		}
		has := strings.Contains(out, `class="profile"`)
		if tpl == resume.TemplateA && !has {
			t.Fatalf("%s must render the profile image", tpl)
		}
		if tpl != resume.TemplateA && has {
			t.Fatalf("%s must not render the profile image", tpl)
		}
	}

	// the stored value itself is untouched by rendering
	if r.ProfileImage != "data:image/png;base64,AAAA" {
		t.Fatal("render mutated the resume")
	}
}

func TestEmptySectionsAreOmitted(t *testing.T) {
	r := resume.New()
	r.Name = "Ada"
	r.Title = "Engineer"

	out, err := HTML(r)
	if err != nil {
		t.Fatal(err)
	}
	for _, heading := range []string{"Experience", "Education", "Projects", "Skills", "Declaration", "Professional Summary"} {
		if strings.Contains(out, ">"+heading+"<") {
			t.Fatalf("empty section %q rendered a heading", heading)
		}
	}
}

func TestSkillRenderingVariesByLayout(t *testing.T) {
	r := sampleResume()

	r.TemplateID = resume.TemplateB
	out, err := HTML(r)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "80%") || !strings.Contains(out, `class="bar"`) {
		t.Fatal("template-b must render a labeled progress bar")
	}

	r.TemplateID = resume.TemplateC
	out, err = HTML(r)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `class="tag"`) || strings.Contains(out, `class="bar"`) {
		t.Fatal("template-c must render plain skill tags")
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	r := sampleResume()
	r.Experiences = []resume.ExperienceItem{{
		ID: "e1", Company: "Acme", Position: "Engineer",
		StartDate: "Jan 2020", EndDate: "Present",
		BulletPoints: []string{"shipped", "scaled"},
	}}

	first, err := HTML(r)
	if err != nil {
		t.Fatal(err)
	}
	second, err := HTML(r)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatal("rendering the same resume twice produced different output")
	}
	if !strings.Contains(first, `id="resume-preview"`) {
		t.Fatal("printable region marker missing")
	}
}

func TestUnknownTemplateFallsBackToDefault(t *testing.T) {
	r := sampleResume()
	r.TemplateID = resume.Template("template-z")

	out, err := HTML(r)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "layout-b") {
		t.Fatal("unknown template id must fall back to the default layout")
	}
}
