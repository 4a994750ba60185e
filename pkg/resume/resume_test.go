package resume

import (
	"reflect"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	r := New()

	if r.ID == "" {
		t.Fatal("expected client-assigned id")
	}
	if r.TemplateID != TemplateB {
		t.Fatalf("default template = %s, want %s", r.TemplateID, TemplateB)
	}
	if r.ThemeColor != DefaultThemeColor {
		t.Fatalf("default theme color = %s", r.ThemeColor)
	}
	if r.HeaderAlignment != AlignLeft {
		t.Fatalf("default alignment = %s", r.HeaderAlignment)
	}
	if len(r.Experiences) != 0 || len(r.Education) != 0 || len(r.Projects) != 0 || len(r.Skills) != 0 {
		t.Fatal("collections must start empty")
	}
}

func TestApplyOverwritesOnlyPatchedFields(t *testing.T) {
	r := New()
	r.Name = "Ada"
	r.Title = "Engineer"
	r.Summary = "Built things."

	patched := r.Apply(Patch{
		Title:  String("Staff Engineer"),
		Skills: []SkillItem{{ID: "s1", Name: "Go", Proficiency: 80}},
	})

	if patched.Title != "Staff Engineer" {
		t.Fatalf("title = %q", patched.Title)
	}
	if patched.Name != "Ada" || patched.Summary != "Built things." {
		t.Fatal("unpatched fields changed")
	}
	if !reflect.DeepEqual(patched.Skills, []SkillItem{{ID: "s1", Name: "Go", Proficiency: 80}}) {
		t.Fatalf("skills = %+v", patched.Skills)
	}
	if len(r.Skills) != 0 {
		t.Fatal("apply mutated the receiver")
	}
}

func TestApplyEmptyPatchEqualsOriginal(t *testing.T) {
	r := New()
	r.Experiences = []ExperienceItem{{ID: "e1", Company: "Acme", BulletPoints: []string{"shipped"}}}

	patched := r.Apply(Patch{})
	if !reflect.DeepEqual(patched, r) {
		t.Fatalf("empty patch changed the resume:\n got %+v\nwant %+v", patched, r)
	}
	if !(Patch{}).IsZero() {
		t.Fatal("zero patch not recognized")
	}
}

func TestTemplateSwitchKeepsData(t *testing.T) {
	r := New()
	r.ProfileImage = "data:image/png;base64,xxxx"

	a := r.Apply(Patch{TemplateID: TemplateOf(TemplateA)})
	back := a.Apply(Patch{TemplateID: TemplateOf(TemplateB)})

	if a.ProfileImage != r.ProfileImage || back.ProfileImage != r.ProfileImage {
		t.Fatal("template switch must not discard data")
	}
	if back.TemplateID != TemplateB {
		t.Fatalf("template = %s", back.TemplateID)
	}
}

func TestNormalizeBackfillsLegacyRecords(t *testing.T) {
	legacy := Resume{ID: "resume-1", Name: "Old"}

	n := Normalize(legacy)
	if n.TemplateID != DefaultTemplate {
		t.Fatalf("template = %s", n.TemplateID)
	}
	if n.Projects == nil || n.Skills == nil || n.Experiences == nil || n.Education == nil {
		t.Fatal("collections must be non-nil after normalize")
	}
	if n.HeaderAlignment != AlignLeft {
		t.Fatalf("alignment = %s", n.HeaderAlignment)
	}
	if n.ThemeColor != DefaultThemeColor {
		t.Fatalf("theme color = %s", n.ThemeColor)
	}
}

func TestCloneIsDeep(t *testing.T) {
	r := New()
	r.Experiences = []ExperienceItem{{ID: "e1", BulletPoints: []string{"one"}}}

	c := r.Clone()
	c.Experiences[0].BulletPoints[0] = "changed"

	if r.Experiences[0].BulletPoints[0] != "one" {
		t.Fatal("clone shares bullet point storage with original")
	}
}
