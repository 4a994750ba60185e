package client

import (
	"path/filepath"
	"testing"

	"github.com/junaifcp/swift-resume/pkg/resume"
)

func TestFileFallbackMissingFileIsEmpty(t *testing.T) {
	f := &FileFallback{Path: filepath.Join(t.TempDir(), "resumes.json")}

	got, err := f.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %+v", got)
	}
}

func TestFileFallbackRoundTrip(t *testing.T) {
	f := &FileFallback{Path: filepath.Join(t.TempDir(), "nested", "resumes.json")}

	in := resume.New()
	in.Name = "Ada Lovelace"
	in.Skills = []resume.SkillItem{{ID: "s1", Name: "Go", Proficiency: 80}}
	if err := f.Save([]resume.Resume{in}); err != nil {
		t.Fatal(err)
	}

	got, err := f.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "Ada Lovelace" {
		t.Fatalf("round trip lost data: %+v", got)
	}
	if len(got[0].Skills) != 1 || got[0].Skills[0].Proficiency != 80 {
		t.Fatalf("skills = %+v", got[0].Skills)
	}
}

func TestFileFallbackSaveOverwrites(t *testing.T) {
	f := &FileFallback{Path: filepath.Join(t.TempDir(), "resumes.json")}

	if err := f.Save([]resume.Resume{resume.New(), resume.New()}); err != nil {
		t.Fatal(err)
	}
	if err := f.Save([]resume.Resume{}); err != nil {
		t.Fatal(err)
	}

	got, err := f.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected cleared list, got %+v", got)
	}
}
