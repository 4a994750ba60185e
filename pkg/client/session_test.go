package client

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/junaifcp/swift-resume/pkg/render"
	"github.com/junaifcp/swift-resume/pkg/resume"
)

type fakeExporter struct {
	regionID string
	fileName string
	calls    int
	err      error
}

func (e *fakeExporter) ExportRegionToPDF(_ context.Context, regionID, fileName string) error {
	e.calls++
	e.regionID = regionID
	e.fileName = fileName
	return e.err
}

func openSession(t *testing.T, authenticated bool) (*Session, *Store, *fakeRemote, *recordingNotifier) {
	t.Helper()
	store, remote, _, _ := newTestStore(authenticated)
	created, err := store.Create(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	notify := &recordingNotifier{}
	session := NewSession(store, notify)
	if err := session.Open(created.ID); err != nil {
		t.Fatal(err)
	}
	return session, store, remote, notify
}

func TestOpenMissingResume(t *testing.T) {
	store, _, _, _ := newTestStore(false)
	notify := &recordingNotifier{}
	session := NewSession(store, notify)

	err := session.Open("resume-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if session.Ready() {
		t.Fatal("session must not become ready on a missing id")
	}
	if len(notify.errs) != 1 {
		t.Fatalf("expected one error notification, got %v", notify.errs)
	}
}

func TestPatchMarksDirtyWithoutTouchingStore(t *testing.T) {
	session, store, _, _ := openSession(t, false)
	id := session.Resume().ID

	session.Patch(resume.Patch{Summary: resume.String("Edited but unsaved")})
	if !session.Dirty() {
		t.Fatal("patch must mark the session dirty")
	}

	stored, _ := store.GetByID(id)
	if stored.Summary != "" {
		t.Fatalf("patch leaked into the store before save: %q", stored.Summary)
	}
}

func TestSaveCleanSessionMakesNoRemoteCall(t *testing.T) {
	session, _, remote, _ := openSession(t, true)
	calls := len(remote.calls)

	if err := session.Save(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(remote.calls) != calls {
		t.Fatalf("clean save must not hit the remote, got %v", remote.calls)
	}
}

func TestSaveFailureKeepsWorkingCopyAndDirty(t *testing.T) {
	session, _, remote, _ := openSession(t, true)
	remote.fail["update"] = errors.New("boom")

	session.Patch(resume.Patch{Summary: resume.String("hard-won text")})
	if err := session.Save(context.Background()); err == nil {
		t.Fatal("expected save to fail")
	}
	if !session.Dirty() {
		t.Fatal("failed save must keep the session dirty")
	}
	if got := session.Resume().Summary; got != "hard-won text" {
		t.Fatalf("working copy lost on failed save: %q", got)
	}
}

func TestSavePicksUpStampedCopy(t *testing.T) {
	session, store, _, _ := openSession(t, true)

	session.Patch(resume.Patch{Name: resume.String("Ada Lovelace")})
	if err := session.Save(context.Background()); err != nil {
		t.Fatal(err)
	}
	if session.Dirty() {
		t.Fatal("successful save must mark the session clean")
	}

	stored, _ := store.GetByID(session.Resume().ID)
	if !session.Resume().LastUpdated.Equal(stored.LastUpdated) {
		t.Fatal("session must adopt the stamped lastUpdated after save")
	}
}

func TestSelectTemplateKeepsDataAndNotifies(t *testing.T) {
	session, _, _, notify := openSession(t, false)
	session.Patch(resume.Patch{
		Experiences: []resume.ExperienceItem{{ID: "e1", Company: "Initech"}},
	})

	session.OpenTemplatePicker()
	session.SelectTemplate(resume.TemplateC)

	got := session.Resume()
	if got.TemplateID != resume.TemplateC {
		t.Fatalf("template = %q", got.TemplateID)
	}
	if len(got.Experiences) != 1 || got.Experiences[0].Company != "Initech" {
		t.Fatalf("template switch lost data: %+v", got.Experiences)
	}
	if session.TemplatePickerOpen() {
		t.Fatal("picker must close after selection")
	}
	want := "Template updated—your resume now uses Template C (ATS-Friendly)."
	if len(notify.successes) == 0 || notify.successes[len(notify.successes)-1] != want {
		t.Fatalf("notifications = %v", notify.successes)
	}
}

func TestTabSwitchKeepsDirtyEdits(t *testing.T) {
	session, _, _, _ := openSession(t, false)

	session.Patch(resume.Patch{Summary: resume.String("mid-edit")})
	session.SetActiveTab(TabSkills)

	if session.ActiveTab() != TabSkills {
		t.Fatalf("tab = %q", session.ActiveTab())
	}
	if got := session.Resume().Summary; got != "mid-edit" {
		t.Fatalf("tab switch discarded edits: %q", got)
	}
}

func TestRemoveItemCancelsActiveEdit(t *testing.T) {
	session, _, _, _ := openSession(t, false)
	session.Patch(resume.Patch{
		Experiences: []resume.ExperienceItem{
			{ID: "e1", Company: "Initech"},
			{ID: "e2", Company: "Globex"},
		},
	})

	session.BeginItemEdit("e1")
	session.RemoveItem("e1")

	if got := session.EditingItem(); got != "" {
		t.Fatalf("removing the edited item must cancel the edit, editing = %q", got)
	}
	got := session.Resume().Experiences
	if len(got) != 1 || got[0].ID != "e2" {
		t.Fatalf("experiences = %+v", got)
	}
	if !session.Dirty() {
		t.Fatal("item removal must mark the session dirty")
	}
}

func TestRemoveOtherItemKeepsActiveEdit(t *testing.T) {
	session, _, _, _ := openSession(t, false)
	session.Patch(resume.Patch{
		Skills: []resume.SkillItem{
			{ID: "s1", Name: "Go"},
			{ID: "s2", Name: "SQL"},
		},
	})

	session.BeginItemEdit("s1")
	session.RemoveItem("s2")

	if got := session.EditingItem(); got != "s1" {
		t.Fatalf("editing = %q", got)
	}
	if got := session.Resume().Skills; len(got) != 1 || got[0].ID != "s1" {
		t.Fatalf("skills = %+v", got)
	}
}

func TestRemoveUnknownItemChangesNothing(t *testing.T) {
	session, _, _, _ := openSession(t, false)

	session.BeginItemEdit("e1")
	session.RemoveItem("nope")

	if session.Dirty() {
		t.Fatal("removing an unknown id must not dirty the session")
	}
	if got := session.EditingItem(); got != "e1" {
		t.Fatalf("editing = %q", got)
	}
}

func TestExportGatedOnRequiredChecks(t *testing.T) {
	session, _, _, notify := openSession(t, false)
	exp := &fakeExporter{}

	// fresh resume: name filled by default but title, contact and summary empty
	err := session.Export(context.Background(), exp)
	if err == nil {
		t.Fatal("expected export to be blocked")
	}
	if exp.calls != 0 {
		t.Fatal("blocked export must not reach the exporter")
	}
	want := "Please complete all required sections before downloading or sharing your resume."
	if len(notify.errs) == 0 || notify.errs[len(notify.errs)-1] != want {
		t.Fatalf("notifications = %v", notify.errs)
	}
}

func TestExportRunsWhenRequiredChecksPass(t *testing.T) {
	session, _, _, _ := openSession(t, false)
	exp := &fakeExporter{}

	session.Patch(resume.Patch{
		Name:    resume.String("Ada Lovelace"),
		Title:   resume.String("Engineer"),
		Phone:   resume.String("+1 555 0100"),
		Summary: resume.String("Ships software."),
	})

	if err := session.Export(context.Background(), exp); err != nil {
		t.Fatal(err)
	}
	if exp.calls != 1 {
		t.Fatalf("exporter calls = %d", exp.calls)
	}
	if exp.regionID != render.RegionID {
		t.Fatalf("region = %q", exp.regionID)
	}
	if exp.fileName != "Ada Lovelace" {
		t.Fatalf("file name = %q", exp.fileName)
	}
}

func TestExportFailureNotifies(t *testing.T) {
	session, _, _, notify := openSession(t, false)
	exp := &fakeExporter{err: errors.New("boom")}

	session.Patch(resume.Patch{
		Name:    resume.String("Ada Lovelace"),
		Title:   resume.String("Engineer"),
		Email:   resume.String("ada@example.com"),
		Summary: resume.String("Ships software."),
	})

	err := session.Export(context.Background(), exp)
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("err = %v", err)
	}
	if len(notify.errs) == 0 {
		t.Fatal("export failure must be notified")
	}
}
