package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/junaifcp/swift-resume/pkg/render"
	"github.com/junaifcp/swift-resume/pkg/resume"
)

// Editor tabs, in display order. Navigating between them never discards an
// unsaved working copy.
const (
	TabBasicInfo   = "basic-info"
	TabExperience  = "experience"
	TabEducation   = "education"
	TabProjects    = "projects"
	TabSkills      = "skills"
	TabDeclaration = "declaration"
	TabReview      = "review"
)

// Session is the per-resume editing state machine. It holds a private
// working copy that diverges from the store until Save succeeds; the
// store's authoritative copy is never touched by Patch.
type Session struct {
	store  *Store
	notify Notifier

	working resume.Resume
	ready   bool
	dirty   bool

	editingItem string

	activeTab   string
	showPreview bool
	pickerOpen  bool
}

// NewSession creates a session bound to a store. A nil notifier drops
// notifications.
func NewSession(store *Store, notify Notifier) *Session {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Session{
		store:       store,
		notify:      notify,
		activeTab:   TabBasicInfo,
		showPreview: true,
	}
}

// Open resolves the target resume from the store and transitions the
// session to ready. A missing id refuses the transition with ErrNotFound;
// the caller redirects to the resume list.
func (s *Session) Open(id string) error {
	r, ok := s.store.GetByID(id)
	if !ok {
		s.notify.Error("The resume you're looking for doesn't exist.")
		return fmt.Errorf("open %s: %w", id, ErrNotFound)
	}

	s.working = resume.Normalize(r)
	s.ready = true
	s.dirty = false
	s.editingItem = ""
	s.store.SetCurrentID(id)
	return nil
}

// Ready reports whether a working copy has been resolved.
func (s *Session) Ready() bool { return s.ready }

// Dirty reports whether the working copy has diverged from the store.
func (s *Session) Dirty() bool { return s.dirty }

// Resume returns the current working copy.
func (s *Session) Resume() resume.Resume {
	return s.working.Clone()
}

// Patch merges partial fields into the working copy and marks the session
// dirty. The store's copy is untouched until Save.
func (s *Session) Patch(p resume.Patch) {
	if !s.ready {
		return
	}
	s.working = s.working.Apply(p)
	s.dirty = true
}

// BeginItemEdit marks a collection item as the one being edited inline.
// Only one item is edited at a time, across all collections.
func (s *Session) BeginItemEdit(id string) {
	if !s.ready {
		return
	}
	s.editingItem = id
}

// EditingItem returns the id of the item being edited, or "" when none is.
func (s *Session) EditingItem() string { return s.editingItem }

// EndItemEdit closes the inline item editor.
func (s *Session) EndItemEdit() { s.editingItem = "" }

// RemoveItem deletes the item with the given id from whichever collection
// holds it and marks the session dirty. Deleting the item that is mid-edit
// cancels that edit, so the session never references a removed id. Unknown
// ids change nothing.
func (s *Session) RemoveItem(id string) {
	if !s.ready {
		return
	}

	var p resume.Patch
	found := false
	if next := resume.Remove(s.working.Experiences, id); len(next) != len(s.working.Experiences) {
		p.Experiences = next
		found = true
	}
	if next := resume.Remove(s.working.Education, id); len(next) != len(s.working.Education) {
		p.Education = next
		found = true
	}
	if next := resume.Remove(s.working.Projects, id); len(next) != len(s.working.Projects) {
		p.Projects = next
		found = true
	}
	if next := resume.Remove(s.working.Skills, id); len(next) != len(s.working.Skills) {
		p.Skills = next
		found = true
	}
	if !found {
		return
	}

	s.working = s.working.Apply(p)
	s.dirty = true
	if s.editingItem == id {
		s.editingItem = ""
	}
}

// Save hands the working copy to the store while dirty. Saving a clean
// session is a no-op with no remote call. On failure the session stays
// dirty and keeps the working copy, so no input is lost.
func (s *Session) Save(ctx context.Context) error {
	if !s.ready || !s.dirty {
		return nil
	}
	if err := s.store.Update(ctx, s.working); err != nil {
		return err
	}
	// pick up remote-assigned fields (remote id, stamped lastUpdated)
	if saved, ok := s.store.GetByID(s.working.ID); ok {
		s.working = saved
	}
	s.dirty = false
	return nil
}

// SelectTemplate switches the presentation template, marks the session
// dirty and confirms the choice by name. Data is never discarded.
func (s *Session) SelectTemplate(t resume.Template) {
	if !s.ready || !t.Valid() {
		return
	}
	s.Patch(resume.Patch{TemplateID: resume.TemplateOf(t)})
	s.pickerOpen = false
	s.notify.Success(fmt.Sprintf("Template updated—your resume now uses %s.", t.DisplayName()))
}

// ActiveTab returns the currently selected editor tab.
func (s *Session) ActiveTab() string { return s.activeTab }

// SetActiveTab switches tabs. A clean session refreshes its working copy
// from the store; a dirty one keeps its edits.
func (s *Session) SetActiveTab(tab string) {
	s.activeTab = tab
	if s.ready && !s.dirty {
		if r, ok := s.store.GetByID(s.working.ID); ok {
			s.working = resume.Normalize(r)
		}
	}
}

// TogglePreview flips preview visibility.
func (s *Session) TogglePreview() { s.showPreview = !s.showPreview }

// ShowPreview reports preview visibility.
func (s *Session) ShowPreview() bool { return s.showPreview }

// OpenTemplatePicker shows the template chooser.
func (s *Session) OpenTemplatePicker() { s.pickerOpen = true }

// TemplatePickerOpen reports whether the chooser is visible.
func (s *Session) TemplatePickerOpen() bool { return s.pickerOpen }

// Completeness evaluates the review checklist over the working copy.
func (s *Session) Completeness() []resume.Check {
	return resume.Completeness(s.working)
}

// Export runs the export collaborator against the rendered region, gated on
// the required completeness checks. Recommended checks never block.
func (s *Session) Export(ctx context.Context, exp Exporter) error {
	if !s.ready {
		return ErrNotFound
	}
	if failed := resume.FailedRequired(s.working); len(failed) > 0 {
		s.notify.Error("Please complete all required sections before downloading or sharing your resume.")
		return fmt.Errorf("export blocked, incomplete sections: %s", strings.Join(failed, ", "))
	}

	fileName := s.working.Name
	if fileName == "" {
		fileName = "resume"
	}
	if err := exp.ExportRegionToPDF(ctx, render.RegionID, fileName); err != nil {
		s.notify.Error("Failed to download resume. Please try again.")
		return fmt.Errorf("export %s: %w", s.working.ID, err)
	}
	s.notify.Success("Resume downloaded successfully")
	return nil
}
