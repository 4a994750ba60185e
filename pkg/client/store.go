package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/junaifcp/swift-resume/pkg/resume"
)

// Store owns the in-memory list of the current user's resumes and mediates
// between it, the remote persistence collaborator and the local fallback.
// User actions are serialized by the caller; the mutex only guards against
// accidental concurrent use, it is not a consistency mechanism.
type Store struct {
	mu        sync.Mutex
	auth      Auth
	remote    Remote
	fallback  Fallback
	notify    Notifier
	resumes   []resume.Resume
	currentID string
	loaded    bool
}

// NewStore wires a store from its collaborators. A nil notifier drops
// notifications.
func NewStore(auth Auth, remote Remote, fallback Fallback, notify Notifier) *Store {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Store{
		auth:     auth,
		remote:   remote,
		fallback: fallback,
		notify:   notify,
	}
}

// Load populates the in-memory list. Authenticated sessions read from the
// remote collaborator; a remote failure falls back to the local copy with a
// non-fatal notification. Unauthenticated sessions read the fallback only.
// Call it again after every authentication transition.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.auth.IsLoading() {
		return nil
	}

	if s.auth.IsAuthenticated() {
		remote, err := s.remote.List(ctx)
		if err != nil {
			s.notify.Error("Failed to load your resumes. Please try again.")
			s.resumes = s.loadFallback()
			s.loaded = true
			return nil
		}
		s.resumes = normalizeAll(remote)
		s.loaded = true
		return nil
	}

	s.resumes = s.loadFallback()
	s.loaded = true
	return nil
}

func (s *Store) loadFallback() []resume.Resume {
	saved, err := s.fallback.Load()
	if err != nil {
		return []resume.Resume{}
	}
	return normalizeAll(saved)
}

func normalizeAll(in []resume.Resume) []resume.Resume {
	out := make([]resume.Resume, 0, len(in))
	for _, r := range in {
		out = append(out, resume.Normalize(r))
	}
	return out
}

// List returns a snapshot of the in-memory resumes.
func (s *Store) List() []resume.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]resume.Resume, 0, len(s.resumes))
	for _, r := range s.resumes {
		out = append(out, r.Clone())
	}
	return out
}

// GetByID returns the resume with the given client id. Absence is reported
// through the second return value, never an error.
func (s *Store) GetByID(id string) (resume.Resume, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.resumes {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return resume.Resume{}, false
}

// CurrentID returns the id of the currently open resume, if any.
func (s *Store) CurrentID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentID
}

// SetCurrentID records which resume is open in the editor.
func (s *Store) SetCurrentID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentID = id
}

// Create builds a resume with defaults and persists it. When authenticated
// the remote create must succeed before the resume joins the list: aborting
// on failure avoids client-only resumes the backend never heard of.
func (s *Store) Create(ctx context.Context) (resume.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := resume.New()

	if s.auth.IsAuthenticated() {
		persisted, err := s.remote.Create(ctx, created)
		if err != nil {
			s.notify.Error("Failed to create a new resume. Please try again.")
			return resume.Resume{}, fmt.Errorf("create resume: %w", err)
		}
		created = resume.Normalize(persisted)
	}

	s.resumes = append(s.resumes, created)
	s.saveFallbackLocked()
	s.currentID = created.ID
	return created.Clone(), nil
}

// Update stamps lastUpdated and persists the full document. A resume that
// has no remote id yet is created remotely instead (first remote write).
// On failure the prior in-memory state is left intact.
func (s *Store) Update(ctx context.Context, r resume.Resume) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(r.ID)
	if i == -1 {
		return ErrNotFound
	}

	updated := r.Clone()
	updated.LastUpdated = nextTimestamp(s.resumes[i].LastUpdated)

	if s.auth.IsAuthenticated() {
		var persisted resume.Resume
		var err error
		if updated.RemoteID == 0 {
			persisted, err = s.remote.Create(ctx, updated)
		} else {
			persisted, err = s.remote.Update(ctx, updated)
		}
		if err != nil {
			s.notify.Error("Failed to save changes. Please try again.")
			return fmt.Errorf("save resume %s: %w", r.ID, err)
		}
		updated = resume.Normalize(persisted)
	}

	s.resumes[i] = updated
	s.saveFallbackLocked()
	s.notify.Success("Resume saved successfully")
	return nil
}

// Delete removes the resume. The remote delete is best-effort: a failure is
// notified but local removal proceeds, so the user can always forget a
// resume. A current selection pointing at it is cleared.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i == -1 {
		return ErrNotFound
	}

	if s.auth.IsAuthenticated() && s.resumes[i].RemoteID != 0 {
		if err := s.remote.Delete(ctx, s.resumes[i].RemoteID); err != nil {
			s.notify.Error("Failed to delete resume. Please try again.")
		}
	}

	s.resumes = append(s.resumes[:i], s.resumes[i+1:]...)
	s.saveFallbackLocked()
	if s.currentID == id {
		s.currentID = ""
	}
	return nil
}

// Duplicate clones a resume and selects the clone as current. Remote
// documents are cloned by the collaborator; local-only resumes are copied
// in place under a fresh id.
func (s *Store) Duplicate(ctx context.Context, id string) (resume.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i == -1 {
		return resume.Resume{}, ErrNotFound
	}

	var clone resume.Resume
	if s.auth.IsAuthenticated() && s.resumes[i].RemoteID != 0 {
		persisted, err := s.remote.Duplicate(ctx, s.resumes[i].RemoteID)
		if err != nil {
			s.notify.Error("Failed to duplicate resume. Please try again.")
			return resume.Resume{}, fmt.Errorf("duplicate resume %s: %w", id, err)
		}
		clone = resume.Normalize(persisted)
	} else {
		clone = s.resumes[i].Clone()
		clone.ID = resume.NewID()
		clone.RemoteID = 0
		clone.Name = clone.Name + " (Copy)"
		clone.LastUpdated = time.Now().UTC()
	}

	s.resumes = append(s.resumes, clone)
	s.saveFallbackLocked()
	s.currentID = clone.ID
	return clone.Clone(), nil
}

func (s *Store) indexLocked(id string) int {
	for i, r := range s.resumes {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// saveFallbackLocked mirrors the list into the local slot for
// unauthenticated sessions. Authenticated state lives remotely.
func (s *Store) saveFallbackLocked() {
	if s.auth.IsAuthenticated() {
		return
	}
	if err := s.fallback.Save(s.resumes); err != nil {
		s.notify.Error("Failed to save resumes locally.")
	}
}

// nextTimestamp keeps lastUpdated monotonically non-decreasing even on
// clocks that step backwards.
func nextTimestamp(prev time.Time) time.Time {
	now := time.Now().UTC()
	if !now.After(prev) {
		return prev.Add(time.Millisecond)
	}
	return now
}
