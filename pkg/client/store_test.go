package client

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/junaifcp/swift-resume/pkg/resume"
)

type fakeAuth struct {
	authenticated bool
	loading       bool
}

func (a *fakeAuth) IsAuthenticated() bool                 { return a.authenticated }
func (a *fakeAuth) IsLoading() bool                       { return a.loading }
func (a *fakeAuth) Token(context.Context) (string, error) { return "test-token", nil }
func (a *fakeAuth) SignOut(context.Context) error         { a.authenticated = false; return nil }

type fakeRemote struct {
	nextID  uint
	docs    map[uint]resume.Resume
	fail    map[string]error
	calls   []string
	listing []resume.Resume
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{docs: map[uint]resume.Resume{}, fail: map[string]error{}}
}

func (r *fakeRemote) List(context.Context) ([]resume.Resume, error) {
	r.calls = append(r.calls, "list")
	if err := r.fail["list"]; err != nil {
		return nil, err
	}
	return r.listing, nil
}

func (r *fakeRemote) Get(_ context.Context, id uint) (resume.Resume, error) {
	r.calls = append(r.calls, "get")
	doc, ok := r.docs[id]
	if !ok {
		return resume.Resume{}, errors.New("not found")
	}
	return doc, nil
}

func (r *fakeRemote) Create(_ context.Context, doc resume.Resume) (resume.Resume, error) {
	r.calls = append(r.calls, "create")
	if err := r.fail["create"]; err != nil {
		return resume.Resume{}, err
	}
	r.nextID++
	doc.RemoteID = r.nextID
	r.docs[doc.RemoteID] = doc
	return doc, nil
}

func (r *fakeRemote) Update(_ context.Context, doc resume.Resume) (resume.Resume, error) {
	r.calls = append(r.calls, "update")
	if err := r.fail["update"]; err != nil {
		return resume.Resume{}, err
	}
	r.docs[doc.RemoteID] = doc
	return doc, nil
}

func (r *fakeRemote) Delete(_ context.Context, id uint) error {
	r.calls = append(r.calls, "delete")
	if err := r.fail["delete"]; err != nil {
		return err
	}
	delete(r.docs, id)
	return nil
}

func (r *fakeRemote) Duplicate(_ context.Context, id uint) (resume.Resume, error) {
	r.calls = append(r.calls, "duplicate")
	if err := r.fail["duplicate"]; err != nil {
		return resume.Resume{}, err
	}
	doc, ok := r.docs[id]
	if !ok {
		return resume.Resume{}, errors.New("not found")
	}
	doc.ID = resume.NewID()
	r.nextID++
	doc.RemoteID = r.nextID
	r.docs[doc.RemoteID] = doc
	return doc, nil
}

type memFallback struct {
	saved []resume.Resume
	loads int
}

func (m *memFallback) Load() ([]resume.Resume, error) {
	m.loads++
	return m.saved, nil
}

func (m *memFallback) Save(resumes []resume.Resume) error {
	m.saved = append([]resume.Resume(nil), resumes...)
	return nil
}

type recordingNotifier struct {
	successes []string
	errs      []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Info(string)        {}
func (n *recordingNotifier) Error(msg string)   { n.errs = append(n.errs, msg) }

func newTestStore(authenticated bool) (*Store, *fakeRemote, *memFallback, *recordingNotifier) {
	remote := newFakeRemote()
	fallback := &memFallback{}
	notify := &recordingNotifier{}
	store := NewStore(&fakeAuth{authenticated: authenticated}, remote, fallback, notify)
	return store, remote, fallback, notify
}

func TestCreateAbortsOnRemoteFailure(t *testing.T) {
	store, remote, _, notify := newTestStore(true)
	remote.fail["create"] = errors.New("boom")

	if _, err := store.Create(context.Background()); err == nil {
		t.Fatal("expected create to fail")
	}
	if len(store.List()) != 0 {
		t.Fatal("failed create must not add a client-only resume")
	}
	if len(notify.errs) != 1 {
		t.Fatalf("expected one error notification, got %v", notify.errs)
	}
}

func TestCreateUnauthenticatedPersistsLocally(t *testing.T) {
	store, remote, fallback, _ := newTestStore(false)

	created, err := store.Create(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if created.RemoteID != 0 {
		t.Fatal("local resume must not carry a remote id")
	}
	if len(remote.calls) != 0 {
		t.Fatalf("unexpected remote calls: %v", remote.calls)
	}
	if len(fallback.saved) != 1 {
		t.Fatalf("fallback not written: %+v", fallback.saved)
	}
	if store.CurrentID() != created.ID {
		t.Fatal("created resume must become current")
	}
}

func TestUpdateWithoutRemoteIDCreatesRemotely(t *testing.T) {
	store, remote, _, _ := newTestStore(false)
	created, _ := store.Create(context.Background())

	// user signs in; the next save is the first remote write
	store.auth.(*fakeAuth).authenticated = true

	created.Summary = "Built things."
	if err := store.Update(context.Background(), created); err != nil {
		t.Fatal(err)
	}
	if got := remote.calls; !reflect.DeepEqual(got, []string{"create"}) {
		t.Fatalf("expected a remote create, got %v", got)
	}
	saved, ok := store.GetByID(created.ID)
	if !ok || saved.RemoteID == 0 {
		t.Fatalf("remote id not recorded: %+v", saved)
	}
}

func TestUpdateFailureLeavesPriorState(t *testing.T) {
	store, remote, _, notify := newTestStore(true)
	created, _ := store.Create(context.Background())
	remote.fail["update"] = errors.New("boom")

	edited := created.Clone()
	edited.Summary = "changed"
	if err := store.Update(context.Background(), edited); err == nil {
		t.Fatal("expected update to fail")
	}

	current, _ := store.GetByID(created.ID)
	if current.Summary != "" {
		t.Fatalf("failed update leaked into the store: %q", current.Summary)
	}
	if len(notify.errs) != 1 {
		t.Fatalf("expected one error notification, got %v", notify.errs)
	}
}

func TestUpdateStampsMonotonicLastUpdated(t *testing.T) {
	store, _, _, _ := newTestStore(true)
	created, _ := store.Create(context.Background())

	before := created.LastUpdated
	created.Summary = "v2"
	if err := store.Update(context.Background(), created); err != nil {
		t.Fatal(err)
	}
	after, _ := store.GetByID(created.ID)
	if after.LastUpdated.Before(before) {
		t.Fatalf("lastUpdated went backwards: %v -> %v", before, after.LastUpdated)
	}
}

func TestDeleteIsOptimistic(t *testing.T) {
	store, remote, _, notify := newTestStore(true)
	created, _ := store.Create(context.Background())
	remote.fail["delete"] = errors.New("boom")

	if err := store.Delete(context.Background(), created.ID); err != nil {
		t.Fatal(err)
	}
	if len(store.List()) != 0 {
		t.Fatal("delete must remove locally even when the remote call fails")
	}
	if len(notify.errs) != 1 {
		t.Fatalf("remote delete failure must be notified, got %v", notify.errs)
	}
	if store.CurrentID() != "" {
		t.Fatal("deleting the current resume must clear the selection")
	}
}

func TestDuplicateSelectsClone(t *testing.T) {
	store, _, _, _ := newTestStore(true)
	created, _ := store.Create(context.Background())

	clone, err := store.Duplicate(context.Background(), created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if clone.ID == created.ID {
		t.Fatal("clone must get its own id")
	}
	if len(store.List()) != 2 {
		t.Fatalf("expected 2 resumes, got %d", len(store.List()))
	}
	if store.CurrentID() != clone.ID {
		t.Fatal("clone must become current")
	}
}

func TestLoadFallsBackOnRemoteFailure(t *testing.T) {
	store, remote, fallback, notify := newTestStore(true)
	fallback.saved = []resume.Resume{{ID: "resume-local", Name: "Saved offline"}}
	remote.fail["list"] = errors.New("boom")

	if err := store.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(notify.errs) != 1 {
		t.Fatalf("remote failure must be notified, got %v", notify.errs)
	}
	got := store.List()
	if len(got) != 1 || got[0].ID != "resume-local" {
		t.Fatalf("expected local fallback copy, got %+v", got)
	}
	// migration-on-read ran at the boundary
	if got[0].TemplateID != resume.DefaultTemplate {
		t.Fatalf("fallback record not normalized: %+v", got[0])
	}
}

func TestRoundTripCreatePatchSaveRead(t *testing.T) {
	store, _, _, _ := newTestStore(true)
	created, _ := store.Create(context.Background())

	patched := created.Apply(resume.Patch{
		Skills: []resume.SkillItem{{ID: "s1", Name: "Go", Proficiency: 80}},
	})
	if err := store.Update(context.Background(), patched); err != nil {
		t.Fatal(err)
	}

	got, ok := store.GetByID(created.ID)
	if !ok {
		t.Fatal("resume vanished")
	}
	want := []resume.SkillItem{{ID: "s1", Name: "Go", Proficiency: 80}}
	if !reflect.DeepEqual(got.Skills, want) {
		t.Fatalf("skills = %+v, want %+v", got.Skills, want)
	}
}
