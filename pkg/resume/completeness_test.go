package resume

import "testing"

func TestCompletenessAllRequiredFail(t *testing.T) {
	r := Resume{}

	checks := Completeness(r)
	if len(checks) != 6 {
		t.Fatalf("expected 6 checks, got %d", len(checks))
	}
	for _, c := range checks[:3] {
		if !c.Required || c.Passed {
			t.Fatalf("check %q: required=%v passed=%v", c.Name, c.Required, c.Passed)
		}
	}
	if ExportReady(r) {
		t.Fatal("export must be gated while required checks fail")
	}
	if got := FailedRequired(r); len(got) != 3 {
		t.Fatalf("failed required = %v", got)
	}
}

func TestCompletenessRequiredPassWithoutCollections(t *testing.T) {
	r := Resume{
		Name:    "Ada",
		Title:   "Engineer",
		Email:   "a@x.com",
		Summary: "Built things.",
	}

	if !ExportReady(r) {
		t.Fatal("export must be allowed when all required checks pass")
	}

	// recommended checks still report as unmet but never block
	for _, c := range Completeness(r)[3:] {
		if c.Required {
			t.Fatalf("check %q must be recommended", c.Name)
		}
		if c.Passed {
			t.Fatalf("check %q should fail on empty collection", c.Name)
		}
	}
}

func TestCompletenessContactAcceptsPhoneOnly(t *testing.T) {
	r := Resume{Name: "Ada", Title: "Engineer", Phone: "123", Summary: "s"}
	if !ExportReady(r) {
		t.Fatal("phone alone must satisfy the contact check")
	}
}
