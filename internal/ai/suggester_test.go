package ai

import (
	"strings"
	"testing"
)

func TestSuggestSummaryMentionsRole(t *testing.T) {
	s := NewSuggester()

	got, err := s.Suggest(KindSummary, "Backend Engineer", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) < 3 {
		t.Fatalf("expected at least 3 suggestions, got %d", len(got))
	}
	for _, suggestion := range got {
		if !strings.Contains(suggestion, "Backend Engineer") {
			t.Fatalf("suggestion does not mention the role: %q", suggestion)
		}
	}
}

func TestSuggestBulletPointsIncludeCompany(t *testing.T) {
	s := NewSuggester()

	got, err := s.Suggest(KindBulletPoints, "platform migration", "Initech")
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, suggestion := range got {
		if strings.Contains(suggestion, "Initech") {
			found = true
		}
	}
	if !found {
		t.Fatalf("no suggestion mentions the company: %v", got)
	}
}

func TestSuggestUnknownKind(t *testing.T) {
	s := NewSuggester()

	if _, err := s.Suggest("cover_letter", "", ""); err == nil {
		t.Fatal("expected an error for an unknown kind")
	}
}
