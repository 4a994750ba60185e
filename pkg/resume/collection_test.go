package resume

import (
	"reflect"
	"testing"
)

func experienceList(ids ...string) []ExperienceItem {
	items := make([]ExperienceItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, ExperienceItem{ID: id, BulletPoints: []string{}})
	}
	return items
}

func idsOf(items []ExperienceItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestMoveBoundariesAreNoOps(t *testing.T) {
	items := experienceList("a", "b", "c")

	if got := idsOf(MoveUp(items, "a")); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("move up on first element changed order: %v", got)
	}
	if got := idsOf(MoveDown(items, "c")); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("move down on last element changed order: %v", got)
	}
	if got := idsOf(MoveUp(items, "missing")); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("move of unknown id changed order: %v", got)
	}
}

func TestMoveSwapsAdjacent(t *testing.T) {
	items := experienceList("a", "b", "c")

	down := MoveDown(items, "a")
	if got := idsOf(down); !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Fatalf("move down: got %v", got)
	}

	up := MoveUp(down, "c")
	if got := idsOf(up); !reflect.DeepEqual(got, []string{"b", "c", "a"}) {
		t.Fatalf("move up: got %v", got)
	}

	// original slice untouched
	if got := idsOf(items); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("input mutated: %v", got)
	}
}

func TestMoveUpThenDownRestoresOrder(t *testing.T) {
	items := experienceList("a", "b", "c", "d")

	moved := MoveUp(items, "c")
	restored := MoveDown(moved, "c")
	if got := idsOf(restored); !reflect.DeepEqual(got, []string{"a", "b", "c", "d"}) {
		t.Fatalf("up then down did not restore order: %v", got)
	}
}

func TestUpsertReplacesOrAppends(t *testing.T) {
	skills := []SkillItem{{ID: "s1", Name: "Go", Proficiency: 60}}

	skills = Upsert(skills, SkillItem{ID: "s1", Name: "Go", Proficiency: 80})
	if len(skills) != 1 || skills[0].Proficiency != 80 {
		t.Fatalf("upsert did not replace in place: %+v", skills)
	}

	skills = Upsert(skills, SkillItem{ID: "s2", Name: "SQL", Proficiency: 50})
	if len(skills) != 2 || skills[1].ID != "s2" {
		t.Fatalf("upsert did not append: %+v", skills)
	}
}

func TestRemovePreservesOrder(t *testing.T) {
	items := experienceList("a", "b", "c")

	got := idsOf(Remove(items, "b"))
	if !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("remove: got %v", got)
	}
	if got := idsOf(Remove(items, "zz")); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("remove of unknown id changed list: %v", got)
	}
}
