package resume

// Item constrains the collection helpers to the four child item types.
type Item interface {
	ExperienceItem | EducationItem | ProjectItem | SkillItem
}

func itemID[T Item](v T) string {
	switch it := any(v).(type) {
	case ExperienceItem:
		return it.ID
	case EducationItem:
		return it.ID
	case ProjectItem:
		return it.ID
	case SkillItem:
		return it.ID
	}
	return ""
}

func indexOf[T Item](items []T, id string) int {
	for i, it := range items {
		if itemID(it) == id {
			return i
		}
	}
	return -1
}

func swap[T Item](items []T, i, j int) []T {
	out := append([]T(nil), items...)
	out[i], out[j] = out[j], out[i]
	return out
}

// MoveUp swaps the item with its predecessor. Moving the first item, or an
// unknown id, returns the slice unchanged.
func MoveUp[T Item](items []T, id string) []T {
	i := indexOf(items, id)
	if i <= 0 {
		return items
	}
	return swap(items, i, i-1)
}

// MoveDown swaps the item with its successor. Moving the last item, or an
// unknown id, returns the slice unchanged.
func MoveDown[T Item](items []T, id string) []T {
	i := indexOf(items, id)
	if i == -1 || i == len(items)-1 {
		return items
	}
	return swap(items, i, i+1)
}

// Upsert replaces the item with the same id, or appends it when absent.
func Upsert[T Item](items []T, item T) []T {
	i := indexOf(items, itemID(item))
	if i == -1 {
		return append(append([]T(nil), items...), item)
	}
	out := append([]T(nil), items...)
	out[i] = item
	return out
}

// Remove drops the item with the given id, preserving order.
func Remove[T Item](items []T, id string) []T {
	i := indexOf(items, id)
	if i == -1 {
		return items
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}
