package content

import "slices"

// Collection editors. Every operation returns a new slice and leaves
// its input untouched, so a caller can hand the result straight to the
// session setters. sort_order is not renumbered here; positions become
// dense again when the write-side mappers run at save time.

// AddEducation appends an entry with sort_order set to the current length.
func AddEducation(entries []Education, entry Education) []Education {
	entry.SortOrder = len(entries)
	return append(slices.Clone(entries), entry)
}

// AddSkillCategory appends a category unless one with the same name
// already exists, in which case the input is returned unchanged.
func AddSkillCategory(categories []SkillCategory, category SkillCategory) []SkillCategory {
	for _, existing := range categories {
		if existing.Name == category.Name {
			return categories
		}
	}
	if category.Icon == "" {
		category.Icon = DefaultIcon
	}
	category.SortOrder = len(categories)
	return append(slices.Clone(categories), category)
}

// AddProject appends a project with sort_order set to the current length.
func AddProject(projects []Project, project Project) []Project {
	project.SortOrder = len(projects)
	return append(slices.Clone(projects), project)
}

// UpdateAt replaces the item at index with fn(item). An out-of-range
// index is a no-op returning the input unchanged.
func UpdateAt[T any](items []T, index int, fn func(T) T) []T {
	if index < 0 || index >= len(items) {
		return items
	}
	out := slices.Clone(items)
	out[index] = fn(out[index])
	return out
}

// RemoveAt drops the item at index. An out-of-range index is a no-op.
func RemoveAt[T any](items []T, index int) []T {
	if index < 0 || index >= len(items) {
		return items
	}
	return slices.Delete(slices.Clone(items), index, index+1)
}

// MoveTo moves the item at from to position to, shifting the items in
// between. Out-of-range indices are a no-op.
func MoveTo[T any](items []T, from, to int) []T {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) || from == to {
		return items
	}
	out := slices.Clone(items)
	item := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, item)
}

// AddTag appends value to a tag set. Adding a value already present is
// a no-op.
func AddTag(tags []string, value string) []string {
	if slices.Contains(tags, value) {
		return tags
	}
	return append(slices.Clone(tags), value)
}

// RemoveTagAt drops the tag at index. Removal is positional rather
// than by value so exactly one occurrence goes away even if the
// no-duplicates invariant is ever relaxed.
func RemoveTagAt(tags []string, index int) []string {
	return RemoveAt(tags, index)
}
