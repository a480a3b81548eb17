package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddEducation(t *testing.T) {
	entries := []Education{}

	entries = AddEducation(entries, Education{Institution: "State University"})
	entries = AddEducation(entries, Education{Institution: "Tech Institute"})

	assert.Len(t, entries, 2)
	assert.Equal(t, 0, entries[0].SortOrder)
	assert.Equal(t, 1, entries[1].SortOrder)
}

func TestAddSkillCategory_DuplicateName(t *testing.T) {
	categories := AddSkillCategory(nil, SkillCategory{Name: "Languages"})
	assert.Len(t, categories, 1)

	again := AddSkillCategory(categories, SkillCategory{Name: "Languages", Icon: "Brain"})
	assert.Equal(t, categories, again)
	assert.Len(t, again, 1)
}

func TestAddSkillCategory_DefaultIcon(t *testing.T) {
	categories := AddSkillCategory(nil, SkillCategory{Name: "Infrastructure"})
	assert.Equal(t, DefaultIcon, categories[0].Icon)

	categories = AddSkillCategory(categories, SkillCategory{Name: "Visualization", Icon: "BarChart3"})
	assert.Equal(t, "BarChart3", categories[1].Icon)
}

func TestUpdateAt(t *testing.T) {
	projects := []Project{{Title: "one"}, {Title: "two"}}

	updated := UpdateAt(projects, 1, func(p Project) Project {
		p.Featured = true
		return p
	})
	assert.True(t, updated[1].Featured)
	assert.False(t, projects[1].Featured, "input must stay untouched")

	outOfRange := UpdateAt(projects, 5, func(p Project) Project { return p })
	assert.Equal(t, projects, outOfRange)
	outOfRange = UpdateAt(projects, -1, func(p Project) Project { return p })
	assert.Equal(t, projects, outOfRange)
}

func TestRemoveAt(t *testing.T) {
	entries := []Education{
		{Institution: "a", SortOrder: 0},
		{Institution: "b", SortOrder: 1},
		{Institution: "c", SortOrder: 2},
	}

	removed := RemoveAt(entries, 0)
	assert.Len(t, removed, 2)
	assert.Equal(t, "b", removed[0].Institution)
	// sort_order keeps its edit-time gap, renumbering happens at write time
	assert.Equal(t, 1, removed[0].SortOrder)

	assert.Equal(t, entries, RemoveAt(entries, 3))
	assert.Equal(t, entries, RemoveAt(entries, -1))
}

func TestMoveTo(t *testing.T) {
	projects := []Project{{Title: "a"}, {Title: "b"}, {Title: "c"}}

	moved := MoveTo(projects, 2, 0)
	assert.Equal(t, "c", moved[0].Title)
	assert.Equal(t, "a", moved[1].Title)
	assert.Equal(t, "b", moved[2].Title)

	assert.Equal(t, projects, MoveTo(projects, 0, 5))
	assert.Equal(t, projects, MoveTo(projects, 1, 1))
}

func TestAddTag(t *testing.T) {
	tags := AddTag(nil, "Go")
	tags = AddTag(tags, "SQL")

	same := AddTag(tags, "Go")
	assert.Equal(t, tags, same)
	assert.Len(t, same, 2)
}

func TestRemoveTagAt(t *testing.T) {
	tags := []string{"Go", "SQL", "Redis"}

	removed := RemoveTagAt(tags, 1)
	assert.Equal(t, []string{"Go", "Redis"}, removed)
	assert.Equal(t, []string{"Go", "SQL", "Redis"}, tags)

	assert.Equal(t, tags, RemoveTagAt(tags, 10))
}
