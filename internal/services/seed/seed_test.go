package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryFixtures(t *testing.T) {
	require.Len(t, Categories, 4)

	colors := map[string]string{}
	for _, c := range Categories {
		colors[c.Name] = c.Color
	}

	assert.Equal(t, "#ef4444", colors["Bug"])
	assert.Equal(t, "#22c55e", colors["Feature"])
	assert.Equal(t, "#3b82f6", colors["Documentation"])
	assert.Equal(t, "#f59e0b", colors["Improvement"])
}

func TestTaskFixtures(t *testing.T) {
	require.Len(t, Tasks, 5)

	byStatus := map[string]int{}
	welcomeSeen := false
	for _, task := range Tasks {
		byStatus[task.Status]++

		assert.NotEmpty(t, task.Title)
		assert.NotEmpty(t, task.Description)
		assert.Contains(t, []string{"LOW", "MEDIUM", "HIGH"}, task.Priority)
		assert.GreaterOrEqual(t, task.Category, 0)
		assert.Less(t, task.Category, len(Categories))

		if task.Title == WelcomeTaskTitle {
			welcomeSeen = true
		}
	}

	assert.True(t, welcomeSeen, "welcome task must be seeded so the welcome comment has a parent")
	assert.Equal(t, 3, byStatus["TODO"])
	assert.Equal(t, 1, byStatus["IN_PROGRESS"])
	assert.Equal(t, 1, byStatus["DONE"])
}

func TestProjectFixture(t *testing.T) {
	assert.Equal(t, "Demo Project", ProjectName)
	assert.NotEmpty(t, ProjectDescription)
	assert.NotEmpty(t, WelcomeComment)
}
