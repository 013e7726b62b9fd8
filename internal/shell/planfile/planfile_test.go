package planfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planforge/planlint/internal/core/plan"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const yamlPlan = `
seasons:
  - seasonId: season-2026
    name: 2026 Road Season
    startDate: "2026-01-01"
    endDate: "2026-06-30"
    status: draft
    blockIds: [block-base-1]
blocks:
  - blockId: block-base-1
    seasonId: season-2026
    name: Base 1
    phase: base
    startDate: "2026-01-05"
    endDate: "2026-02-01"
    weekIds: [week-1]
weeks:
  - weekId: week-1
    blockId: block-base-1
    name: Week 1
    startDate: "2026-01-05"
    workoutIds:
      mon: workout-tempo
      tue: null
      sat: workout-long@v2
workouts:
  - workoutId: workout-tempo
    version: 1
    name: Tempo Intervals
    tiers:
      - name: main
        description: 3x10min at threshold
`

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "plan.yaml", yamlPlan)

	doc, err := Load(path)
	require.NoError(t, err)

	require.Len(t, doc.Seasons, 1)
	season := doc.Seasons[0]
	assert.Equal(t, "season-2026", season.SeasonID)
	assert.Equal(t, plan.StatusDraft, season.Status)
	assert.Equal(t, []string{"block-base-1"}, season.BlockIDs)

	require.Len(t, doc.Weeks, 1)
	slots := doc.Weeks[0].WorkoutIDs
	require.NotNil(t, slots.Mon)
	assert.Equal(t, "workout-tempo", *slots.Mon)
	assert.Nil(t, slots.Tue) // explicit null is a rest day
	assert.Nil(t, slots.Wed) // omitted is a rest day too
	require.NotNil(t, slots.Sat)
	assert.Equal(t, "workout-long@v2", *slots.Sat)

	require.Len(t, doc.Workouts, 1)
	assert.Equal(t, 1, doc.Workouts[0].Version)
	require.Len(t, doc.Workouts[0].Tiers, 1)
	assert.Equal(t, "main", doc.Workouts[0].Tiers[0].Name)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "plan.json", `{
		"weeks": [{
			"weekId": "week-1",
			"blockId": "block-base-1",
			"name": "Week 1",
			"startDate": "2026-01-05",
			"workoutIds": {"mon": "workout-tempo", "sun": null}
		}]
	}`)

	doc, err := Load(path)
	require.NoError(t, err)

	require.Len(t, doc.Weeks, 1)
	require.NotNil(t, doc.Weeks[0].WorkoutIDs.Mon)
	assert.Nil(t, doc.Weeks[0].WorkoutIDs.Sun)
	assert.Empty(t, doc.Seasons)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	yamlPath := writeFile(t, "plan.yaml", "seasonz:\n  - seasonId: s1\n")
	_, err := Load(yamlPath)
	require.Error(t, err)

	jsonPath := writeFile(t, "plan.json", `{"seasonz": []}`)
	_, err = Load(jsonPath)
	require.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, jsonPath, parseErr.Path)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "plan.toml", "x = 1")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeFile(t, "plan.yaml", "seasons: [unclosed")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_EmptyYAMLIsEmptyPlan(t *testing.T) {
	path := writeFile(t, "plan.yaml", "")

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, doc.Seasons)
}

func TestLoadAll_MergesInArgumentOrder(t *testing.T) {
	first := writeFile(t, "a.yaml", "blocks:\n  - blockId: block-a\n    seasonId: s1\n    name: A\n    phase: base\n    startDate: \"2026-01-05\"\n    endDate: \"2026-01-31\"\n")
	second := writeFile(t, "b.yaml", "blocks:\n  - blockId: block-b\n    seasonId: s1\n    name: B\n    phase: build\n    startDate: \"2026-02-01\"\n    endDate: \"2026-02-28\"\n")

	doc, err := LoadAll([]string{first, second})
	require.NoError(t, err)

	require.Len(t, doc.Blocks, 2)
	assert.Equal(t, "block-a", doc.Blocks[0].BlockID)
	assert.Equal(t, "block-b", doc.Blocks[1].BlockID)
}

func TestLoadAll_StopsOnFirstError(t *testing.T) {
	good := writeFile(t, "a.yaml", "")
	_, err := LoadAll([]string{good, filepath.Join(t.TempDir(), "absent.yaml")})
	assert.Error(t, err)
}
