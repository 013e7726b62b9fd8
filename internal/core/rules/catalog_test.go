package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planforge/planlint/internal/core/plan"
	"github.com/planforge/planlint/internal/core/validation"
)

// newCtx builds a publish-mode context for direct rule checks.
func newCtx(doc plan.Document) *validation.Context {
	return validation.NewContext(doc, validation.ModePublish)
}

// ref returns a pointer to a workout reference for slot literals.
func ref(s string) *string {
	return &s
}

// validSeason returns a season that passes every structural rule.
func validSeason() plan.Season {
	return plan.Season{
		SeasonID:  "season-2026",
		Name:      "2026 Road Season",
		StartDate: "2026-01-01",
		EndDate:   "2026-06-30",
		Status:    plan.StatusDraft,
	}
}

// validBlock returns a block inside validSeason's span.
func validBlock() plan.Block {
	return plan.Block{
		BlockID:   "block-base-1",
		SeasonID:  "season-2026",
		Name:      "Base 1",
		Phase:     plan.PhaseBase,
		StartDate: "2026-01-05",
		EndDate:   "2026-02-01",
	}
}

// validWeek returns a Monday-aligned week inside validBlock's span.
func validWeek() plan.Week {
	return plan.Week{
		WeekID:    "week-1",
		BlockID:   "block-base-1",
		Name:      "Week 1",
		StartDate: "2026-01-12",
	}
}

func TestCatalog_RuleInventory(t *testing.T) {
	catalog := Catalog()

	assert.Len(t, catalog.Seasons, 7)
	assert.Len(t, catalog.Blocks, 9)
	assert.Len(t, catalog.Weeks, 6)
	assert.Equal(t, 22, catalog.Len())

	seen := map[string]bool{}
	for _, r := range catalog.Seasons {
		assert.Equal(t, plan.EntitySeason, r.EntityType, "rule %s", r.ID)
		assert.False(t, seen[r.ID], "duplicate rule id %s", r.ID)
		seen[r.ID] = true
	}
	for _, r := range catalog.Blocks {
		assert.Equal(t, plan.EntityBlock, r.EntityType, "rule %s", r.ID)
		assert.False(t, seen[r.ID], "duplicate rule id %s", r.ID)
		seen[r.ID] = true
	}
	for _, r := range catalog.Weeks {
		assert.Equal(t, plan.EntityWeek, r.EntityType, "rule %s", r.ID)
		assert.False(t, seen[r.ID], "duplicate rule id %s", r.ID)
		seen[r.ID] = true
	}
}

func TestForMode_SaveRunsOnlyCriticalRules(t *testing.T) {
	saveCatalog := ForMode(validation.ModeSave)

	check := func(severity validation.Severity, id string) {
		assert.Equal(t, validation.SeverityCritical, severity, "rule %s in save bundle", id)
	}
	for _, r := range saveCatalog.Seasons {
		check(r.Severity, r.ID)
	}
	for _, r := range saveCatalog.Blocks {
		check(r.Severity, r.ID)
	}
	for _, r := range saveCatalog.Weeks {
		check(r.Severity, r.ID)
	}
	assert.Equal(t, 13, saveCatalog.Len()) // V01.x, V02.x, V03.x, V04.x, V05.x
}

func TestForMode_LoadIncludesInfoRules(t *testing.T) {
	loadCatalog := ForMode(validation.ModeLoad)
	assert.Equal(t, 22, loadCatalog.Len())

	publishCatalog := ForMode(validation.ModePublish)
	assert.Equal(t, 21, publishCatalog.Len()) // everything but V14

	editCatalog := ForMode(validation.ModeEdit)
	assert.Equal(t, 21, editCatalog.Len())
}

func TestDocReferences_UseFamilyAnchors(t *testing.T) {
	assert.Equal(t, "/docs/validation-invariants.md#V01", docRef("V01.2"))
	assert.Equal(t, "/docs/validation-invariants.md#V13", docRef("V13"))
}

// The reference fixture: a block leaking past its season, a block whose
// weeks are out of order, and a week starting mid-week. Exactly three
// blocking issues; the plan stays saveable but not publishable.
func TestFixture_ThreeBlockingIssues(t *testing.T) {
	doc := plan.Document{
		Seasons: []plan.Season{{
			SeasonID:  "season-2026",
			Name:      "2026 Road Season",
			StartDate: "2026-01-01",
			EndDate:   "2026-01-31",
			Status:    plan.StatusDraft,
			BlockIDs:  []string{"block-base-1"},
		}},
		Blocks: []plan.Block{{
			BlockID:   "block-base-1",
			SeasonID:  "season-2026",
			Name:      "Base 1",
			Phase:     plan.PhaseBase,
			StartDate: "2026-01-05",
			EndDate:   "2026-02-05",
			WeekIDs:   []string{"week-1", "week-2"},
		}},
		Weeks: []plan.Week{
			{WeekID: "week-1", BlockID: "block-base-1", Name: "Week 1", StartDate: "2026-01-12"},
			{WeekID: "week-2", BlockID: "block-base-1", Name: "Week 2", StartDate: "2026-01-05"},
			{WeekID: "week-3", BlockID: "block-base-1", Name: "Week 3", StartDate: "2026-01-14"},
		},
	}

	catalog := validation.Catalog{
		Blocks: []validation.Rule[plan.Block]{BlockWithinSeason(), BlockWeeksChronological()},
		Weeks:  []validation.Rule[plan.Week]{WeekStartsOnMonday()},
	}

	result := validation.Run(doc, catalog, validation.ModePublish)

	require.Len(t, result.Issues, 3)
	assert.Equal(t, 3, result.Summary.BlockingCount)
	assert.Equal(t, 0, result.Summary.CriticalCount)
	assert.True(t, result.CanSave)
	assert.False(t, result.CanPublish)

	assert.Equal(t, "V06", result.Issues[0].RuleID)
	assert.Equal(t, "season.blockIds[0].endDate", result.Issues[0].FieldPath)
	assert.Equal(t, "V09", result.Issues[1].RuleID)
	assert.Equal(t, "block.weekIds[1].startDate", result.Issues[1].FieldPath)
	assert.Equal(t, "V10", result.Issues[2].RuleID)
	assert.Equal(t, "week-3", result.Issues[2].EntityID)
	assert.Contains(t, result.Issues[2].Message, "Wednesday")
}

// A fully consistent plan produces no issues in any mode.
func TestFixture_CleanPlan(t *testing.T) {
	tempo := "workout-tempo"
	doc := plan.Document{
		Seasons: []plan.Season{{
			SeasonID:  "season-2026",
			Name:      "2026 Road Season",
			StartDate: "2026-01-01",
			EndDate:   "2026-03-31",
			Status:    plan.StatusDraft,
			BlockIDs:  []string{"block-base-1", "block-build-1"},
		}},
		Blocks: []plan.Block{
			{
				BlockID: "block-base-1", SeasonID: "season-2026", Name: "Base 1",
				Phase: plan.PhaseBase, StartDate: "2026-01-05", EndDate: "2026-02-01",
				WeekIDs: []string{"week-1", "week-2"},
			},
			{
				BlockID: "block-build-1", SeasonID: "season-2026", Name: "Build 1",
				Phase: plan.PhaseBuild, StartDate: "2026-02-02", EndDate: "2026-03-01",
				WeekIDs: []string{"week-3"},
			},
		},
		Weeks: []plan.Week{
			{WeekID: "week-1", BlockID: "block-base-1", Name: "Week 1", StartDate: "2026-01-05"},
			{
				WeekID: "week-2", BlockID: "block-base-1", Name: "Week 2", StartDate: "2026-01-12",
				WorkoutIDs: plan.WorkoutSlots{Tue: &tempo, Sat: ref("workout-long@v2")},
			},
			{WeekID: "week-3", BlockID: "block-build-1", Name: "Week 3", StartDate: "2026-02-02"},
		},
		Workouts: []plan.Workout{
			{WorkoutID: "workout-tempo", Version: 1, Name: "Tempo Intervals"},
			{WorkoutID: "workout-long", Version: 1, Name: "Long Ride"},
			{WorkoutID: "workout-long", Version: 2, Name: "Long Ride"},
		},
	}

	for _, mode := range []validation.Mode{validation.ModeEdit, validation.ModeSave, validation.ModePublish, validation.ModeLoad} {
		result := validation.Run(doc, Catalog(), mode)
		assert.Empty(t, result.Issues, "mode %s", mode)
		assert.True(t, result.CanSave, "mode %s", mode)
		assert.True(t, result.CanPublish, "mode %s", mode)
	}

	// V14 only counts weeks that back-reference the block; block-base-1
	// declares two weeks and two weeks point at it.
	loadResult := validation.Run(doc, Catalog(), validation.ModeLoad)
	assert.Equal(t, 0, loadResult.Summary.InfoCount)
}
