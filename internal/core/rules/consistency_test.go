package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planforge/planlint/internal/core/plan"
	"github.com/planforge/planlint/internal/core/validation"
)

func TestBlockWeekCountConsistent_Mismatch(t *testing.T) {
	block := validBlock()
	block.WeekIDs = []string{"week-1", "week-2"}
	doc := plan.Document{
		Blocks: []plan.Block{block},
		Weeks:  []plan.Week{validWeek()}, // only week-1 points back
	}

	issue := BlockWeekCountConsistent().Check(block, validation.NewContext(doc, validation.ModeLoad))

	require.NotNil(t, issue)
	assert.Equal(t, "V14", issue.RuleID)
	assert.Equal(t, validation.SeverityInfo, issue.Severity)
	assert.Equal(t, "block.weekIds", issue.FieldPath)
	assert.Contains(t, issue.Message, "lists 2 weeks")
	assert.Contains(t, issue.Message, "1 weeks reference it")
}

func TestBlockWeekCountConsistent_Match(t *testing.T) {
	block := validBlock()
	block.WeekIDs = []string{"week-1"}
	doc := plan.Document{
		Blocks: []plan.Block{block},
		Weeks:  []plan.Week{validWeek()},
	}

	assert.Nil(t, BlockWeekCountConsistent().Check(block, validation.NewContext(doc, validation.ModeLoad)))
}

func TestBlockWeekCountConsistent_LoadModeOnly(t *testing.T) {
	rule := BlockWeekCountConsistent()

	assert.True(t, rule.AppliesTo(validation.ModeLoad))
	assert.False(t, rule.AppliesTo(validation.ModeEdit))
	assert.False(t, rule.AppliesTo(validation.ModeSave))
	assert.False(t, rule.AppliesTo(validation.ModePublish))
}

// An info-only finding blocks publish but never save.
func TestBlockWeekCountConsistent_GatesThroughEngine(t *testing.T) {
	block := validBlock()
	block.WeekIDs = []string{"week-1", "week-2"}
	season := validSeason()
	season.BlockIDs = []string{block.BlockID}
	week2 := validWeek()
	week2.WeekID = "week-2"
	week2.StartDate = "2026-01-19"
	doc := plan.Document{
		Seasons: []plan.Season{season},
		Blocks:  []plan.Block{block},
		Weeks:   []plan.Week{validWeek(), week2, {WeekID: "week-x", BlockID: block.BlockID, Name: "Extra", StartDate: "2026-01-26"}},
	}

	result := validation.Run(doc, Catalog(), validation.ModeLoad)

	require.Equal(t, 1, result.Summary.InfoCount)
	assert.True(t, result.HasInfo)
	assert.True(t, result.CanSave)
	assert.False(t, result.CanPublish)
}
