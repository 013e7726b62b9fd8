package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planforge/planlint/internal/core/plan"
)

func TestSeasonStatusValid(t *testing.T) {
	season := validSeason()
	season.Status = "published"

	issue := SeasonStatusValid().Check(season, newCtx(plan.Document{}))

	require.NotNil(t, issue)
	assert.Equal(t, "V04.1", issue.RuleID)
	assert.Equal(t, "season.status", issue.FieldPath)
	assert.Contains(t, issue.Message, `"published"`)
	assert.Contains(t, issue.Message, "draft, active, archived")
}

func TestSeasonStatusValid_AllDeclaredValuesPass(t *testing.T) {
	for _, status := range plan.SeasonStatuses() {
		season := validSeason()
		season.Status = status
		assert.Nil(t, SeasonStatusValid().Check(season, newCtx(plan.Document{})), "status %q", status)
	}
}

func TestSeasonStatusValid_SkipsAbsentField(t *testing.T) {
	season := validSeason()
	season.Status = ""

	// V01 owns absence; V04 stays silent.
	assert.Nil(t, SeasonStatusValid().Check(season, newCtx(plan.Document{})))
}

func TestBlockPhaseValid(t *testing.T) {
	block := validBlock()
	block.Phase = "race"

	issue := BlockPhaseValid().Check(block, newCtx(plan.Document{}))

	require.NotNil(t, issue)
	assert.Equal(t, "V04.2", issue.RuleID)
	assert.Equal(t, "block.phase", issue.FieldPath)
	assert.Contains(t, issue.Message, "base, build, peak, taper, recovery")

	block.Phase = ""
	assert.Nil(t, BlockPhaseValid().Check(block, newCtx(plan.Document{})))

	for _, phase := range plan.BlockPhases() {
		block.Phase = phase
		assert.Nil(t, BlockPhaseValid().Check(block, newCtx(plan.Document{})), "phase %q", phase)
	}
}
