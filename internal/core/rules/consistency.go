package rules

import (
	"fmt"

	"github.com/planforge/planlint/internal/core/plan"
	"github.com/planforge/planlint/internal/core/validation"
)

// =============================================================================
// V14: Block Week Count Consistency
// =============================================================================

// BlockWeekCountConsistent is V14: the number of ids a block lists in
// weekIds should match the number of weeks whose blockId back-reference
// points at it. A mismatch is advisory: it is reported at load time but
// never blocks a save or publish on its own severity tier.
func BlockWeekCountConsistent() validation.Rule[plan.Block] {
	return validation.Rule[plan.Block]{
		ID:         "V14",
		Name:       "Block week count consistency",
		Severity:   validation.SeverityInfo,
		EntityType: plan.EntityBlock,
		Modes:      infoModes(),
		Check: func(b plan.Block, ctx *validation.Context) *validation.Issue {
			declared := len(b.WeekIDs)
			actual := ctx.CountWeeksInBlock(b.BlockID)
			if declared == actual {
				return nil
			}
			return &validation.Issue{
				Severity:     validation.SeverityInfo,
				RuleID:       "V14",
				EntityType:   plan.EntityBlock,
				EntityID:     b.BlockID,
				FieldPath:    "block.weekIds",
				Message:      fmt.Sprintf("Block lists %d weeks but %d weeks reference it via blockId", declared, actual),
				SuggestedFix: "Reconcile weekIds with the weeks' blockId back-references",
				DocReference: docRef("V14"),
			}
		},
	}
}
