package rules

import (
	"fmt"

	"github.com/planforge/planlint/internal/core/dateutil"
	"github.com/planforge/planlint/internal/core/plan"
	"github.com/planforge/planlint/internal/core/validation"
)

// =============================================================================
// V06: Block Within Season
// =============================================================================

// BlockWithinSeason is V06: a block's [start, end] span must lie inside
// its parent season's span. Skips silently when the parent is missing
// or any needed date fails to parse (V01/V03/V11 own those states).
// The field path uses the block's position within season.blockIds when
// resolvable.
func BlockWithinSeason() validation.Rule[plan.Block] {
	return validation.Rule[plan.Block]{
		ID:         "V06",
		Name:       "Block within season",
		Severity:   validation.SeverityBlocking,
		EntityType: plan.EntityBlock,
		Modes:      blockingModes(),
		Check: func(b plan.Block, ctx *validation.Context) *validation.Issue {
			season, ok := ctx.SeasonByID(b.SeasonID)
			if !ok {
				return nil
			}

			blockStart, ok1 := parseDate(b.StartDate)
			blockEnd, ok2 := parseDate(b.EndDate)
			seasonStart, ok3 := parseDate(season.StartDate)
			seasonEnd, ok4 := parseDate(season.EndDate)
			if !ok1 || !ok2 || !ok3 || !ok4 {
				return nil
			}

			idx := indexOf(season.BlockIDs, b.BlockID)

			if blockStart.Before(seasonStart) {
				return &validation.Issue{
					Severity:   validation.SeverityBlocking,
					RuleID:     "V06",
					EntityType: plan.EntityBlock,
					EntityID:   b.BlockID,
					FieldPath:  listPath("season.blockIds", idx, "startDate", "block.startDate"),
					Message: fmt.Sprintf("Block starts %s, before its season %q starts (%s)",
						dateutil.FormatDate(blockStart), season.SeasonID, dateutil.FormatDate(seasonStart)),
					SuggestedFix: "Move the block's dates inside the season's date range",
					DocReference: docRef("V06"),
				}
			}

			if blockEnd.After(seasonEnd) {
				return &validation.Issue{
					Severity:   validation.SeverityBlocking,
					RuleID:     "V06",
					EntityType: plan.EntityBlock,
					EntityID:   b.BlockID,
					FieldPath:  listPath("season.blockIds", idx, "endDate", "block.endDate"),
					Message: fmt.Sprintf("Block ends %s, after its season %q ends (%s)",
						dateutil.FormatDate(blockEnd), season.SeasonID, dateutil.FormatDate(seasonEnd)),
					SuggestedFix: "Move the block's dates inside the season's date range",
					DocReference: docRef("V06"),
				}
			}

			return nil
		},
	}
}

// =============================================================================
// V07: Week Within Block
// =============================================================================

// WeekWithinBlock is V07: a week's seven-day span (startDate through
// startDate+6) must lie inside its parent block's span. Both outcomes
// report the startDate path: the week's start is the only adjustable
// anchor of a fixed seven-day unit.
func WeekWithinBlock() validation.Rule[plan.Week] {
	return validation.Rule[plan.Week]{
		ID:         "V07",
		Name:       "Week within block",
		Severity:   validation.SeverityBlocking,
		EntityType: plan.EntityWeek,
		Modes:      blockingModes(),
		Check: func(w plan.Week, ctx *validation.Context) *validation.Issue {
			block, ok := ctx.BlockByID(w.BlockID)
			if !ok {
				return nil
			}

			weekStart, ok1 := parseDate(w.StartDate)
			blockStart, ok2 := parseDate(block.StartDate)
			blockEnd, ok3 := parseDate(block.EndDate)
			if !ok1 || !ok2 || !ok3 {
				return nil
			}
			weekEnd := dateutil.AddDays(weekStart, 6)

			idx := indexOf(block.WeekIDs, w.WeekID)
			fieldPath := listPath("block.weekIds", idx, "startDate", "week.startDate")

			if weekStart.Before(blockStart) {
				return &validation.Issue{
					Severity:   validation.SeverityBlocking,
					RuleID:     "V07",
					EntityType: plan.EntityWeek,
					EntityID:   w.WeekID,
					FieldPath:  fieldPath,
					Message: fmt.Sprintf("Week starts %s, before its block %q starts (%s)",
						dateutil.FormatDate(weekStart), block.BlockID, dateutil.FormatDate(blockStart)),
					SuggestedFix: "Shift startDate so the full week lies inside the block",
					DocReference: docRef("V07"),
				}
			}

			if weekEnd.After(blockEnd) {
				return &validation.Issue{
					Severity:   validation.SeverityBlocking,
					RuleID:     "V07",
					EntityType: plan.EntityWeek,
					EntityID:   w.WeekID,
					FieldPath:  fieldPath,
					Message: fmt.Sprintf("Week ends %s (startDate + 6 days), after its block %q ends (%s)",
						dateutil.FormatDate(weekEnd), block.BlockID, dateutil.FormatDate(blockEnd)),
					SuggestedFix: "Shift startDate so the full week lies inside the block",
					DocReference: docRef("V07"),
				}
			}

			return nil
		},
	}
}
