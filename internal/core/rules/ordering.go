package rules

import (
	"fmt"

	"github.com/planforge/planlint/internal/core/dateutil"
	"github.com/planforge/planlint/internal/core/plan"
	"github.com/planforge/planlint/internal/core/validation"
)

// =============================================================================
// V08: Season Blocks Chronological
// =============================================================================

// SeasonBlocksChronological is V08: walking season.blockIds pairwise in
// list order, each block must start strictly after the previous one,
// and the previous block must end before the current one starts. A
// block ending the day the next begins counts as an overlap. Pairs with
// a missing or undated block are skipped silently (V03/V11 own those
// states); the first failing pair wins.
func SeasonBlocksChronological() validation.Rule[plan.Season] {
	return validation.Rule[plan.Season]{
		ID:         "V08",
		Name:       "Season blocks chronological",
		Severity:   validation.SeverityBlocking,
		EntityType: plan.EntitySeason,
		Modes:      blockingModes(),
		Check: func(s plan.Season, ctx *validation.Context) *validation.Issue {
			for i := 1; i < len(s.BlockIDs); i++ {
				prev, okPrev := ctx.BlockByID(s.BlockIDs[i-1])
				cur, okCur := ctx.BlockByID(s.BlockIDs[i])
				if !okPrev || !okCur {
					continue
				}

				prevStart, ok1 := parseDate(prev.StartDate)
				prevEnd, ok2 := parseDate(prev.EndDate)
				curStart, ok3 := parseDate(cur.StartDate)
				if !ok1 || !ok2 || !ok3 {
					continue
				}

				if !curStart.After(prevStart) {
					return &validation.Issue{
						Severity:   validation.SeverityBlocking,
						RuleID:     "V08",
						EntityType: plan.EntitySeason,
						EntityID:   s.SeasonID,
						FieldPath:  fmt.Sprintf("season.blockIds[%d].startDate", i),
						Message: fmt.Sprintf("Block %q must start after block %q (%s is not after %s)",
							cur.BlockID, prev.BlockID, dateutil.FormatDate(curStart), dateutil.FormatDate(prevStart)),
						SuggestedFix: "Order blockIds by ascending startDate",
						DocReference: docRef("V08"),
					}
				}

				if !prevEnd.Before(curStart) {
					return &validation.Issue{
						Severity:   validation.SeverityBlocking,
						RuleID:     "V08",
						EntityType: plan.EntitySeason,
						EntityID:   s.SeasonID,
						FieldPath:  fmt.Sprintf("season.blockIds[%d].startDate", i),
						Message: fmt.Sprintf("Block %q overlaps block %q: previous block ends %s, current starts %s",
							cur.BlockID, prev.BlockID, dateutil.FormatDate(prevEnd), dateutil.FormatDate(curStart)),
						SuggestedFix: "Re-date the blocks so each one ends before the next starts",
						DocReference: docRef("V08"),
					}
				}
			}
			return nil
		},
	}
}

// =============================================================================
// V09: Block Weeks Chronological
// =============================================================================

// BlockWeeksChronological is V09: the same pairwise walk as V08 over
// block.weekIds against week startDates, strict "not after" only.
// Weeks are fixed seven-day units so there is no overlap check.
func BlockWeeksChronological() validation.Rule[plan.Block] {
	return validation.Rule[plan.Block]{
		ID:         "V09",
		Name:       "Block weeks chronological",
		Severity:   validation.SeverityBlocking,
		EntityType: plan.EntityBlock,
		Modes:      blockingModes(),
		Check: func(b plan.Block, ctx *validation.Context) *validation.Issue {
			for i := 1; i < len(b.WeekIDs); i++ {
				prev, okPrev := ctx.WeekByID(b.WeekIDs[i-1])
				cur, okCur := ctx.WeekByID(b.WeekIDs[i])
				if !okPrev || !okCur {
					continue
				}

				prevStart, ok1 := parseDate(prev.StartDate)
				curStart, ok2 := parseDate(cur.StartDate)
				if !ok1 || !ok2 {
					continue
				}

				if !curStart.After(prevStart) {
					return &validation.Issue{
						Severity:   validation.SeverityBlocking,
						RuleID:     "V09",
						EntityType: plan.EntityBlock,
						EntityID:   b.BlockID,
						FieldPath:  fmt.Sprintf("block.weekIds[%d].startDate", i),
						Message: fmt.Sprintf("Week %q must start after week %q (%s is not after %s)",
							cur.WeekID, prev.WeekID, dateutil.FormatDate(curStart), dateutil.FormatDate(prevStart)),
						SuggestedFix: "Order weekIds by ascending startDate",
						DocReference: docRef("V09"),
					}
				}
			}
			return nil
		},
	}
}

// =============================================================================
// V10: Week Starts on Monday
// =============================================================================

// WeekStartsOnMonday is V10: a week's startDate must fall on a Monday.
// The message names the weekday actually found.
func WeekStartsOnMonday() validation.Rule[plan.Week] {
	return validation.Rule[plan.Week]{
		ID:         "V10",
		Name:       "Week starts on Monday",
		Severity:   validation.SeverityBlocking,
		EntityType: plan.EntityWeek,
		Modes:      blockingModes(),
		Check: func(w plan.Week, _ *validation.Context) *validation.Issue {
			start, ok := parseDate(w.StartDate)
			if !ok || dateutil.IsMonday(start) {
				return nil
			}
			return &validation.Issue{
				Severity:   validation.SeverityBlocking,
				RuleID:     "V10",
				EntityType: plan.EntityWeek,
				EntityID:   w.WeekID,
				FieldPath:  "week.startDate",
				Message: fmt.Sprintf("Week must start on a Monday but %s is a %s",
					dateutil.FormatDate(start), dateutil.DayOfWeek(start)),
				SuggestedFix: "Move startDate to the Monday of the intended week",
				DocReference: docRef("V10"),
			}
		},
	}
}
