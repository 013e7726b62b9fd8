package rules

import (
	"fmt"

	"github.com/planforge/planlint/internal/core/plan"
	"github.com/planforge/planlint/internal/core/validation"
)

// =============================================================================
// V11: Season Block References
// =============================================================================

// SeasonBlockRefsResolve is V11: every id in season.blockIds must exist
// in the block collection; the first missing id wins.
func SeasonBlockRefsResolve() validation.Rule[plan.Season] {
	return validation.Rule[plan.Season]{
		ID:         "V11",
		Name:       "Season block references",
		Severity:   validation.SeverityBlocking,
		EntityType: plan.EntitySeason,
		Modes:      blockingModes(),
		Check: func(s plan.Season, ctx *validation.Context) *validation.Issue {
			for i, id := range s.BlockIDs {
				if _, ok := ctx.BlockByID(id); ok {
					continue
				}
				return &validation.Issue{
					Severity:     validation.SeverityBlocking,
					RuleID:       "V11",
					EntityType:   plan.EntitySeason,
					EntityID:     s.SeasonID,
					FieldPath:    fmt.Sprintf("season.blockIds[%d]", i),
					Message:      fmt.Sprintf("Referenced block %q not found in the block collection", id),
					SuggestedFix: "Remove the reference or add the missing block",
					DocReference: docRef("V11"),
				}
			}
			return nil
		},
	}
}

// =============================================================================
// V12: Block Week References
// =============================================================================

// BlockWeekRefsResolve is V12: every id in block.weekIds must exist in
// the week collection; the first missing id wins.
func BlockWeekRefsResolve() validation.Rule[plan.Block] {
	return validation.Rule[plan.Block]{
		ID:         "V12",
		Name:       "Block week references",
		Severity:   validation.SeverityBlocking,
		EntityType: plan.EntityBlock,
		Modes:      blockingModes(),
		Check: func(b plan.Block, ctx *validation.Context) *validation.Issue {
			for i, id := range b.WeekIDs {
				if _, ok := ctx.WeekByID(id); ok {
					continue
				}
				return &validation.Issue{
					Severity:     validation.SeverityBlocking,
					RuleID:       "V12",
					EntityType:   plan.EntityBlock,
					EntityID:     b.BlockID,
					FieldPath:    fmt.Sprintf("block.weekIds[%d]", i),
					Message:      fmt.Sprintf("Referenced week %q not found in the week collection", id),
					SuggestedFix: "Remove the reference or add the missing week",
					DocReference: docRef("V12"),
				}
			}
			return nil
		},
	}
}

// =============================================================================
// V13: Week Workout References
// =============================================================================

// WeekWorkoutRefsResolve is V13: every non-null weekday slot must hold
// a resolvable workout reference. Versioned references (@vN) must use a
// positive integer version and resolve to the exact (workoutId, version)
// pair; bare references resolve to any version. Slots are checked in
// week order (mon..sun) and the first failing day wins. Null slots are
// rest days and never produce an issue.
func WeekWorkoutRefsResolve() validation.Rule[plan.Week] {
	return validation.Rule[plan.Week]{
		ID:         "V13",
		Name:       "Week workout references",
		Severity:   validation.SeverityBlocking,
		EntityType: plan.EntityWeek,
		Modes:      blockingModes(),
		Check: func(w plan.Week, ctx *validation.Context) *validation.Issue {
			for _, day := range plan.Weekdays() {
				slot := w.WorkoutIDs.Slot(day)
				if slot == nil {
					continue
				}
				if issue := checkWorkoutRef(w.WeekID, day, *slot, ctx); issue != nil {
					return issue
				}
			}
			return nil
		},
	}
}

// checkWorkoutRef validates a single weekday slot.
func checkWorkoutRef(weekID string, day plan.Weekday, ref string, ctx *validation.Context) *validation.Issue {
	fieldPath := "week.workoutIds." + string(day)

	parsed, err := plan.ParseWorkoutRef(ref)
	if err != nil {
		return &validation.Issue{
			Severity:     validation.SeverityBlocking,
			RuleID:       "V13",
			EntityType:   plan.EntityWeek,
			EntityID:     weekID,
			FieldPath:    fieldPath,
			Message:      fmt.Sprintf("Invalid workout version syntax: %q", ref),
			SuggestedFix: "Use the workoutId@vN form with a positive integer version",
			DocReference: docRef("V13"),
		}
	}

	if !ctx.WorkoutExists(parsed.WorkoutID) {
		return &validation.Issue{
			Severity:     validation.SeverityBlocking,
			RuleID:       "V13",
			EntityType:   plan.EntityWeek,
			EntityID:     weekID,
			FieldPath:    fieldPath,
			Message:      fmt.Sprintf("Workout not found: %q", parsed.WorkoutID),
			SuggestedFix: "Reference an existing workout or clear the slot",
			DocReference: docRef("V13"),
		}
	}

	if parsed.Versioned && !ctx.WorkoutVersionExists(parsed.WorkoutID, parsed.Version) {
		return &validation.Issue{
			Severity:     validation.SeverityBlocking,
			RuleID:       "V13",
			EntityType:   plan.EntityWeek,
			EntityID:     weekID,
			FieldPath:    fieldPath,
			Message:      fmt.Sprintf("Workout version not found: %q has no version %d", parsed.WorkoutID, parsed.Version),
			SuggestedFix: "Pin an existing version or drop the @vN suffix",
			DocReference: docRef("V13"),
		}
	}

	return nil
}
