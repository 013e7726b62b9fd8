package rules

import (
	"fmt"

	"github.com/planforge/planlint/internal/core/plan"
	"github.com/planforge/planlint/internal/core/validation"
)

// =============================================================================
// V02: ID Uniqueness
// =============================================================================

// Each duplicate instance is evaluated independently and reports its
// own issue: a pair of duplicates yields two issues, not one. This
// flags every offending record for review.

func duplicateIssue(ruleID string, entityType plan.EntityType, idField, id string, count int) *validation.Issue {
	return &validation.Issue{
		Severity:     validation.SeverityCritical,
		RuleID:       ruleID,
		EntityType:   entityType,
		EntityID:     id,
		FieldPath:    string(entityType) + "." + idField,
		Message:      fmt.Sprintf("Duplicate %s %q: %d %ss share this id", idField, id, count, entityType),
		SuggestedFix: fmt.Sprintf("Assign a unique %s to each %s", idField, entityType),
		DocReference: docRef(ruleID),
	}
}

// SeasonIDUnique is V02.1: the season's id must occur exactly once in
// the season collection.
func SeasonIDUnique() validation.Rule[plan.Season] {
	return validation.Rule[plan.Season]{
		ID:         "V02.1",
		Name:       "Season id uniqueness",
		Severity:   validation.SeverityCritical,
		EntityType: plan.EntitySeason,
		Modes:      criticalModes(),
		Check: func(s plan.Season, ctx *validation.Context) *validation.Issue {
			if n := ctx.CountSeasonsWithID(s.SeasonID); n > 1 {
				return duplicateIssue("V02.1", plan.EntitySeason, "seasonId", s.SeasonID, n)
			}
			return nil
		},
	}
}

// BlockIDUnique is V02.2.
func BlockIDUnique() validation.Rule[plan.Block] {
	return validation.Rule[plan.Block]{
		ID:         "V02.2",
		Name:       "Block id uniqueness",
		Severity:   validation.SeverityCritical,
		EntityType: plan.EntityBlock,
		Modes:      criticalModes(),
		Check: func(b plan.Block, ctx *validation.Context) *validation.Issue {
			if n := ctx.CountBlocksWithID(b.BlockID); n > 1 {
				return duplicateIssue("V02.2", plan.EntityBlock, "blockId", b.BlockID, n)
			}
			return nil
		},
	}
}

// WeekIDUnique is V02.3.
func WeekIDUnique() validation.Rule[plan.Week] {
	return validation.Rule[plan.Week]{
		ID:         "V02.3",
		Name:       "Week id uniqueness",
		Severity:   validation.SeverityCritical,
		EntityType: plan.EntityWeek,
		Modes:      criticalModes(),
		Check: func(w plan.Week, ctx *validation.Context) *validation.Issue {
			if n := ctx.CountWeeksWithID(w.WeekID); n > 1 {
				return duplicateIssue("V02.3", plan.EntityWeek, "weekId", w.WeekID, n)
			}
			return nil
		},
	}
}
