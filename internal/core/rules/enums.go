package rules

import (
	"fmt"
	"strings"

	"github.com/planforge/planlint/internal/core/plan"
	"github.com/planforge/planlint/internal/core/validation"
)

// =============================================================================
// V04: Enum Membership
// =============================================================================

// Both rules skip silently when the field is absent; V01 owns that case.

// SeasonStatusValid is V04.1: season.status must be one of the declared
// status values.
func SeasonStatusValid() validation.Rule[plan.Season] {
	allowed := make([]string, 0, len(plan.SeasonStatuses()))
	for _, s := range plan.SeasonStatuses() {
		allowed = append(allowed, string(s))
	}

	return validation.Rule[plan.Season]{
		ID:         "V04.1",
		Name:       "Season status value",
		Severity:   validation.SeverityCritical,
		EntityType: plan.EntitySeason,
		Modes:      criticalModes(),
		Check: func(s plan.Season, _ *validation.Context) *validation.Issue {
			if s.Status == "" || s.Status.IsValid() {
				return nil
			}
			return &validation.Issue{
				Severity:     validation.SeverityCritical,
				RuleID:       "V04.1",
				EntityType:   plan.EntitySeason,
				EntityID:     s.SeasonID,
				FieldPath:    "season.status",
				Message:      fmt.Sprintf("status %q is not a valid season status (allowed: %s)", s.Status, strings.Join(allowed, ", ")),
				SuggestedFix: "Use one of the allowed status values",
				DocReference: docRef("V04.1"),
			}
		},
	}
}

// BlockPhaseValid is V04.2: block.phase must be one of the declared
// phase values.
func BlockPhaseValid() validation.Rule[plan.Block] {
	allowed := make([]string, 0, len(plan.BlockPhases()))
	for _, p := range plan.BlockPhases() {
		allowed = append(allowed, string(p))
	}

	return validation.Rule[plan.Block]{
		ID:         "V04.2",
		Name:       "Block phase value",
		Severity:   validation.SeverityCritical,
		EntityType: plan.EntityBlock,
		Modes:      criticalModes(),
		Check: func(b plan.Block, _ *validation.Context) *validation.Issue {
			if b.Phase == "" || b.Phase.IsValid() {
				return nil
			}
			return &validation.Issue{
				Severity:     validation.SeverityCritical,
				RuleID:       "V04.2",
				EntityType:   plan.EntityBlock,
				EntityID:     b.BlockID,
				FieldPath:    "block.phase",
				Message:      fmt.Sprintf("phase %q is not a valid block phase (allowed: %s)", b.Phase, strings.Join(allowed, ", ")),
				SuggestedFix: "Use one of the allowed phase values",
				DocReference: docRef("V04.2"),
			}
		},
	}
}
