package rules

import (
	"fmt"

	"github.com/planforge/planlint/internal/core/plan"
	"github.com/planforge/planlint/internal/core/validation"
)

// =============================================================================
// V01: Required Fields
// =============================================================================

// requiredField pairs a field name with its value, in declared order.
type requiredField struct {
	name  string
	value string
}

// firstMissing reports the first absent or empty required field, or nil
// when all are present.
func firstMissing(ruleID string, entityType plan.EntityType, entityID string, fields []requiredField) *validation.Issue {
	for _, f := range fields {
		if f.value != "" {
			continue
		}
		return &validation.Issue{
			Severity:     validation.SeverityCritical,
			RuleID:       ruleID,
			EntityType:   entityType,
			EntityID:     entityID,
			FieldPath:    string(entityType) + "." + f.name,
			Message:      fmt.Sprintf("Required field %q is missing or empty", f.name),
			SuggestedFix: fmt.Sprintf("Provide a non-empty value for %s", f.name),
			DocReference: docRef(ruleID),
		}
	}
	return nil
}

// SeasonRequiredFields is V01.1: every required season field must be
// present and non-empty.
func SeasonRequiredFields() validation.Rule[plan.Season] {
	return validation.Rule[plan.Season]{
		ID:         "V01.1",
		Name:       "Season required fields",
		Severity:   validation.SeverityCritical,
		EntityType: plan.EntitySeason,
		Modes:      criticalModes(),
		Check: func(s plan.Season, _ *validation.Context) *validation.Issue {
			return firstMissing("V01.1", plan.EntitySeason, s.SeasonID, []requiredField{
				{"seasonId", s.SeasonID},
				{"name", s.Name},
				{"startDate", s.StartDate},
				{"endDate", s.EndDate},
				{"status", string(s.Status)},
			})
		},
	}
}

// BlockRequiredFields is V01.2.
func BlockRequiredFields() validation.Rule[plan.Block] {
	return validation.Rule[plan.Block]{
		ID:         "V01.2",
		Name:       "Block required fields",
		Severity:   validation.SeverityCritical,
		EntityType: plan.EntityBlock,
		Modes:      criticalModes(),
		Check: func(b plan.Block, _ *validation.Context) *validation.Issue {
			return firstMissing("V01.2", plan.EntityBlock, b.BlockID, []requiredField{
				{"blockId", b.BlockID},
				{"seasonId", b.SeasonID},
				{"name", b.Name},
				{"phase", string(b.Phase)},
				{"startDate", b.StartDate},
				{"endDate", b.EndDate},
			})
		},
	}
}

// WeekRequiredFields is V01.3.
func WeekRequiredFields() validation.Rule[plan.Week] {
	return validation.Rule[plan.Week]{
		ID:         "V01.3",
		Name:       "Week required fields",
		Severity:   validation.SeverityCritical,
		EntityType: plan.EntityWeek,
		Modes:      criticalModes(),
		Check: func(w plan.Week, _ *validation.Context) *validation.Issue {
			return firstMissing("V01.3", plan.EntityWeek, w.WeekID, []requiredField{
				{"weekId", w.WeekID},
				{"blockId", w.BlockID},
				{"name", w.Name},
				{"startDate", w.StartDate},
			})
		},
	}
}
