package rules

import (
	"fmt"

	"github.com/planforge/planlint/internal/core/dateutil"
	"github.com/planforge/planlint/internal/core/plan"
	"github.com/planforge/planlint/internal/core/validation"
)

// =============================================================================
// V03: Date Format
// =============================================================================

// dateField describes one date-bearing field to check, in declared
// order. Absent fields are skipped; V01 owns missing values.
type dateField struct {
	name      string
	value     string
	timestamp bool
}

// firstBadDate reports the first present date field that fails strict
// ISO-8601 validation, or nil when all present fields parse.
func firstBadDate(ruleID string, entityType plan.EntityType, entityID string, fields []dateField) *validation.Issue {
	for _, f := range fields {
		if f.value == "" {
			continue
		}

		var err error
		fix := "Use the exact YYYY-MM-DD format"
		kind := "date"
		if f.timestamp {
			_, err = dateutil.ParseTimestamp(f.value)
			fix = "Use a full ISO-8601 timestamp, e.g. 2026-01-10T09:30:00Z"
			kind = "timestamp"
		} else {
			_, err = dateutil.ParseDate(f.value)
		}
		if err == nil {
			continue
		}

		return &validation.Issue{
			Severity:     validation.SeverityCritical,
			RuleID:       ruleID,
			EntityType:   entityType,
			EntityID:     entityID,
			FieldPath:    string(entityType) + "." + f.name,
			Message:      fmt.Sprintf("%s %q is not a valid ISO-8601 %s: %v", f.name, f.value, kind, err),
			SuggestedFix: fix,
			DocReference: docRef(ruleID),
		}
	}
	return nil
}

// SeasonDateFormat is V03.1: startDate, endDate and publishedAt (when
// present) must be strict ISO-8601, checked in that order.
func SeasonDateFormat() validation.Rule[plan.Season] {
	return validation.Rule[plan.Season]{
		ID:         "V03.1",
		Name:       "Season date format",
		Severity:   validation.SeverityCritical,
		EntityType: plan.EntitySeason,
		Modes:      criticalModes(),
		Check: func(s plan.Season, _ *validation.Context) *validation.Issue {
			return firstBadDate("V03.1", plan.EntitySeason, s.SeasonID, []dateField{
				{name: "startDate", value: s.StartDate},
				{name: "endDate", value: s.EndDate},
				{name: "publishedAt", value: s.PublishedAt, timestamp: true},
			})
		},
	}
}

// BlockDateFormat is V03.2.
func BlockDateFormat() validation.Rule[plan.Block] {
	return validation.Rule[plan.Block]{
		ID:         "V03.2",
		Name:       "Block date format",
		Severity:   validation.SeverityCritical,
		EntityType: plan.EntityBlock,
		Modes:      criticalModes(),
		Check: func(b plan.Block, _ *validation.Context) *validation.Issue {
			return firstBadDate("V03.2", plan.EntityBlock, b.BlockID, []dateField{
				{name: "startDate", value: b.StartDate},
				{name: "endDate", value: b.EndDate},
			})
		},
	}
}

// WeekDateFormat is V03.3.
func WeekDateFormat() validation.Rule[plan.Week] {
	return validation.Rule[plan.Week]{
		ID:         "V03.3",
		Name:       "Week date format",
		Severity:   validation.SeverityCritical,
		EntityType: plan.EntityWeek,
		Modes:      criticalModes(),
		Check: func(w plan.Week, _ *validation.Context) *validation.Issue {
			return firstBadDate("V03.3", plan.EntityWeek, w.WeekID, []dateField{
				{name: "startDate", value: w.StartDate},
			})
		},
	}
}

// =============================================================================
// V05: Date Range Order
// =============================================================================

// rangeIssue reports a start date that is not strictly before the end
// date. Only evaluated when both dates parse; malformed dates are
// V03's concern.
func rangeIssue(ruleID string, entityType plan.EntityType, entityID, startText, endText string) *validation.Issue {
	start, okStart := parseDate(startText)
	end, okEnd := parseDate(endText)
	if !okStart || !okEnd {
		return nil
	}

	res := dateutil.ValidateRange(start, end)
	if res.Valid {
		return nil
	}

	return &validation.Issue{
		Severity:     validation.SeverityCritical,
		RuleID:       ruleID,
		EntityType:   entityType,
		EntityID:     entityID,
		FieldPath:    string(entityType) + ".startDate",
		Message:      "Invalid date range: " + res.Reason,
		SuggestedFix: "Set startDate strictly before endDate",
		DocReference: docRef(ruleID),
	}
}

// SeasonDateOrder is V05.1: season.startDate must be strictly before
// season.endDate.
func SeasonDateOrder() validation.Rule[plan.Season] {
	return validation.Rule[plan.Season]{
		ID:         "V05.1",
		Name:       "Season date order",
		Severity:   validation.SeverityCritical,
		EntityType: plan.EntitySeason,
		Modes:      criticalModes(),
		Check: func(s plan.Season, _ *validation.Context) *validation.Issue {
			return rangeIssue("V05.1", plan.EntitySeason, s.SeasonID, s.StartDate, s.EndDate)
		},
	}
}

// BlockDateOrder is V05.2.
func BlockDateOrder() validation.Rule[plan.Block] {
	return validation.Rule[plan.Block]{
		ID:         "V05.2",
		Name:       "Block date order",
		Severity:   validation.SeverityCritical,
		EntityType: plan.EntityBlock,
		Modes:      criticalModes(),
		Check: func(b plan.Block, _ *validation.Context) *validation.Issue {
			return rangeIssue("V05.2", plan.EntityBlock, b.BlockID, b.StartDate, b.EndDate)
		},
	}
}
