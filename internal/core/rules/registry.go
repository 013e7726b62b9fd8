package rules

import (
	"github.com/planforge/planlint/internal/core/plan"
	"github.com/planforge/planlint/internal/core/validation"
)

// =============================================================================
// Registry
// =============================================================================

// Catalog assembles the full default rule catalog. Slice order is
// evaluation order (family order V01..V14 within each entity type) and
// must stay stable: reported issue order is part of the engine's
// contract.
func Catalog() validation.Catalog {
	return validation.Catalog{
		Seasons: []validation.Rule[plan.Season]{
			SeasonRequiredFields(),      // V01.1
			SeasonIDUnique(),            // V02.1
			SeasonDateFormat(),          // V03.1
			SeasonStatusValid(),         // V04.1
			SeasonDateOrder(),           // V05.1
			SeasonBlocksChronological(), // V08
			SeasonBlockRefsResolve(),    // V11
		},
		Blocks: []validation.Rule[plan.Block]{
			BlockRequiredFields(),      // V01.2
			BlockIDUnique(),            // V02.2
			BlockDateFormat(),          // V03.2
			BlockPhaseValid(),          // V04.2
			BlockDateOrder(),           // V05.2
			BlockWithinSeason(),        // V06
			BlockWeeksChronological(),  // V09
			BlockWeekRefsResolve(),     // V12
			BlockWeekCountConsistent(), // V14
		},
		Weeks: []validation.Rule[plan.Week]{
			WeekRequiredFields(),     // V01.3
			WeekIDUnique(),           // V02.3
			WeekDateFormat(),         // V03.3
			WeekWithinBlock(),        // V07
			WeekStartsOnMonday(),     // V10
			WeekWorkoutRefsResolve(), // V13
		},
	}
}

// ForMode returns the catalog pre-filtered to rules applicable in the
// given mode. The engine filters by mode on its own; this bundle exists
// for callers that want to inspect or list the active rule set.
func ForMode(mode validation.Mode) validation.Catalog {
	full := Catalog()
	filtered := validation.Catalog{}

	for _, r := range full.Seasons {
		if r.AppliesTo(mode) {
			filtered.Seasons = append(filtered.Seasons, r)
		}
	}
	for _, r := range full.Blocks {
		if r.AppliesTo(mode) {
			filtered.Blocks = append(filtered.Blocks, r)
		}
	}
	for _, r := range full.Weeks {
		if r.AppliesTo(mode) {
			filtered.Weeks = append(filtered.Weeks, r)
		}
	}

	return filtered
}
