package validation

import "github.com/planforge/planlint/internal/core/plan"

// =============================================================================
// Rules
// =============================================================================

// Rule is one validation rule bound to a single entity kind E. Check
// must be pure, must not mutate its inputs, and returns at most one
// issue: the first violation found in the rule's fixed field-check
// order, or nil when the entity passes.
type Rule[E any] struct {
	// ID is the stable rule identifier, e.g. "V01.1" or "V13".
	ID string

	// Name is the human-readable rule name.
	Name string

	// Severity applies to every issue the rule reports.
	Severity Severity

	// EntityType is the single entity kind the rule applies to.
	EntityType plan.EntityType

	// Modes lists the validation modes the rule runs under.
	Modes []Mode

	// Check evaluates one entity against the shared context.
	Check func(entity E, ctx *Context) *Issue
}

// AppliesTo reports whether the rule runs under the given mode.
func (r Rule[E]) AppliesTo(mode Mode) bool {
	for _, m := range r.Modes {
		if m == mode {
			return true
		}
	}
	return false
}

// =============================================================================
// Catalog
// =============================================================================

// Catalog holds the per-entity-type rule registries. Slice order is
// evaluation order and must be stable: issue ordering is part of the
// engine's contract. Workouts are referenced by weeks but never
// validated directly, so they carry no registry.
type Catalog struct {
	Seasons []Rule[plan.Season]
	Blocks  []Rule[plan.Block]
	Weeks   []Rule[plan.Week]
}

// Len returns the total number of registered rules.
func (c Catalog) Len() int {
	return len(c.Seasons) + len(c.Blocks) + len(c.Weeks)
}
