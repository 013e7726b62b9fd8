package validation

import "github.com/planforge/planlint/internal/core/plan"

// =============================================================================
// Context
// =============================================================================

// Context is the read-only cross-entity snapshot shared by every rule
// invocation in one validation run. Lookups are linear scans returning
// the first match in original collection order; where a reported field
// path depends on which record matched, that order is part of the
// contract.
type Context struct {
	Mode     Mode
	Seasons  []plan.Season
	Blocks   []plan.Block
	Weeks    []plan.Week
	Workouts []plan.Workout
}

// NewContext builds the shared context for one run. Missing collections
// in the document stay nil, which scans treat as empty.
func NewContext(doc plan.Document, mode Mode) *Context {
	return &Context{
		Mode:     mode,
		Seasons:  doc.Seasons,
		Blocks:   doc.Blocks,
		Weeks:    doc.Weeks,
		Workouts: doc.Workouts,
	}
}

// =============================================================================
// Lookups
// =============================================================================

// SeasonByID returns the first season with the given id.
func (c *Context) SeasonByID(id string) (plan.Season, bool) {
	for _, s := range c.Seasons {
		if s.SeasonID == id {
			return s, true
		}
	}
	return plan.Season{}, false
}

// BlockByID returns the first block with the given id.
func (c *Context) BlockByID(id string) (plan.Block, bool) {
	for _, b := range c.Blocks {
		if b.BlockID == id {
			return b, true
		}
	}
	return plan.Block{}, false
}

// WeekByID returns the first week with the given id.
func (c *Context) WeekByID(id string) (plan.Week, bool) {
	for _, w := range c.Weeks {
		if w.WeekID == id {
			return w, true
		}
	}
	return plan.Week{}, false
}

// WorkoutExists reports whether any workout carries the given id,
// regardless of version.
func (c *Context) WorkoutExists(id string) bool {
	for _, w := range c.Workouts {
		if w.WorkoutID == id {
			return true
		}
	}
	return false
}

// WorkoutVersionExists reports whether the exact (id, version) pair
// exists in the workout collection.
func (c *Context) WorkoutVersionExists(id string, version int) bool {
	for _, w := range c.Workouts {
		if w.WorkoutID == id && w.Version == version {
			return true
		}
	}
	return false
}

// CountWeeksInBlock counts the weeks whose blockId back-reference
// points at the given block.
func (c *Context) CountWeeksInBlock(blockID string) int {
	n := 0
	for _, w := range c.Weeks {
		if w.BlockID == blockID {
			n++
		}
	}
	return n
}

// CountSeasonsWithID counts seasons sharing the given id. Used for
// uniqueness checks, where every duplicate instance reports itself.
func (c *Context) CountSeasonsWithID(id string) int {
	n := 0
	for _, s := range c.Seasons {
		if s.SeasonID == id {
			n++
		}
	}
	return n
}

// CountBlocksWithID counts blocks sharing the given id.
func (c *Context) CountBlocksWithID(id string) int {
	n := 0
	for _, b := range c.Blocks {
		if b.BlockID == id {
			n++
		}
	}
	return n
}

// CountWeeksWithID counts weeks sharing the given id.
func (c *Context) CountWeeksWithID(id string) int {
	n := 0
	for _, w := range c.Weeks {
		if w.WeekID == id {
			n++
		}
	}
	return n
}
