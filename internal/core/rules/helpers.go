package rules

import (
	"fmt"
	"strings"
	"time"

	"github.com/planforge/planlint/internal/core/dateutil"
	"github.com/planforge/planlint/internal/core/validation"
)

// =============================================================================
// Mode Sets
// =============================================================================

// criticalModes: structural integrity rules run everywhere, including
// the minimal save gate.
func criticalModes() []validation.Mode {
	return []validation.Mode{validation.ModeEdit, validation.ModeSave, validation.ModePublish, validation.ModeLoad}
}

// blockingModes: consistency rules run everywhere except save.
func blockingModes() []validation.Mode {
	return []validation.Mode{validation.ModeEdit, validation.ModePublish, validation.ModeLoad}
}

// infoModes: advisory rules run at load time only.
func infoModes() []validation.Mode {
	return []validation.Mode{validation.ModeLoad}
}

// =============================================================================
// Shared Helpers
// =============================================================================

// docRef builds the docs anchor for a rule id. Sub-rules share their
// family anchor: "V01.2" references "#V01".
func docRef(ruleID string) string {
	family, _, _ := strings.Cut(ruleID, ".")
	return "/docs/validation-invariants.md#" + family
}

// parseDate wraps dateutil.ParseDate for rules that skip silently on
// absent or malformed dates (those states belong to V01/V03).
func parseDate(text string) (time.Time, bool) {
	d, err := dateutil.ParseDate(text)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// indexOf returns the position of id in the parent's ordered id list,
// or -1 when the parent does not list it.
func indexOf(ids []string, id string) int {
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}
	return -1
}

// listPath builds an indexed field path like "season.blockIds[1].startDate"
// when the child's position in the parent list is resolvable, falling
// back to the given generic path otherwise.
func listPath(prefix string, idx int, suffix, fallback string) string {
	if idx < 0 {
		return fallback
	}
	return fmt.Sprintf("%s[%d].%s", prefix, idx, suffix)
}
