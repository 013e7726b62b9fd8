package validation

import "github.com/planforge/planlint/internal/core/plan"

// =============================================================================
// Severity
// =============================================================================

// Severity classifies how a validation issue affects the plan lifecycle.
type Severity string

const (
	// SeverityCritical marks invalid or corrupt data. Critical issues
	// block saving the plan.
	SeverityCritical Severity = "CRITICAL"

	// SeverityBlocking marks structurally valid but incomplete or
	// inconsistent data. Blocking issues block publishing only.
	SeverityBlocking Severity = "BLOCKING"

	// SeverityInfo marks advisory findings. Info issues block
	// publishing only and typically run at load time.
	SeverityInfo Severity = "INFO"
)

// =============================================================================
// Mode
// =============================================================================

// Mode is the validation context the caller is operating in. Each rule
// declares the modes it runs under.
type Mode string

const (
	ModeEdit    Mode = "edit"
	ModeSave    Mode = "save"
	ModePublish Mode = "publish"
	ModeLoad    Mode = "load"
)

// IsValid checks if the mode is a declared value.
func (m Mode) IsValid() bool {
	switch m {
	case ModeEdit, ModeSave, ModePublish, ModeLoad:
		return true
	default:
		return false
	}
}

// =============================================================================
// Issue
// =============================================================================

// Issue is one validation finding. Its field names and string values
// are an external contract consumed verbatim by callers and tests.
type Issue struct {
	Severity   Severity        `json:"severity"`
	RuleID     string          `json:"rule_id"`
	EntityType plan.EntityType `json:"entity_type"`
	EntityID   string          `json:"entity_id"`

	// FieldPath locates the offending value using dot/bracket notation,
	// e.g. "season.blockIds[1].startDate" or "week.workoutIds.tue".
	FieldPath string `json:"field_path"`

	Message string `json:"message"`

	// SuggestedFix is advisory text for a human or UI; the engine never
	// applies it. Empty when no fix is suggested.
	SuggestedFix string `json:"suggested_fix,omitempty"`

	// DocReference anchors the violated invariant in the docs, e.g.
	// "/docs/validation-invariants.md#V06".
	DocReference string `json:"doc_reference"`
}

// =============================================================================
// Result
// =============================================================================

// Summary holds per-severity issue counts.
type Summary struct {
	CriticalCount int `json:"critical_count"`
	BlockingCount int `json:"blocking_count"`
	InfoCount     int `json:"info_count"`
	TotalCount    int `json:"total_count"`
}

// Result is the outcome of one validation run. Issues preserve
// invocation order: entities in collection order (seasons, blocks,
// weeks), rules in catalog order within each entity.
type Result struct {
	Issues      []Issue `json:"issues"`
	HasCritical bool    `json:"has_critical"`
	HasBlocking bool    `json:"has_blocking"`
	HasInfo     bool    `json:"has_info"`

	// CanSave is true when no critical issues were found.
	CanSave bool `json:"can_save"`

	// CanPublish is true only when no issues of any severity were found.
	CanPublish bool `json:"can_publish"`

	Summary Summary `json:"summary"`
}
