// Package plan contains the training plan entity types: a Season is an
// ordered list of Blocks, a Block an ordered list of Weeks, and a Week
// maps each weekday to an optional Workout reference. Entities are plain
// values supplied by the caller and never mutated by validation.
package plan

// =============================================================================
// Entity Types
// =============================================================================

// EntityType identifies the kind of a plan entity in validation output.
type EntityType string

const (
	EntitySeason  EntityType = "season"
	EntityBlock   EntityType = "block"
	EntityWeek    EntityType = "week"
	EntityWorkout EntityType = "workout"
)

// =============================================================================
// Enums
// =============================================================================

// SeasonStatus is the lifecycle state of a season.
type SeasonStatus string

const (
	StatusDraft    SeasonStatus = "draft"
	StatusActive   SeasonStatus = "active"
	StatusArchived SeasonStatus = "archived"
)

// IsValid checks if the season status is a declared value.
func (s SeasonStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusArchived:
		return true
	default:
		return false
	}
}

// SeasonStatuses lists the declared status values in display order.
func SeasonStatuses() []SeasonStatus {
	return []SeasonStatus{StatusDraft, StatusActive, StatusArchived}
}

// BlockPhase is the training focus of a block.
type BlockPhase string

const (
	PhaseBase     BlockPhase = "base"
	PhaseBuild    BlockPhase = "build"
	PhasePeak     BlockPhase = "peak"
	PhaseTaper    BlockPhase = "taper"
	PhaseRecovery BlockPhase = "recovery"
)

// IsValid checks if the block phase is a declared value.
func (p BlockPhase) IsValid() bool {
	switch p {
	case PhaseBase, PhaseBuild, PhasePeak, PhaseTaper, PhaseRecovery:
		return true
	default:
		return false
	}
}

// BlockPhases lists the declared phase values in display order.
func BlockPhases() []BlockPhase {
	return []BlockPhase{PhaseBase, PhaseBuild, PhasePeak, PhaseTaper, PhaseRecovery}
}

// =============================================================================
// Entities
// =============================================================================

// Season is the top level of a training calendar.
// Date fields are carried as raw text; their format is a validation
// concern, not a parsing precondition.
type Season struct {
	SeasonID    string       `json:"seasonId" yaml:"seasonId"`
	Name        string       `json:"name" yaml:"name"`
	StartDate   string       `json:"startDate" yaml:"startDate"`
	EndDate     string       `json:"endDate" yaml:"endDate"`
	BlockIDs    []string     `json:"blockIds,omitempty" yaml:"blockIds"`
	Status      SeasonStatus `json:"status" yaml:"status"`
	PublishedAt string       `json:"publishedAt,omitempty" yaml:"publishedAt"`
	Notes       string       `json:"notes,omitempty" yaml:"notes"`
}

// Block is a multi-week phase within a season.
type Block struct {
	BlockID   string     `json:"blockId" yaml:"blockId"`
	SeasonID  string     `json:"seasonId" yaml:"seasonId"`
	Name      string     `json:"name" yaml:"name"`
	Phase     BlockPhase `json:"phase" yaml:"phase"`
	StartDate string     `json:"startDate" yaml:"startDate"`
	EndDate   string     `json:"endDate" yaml:"endDate"`
	WeekIDs   []string   `json:"weekIds,omitempty" yaml:"weekIds"`
}

// Week is a fixed seven-day unit within a block, starting on its
// StartDate (which must be a Monday) and assigning each weekday either
// a workout reference or a rest day.
type Week struct {
	WeekID     string       `json:"weekId" yaml:"weekId"`
	BlockID    string       `json:"blockId" yaml:"blockId"`
	Name       string       `json:"name" yaml:"name"`
	StartDate  string       `json:"startDate" yaml:"startDate"`
	WorkoutIDs WorkoutSlots `json:"workoutIds" yaml:"workoutIds"`
}

// Workout is a versioned workout definition. Weeks reference workouts;
// workouts themselves are never validated, only resolved.
type Workout struct {
	WorkoutID string `json:"workoutId" yaml:"workoutId"`
	Version   int    `json:"version" yaml:"version"`
	Name      string `json:"name" yaml:"name"`
	Tiers     []Tier `json:"tiers,omitempty" yaml:"tiers"`
}

// Tier is one intensity tier of a workout.
type Tier struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description"`
}

// =============================================================================
// Document
// =============================================================================

// Document bundles the entity collections supplied to one validation
// run. Any collection may be empty or absent.
type Document struct {
	Seasons  []Season  `json:"seasons,omitempty" yaml:"seasons"`
	Blocks   []Block   `json:"blocks,omitempty" yaml:"blocks"`
	Weeks    []Week    `json:"weeks,omitempty" yaml:"weeks"`
	Workouts []Workout `json:"workouts,omitempty" yaml:"workouts"`
}

// Merge appends the collections of other onto d, preserving order.
// Used when a plan spans multiple files.
func (d Document) Merge(other Document) Document {
	return Document{
		Seasons:  append(d.Seasons, other.Seasons...),
		Blocks:   append(d.Blocks, other.Blocks...),
		Weeks:    append(d.Weeks, other.Weeks...),
		Workouts: append(d.Workouts, other.Workouts...),
	}
}
