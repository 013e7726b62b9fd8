package plan

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// =============================================================================
// Workout References
// =============================================================================

// ErrWorkoutRefSyntax reports a workout reference that uses the @v
// suffix without a positive integer version (e.g. "tempo@v", "tempo@v0",
// "tempo@v-1").
var ErrWorkoutRefSyntax = errors.New("invalid workout version syntax")

// versionedRef matches "workoutId@vN". The id part is deliberately
// permissive; existence is checked against the workout collection.
var versionedRef = regexp.MustCompile(`^(.+)@v(\d+)$`)

// WorkoutRef is a parsed workout reference string.
type WorkoutRef struct {
	// WorkoutID is the base workout identifier.
	WorkoutID string

	// Versioned indicates the reference pins a specific version.
	Versioned bool

	// Version is the pinned version (only meaningful when Versioned).
	Version int
}

// ParseWorkoutRef parses a workout reference, optionally suffixed @vN
// with N a positive integer. A reference that contains "@v" must match
// that form exactly; anything else containing "@v" is a syntax error
// rather than a lookup miss.
func ParseWorkoutRef(ref string) (WorkoutRef, error) {
	if !strings.Contains(ref, "@v") {
		return WorkoutRef{WorkoutID: ref}, nil
	}

	m := versionedRef.FindStringSubmatch(ref)
	if m == nil {
		return WorkoutRef{}, ErrWorkoutRefSyntax
	}

	version, err := strconv.Atoi(m[2])
	if err != nil || version < 1 {
		return WorkoutRef{}, ErrWorkoutRefSyntax
	}

	return WorkoutRef{WorkoutID: m[1], Versioned: true, Version: version}, nil
}
