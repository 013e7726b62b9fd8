package plan

// =============================================================================
// Weekdays
// =============================================================================

// Weekday is a lowercase three-letter weekday key, Monday first.
type Weekday string

const (
	Mon Weekday = "mon"
	Tue Weekday = "tue"
	Wed Weekday = "wed"
	Thu Weekday = "thu"
	Fri Weekday = "fri"
	Sat Weekday = "sat"
	Sun Weekday = "sun"
)

// Weekdays lists the seven weekday keys in week order (mon..sun).
// Iteration over workout slots must use this order so that reported
// issues are deterministic.
func Weekdays() []Weekday {
	return []Weekday{Mon, Tue, Wed, Thu, Fri, Sat, Sun}
}

// =============================================================================
// Workout Slots
// =============================================================================

// WorkoutSlots is a week's fixed seven-slot mapping from weekday to an
// optional workout reference. A nil slot is a rest day.
type WorkoutSlots struct {
	Mon *string `json:"mon" yaml:"mon"`
	Tue *string `json:"tue" yaml:"tue"`
	Wed *string `json:"wed" yaml:"wed"`
	Thu *string `json:"thu" yaml:"thu"`
	Fri *string `json:"fri" yaml:"fri"`
	Sat *string `json:"sat" yaml:"sat"`
	Sun *string `json:"sun" yaml:"sun"`
}

// Slot returns the reference assigned to the given weekday, or nil for
// a rest day (and for unknown weekday keys).
func (s WorkoutSlots) Slot(d Weekday) *string {
	switch d {
	case Mon:
		return s.Mon
	case Tue:
		return s.Tue
	case Wed:
		return s.Wed
	case Thu:
		return s.Thu
	case Fri:
		return s.Fri
	case Sat:
		return s.Sat
	case Sun:
		return s.Sun
	default:
		return nil
	}
}
