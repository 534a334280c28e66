package types

// Field position runs 0-100 from the offense's own goal line. Thresholds
// mirror the situational overrides used by the play classifier.
const (
	GoalLinePosition  = 90 // inside the opponent 10
	LongYardageToGo   = 8
	ShortYardageToGo  = 2
	DeepPuntPosition  = 20 // backed up inside the own 20
	ShortPuntPosition = 55 // opponent territory with margin to pin
	EmergencyPuntToGo = 20
)

// FieldState is an immutable snapshot of the down-and-distance situation.
// Callers construct a fresh value per play; the engine never mutates it.
type FieldState struct {
	Down          int
	YardsToGo     int
	FieldPosition int
}

// NewFieldState clamps out-of-range inputs to the nearest valid boundary so
// every play resolves against a well-formed situation.
func NewFieldState(down, yardsToGo, fieldPosition int) FieldState {
	if down < 1 {
		down = 1
	} else if down > 4 {
		down = 4
	}
	if yardsToGo < 1 {
		yardsToGo = 1
	}
	if fieldPosition < 0 {
		fieldPosition = 0
	} else if fieldPosition > 100 {
		fieldPosition = 100
	}
	return FieldState{Down: down, YardsToGo: yardsToGo, FieldPosition: fieldPosition}
}

// YardsToGoal returns the distance to the opponent goal line.
func (f FieldState) YardsToGoal() int {
	return 100 - f.FieldPosition
}

func (f FieldState) IsGoalLine() bool {
	return f.FieldPosition >= GoalLinePosition
}

func (f FieldState) IsLongYardage() bool {
	return f.YardsToGo >= LongYardageToGo
}

func (f FieldState) IsShortYardage() bool {
	return f.YardsToGo <= ShortYardageToGo
}

// IsLateDown reports whether the offense is out of free downs, which is when
// the long/short yardage overrides take precedence over formation.
func (f FieldState) IsLateDown() bool {
	return f.Down >= 3
}
