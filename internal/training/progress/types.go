package progress

import (
	"time"

	"github.com/olivermegias/trainingtop/internal/training/sessions"
)

// Trend classifies the direction of an exercise's max weight over its
// returned history window.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// HistoryPoint is one (session, exercise) performance snapshot.
type HistoryPoint struct {
	Date        time.Time        `json:"date"`
	MaxWeight   float64          `json:"maxWeight"`
	AvgWeight   float64          `json:"avgWeight"`
	AvgReps     float64          `json:"avgReps"`
	Rating      *sessions.Rating `json:"rating,omitempty"`
	RoutineName string           `json:"routineName,omitempty"`
}

// ExerciseProgress is the per-exercise strength trend view: the last N
// history points plus a percent change and trend classification over
// that same window.
type ExerciseProgress struct {
	ExerciseKey    string         `json:"exerciseKey"`
	Name           string         `json:"name"`
	Category       string         `json:"category"`
	PrimaryMuscles []string       `json:"primaryMuscles"`
	History        []HistoryPoint `json:"history"`
	// PercentChange is 0 when the first max weight in the window is 0,
	// the division makes no sense then.
	PercentChange float64 `json:"percentChange"`
	Trend         Trend   `json:"trend"`
}

// RoutineDayProgress is the accumulated performance for one routine day.
// Days never trained keep zero averages.
type RoutineDayProgress struct {
	DayIndex           int         `json:"dayIndex"`
	DayName            string      `json:"dayName"`
	Sessions           int         `json:"sessions"`
	AvgDurationSeconds int         `json:"avgDurationSeconds"`
	AvgSatisfaction    float64     `json:"avgSatisfaction"`
	AvgEffort          float64     `json:"avgEffort"`
	AvgDifficulty      float64     `json:"avgDifficulty"`
	AvgWeight          float64     `json:"avgWeight"`
	Dates              []time.Time `json:"dates"`
}

// TimelineEntry is one session in the flat routine timeline.
type TimelineEntry struct {
	Date            time.Time `json:"date"`
	DurationSeconds int       `json:"durationSeconds"`
	DayIndex        int       `json:"dayIndex"`
}

// RoutineProgress is the full per-routine view. Days and Timeline are
// null when the user has no sessions for the routine yet, that is a
// valid result, not an error.
type RoutineProgress struct {
	RoutineID     string               `json:"routineId"`
	RoutineName   string               `json:"routineName"`
	TotalSessions int                  `json:"totalSessions"`
	FirstSession  *time.Time           `json:"firstSession,omitempty"`
	LastSession   *time.Time           `json:"lastSession,omitempty"`
	Days          []RoutineDayProgress `json:"days"`
	Timeline      []TimelineEntry      `json:"timeline"`
}

// MuscleGroupStat is the accumulated workload for one muscle group over
// the recent session window.
type MuscleGroupStat struct {
	Muscle          string  `json:"muscle"`
	Exercises       int     `json:"exercises"`
	CompletedSets   int     `json:"completedSets"`
	Reps            int     `json:"reps"`
	MaxWeight       float64 `json:"maxWeight"`
	AvgSatisfaction float64 `json:"avgSatisfaction"`
}

// PeriodStats is the scalar summary over a time window.
type PeriodStats struct {
	Period               Period  `json:"period"`
	Sessions             int     `json:"sessions"`
	TotalDurationSeconds int     `json:"totalDurationSeconds"`
	Exercises            int     `json:"exercises"`
	CompletedSets        int     `json:"completedSets"`
	AvgSatisfaction      float64 `json:"avgSatisfaction"`
	AvgEffort            float64 `json:"avgEffort"`
}
