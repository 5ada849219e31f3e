package sessions

import (
	"time"
)

// Set is a single performed set within an exercise.
type Set struct {
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	Completed bool    `json:"completed"`
	Skipped   bool    `json:"skipped"`
}

// Countable reports whether the set counts towards volume stats:
// it was actually done and not skipped.
func (s Set) Countable() bool {
	return s.Completed && !s.Skipped
}

// Weighted reports whether the set carries a usable load.
func (s Set) Weighted() bool {
	return s.Countable() && s.Weight > 0
}

// Rating is the per-exercise feedback left by the user after a session.
// All three scores use a 1-5 scale.
type Rating struct {
	Satisfaction int    `json:"satisfaction"`
	Effort       int    `json:"effort"`
	Difficulty   int    `json:"difficulty"`
	Notes        string `json:"notes,omitempty"`
}

func (r Rating) Valid() bool {
	inRange := func(v int) bool { return v >= 1 && v <= 5 }
	return inRange(r.Satisfaction) && inRange(r.Effort) && inRange(r.Difficulty)
}

// ExercisePerformance is one exercise executed within a workout session.
type ExercisePerformance struct {
	ExerciseKey     string  `json:"exerciseKey"`
	Sets            []Set   `json:"sets"`
	SkippedSets     int     `json:"skippedSets"`
	DurationSeconds int     `json:"durationSeconds"`
	Rating          *Rating `json:"rating,omitempty"`
}

// WorkoutSession is a single recorded training, tied to a routine day.
type WorkoutSession struct {
	ID              string                `json:"id"`
	UserID          string                `json:"userId"`
	RoutineID       string                `json:"routineId"`
	DayIndex        int                   `json:"dayIndex"`
	StartedAt       time.Time             `json:"startedAt"`
	EndedAt         time.Time             `json:"endedAt"`
	DurationSeconds int                   `json:"durationSeconds"`
	Exercises       []ExercisePerformance `json:"exercises"`
}

// ListResponse is what the paginated list endpoints return.
type ListResponse struct {
	Sessions []WorkoutSession `json:"sessions"`
	Total    int              `json:"total"`
}

// AddResponse is what the add endpoint returns.
type AddResponse struct {
	Session WorkoutSession `json:"session"`
}
