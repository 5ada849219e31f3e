package routines

import (
	"time"
)

// Day is one configured training day within a routine.
type Day struct {
	Name      string   `json:"name"`
	Exercises []string `json:"exercises"` // canonical exercise keys, in planned order
}

// Routine is a user defined training plan, a named ordered list of days.
type Routine struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Days      []Day     `json:"days"`
	CreatedAt time.Time `json:"createdAt"`
}
