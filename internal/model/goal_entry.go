package model

import (
	"time"
)

// GoalEntry is one signed progress contribution to a goal. Entries are
// immutable once created; removing one reverses its effect on the goal's
// current value.
type GoalEntry struct {
	ID     string    `db:"id" json:"id"`
	GoalID string    `db:"goal_id" json:"goalId"`
	Value  float64   `db:"value" json:"value"`
	Note   string    `db:"note" json:"note"`
	Date   time.Time `db:"date" json:"date"`
}
