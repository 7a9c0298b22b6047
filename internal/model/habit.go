package model

const (
	HabitTypeBoolean = "boolean"
	HabitTypeCounter = "counter"
)

type Habit struct {
	ID             string `db:"id" json:"id"`
	UserID         string `db:"user_id" json:"userId"`
	Name           string `db:"name" json:"name"`
	Emoji          string `db:"emoji" json:"emoji"`
	Streak         int    `db:"streak" json:"streak"`
	CompletedToday bool   `db:"completed_today" json:"completedToday"`
	Color          string `db:"color" json:"color"`
	Type           string `db:"type" json:"type"`
	TargetValue    int    `db:"target_value" json:"targetValue"`
	CurrentValue   int    `db:"current_value" json:"currentValue"`
}

// Completed reports whether the habit counts as done for today. Boolean
// habits rely on the completedToday flag, counter habits on reaching their
// target.
func (h *Habit) Completed() bool {
	return h.CompletedToday || (h.Type == HabitTypeCounter && h.CurrentValue >= h.TargetValue)
}
