package model

import (
	"time"
)

const (
	GoalTypePercentage = "percentage"
	GoalTypeNumber     = "number"
)

type Goal struct {
	ID           string     `db:"id" json:"id"`
	UserID       string     `db:"user_id" json:"userId"`
	Title        string     `db:"title" json:"title"`
	Description  string     `db:"description" json:"description"`
	GoalType     string     `db:"goal_type" json:"goalType"`
	TargetValue  float64    `db:"target_value" json:"targetValue"`
	CurrentValue float64    `db:"current_value" json:"currentValue"`
	Unit         string     `db:"unit" json:"unit"`
	TargetDate   *time.Time `db:"target_date" json:"targetDate"`
	Color        string     `db:"color" json:"color"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	IsArchived   bool       `db:"is_archived" json:"isArchived"`
}
