package model

import (
	"time"
)

// TimeBlock is a scheduled slot on the daily planner. StartTime is a local
// "HH:MM" string, Duration is in minutes.
type TimeBlock struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	Title     string    `db:"title" json:"title"`
	StartTime string    `db:"start_time" json:"startTime"`
	Duration  int       `db:"duration" json:"duration"`
	Color     string    `db:"color" json:"color"`
	Date      time.Time `db:"date" json:"date"`
}
