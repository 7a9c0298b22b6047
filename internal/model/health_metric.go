package model

import (
	"time"
)

// Known metric types. The column is free-form so new types can be logged
// without a migration.
const (
	MetricTypeSleep     = "sleep"
	MetricTypeSteps     = "steps"
	MetricTypeWater     = "water"
	MetricTypeWeight    = "weight"
	MetricTypeCalories  = "calories"
	MetricTypeHeartRate = "heart_rate"
)

type HealthMetric struct {
	ID     string    `db:"id" json:"id"`
	UserID string    `db:"user_id" json:"userId"`
	Type   string    `db:"type" json:"type"`
	Value  float64   `db:"value" json:"value"`
	Unit   string    `db:"unit" json:"unit"`
	Date   time.Time `db:"date" json:"date"`
}
