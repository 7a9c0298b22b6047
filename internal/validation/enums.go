package validation

import (
	"errors"

	"github.com/pulsedash/pulse/internal/model"
)

// ValidatePriority checks a task priority against the known levels.
// Empty is allowed; the service applies the default.
func ValidatePriority(priority string) error {
	switch priority {
	case "", model.TaskPriorityHigh, model.TaskPriorityMedium, model.TaskPriorityLow:
		return nil
	}
	return errors.New("priority must be high, medium, or low")
}

// ValidateHabitType checks a habit type. Empty is allowed; the service
// applies the default.
func ValidateHabitType(habitType string) error {
	switch habitType {
	case "", model.HabitTypeBoolean, model.HabitTypeCounter:
		return nil
	}
	return errors.New("habit type must be boolean or counter")
}

// ValidateGoalType checks a goal type. Empty is allowed; the service
// applies the default.
func ValidateGoalType(goalType string) error {
	switch goalType {
	case "", model.GoalTypePercentage, model.GoalTypeNumber:
		return nil
	}
	return errors.New("goal type must be percentage or number")
}

// ValidateMetricType checks a health metric type.
func ValidateMetricType(metricType string) error {
	switch metricType {
	case model.MetricTypeSleep, model.MetricTypeSteps, model.MetricTypeWater,
		model.MetricTypeWeight, model.MetricTypeCalories, model.MetricTypeHeartRate:
		return nil
	}
	return errors.New("unknown metric type")
}
