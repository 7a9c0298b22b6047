package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/pulsedash/pulse/internal/model"
)

func metric(metricType string, value float64, daysAgo int) *model.HealthMetric {
	return &model.HealthMetric{
		ID:     "metric",
		UserID: "demo-user",
		Type:   metricType,
		Value:  value,
		Date:   testNow.AddDate(0, 0, -daysAgo),
	}
}

func TestHealth_EmptyInputs(t *testing.T) {
	result := Health(nil, nil)

	if result.Score != 75 {
		t.Errorf("Score: got %v, want 75 fallback", result.Score)
	}
	if len(result.Breakdown) != 0 {
		t.Errorf("Breakdown: got %d categories, want 0", len(result.Breakdown))
	}
}

func TestHealth_SleepOnly(t *testing.T) {
	metrics := []*model.HealthMetric{metric(model.MetricTypeSleep, 8, 0)}

	result := Health(metrics, nil)

	// Sleep 100 at weight 0.30 plus the habit fallback 80 at 0.25:
	// (100*0.30 + 80*0.25) / 0.55 = 90.909... -> 90.9
	if result.Score != 90.9 {
		t.Errorf("Score: got %v, want 90.9", result.Score)
	}
	if len(result.Breakdown) != 2 {
		t.Fatalf("Breakdown: got %d categories, want 2", len(result.Breakdown))
	}
	if result.Breakdown[0].Category != "Sleep" || result.Breakdown[0].Score != 100 {
		t.Errorf("Sleep category: got %+v", result.Breakdown[0])
	}
	if result.Breakdown[0].Details != "8h (optimal: 7-9h)" {
		t.Errorf("Sleep details: got %q", result.Breakdown[0].Details)
	}
	if result.Breakdown[1].Category != "Habits" || result.Breakdown[1].Score != 80 {
		t.Errorf("Habits fallback category: got %+v", result.Breakdown[1])
	}
}

func TestHealth_HabitsOnly(t *testing.T) {
	habits := []*model.Habit{
		{Name: "Reading", Type: model.HabitTypeBoolean, CompletedToday: true, TargetValue: 1},
	}

	result := Health(nil, habits)

	if result.Score != 100 {
		t.Errorf("Score: got %v, want 100", result.Score)
	}
	if len(result.Breakdown) != 1 {
		t.Fatalf("Breakdown: got %d categories, want 1", len(result.Breakdown))
	}
	got := result.Breakdown[0]
	if got.Category != "Habits" || got.Score != 100 {
		t.Errorf("Habits category: got %+v", got)
	}
	if got.Details != "1/1 completed today" {
		t.Errorf("Habits details: got %q", got.Details)
	}
}

func TestHealth_SleepThresholds(t *testing.T) {
	tests := []struct {
		hours float64
		want  float64
	}{
		{7, 100},
		{7.5, 100},
		{9, 100},
		{6, 80},
		{6.9, 80},
		{5, 60},
		{5.5, 60},
		{4, 40},
		{9.5, 40},
	}

	for _, tt := range tests {
		metrics := []*model.HealthMetric{metric(model.MetricTypeSleep, tt.hours, 0)}
		result := Health(metrics, nil)
		if result.Breakdown[0].Score != tt.want {
			t.Errorf("sleep %vh: got score %v, want %v", tt.hours, result.Breakdown[0].Score, tt.want)
		}
	}
}

func TestHealth_StepsThresholds(t *testing.T) {
	tests := []struct {
		steps float64
		want  float64
	}{
		{12000, 100},
		{10000, 100},
		{9500, 80},
		{8000, 80},
		{6000, 60},
		{3000, 40},
	}

	for _, tt := range tests {
		metrics := []*model.HealthMetric{metric(model.MetricTypeSteps, tt.steps, 0)}
		result := Health(metrics, nil)
		if result.Breakdown[0].Score != tt.want {
			t.Errorf("steps %v: got score %v, want %v", tt.steps, result.Breakdown[0].Score, tt.want)
		}
	}
}

func TestHealth_StepsDetailsFormatting(t *testing.T) {
	metrics := []*model.HealthMetric{metric(model.MetricTypeSteps, 9500, 0)}

	result := Health(metrics, nil)

	want := "9,500 steps (target: 10,000)"
	if result.Breakdown[0].Details != want {
		t.Errorf("Activity details: got %q, want %q", result.Breakdown[0].Details, want)
	}
}

func TestHealth_HydrationFromHabit(t *testing.T) {
	habits := []*model.Habit{
		{Name: "Hydration", Type: model.HabitTypeCounter, TargetValue: 8, CurrentValue: 5},
	}
	// Water metric present too; the habit wins.
	metrics := []*model.HealthMetric{metric(model.MetricTypeWater, 2, 0)}

	result := Health(metrics, habits)

	var hydration *CategoryScore
	for i := range result.Breakdown {
		if result.Breakdown[i].Category == "Hydration" {
			hydration = &result.Breakdown[i]
		}
	}
	if hydration == nil {
		t.Fatal("missing Hydration category")
	}
	if hydration.Score != 62.5 {
		t.Errorf("Hydration score: got %v, want 62.5", hydration.Score)
	}
	if hydration.Details != "5/8 glasses" {
		t.Errorf("Hydration details: got %q", hydration.Details)
	}
}

func TestHealth_HydrationFromWaterMetric(t *testing.T) {
	metrics := []*model.HealthMetric{metric(model.MetricTypeWater, 6, 0)}

	result := Health(metrics, nil)

	var hydration *CategoryScore
	for i := range result.Breakdown {
		if result.Breakdown[i].Category == "Hydration" {
			hydration = &result.Breakdown[i]
		}
	}
	if hydration == nil {
		t.Fatal("missing Hydration category")
	}
	if hydration.Score != 75 {
		t.Errorf("Hydration score: got %v, want 75", hydration.Score)
	}
	if hydration.Details != "6/8 glasses" {
		t.Errorf("Hydration details: got %q", hydration.Details)
	}
}

func TestHealth_LatestMetricWins(t *testing.T) {
	metrics := []*model.HealthMetric{
		metric(model.MetricTypeSleep, 4, 3),
		metric(model.MetricTypeSleep, 8, 0),
		metric(model.MetricTypeSleep, 5, 1),
	}

	result := Health(metrics, nil)
	if result.Breakdown[0].Score != 100 {
		t.Errorf("Sleep score: got %v, want 100 from latest sample", result.Breakdown[0].Score)
	}
}

func TestHealth_CounterHabitCountsWhenTargetMet(t *testing.T) {
	habits := []*model.Habit{
		{Name: "Pushups", Type: model.HabitTypeCounter, TargetValue: 20, CurrentValue: 20},
		{Name: "Reading", Type: model.HabitTypeBoolean, TargetValue: 1, CompletedToday: false},
	}

	result := Health(nil, habits)

	if result.Breakdown[0].Score != 50 {
		t.Errorf("Habits score: got %v, want 50", result.Breakdown[0].Score)
	}
	if result.Breakdown[0].Details != "1/2 completed today" {
		t.Errorf("Habits details: got %q", result.Breakdown[0].Details)
	}
}

func TestHealth_AllCategoriesPerfect(t *testing.T) {
	metrics := []*model.HealthMetric{
		metric(model.MetricTypeSleep, 8, 0),
		metric(model.MetricTypeSteps, 12000, 0),
	}
	habits := []*model.Habit{
		{Name: "Hydration", Type: model.HabitTypeCounter, TargetValue: 8, CurrentValue: 8},
		{Name: "Exercise", Type: model.HabitTypeBoolean, TargetValue: 1, CompletedToday: true},
	}

	result := Health(metrics, habits)

	if result.Score != 100 {
		t.Errorf("Score: got %v, want 100", result.Score)
	}
	if len(result.Breakdown) != 4 {
		t.Errorf("Breakdown: got %d categories, want 4", len(result.Breakdown))
	}
}

func TestHealth_ScoreBounds(t *testing.T) {
	inputs := []struct {
		metrics []*model.HealthMetric
		habits  []*model.Habit
	}{
		{nil, nil},
		{[]*model.HealthMetric{metric(model.MetricTypeSleep, 2, 0)}, nil},
		{[]*model.HealthMetric{metric(model.MetricTypeWater, 99, 0)}, nil},
		{nil, []*model.Habit{{Name: "Water", Type: model.HabitTypeCounter, TargetValue: 0, CurrentValue: 3}}},
		{
			[]*model.HealthMetric{
				metric(model.MetricTypeSleep, 1, 0),
				metric(model.MetricTypeSteps, 100, 0),
			},
			[]*model.Habit{{Name: "Reading", Type: model.HabitTypeBoolean, TargetValue: 1}},
		},
	}

	for i, in := range inputs {
		result := Health(in.metrics, in.habits)
		if result.Score < 0 || result.Score > 100 || math.IsNaN(result.Score) {
			t.Errorf("case %d: score %v out of [0,100]", i, result.Score)
		}
	}
}

func TestHealth_IgnoresUnrelatedMetricTypes(t *testing.T) {
	metrics := []*model.HealthMetric{
		metric(model.MetricTypeWeight, 70, 0),
		metric(model.MetricTypeHeartRate, 60, 0),
		{ID: "m", Type: "blood_pressure", Value: 120, Date: time.Now()},
	}

	result := Health(metrics, nil)

	if result.Score != 75 {
		t.Errorf("Score: got %v, want 75 with no scoreable categories", result.Score)
	}
}
