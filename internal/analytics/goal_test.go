package analytics

import (
	"strings"
	"testing"
	"time"

	"github.com/pulsedash/pulse/internal/model"
)

var testNow = time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC) // a Monday

func numberGoal(target, current float64, createdDaysAgo, targetInDays int) *model.Goal {
	targetDate := testNow.AddDate(0, 0, targetInDays)
	return &model.Goal{
		ID:           "goal-1",
		UserID:       "demo-user",
		Title:        "Read 24 Books",
		GoalType:     model.GoalTypeNumber,
		TargetValue:  target,
		CurrentValue: current,
		Unit:         "books",
		TargetDate:   &targetDate,
		CreatedAt:    testNow.AddDate(0, 0, -createdDaysAgo),
	}
}

func entry(value float64, daysAgo int) *model.GoalEntry {
	return &model.GoalEntry{
		ID:     "entry",
		GoalID: "goal-1",
		Value:  value,
		Date:   testNow.AddDate(0, 0, -daysAgo),
	}
}

func hasMessage(messages []string, substr string) bool {
	for _, m := range messages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

func TestForGoal_ReadingScenario(t *testing.T) {
	goal := numberGoal(24, 6, 100, 100)
	entries := []*model.GoalEntry{
		entry(3, 10),
		entry(3, 20),
	}

	a := ForGoal(goal, entries, testNow)

	if a.Progress != 6 {
		t.Errorf("Progress: got %v, want 6", a.Progress)
	}
	if a.ProgressPercentage != 25 {
		t.Errorf("ProgressPercentage: got %v, want 25", a.ProgressPercentage)
	}
	if a.DaysRemaining != 100 {
		t.Errorf("DaysRemaining: got %d, want 100", a.DaysRemaining)
	}

	// 25% milestone reached, date recorded from the chronological replay:
	// the 6 books target is crossed by the entry 10 days ago.
	m := a.Milestones[0]
	if m.Percentage != 25 || !m.Reached {
		t.Fatalf("25%% milestone: got %+v, want reached", m)
	}
	if m.Date == nil || !m.Date.Equal(testNow.AddDate(0, 0, -10)) {
		t.Errorf("25%% milestone date: got %v, want %v", m.Date, testNow.AddDate(0, 0, -10))
	}
	if m.Celebration != "Great start!" {
		t.Errorf("25%% celebration: got %q", m.Celebration)
	}
	for _, higher := range a.Milestones[1:] {
		if higher.Reached {
			t.Errorf("%v%% milestone should be unreached at 25%% progress", higher.Percentage)
		}
	}

	// Expected progress at half time is 12; 6 is below the 10.8 tolerance
	// line, so behind schedule but not red (half the time still remains).
	if a.IsOnTrack {
		t.Error("IsOnTrack: got true, want false")
	}
	if a.ColorCode != ColorAmber {
		t.Errorf("ColorCode: got %q, want amber", a.ColorCode)
	}

	if !hasMessage(a.Suggestions, "Increase your daily average by 1 books") {
		t.Errorf("missing increase suggestion, got %v", a.Suggestions)
	}
	if !hasMessage(a.Suggestions, "Start with small wins") {
		t.Errorf("missing small-wins suggestion, got %v", a.Suggestions)
	}
}

func TestForGoal_EmptyEntries(t *testing.T) {
	goal := &model.Goal{
		GoalType:     model.GoalTypeNumber,
		TargetValue:  100,
		CurrentValue: 0,
		Unit:         "pages",
		CreatedAt:    testNow.AddDate(0, 0, -10),
	}

	a := ForGoal(goal, nil, testNow)

	if a.Streak != 0 {
		t.Errorf("Streak: got %d, want 0", a.Streak)
	}
	if a.Velocity != 0 {
		t.Errorf("Velocity: got %v, want 0", a.Velocity)
	}
	if a.DaysRemaining != 365 {
		t.Errorf("DaysRemaining: got %d, want 365 fallback", a.DaysRemaining)
	}
	if a.Insights == nil || a.Suggestions == nil {
		t.Error("insights and suggestions must be non-nil")
	}
	for _, m := range a.Milestones {
		if m.Reached {
			t.Errorf("%v%% milestone reached with zero progress", m.Percentage)
		}
	}
}

func TestForGoal_CompletedGoal(t *testing.T) {
	goal := numberGoal(24, 24, 200, 100)
	entries := []*model.GoalEntry{
		entry(12, 60),
		entry(12, 30),
	}

	a := ForGoal(goal, entries, testNow)

	if a.ProgressPercentage != 100 {
		t.Errorf("ProgressPercentage: got %v, want 100", a.ProgressPercentage)
	}
	last := a.Milestones[len(a.Milestones)-1]
	if last.Percentage != 100 || !last.Reached {
		t.Errorf("100%% milestone: got %+v, want reached", last)
	}
	if last.Celebration != "Goal achieved!" {
		t.Errorf("100%% celebration: got %q", last.Celebration)
	}
	if last.Date == nil || !last.Date.Equal(testNow.AddDate(0, 0, -30)) {
		t.Errorf("100%% milestone date: got %v, want %v", last.Date, testNow.AddDate(0, 0, -30))
	}
}

func TestForGoal_MilestonesMonotonic(t *testing.T) {
	for _, current := range []float64{0, 10, 30, 55, 80, 95, 120} {
		goal := numberGoal(100, current, 50, 50)
		a := ForGoal(goal, []*model.GoalEntry{entry(current, 5)}, testNow)

		seenUnreached := false
		for _, m := range a.Milestones {
			if !m.Reached {
				seenUnreached = true
			} else if seenUnreached {
				t.Errorf("current=%v: %v%% reached after an unreached lower milestone", current, m.Percentage)
			}
		}
	}
}

func TestForGoal_ZeroTargetValue(t *testing.T) {
	goal := numberGoal(0, 0, 10, 10)

	a := ForGoal(goal, nil, testNow)

	if a.ProgressPercentage != 100 {
		t.Errorf("ProgressPercentage: got %v, want 100 for zero target", a.ProgressPercentage)
	}
}

func TestForGoal_Velocity(t *testing.T) {
	// 100 days passed caps the divisor at 7.
	goal := numberGoal(100, 14, 100, 100)
	entries := []*model.GoalEntry{
		entry(7, 1),
		entry(7, 3),
		entry(50, 10), // outside the 7-day window
	}

	a := ForGoal(goal, entries, testNow)
	if a.Velocity != 2 {
		t.Errorf("Velocity: got %v, want 2", a.Velocity)
	}
}

func TestForGoal_VelocityFreshGoal(t *testing.T) {
	// Goal created today: daysPassed is 0, divisor falls back to 1.
	goal := numberGoal(10, 5, 0, 10)
	entries := []*model.GoalEntry{
		{GoalID: "goal-1", Value: 5, Date: testNow.Add(-time.Hour)},
	}

	a := ForGoal(goal, entries, testNow)
	if a.Velocity != 5 {
		t.Errorf("Velocity: got %v, want 5", a.Velocity)
	}
}

func TestForGoal_Projection(t *testing.T) {
	t.Run("WithVelocity", func(t *testing.T) {
		goal := numberGoal(24, 6, 100, 100)
		entries := []*model.GoalEntry{entry(14, 2)} // velocity 2/day
		a := ForGoal(goal, entries, testNow)

		want := testNow.AddDate(0, 0, 9) // ceil(18 / 2)
		if !a.ProjectedCompletionDate.Equal(want) {
			t.Errorf("ProjectedCompletionDate: got %v, want %v", a.ProjectedCompletionDate, want)
		}
	})

	t.Run("NoVelocity", func(t *testing.T) {
		goal := numberGoal(24, 6, 100, 10)
		a := ForGoal(goal, nil, testNow)

		want := testNow.AddDate(0, 0, 20) // daysRemaining * 2
		if !a.ProjectedCompletionDate.Equal(want) {
			t.Errorf("ProjectedCompletionDate: got %v, want %v", a.ProjectedCompletionDate, want)
		}
	})
}

func TestForGoal_ColorCode(t *testing.T) {
	tests := []struct {
		name    string
		goal    *model.Goal
		entries []*model.GoalEntry
		want    string
	}{
		{
			name: "RedWhenBehindAndPastHalfway",
			goal: numberGoal(100, 10, 80, 20),
			want: ColorRed,
		},
		{
			name: "AmberWhenOffTrackButAboveHalf",
			goal: numberGoal(100, 60, 90, 10),
			want: ColorAmber,
		},
		{
			name:    "GreenWhenOnTrack",
			goal:    numberGoal(100, 60, 50, 50),
			entries: []*model.GoalEntry{entry(10, 2)},
			want:    ColorGreen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ForGoal(tt.goal, tt.entries, testNow)
			if a.ColorCode != tt.want {
				t.Errorf("ColorCode: got %q, want %q", a.ColorCode, tt.want)
			}
		})
	}
}

func TestForGoal_Streak(t *testing.T) {
	tests := []struct {
		name    string
		daysAgo []int
		want    int
	}{
		{"NoEntries", nil, 0},
		{"TodayOnly", []int{0}, 1},
		{"ThreeConsecutive", []int{0, 1, 2}, 3},
		{"TodayGraceDoesNotBreak", []int{1, 2}, 2},
		{"GapStopsCount", []int{0, 2, 3}, 1},
		{"MultipleEntriesSameDay", []int{0, 0, 1}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := numberGoal(100, 10, 50, 50)
			var entries []*model.GoalEntry
			for _, d := range tt.daysAgo {
				entries = append(entries, entry(1, d))
			}

			a := ForGoal(goal, entries, testNow)
			if a.Streak != tt.want {
				t.Errorf("Streak: got %d, want %d", a.Streak, tt.want)
			}
		})
	}
}

func TestForGoal_StreakInsights(t *testing.T) {
	goal := numberGoal(100, 50, 50, 50)

	var week []*model.GoalEntry
	for d := 0; d < 8; d++ {
		week = append(week, entry(1, d))
	}
	a := ForGoal(goal, week, testNow)
	if !hasMessage(a.Insights, "Amazing 8-day streak") {
		t.Errorf("missing high-streak insight, got %v", a.Insights)
	}

	a = ForGoal(goal, week[:3], testNow)
	if !hasMessage(a.Insights, "3 days in a row") {
		t.Errorf("missing medium-streak insight, got %v", a.Insights)
	}
}

func TestForGoal_WeekendInsight(t *testing.T) {
	goal := numberGoal(100, 50, 50, 50)
	weekendDays := []time.Time{
		time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC), // Saturday
		time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC), // Sunday
		time.Date(2025, 6, 8, 9, 0, 0, 0, time.UTC),  // Sunday
	}

	var entries []*model.GoalEntry
	for _, d := range weekendDays {
		entries = append(entries, &model.GoalEntry{GoalID: "goal-1", Value: 5, Date: d})
	}
	entries = append(entries, &model.GoalEntry{
		GoalID: "goal-1",
		Value:  5,
		Date:   time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC), // Wednesday
	})

	a := ForGoal(goal, entries, testNow)
	if !hasMessage(a.Insights, "more productive on weekends") {
		t.Errorf("missing weekend insight, got %v", a.Insights)
	}

	// Below three recent entries the ratio is meaningless and the check is
	// skipped, even when every entry is on a weekend.
	a = ForGoal(goal, entries[:2], testNow)
	if hasMessage(a.Insights, "more productive on weekends") {
		t.Errorf("weekend insight should be skipped for 2 entries, got %v", a.Insights)
	}
}

func TestForGoal_BurnoutSuggestion(t *testing.T) {
	// Daily target remaining is (100-90)/100 = 0.1; velocity far above 3x.
	goal := numberGoal(100, 90, 100, 100)
	entries := []*model.GoalEntry{entry(70, 1)}

	a := ForGoal(goal, entries, testNow)
	if !hasMessage(a.Suggestions, "rest day") {
		t.Errorf("missing burnout suggestion, got %v", a.Suggestions)
	}
	if !hasMessage(a.Suggestions, "raising your target") {
		t.Errorf("missing ahead-of-schedule suggestion, got %v", a.Suggestions)
	}
}

func TestForGoal_FinalSprintSuggestion(t *testing.T) {
	goal := numberGoal(100, 10, 80, 20)
	a := ForGoal(goal, nil, testNow)

	if !hasMessage(a.Suggestions, "Less than a month left") {
		t.Errorf("missing final-sprint suggestion, got %v", a.Suggestions)
	}
}

func TestForGoal_InvalidEntriesFiltered(t *testing.T) {
	goal := numberGoal(100, 10, 50, 50)
	entries := []*model.GoalEntry{
		nil,
		{GoalID: "goal-1", Value: 5}, // no date
		entry(5, 1),
	}

	a := ForGoal(goal, entries, testNow)

	// Only the dated entry contributes.
	if a.Velocity != 5.0/7.0 {
		t.Errorf("Velocity: got %v, want %v", a.Velocity, 5.0/7.0)
	}
	if a.Streak != 1 {
		t.Errorf("Streak: got %d, want 1", a.Streak)
	}
}

func TestForGoal_PercentageGoal(t *testing.T) {
	goal := numberGoal(100, 75, 50, 50)
	goal.GoalType = model.GoalTypePercentage
	goal.Unit = "%"

	a := ForGoal(goal, nil, testNow)
	if a.ProgressPercentage != 75 {
		t.Errorf("ProgressPercentage: got %v, want 75 (direct)", a.ProgressPercentage)
	}
}

func TestForGoal_EntryOrderIrrelevant(t *testing.T) {
	goal := numberGoal(24, 12, 100, 100)
	forward := []*model.GoalEntry{entry(6, 40), entry(6, 20)}
	backward := []*model.GoalEntry{entry(6, 20), entry(6, 40)}

	a := ForGoal(goal, forward, testNow)
	b := ForGoal(goal, backward, testNow)

	if a.ProgressPercentage != b.ProgressPercentage || a.Streak != b.Streak || a.Velocity != b.Velocity {
		t.Errorf("analytics differ by entry order: %+v vs %+v", a, b)
	}
	for i := range a.Milestones {
		am, bm := a.Milestones[i], b.Milestones[i]
		if am.Reached != bm.Reached {
			t.Errorf("milestone %v reached differs by entry order", am.Percentage)
		}
		if (am.Date == nil) != (bm.Date == nil) || (am.Date != nil && !am.Date.Equal(*bm.Date)) {
			t.Errorf("milestone %v date differs by entry order", am.Percentage)
		}
	}
}
