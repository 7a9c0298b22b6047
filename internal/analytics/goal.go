package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/pulsedash/pulse/internal/model"
)

// Traffic-light trajectory indicator for a goal.
const (
	ColorRed   = "red"
	ColorAmber = "amber"
	ColorGreen = "green"
)

// Goals without a deadline are evaluated against a rolling one-year horizon.
const fallbackWindowDays = 365

type Milestone struct {
	Percentage  float64    `json:"percentage"`
	Reached     bool       `json:"reached"`
	Date        *time.Time `json:"date,omitempty"`
	Celebration string     `json:"celebration,omitempty"`
}

type GoalAnalytics struct {
	Progress                float64     `json:"progress"`
	ProgressPercentage      float64     `json:"progressPercentage"`
	IsOnTrack               bool        `json:"isOnTrack"`
	DaysRemaining           int         `json:"daysRemaining"`
	DailyTargetRemaining    float64     `json:"dailyTargetRemaining"`
	ProjectedCompletionDate time.Time   `json:"projectedCompletionDate"`
	Velocity                float64     `json:"velocity"`
	Streak                  int         `json:"streak"`
	Milestones              []Milestone `json:"milestones"`
	ColorCode               string      `json:"colorCode"`
	Insights                []string    `json:"insights"`
	Suggestions             []string    `json:"suggestions"`
}

var milestoneSteps = []struct {
	percentage  float64
	celebration string
}{
	{25, "Great start!"},
	{50, "Halfway there!"},
	{75, "Almost there!"},
	{90, "So close!"},
	{100, "Goal achieved!"},
}

// ForGoal derives the full analytics report for one goal from its entry
// history. It is pure and deterministic for a fixed now, tolerates an empty
// or unordered entry slice, and silently drops entries without a usable date.
func ForGoal(goal *model.Goal, entries []*model.GoalEntry, now time.Time) GoalAnalytics {
	valid := datedEntries(entries)

	progress := goal.CurrentValue
	progressPercentage := progress
	if goal.GoalType != model.GoalTypePercentage {
		if goal.TargetValue <= 0 {
			// A number goal with no positive target has nothing left to
			// reach; call it complete instead of dividing by zero.
			progressPercentage = 100
		} else {
			progressPercentage = math.Min(progress/goal.TargetValue*100, 100)
		}
	}

	daysRemaining := fallbackWindowDays
	totalDays := fallbackWindowDays
	if goal.TargetDate != nil {
		daysRemaining = max(0, daysBetween(*goal.TargetDate, now))
		totalDays = daysBetween(*goal.TargetDate, goal.CreatedAt)
	}
	daysPassed := totalDays - daysRemaining

	// Velocity: average daily progress over the trailing 7-day window.
	var recentProgress float64
	for _, e := range valid {
		if daysBetween(now, e.Date) <= 7 {
			recentProgress += e.Value
		}
	}
	divisor := 1
	if daysPassed > 0 {
		divisor = min(7, daysPassed)
	}
	velocity := recentProgress / float64(divisor)

	remainingValue := goal.TargetValue - progress
	var dailyTargetRemaining float64
	if daysRemaining > 0 {
		dailyTargetRemaining = remainingValue / float64(daysRemaining)
	}

	projectedDays := daysRemaining * 2
	if velocity > 0 {
		projectedDays = int(math.Ceil(remainingValue / velocity))
	}
	projectedCompletionDate := now.AddDate(0, 0, projectedDays)

	var expectedProgress float64
	if daysPassed > 0 {
		expectedProgress = float64(daysPassed) / float64(totalDays) * goal.TargetValue
	}
	isOnTrack := progress >= expectedProgress*0.9 // 10% tolerance

	// Red takes priority over amber.
	colorCode := ColorGreen
	switch {
	case progressPercentage < 50 && float64(daysRemaining) < float64(totalDays)*0.5:
		colorCode = ColorRed
	case !isOnTrack:
		colorCode = ColorAmber
	}

	streak := streakDays(valid, now)

	return GoalAnalytics{
		Progress:                progress,
		ProgressPercentage:      progressPercentage,
		IsOnTrack:               isOnTrack,
		DaysRemaining:           daysRemaining,
		DailyTargetRemaining:    dailyTargetRemaining,
		ProjectedCompletionDate: projectedCompletionDate,
		Velocity:                velocity,
		Streak:                  streak,
		Milestones:              goalMilestones(goal, valid, progressPercentage),
		ColorCode:               colorCode,
		Insights:                goalInsights(goal, valid, velocity, isOnTrack, streak),
		Suggestions:             goalSuggestions(goal, velocity, dailyTargetRemaining, isOnTrack, daysRemaining),
	}
}

// datedEntries filters out nil entries and entries without a date.
func datedEntries(entries []*model.GoalEntry) []*model.GoalEntry {
	out := make([]*model.GoalEntry, 0, len(entries))
	for _, e := range entries {
		if e == nil || e.Date.IsZero() {
			continue
		}
		out = append(out, e)
	}
	return out
}

// daysBetween counts whole days from b to a, truncated toward zero.
func daysBetween(a, b time.Time) int {
	return int(a.Sub(b) / (24 * time.Hour))
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// streakDays counts consecutive days with at least one entry, scanning up to
// 30 days back from today. A missing entry today does not break the streak;
// any earlier gap does.
func streakDays(entries []*model.GoalEntry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	days := make(map[time.Time]bool, len(entries))
	for _, e := range entries {
		days[startOfDay(e.Date, now.Location())] = true
	}

	streak := 0
	today := startOfDay(now, now.Location())
	for i := 0; i < 30; i++ {
		if days[today.AddDate(0, 0, -i)] {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak
}

// goalMilestones marks the fixed progress thresholds and, for each reached
// one, replays entries in chronological order to find the date the
// cumulative value first crossed it.
func goalMilestones(goal *model.Goal, entries []*model.GoalEntry, progressPercentage float64) []Milestone {
	contributing := make([]*model.GoalEntry, 0, len(entries))
	for _, e := range entries {
		if e.Value != 0 {
			contributing = append(contributing, e)
		}
	}
	sort.SliceStable(contributing, func(i, j int) bool {
		return contributing[i].Date.Before(contributing[j].Date)
	})

	milestones := make([]Milestone, 0, len(milestoneSteps))
	for _, step := range milestoneSteps {
		m := Milestone{
			Percentage: step.percentage,
			Reached:    progressPercentage >= step.percentage,
		}

		if m.Reached && len(contributing) > 0 {
			target := step.percentage / 100 * goal.TargetValue
			var cumulative float64
			for _, e := range contributing {
				cumulative += e.Value
				if cumulative >= target {
					date := e.Date
					m.Date = &date
					break
				}
			}
			m.Celebration = step.celebration
		}

		milestones = append(milestones, m)
	}
	return milestones
}

func goalInsights(goal *model.Goal, entries []*model.GoalEntry, velocity float64, isOnTrack bool, streak int) []string {
	insights := []string{}

	if streak >= 7 {
		insights = append(insights, fmt.Sprintf("Amazing %d-day streak! You're building incredible momentum.", streak))
	} else if streak >= 3 {
		insights = append(insights, fmt.Sprintf("%d days in a row! Keep the momentum going.", streak))
	}

	if velocity > 0 {
		insights = append(insights, fmt.Sprintf("You're averaging %.1f %s per week.", velocity*7, goal.Unit))
	}

	if isOnTrack {
		insights = append(insights, "You're on track to reach your goal on time!")
	} else {
		insights = append(insights, "You're falling behind schedule. Consider adjusting your daily target.")
	}

	// Weekend pattern over the 7 most recent entries. Too few recent entries
	// make the ratio meaningless, so skip the check below 3.
	recent := recentEntries(entries, 7)
	if len(recent) >= 3 {
		weekend := 0
		for _, e := range recent {
			switch e.Date.Weekday() {
			case time.Saturday, time.Sunday:
				weekend++
			}
		}
		if float64(weekend) > float64(len(recent))*0.6 {
			insights = append(insights, "You're more productive on weekends! Consider planning more activities then.")
		}
	}

	return insights
}

// recentEntries returns up to n entries ordered most recent first.
func recentEntries(entries []*model.GoalEntry, n int) []*model.GoalEntry {
	sorted := make([]*model.GoalEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func goalSuggestions(goal *model.Goal, velocity, dailyTargetRemaining float64, isOnTrack bool, daysRemaining int) []string {
	suggestions := []string{}

	if !isOnTrack && daysRemaining > 0 {
		increase := int(math.Ceil(dailyTargetRemaining - velocity))
		if increase > 0 {
			suggestions = append(suggestions, fmt.Sprintf("Increase your daily average by %d %s to finish on time.", increase, goal.Unit))
		}
	}

	if velocity == 0 && daysRemaining > 0 {
		suggestions = append(suggestions, fmt.Sprintf("Start with small wins! Aim for just 1-2 %s today.", goal.Unit))
	}

	if velocity > dailyTargetRemaining && isOnTrack {
		suggestions = append(suggestions, "You're ahead of schedule! Consider raising your target or setting a new goal.")
	}

	if daysRemaining < 30 && !isOnTrack {
		suggestions = append(suggestions, "Less than a month left! Focus on consistency over perfection.")
	}

	// Burnout guard.
	if velocity > dailyTargetRemaining*3 {
		suggestions = append(suggestions, "You're working very hard! Consider taking a rest day to avoid burnout.")
	}

	return suggestions
}
