package analytics

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pulsedash/pulse/internal/model"
)

// Category weights for the composite health score. A category only
// contributes its weight when it has data to score.
const (
	weightSleep     = 0.30
	weightActivity  = 0.25
	weightHydration = 0.20
	weightHabits    = 0.25
)

// Score reported when there is nothing at all to score.
const healthScoreFallback = 75

// Fallback for the habit-consistency category when other categories have
// data but no habits are tracked yet.
const habitScoreFallback = 80

type CategoryScore struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
	Details  string  `json:"details"`
}

type HealthScore struct {
	Score     float64         `json:"score"`
	Breakdown []CategoryScore `json:"breakdown"`
}

var numberPrinter = message.NewPrinter(language.English)

// Health computes the weighted composite health score from metric samples
// and habit states. Pure, never errors; categories without data are omitted
// from the weighting rather than zero-filled.
func Health(metrics []*model.HealthMetric, habits []*model.Habit) HealthScore {
	breakdown := []CategoryScore{}
	var totalScore, totalWeight float64

	if sleep := latestMetric(metrics, model.MetricTypeSleep); sleep != nil {
		hours := sleep.Value
		score := 40.0
		switch {
		case hours >= 7 && hours <= 9:
			score = 100
		case hours >= 6 && hours < 7:
			score = 80
		case hours >= 5 && hours < 6:
			score = 60
		}

		breakdown = append(breakdown, CategoryScore{
			Category: "Sleep",
			Score:    score,
			Details:  fmt.Sprintf("%sh (optimal: 7-9h)", formatValue(hours)),
		})
		totalScore += score * weightSleep
		totalWeight += weightSleep
	}

	if steps := latestMetric(metrics, model.MetricTypeSteps); steps != nil {
		count := steps.Value
		score := 40.0
		switch {
		case count >= 10000:
			score = 100
		case count >= 8000:
			score = 80
		case count >= 5000:
			score = 60
		}

		breakdown = append(breakdown, CategoryScore{
			Category: "Activity",
			Score:    score,
			Details:  numberPrinter.Sprintf("%d steps (target: %d)", int64(count), 10000),
		})
		totalScore += score * weightActivity
		totalWeight += weightActivity
	}

	hydration := hydrationHabit(habits)
	water := latestMetric(metrics, model.MetricTypeWater)
	if hydration != nil || water != nil {
		var score float64
		var details string

		if hydration != nil {
			if hydration.TargetValue > 0 {
				score = math.Min(float64(hydration.CurrentValue)/float64(hydration.TargetValue)*100, 100)
			} else {
				score = 100
			}
			details = fmt.Sprintf("%d/%d glasses", hydration.CurrentValue, hydration.TargetValue)
		} else {
			score = math.Min(water.Value/8*100, 100)
			details = fmt.Sprintf("%s/8 glasses", formatValue(water.Value))
		}

		breakdown = append(breakdown, CategoryScore{
			Category: "Hydration",
			Score:    score,
			Details:  details,
		})
		totalScore += score * weightHydration
		totalWeight += weightHydration
	}

	// Habit consistency. Applies whenever habits are tracked, and as a
	// fallback-scored category whenever any metric category applied.
	if len(habits) > 0 || totalWeight > 0 {
		completed := 0
		for _, h := range habits {
			if h.Completed() {
				completed++
			}
		}

		score := float64(habitScoreFallback)
		if len(habits) > 0 {
			score = float64(completed) / float64(len(habits)) * 100
		}

		breakdown = append(breakdown, CategoryScore{
			Category: "Habits",
			Score:    score,
			Details:  fmt.Sprintf("%d/%d completed today", completed, len(habits)),
		})
		totalScore += score * weightHabits
		totalWeight += weightHabits
	}

	if totalWeight == 0 {
		return HealthScore{Score: healthScoreFallback, Breakdown: breakdown}
	}

	final := totalScore / totalWeight
	return HealthScore{
		Score:     math.Round(final*10) / 10,
		Breakdown: breakdown,
	}
}

// latestMetric returns the most recent sample of the given type; later
// samples win date ties.
func latestMetric(metrics []*model.HealthMetric, metricType string) *model.HealthMetric {
	var latest *model.HealthMetric
	for _, m := range metrics {
		if m == nil || m.Type != metricType {
			continue
		}
		if latest == nil || !m.Date.Before(latest.Date) {
			latest = m
		}
	}
	return latest
}

// hydrationHabit finds a habit tracking water intake by name.
func hydrationHabit(habits []*model.Habit) *model.Habit {
	for _, h := range habits {
		if h == nil {
			continue
		}
		name := strings.ToLower(h.Name)
		if strings.Contains(name, "hydration") || strings.Contains(name, "water") {
			return h
		}
	}
	return nil
}

// formatValue renders a metric value without trailing zeros (7.5 -> "7.5",
// 8 -> "8").
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
