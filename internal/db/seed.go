package db

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/pulsedash/pulse/internal/model"
)

// DemoUserID is the well-known id of the single demo account the dashboard
// serves.
const DemoUserID = "demo-user"

// SeedDemoData inserts the demo user with a set of tasks, habits, goals,
// goal entries, health metrics, notes and time blocks so a fresh install
// has something to render. It is a no-op when any user already exists.
func SeedDemoData(db *sqlx.DB) error {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO users (id, username, password, name, role, avatar)
	                  VALUES ($1, $2, $3, $4, $5, $6)`,
		DemoUserID, "alexchen", "password", "Alex Chen", "Product Designer", "")
	if err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}

	now := time.Now()

	tasks := []*model.Task{
		{Title: "Finish Q1 product roadmap presentation", Priority: model.TaskPriorityHigh, DueTime: "14:00"},
		{Title: "Review user feedback from last sprint", Priority: model.TaskPriorityMedium, DueTime: "16:00"},
		{Title: "Morning workout - 30 minutes", Priority: model.TaskPriorityLow, DueTime: "07:30", Completed: true},
	}
	for _, task := range tasks {
		_, err = tx.Exec(`INSERT INTO tasks (id, user_id, title, priority, due_time, completed, created_at)
		                  VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			uuid.New().String(), DemoUserID, task.Title, task.Priority, task.DueTime, task.Completed, now)
		if err != nil {
			return fmt.Errorf("failed to seed task: %w", err)
		}
	}

	habits := []*model.Habit{
		{Name: "Reading", Emoji: "📚", Streak: 23, Color: "orange", Type: model.HabitTypeBoolean, TargetValue: 1},
		{Name: "Exercise", Emoji: "💪", Streak: 7, CompletedToday: true, Color: "red", Type: model.HabitTypeBoolean, TargetValue: 1, CurrentValue: 1},
		{Name: "Meditation", Emoji: "🧘", Streak: 12, Color: "purple", Type: model.HabitTypeBoolean, TargetValue: 1},
		{Name: "Hydration", Emoji: "💧", Streak: 5, Color: "blue", Type: model.HabitTypeCounter, TargetValue: 8, CurrentValue: 5},
	}
	for _, habit := range habits {
		_, err = tx.Exec(`INSERT INTO habits (id, user_id, name, emoji, streak, completed_today, color, type, target_value, current_value)
		                  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			uuid.New().String(), DemoUserID, habit.Name, habit.Emoji, habit.Streak,
			habit.CompletedToday, habit.Color, habit.Type, habit.TargetValue, habit.CurrentValue)
		if err != nil {
			return fmt.Errorf("failed to seed habit: %w", err)
		}
	}

	readingGoalID := uuid.New().String()
	writingGoalID := uuid.New().String()
	launchTarget := now.AddDate(0, 2, 0)
	yearEnd := now.AddDate(0, 6, 0)

	goals := []struct {
		id          string
		title       string
		description string
		goalType    string
		target      float64
		current     float64
		unit        string
		targetDate  time.Time
		color       string
	}{
		{uuid.New().String(), "Launch Product V2.0", "Complete development and launch of the new product version",
			model.GoalTypePercentage, 100, 75, "%", launchTarget, "emerald"},
		{readingGoalID, "Read 24 Books", "Complete 24 books this year to expand knowledge",
			model.GoalTypeNumber, 24, 6, "books", yearEnd, "purple"},
		{writingGoalID, "Write 500 Pages", "Complete first draft of novel",
			model.GoalTypeNumber, 500, 127, "pages", yearEnd, "blue"},
	}
	for _, g := range goals {
		_, err = tx.Exec(`INSERT INTO goals (id, user_id, title, description, goal_type, target_value, current_value, unit, target_date, color, created_at, is_archived)
		                  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			g.id, DemoUserID, g.title, g.description, g.goalType, g.target, g.current,
			g.unit, g.targetDate, g.color, now.AddDate(0, -4, 0), false)
		if err != nil {
			return fmt.Errorf("failed to seed goal: %w", err)
		}
	}

	entries := []struct {
		goalID  string
		value   float64
		note    string
		daysAgo int
	}{
		{readingGoalID, 1, "Finished 'Atomic Habits'", 40},
		{readingGoalID, 1, "Completed 'The Lean Startup'", 30},
		{readingGoalID, 2, "Read two novels this week", 14},
		{readingGoalID, 1, "Finished design thinking book", 6},
		{readingGoalID, 1, "Psychology of design", 2},
		{writingGoalID, 15, "Morning writing session", 5},
		{writingGoalID, 22, "Character development chapter", 4},
		{writingGoalID, 18, "Dialog heavy scene", 3},
		{writingGoalID, 25, "Plot twist chapter", 2},
		{writingGoalID, 12, "Edit and revisions", 1},
		{writingGoalID, 35, "Productive weekend writing", 1},
	}
	for _, e := range entries {
		_, err = tx.Exec(`INSERT INTO goal_entries (id, goal_id, value, note, date)
		                  VALUES ($1, $2, $3, $4, $5)`,
			uuid.New().String(), e.goalID, e.value, e.note, now.AddDate(0, 0, -e.daysAgo))
		if err != nil {
			return fmt.Errorf("failed to seed goal entry: %w", err)
		}
	}

	metrics := []*model.HealthMetric{
		{Type: model.MetricTypeSleep, Value: 7.5, Unit: "hours"},
		{Type: model.MetricTypeSteps, Value: 8432, Unit: "steps"},
		{Type: model.MetricTypeWater, Value: 5, Unit: "glasses"},
	}
	for _, metric := range metrics {
		_, err = tx.Exec(`INSERT INTO health_metrics (id, user_id, type, value, unit, date)
		                  VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New().String(), DemoUserID, metric.Type, metric.Value, metric.Unit, now)
		if err != nil {
			return fmt.Errorf("failed to seed health metric: %w", err)
		}
	}

	notes := []*model.Note{
		{Content: "## Sprint retro\n\n- Ship the onboarding flow next week\n- Follow up with **design** on the empty states", Tags: model.Tags{"work", "retro"}},
		{Content: "Book idea: habits compound the same way interest does.", Tags: model.Tags{"reading"}},
	}
	for _, note := range notes {
		_, err = tx.Exec(`INSERT INTO notes (id, user_id, content, tags, created_at, updated_at)
		                  VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New().String(), DemoUserID, note.Content, note.Tags, now, now)
		if err != nil {
			return fmt.Errorf("failed to seed note: %w", err)
		}
	}

	blocks := []*model.TimeBlock{
		{Title: "Team Standup", StartTime: "09:00", Duration: 30, Color: "indigo"},
		{Title: "Deep Work - Product Strategy", StartTime: "10:00", Duration: 120, Color: "emerald"},
		{Title: "Client Presentation", StartTime: "14:00", Duration: 60, Color: "orange"},
	}
	for _, block := range blocks {
		_, err = tx.Exec(`INSERT INTO time_blocks (id, user_id, title, start_time, duration, color, date)
		                  VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			uuid.New().String(), DemoUserID, block.Title, block.StartTime, block.Duration, block.Color, now)
		if err != nil {
			return fmt.Errorf("failed to seed time block: %w", err)
		}
	}

	err = tx.Commit()
	if err != nil {
		return err
	}

	slog.Info("demo data seeded", "user_id", DemoUserID)
	return nil
}
