package routes

import (
	"net/http"

	"github.com/pulsedash/pulse/internal/app"
	"github.com/pulsedash/pulse/internal/handler"
	"github.com/pulsedash/pulse/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	dashboard := handler.NewDashboardHandler(app.DashboardService)
	task := handler.NewTaskHandler(app.TaskService)
	habit := handler.NewHabitHandler(app.HabitService)
	health := handler.NewHealthHandler(app.HealthService)
	goal := handler.NewGoalHandler(app.GoalService)
	note := handler.NewNoteHandler(app.NoteService)
	timeBlock := handler.NewTimeBlockHandler(app.TimeBlockService)

	mux := http.NewServeMux()

	// Dashboard
	mux.HandleFunc("GET /api/dashboard", dashboard.Overview)

	// Tasks
	mux.HandleFunc("GET /api/tasks", task.List)
	mux.HandleFunc("POST /api/tasks", task.Create)
	mux.HandleFunc("PATCH /api/tasks/{id}", task.Update)
	mux.HandleFunc("DELETE /api/tasks/{id}", task.Delete)

	// Habits
	mux.HandleFunc("GET /api/habits", habit.List)
	mux.HandleFunc("POST /api/habits", habit.Create)
	mux.HandleFunc("PATCH /api/habits/{id}", habit.Update)
	mux.HandleFunc("DELETE /api/habits/{id}", habit.Delete)

	// Health
	mux.HandleFunc("GET /api/health-metrics", health.ListMetrics)
	mux.HandleFunc("POST /api/health-metrics", health.CreateMetric)
	mux.HandleFunc("GET /api/health-score", health.Score)

	// Goals
	mux.HandleFunc("GET /api/goals", goal.List)
	mux.HandleFunc("POST /api/goals", goal.Create)
	mux.HandleFunc("GET /api/goals/{id}", goal.Get)
	mux.HandleFunc("PATCH /api/goals/{id}", goal.Update)
	mux.HandleFunc("DELETE /api/goals/{id}", goal.Delete)
	mux.HandleFunc("GET /api/goals/{id}/entries", goal.ListEntries)
	mux.HandleFunc("POST /api/goals/{id}/entries", goal.CreateEntry)
	mux.HandleFunc("DELETE /api/goal-entries/{id}", goal.DeleteEntry)
	mux.HandleFunc("GET /api/goals/{id}/analytics", goal.Analytics)

	// Notes
	mux.HandleFunc("GET /api/notes", note.List)
	mux.HandleFunc("POST /api/notes", note.Create)
	mux.HandleFunc("PATCH /api/notes/{id}", note.Update)
	mux.HandleFunc("GET /api/notes/{id}/html", note.HTML)

	// Time blocks
	mux.HandleFunc("GET /api/time-blocks", timeBlock.List)
	mux.HandleFunc("POST /api/time-blocks", timeBlock.Create)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.RequestLogging,
		middleware.DemoUser(app.UserService),
	)

	return handler
}
