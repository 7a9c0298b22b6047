package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pulsedash/pulse/internal/config"
	"github.com/pulsedash/pulse/internal/db"
	"github.com/pulsedash/pulse/internal/markdown"
	"github.com/pulsedash/pulse/internal/repository"
	"github.com/pulsedash/pulse/internal/service"
)

type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	UserService      *service.UserService
	TaskService      *service.TaskService
	HabitService     *service.HabitService
	GoalService      *service.GoalService
	HealthService    *service.HealthService
	NoteService      *service.NoteService
	TimeBlockService *service.TimeBlockService
	DashboardService *service.DashboardService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Seed the demo account on first boot
	if cfg.DemoSeed {
		err = db.SeedDemoData(database)
		if err != nil {
			return nil, fmt.Errorf("failed to seed demo data: %v", err)
		}
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	taskRepository := repository.NewTaskRepository(database)
	habitRepository := repository.NewHabitRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	goalEntryRepository := repository.NewGoalEntryRepository(database)
	healthMetricRepository := repository.NewHealthMetricRepository(database)
	noteRepository := repository.NewNoteRepository(database)
	timeBlockRepository := repository.NewTimeBlockRepository(database)

	// Services
	userService := service.NewUserService(userRepository)
	taskService := service.NewTaskService(taskRepository)
	habitService := service.NewHabitService(habitRepository)
	goalService := service.NewGoalService(goalRepository, goalEntryRepository)
	healthService := service.NewHealthService(healthMetricRepository, habitRepository)
	noteService := service.NewNoteService(noteRepository, markdown.NewParser())
	timeBlockService := service.NewTimeBlockService(timeBlockRepository)
	dashboardService := service.NewDashboardService(
		userService,
		taskService,
		habitService,
		goalService,
		healthService,
		noteService,
		timeBlockService,
	)

	return &App{
		Cfg:              cfg,
		DB:               database,
		UserService:      userService,
		TaskService:      taskService,
		HabitService:     habitService,
		GoalService:      goalService,
		HealthService:    healthService,
		NoteService:      noteService,
		TimeBlockService: timeBlockService,
		DashboardService: dashboardService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
