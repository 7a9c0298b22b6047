package service

import (
	"time"

	"github.com/pulsedash/pulse/internal/analytics"
	"github.com/pulsedash/pulse/internal/model"
)

// maxDashboardNotes caps how many recent notes the overview carries.
const maxDashboardNotes = 5

// GoalWithAnalytics pairs a goal with its derived report for dashboard
// consumption.
type GoalWithAnalytics struct {
	*model.Goal
	Analytics analytics.GoalAnalytics `json:"analytics"`
}

// DashboardOverview is the single payload backing the dashboard view.
type DashboardOverview struct {
	User          *model.User            `json:"user"`
	Tasks         []*model.Task          `json:"tasks"`
	Habits        []*model.Habit         `json:"habits"`
	Goals         []*GoalWithAnalytics   `json:"goals"`
	TimeBlocks    []*model.TimeBlock     `json:"timeBlocks"`
	HealthMetrics []*model.HealthMetric  `json:"healthMetrics"`
	Notes         []*model.Note          `json:"notes"`
	HealthScore   *analytics.HealthScore `json:"healthScore"`
}

type DashboardService struct {
	users      *UserService
	tasks      *TaskService
	habits     *HabitService
	goals      *GoalService
	health     *HealthService
	notes      *NoteService
	timeBlocks *TimeBlockService
}

func NewDashboardService(
	users *UserService,
	tasks *TaskService,
	habits *HabitService,
	goals *GoalService,
	health *HealthService,
	notes *NoteService,
	timeBlocks *TimeBlockService,
) *DashboardService {
	return &DashboardService{
		users:      users,
		tasks:      tasks,
		habits:     habits,
		goals:      goals,
		health:     health,
		notes:      notes,
		timeBlocks: timeBlocks,
	}
}

// Overview assembles everything the dashboard needs in one call. Goal
// analytics and the health score are computed fresh from stored state.
func (s *DashboardService) Overview(userID string, now time.Time) (*DashboardOverview, error) {
	user, err := s.users.ByID(userID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.Tasks(userID)
	if err != nil {
		return nil, err
	}

	habits, err := s.habits.Habits(userID)
	if err != nil {
		return nil, err
	}

	goals, err := s.goals.Goals(userID)
	if err != nil {
		return nil, err
	}

	goalReports := make([]*GoalWithAnalytics, 0, len(goals))
	for _, goal := range goals {
		entries, err := s.goals.Entries(userID, goal.ID)
		if err != nil {
			return nil, err
		}

		goalReports = append(goalReports, &GoalWithAnalytics{
			Goal:      goal,
			Analytics: analytics.ForGoal(goal, entries, now),
		})
	}

	blocks, err := s.timeBlocks.BlocksByDay(userID, now)
	if err != nil {
		return nil, err
	}

	metrics, err := s.health.Metrics(userID)
	if err != nil {
		return nil, err
	}

	notes, err := s.notes.Notes(userID)
	if err != nil {
		return nil, err
	}
	if len(notes) > maxDashboardNotes {
		notes = notes[:maxDashboardNotes]
	}

	score := analytics.Health(metrics, habits)

	return &DashboardOverview{
		User:          user,
		Tasks:         tasks,
		Habits:        habits,
		Goals:         goalReports,
		TimeBlocks:    blocks,
		HealthMetrics: metrics,
		Notes:         notes,
		HealthScore:   &score,
	}, nil
}
