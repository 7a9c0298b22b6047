package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pulsedash/pulse/internal/model"
	"github.com/pulsedash/pulse/internal/repository"
)

type TaskService struct {
	repo repository.TaskRepository
}

func NewTaskService(repo repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Create(userID, title, priority, dueTime string) (*model.Task, error) {
	if priority == "" {
		priority = model.TaskPriorityMedium
	}

	task := &model.Task{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Priority:  priority,
		DueTime:   dueTime,
		CreatedAt: time.Now(),
	}

	err := s.repo.Create(task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

func (s *TaskService) Tasks(userID string) ([]*model.Task, error) {
	return s.repo.Tasks(userID)
}

// TaskUpdate carries the fields of a partial update; nil fields are left
// unchanged.
type TaskUpdate struct {
	Title     *string `json:"title"`
	Priority  *string `json:"priority"`
	DueTime   *string `json:"dueTime"`
	Completed *bool   `json:"completed"`
}

func (s *TaskService) Update(userID, taskID string, update TaskUpdate) (*model.Task, error) {
	task, err := s.repo.ByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Priority != nil {
		task.Priority = *update.Priority
	}
	if update.DueTime != nil {
		task.DueTime = *update.DueTime
	}
	if update.Completed != nil {
		task.Completed = *update.Completed
	}

	err = s.repo.Update(task)
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) Delete(userID, taskID string) error {
	return s.repo.Delete(userID, taskID)
}
