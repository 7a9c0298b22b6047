package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pulsedash/pulse/internal/model"
	"github.com/pulsedash/pulse/internal/repository"
)

type HabitService struct {
	repo repository.HabitRepository
}

func NewHabitService(repo repository.HabitRepository) *HabitService {
	return &HabitService{repo: repo}
}

func (s *HabitService) Create(userID, name, emoji, color, habitType string, targetValue int) (*model.Habit, error) {
	if habitType == "" {
		habitType = model.HabitTypeBoolean
	}
	if targetValue <= 0 {
		targetValue = 1
	}

	habit := &model.Habit{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        name,
		Emoji:       emoji,
		Color:       color,
		Type:        habitType,
		TargetValue: targetValue,
	}

	err := s.repo.Create(habit)
	if err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return habit, nil
}

func (s *HabitService) Habits(userID string) ([]*model.Habit, error) {
	return s.repo.Habits(userID)
}

// HabitUpdate carries the fields of a partial update; nil fields are left
// unchanged. The streak itself is maintained by the caller, not derived
// here.
type HabitUpdate struct {
	Name           *string `json:"name"`
	Emoji          *string `json:"emoji"`
	Streak         *int    `json:"streak"`
	CompletedToday *bool   `json:"completedToday"`
	Color          *string `json:"color"`
	Type           *string `json:"type"`
	TargetValue    *int    `json:"targetValue"`
	CurrentValue   *int    `json:"currentValue"`
}

func (s *HabitService) Update(userID, habitID string, update HabitUpdate) (*model.Habit, error) {
	habit, err := s.repo.ByID(userID, habitID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		habit.Name = *update.Name
	}
	if update.Emoji != nil {
		habit.Emoji = *update.Emoji
	}
	if update.Streak != nil {
		habit.Streak = *update.Streak
	}
	if update.CompletedToday != nil {
		habit.CompletedToday = *update.CompletedToday
	}
	if update.Color != nil {
		habit.Color = *update.Color
	}
	if update.Type != nil {
		habit.Type = *update.Type
	}
	if update.TargetValue != nil {
		habit.TargetValue = *update.TargetValue
	}
	if update.CurrentValue != nil {
		habit.CurrentValue = *update.CurrentValue
	}

	err = s.repo.Update(habit)
	if err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *HabitService) Delete(userID, habitID string) error {
	return s.repo.Delete(userID, habitID)
}
