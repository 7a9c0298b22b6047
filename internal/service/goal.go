package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pulsedash/pulse/internal/analytics"
	"github.com/pulsedash/pulse/internal/model"
	"github.com/pulsedash/pulse/internal/repository"
)

type GoalService struct {
	repo      repository.GoalRepository
	entryRepo repository.GoalEntryRepository
}

func NewGoalService(repo repository.GoalRepository, entryRepo repository.GoalEntryRepository) *GoalService {
	return &GoalService{
		repo:      repo,
		entryRepo: entryRepo,
	}
}

func (s *GoalService) Create(userID, title, description, goalType string, targetValue float64, unit string, targetDate *time.Time, color string) (*model.Goal, error) {
	if goalType == "" {
		goalType = model.GoalTypePercentage
	}
	if targetValue == 0 {
		targetValue = 100
	}

	goal := &model.Goal{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       title,
		Description: description,
		GoalType:    goalType,
		TargetValue: targetValue,
		Unit:        unit,
		TargetDate:  targetDate,
		Color:       color,
		CreatedAt:   time.Now(),
	}

	err := s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

func (s *GoalService) ByID(userID, goalID string) (*model.Goal, error) {
	return s.repo.ByID(userID, goalID)
}

func (s *GoalService) Goals(userID string) ([]*model.Goal, error) {
	return s.repo.Goals(userID)
}

// GoalUpdate carries the fields of a partial update; nil fields are left
// unchanged. CurrentValue is deliberately absent: progress only moves
// through entries.
type GoalUpdate struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	GoalType    *string    `json:"goalType"`
	TargetValue *float64   `json:"targetValue"`
	Unit        *string    `json:"unit"`
	TargetDate  *time.Time `json:"targetDate"`
	Color       *string    `json:"color"`
	IsArchived  *bool      `json:"isArchived"`
}

func (s *GoalService) Update(userID, goalID string, update GoalUpdate) (*model.Goal, error) {
	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		goal.Title = *update.Title
	}
	if update.Description != nil {
		goal.Description = *update.Description
	}
	if update.GoalType != nil {
		goal.GoalType = *update.GoalType
	}
	if update.TargetValue != nil {
		goal.TargetValue = *update.TargetValue
	}
	if update.Unit != nil {
		goal.Unit = *update.Unit
	}
	if update.TargetDate != nil {
		goal.TargetDate = update.TargetDate
	}
	if update.Color != nil {
		goal.Color = *update.Color
	}
	if update.IsArchived != nil {
		goal.IsArchived = *update.IsArchived
	}

	err = s.repo.Update(goal)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// Delete removes a goal and all of its entries.
func (s *GoalService) Delete(userID, goalID string) error {
	_, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return err
	}

	err = s.entryRepo.DeleteByGoal(goalID)
	if err != nil {
		return fmt.Errorf("failed to delete goal entries: %w", err)
	}

	return s.repo.Delete(userID, goalID)
}

func (s *GoalService) Entries(userID, goalID string) ([]*model.GoalEntry, error) {
	_, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	return s.entryRepo.Entries(goalID)
}

// AddEntry logs a progress contribution and rolls its value into the goal's
// current value. Returns the entry together with the updated goal.
func (s *GoalService) AddEntry(userID, goalID string, value float64, note string) (*model.GoalEntry, *model.Goal, error) {
	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, nil, err
	}

	entry := &model.GoalEntry{
		ID:     uuid.New().String(),
		GoalID: goalID,
		Value:  value,
		Note:   note,
		Date:   time.Now(),
	}

	err = s.entryRepo.Create(entry)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create goal entry: %w", err)
	}

	goal.CurrentValue += value
	err = s.repo.Update(goal)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update goal progress: %w", err)
	}

	return entry, goal, nil
}

// RemoveEntry deletes an entry and reverses its contribution, flooring the
// goal's current value at zero.
func (s *GoalService) RemoveEntry(userID, entryID string) error {
	entry, err := s.entryRepo.ByID(entryID)
	if err != nil {
		return err
	}

	goal, err := s.repo.ByEntryOwner(entry.GoalID)
	if err != nil {
		return err
	}
	if goal.UserID != userID {
		return repository.ErrGoalEntryNotFound
	}

	err = s.entryRepo.Delete(entryID)
	if err != nil {
		return err
	}

	goal.CurrentValue = max(0, goal.CurrentValue-entry.Value)
	err = s.repo.Update(goal)
	if err != nil {
		return fmt.Errorf("failed to update goal progress: %w", err)
	}

	return nil
}

// Analytics computes the derived report for one goal from its current entry
// history.
func (s *GoalService) Analytics(userID, goalID string, now time.Time) (*analytics.GoalAnalytics, error) {
	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.Entries(goalID)
	if err != nil {
		return nil, err
	}

	report := analytics.ForGoal(goal, entries, now)
	return &report, nil
}
