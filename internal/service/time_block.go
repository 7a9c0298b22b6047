package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pulsedash/pulse/internal/model"
	"github.com/pulsedash/pulse/internal/repository"
)

type TimeBlockService struct {
	repo repository.TimeBlockRepository
}

func NewTimeBlockService(repo repository.TimeBlockRepository) *TimeBlockService {
	return &TimeBlockService{repo: repo}
}

func (s *TimeBlockService) Create(userID, title, startTime string, duration int, color string, date time.Time) (*model.TimeBlock, error) {
	if date.IsZero() {
		date = time.Now()
	}

	block := &model.TimeBlock{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		StartTime: startTime,
		Duration:  duration,
		Color:     color,
		Date:      date,
	}

	err := s.repo.Create(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create time block: %w", err)
	}

	return block, nil
}

func (s *TimeBlockService) Blocks(userID string) ([]*model.TimeBlock, error) {
	return s.repo.Blocks(userID)
}

func (s *TimeBlockService) BlocksByDay(userID string, day time.Time) ([]*model.TimeBlock, error) {
	return s.repo.BlocksByDay(userID, day)
}
