package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pulsedash/pulse/internal/analytics"
	"github.com/pulsedash/pulse/internal/model"
	"github.com/pulsedash/pulse/internal/repository"
)

type HealthService struct {
	metricRepo repository.HealthMetricRepository
	habitRepo  repository.HabitRepository
}

func NewHealthService(metricRepo repository.HealthMetricRepository, habitRepo repository.HabitRepository) *HealthService {
	return &HealthService{
		metricRepo: metricRepo,
		habitRepo:  habitRepo,
	}
}

func (s *HealthService) Metrics(userID string) ([]*model.HealthMetric, error) {
	return s.metricRepo.Metrics(userID)
}

func (s *HealthService) AddMetric(userID, metricType string, value float64, unit string) (*model.HealthMetric, error) {
	metric := &model.HealthMetric{
		ID:     uuid.New().String(),
		UserID: userID,
		Type:   metricType,
		Value:  value,
		Unit:   unit,
		Date:   time.Now(),
	}

	err := s.metricRepo.Create(metric)
	if err != nil {
		return nil, fmt.Errorf("failed to create health metric: %w", err)
	}

	return metric, nil
}

// Score computes the composite health score from the user's metric samples
// and habit states.
func (s *HealthService) Score(userID string) (*analytics.HealthScore, error) {
	metrics, err := s.metricRepo.Metrics(userID)
	if err != nil {
		return nil, err
	}

	habits, err := s.habitRepo.Habits(userID)
	if err != nil {
		return nil, err
	}

	score := analytics.Health(metrics, habits)
	return &score, nil
}
