package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/pulsedash/pulse/internal/model"
)

type HealthMetricRepository interface {
	Create(metric *model.HealthMetric) error
	Metrics(userID string) ([]*model.HealthMetric, error)
}

type healthMetricRepository struct {
	db *sqlx.DB
}

func NewHealthMetricRepository(db *sqlx.DB) HealthMetricRepository {
	return &healthMetricRepository{db: db}
}

func (r *healthMetricRepository) Create(metric *model.HealthMetric) error {
	query := `INSERT INTO health_metrics (id, user_id, type, value, unit, date)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		metric.ID,
		metric.UserID,
		metric.Type,
		metric.Value,
		metric.Unit,
		metric.Date,
	)

	return err
}

func (r *healthMetricRepository) Metrics(userID string) ([]*model.HealthMetric, error) {
	var metrics []*model.HealthMetric
	query := `SELECT * FROM health_metrics WHERE user_id = $1 ORDER BY date ASC`

	err := r.db.Select(&metrics, query, userID)
	if err != nil {
		return nil, err
	}

	return metrics, nil
}
