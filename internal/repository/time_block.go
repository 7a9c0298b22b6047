package repository

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pulsedash/pulse/internal/model"
)

type TimeBlockRepository interface {
	Create(block *model.TimeBlock) error
	Blocks(userID string) ([]*model.TimeBlock, error)
	BlocksByDay(userID string, day time.Time) ([]*model.TimeBlock, error)
}

type timeBlockRepository struct {
	db *sqlx.DB
}

func NewTimeBlockRepository(db *sqlx.DB) TimeBlockRepository {
	return &timeBlockRepository{db: db}
}

func (r *timeBlockRepository) Create(block *model.TimeBlock) error {
	query := `INSERT INTO time_blocks (id, user_id, title, start_time, duration, color, date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		block.ID,
		block.UserID,
		block.Title,
		block.StartTime,
		block.Duration,
		block.Color,
		block.Date,
	)

	return err
}

func (r *timeBlockRepository) Blocks(userID string) ([]*model.TimeBlock, error) {
	var blocks []*model.TimeBlock
	query := `SELECT * FROM time_blocks WHERE user_id = $1 ORDER BY start_time ASC`

	err := r.db.Select(&blocks, query, userID)
	if err != nil {
		return nil, err
	}

	return blocks, nil
}

func (r *timeBlockRepository) BlocksByDay(userID string, day time.Time) ([]*model.TimeBlock, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var blocks []*model.TimeBlock
	query := `SELECT * FROM time_blocks WHERE user_id = $1 AND date >= $2 AND date < $3 ORDER BY start_time ASC`

	err := r.db.Select(&blocks, query, userID, start, end)
	if err != nil {
		return nil, err
	}

	return blocks, nil
}
