package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/pulsedash/pulse/internal/model"
)

var (
	ErrHabitNotFound = errors.New("habit not found")
)

type HabitRepository interface {
	Create(habit *model.Habit) error
	ByID(userID, habitID string) (*model.Habit, error)
	Habits(userID string) ([]*model.Habit, error)
	Update(habit *model.Habit) error
	Delete(userID, habitID string) error
}

type habitRepository struct {
	db *sqlx.DB
}

func NewHabitRepository(db *sqlx.DB) HabitRepository {
	return &habitRepository{db: db}
}

func (r *habitRepository) Create(habit *model.Habit) error {
	query := `INSERT INTO habits (id, user_id, name, emoji, streak, completed_today, color, type, target_value, current_value)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(query,
		habit.ID,
		habit.UserID,
		habit.Name,
		habit.Emoji,
		habit.Streak,
		habit.CompletedToday,
		habit.Color,
		habit.Type,
		habit.TargetValue,
		habit.CurrentValue,
	)

	return err
}

func (r *habitRepository) ByID(userID, habitID string) (*model.Habit, error) {
	habit := &model.Habit{}
	query := `SELECT * FROM habits WHERE id = $1 AND user_id = $2`

	err := r.db.Get(habit, query, habitID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrHabitNotFound
	}

	return habit, err
}

func (r *habitRepository) Habits(userID string) ([]*model.Habit, error) {
	var habits []*model.Habit
	query := `SELECT * FROM habits WHERE user_id = $1 ORDER BY name ASC`

	err := r.db.Select(&habits, query, userID)
	if err != nil {
		return nil, err
	}

	return habits, nil
}

func (r *habitRepository) Update(habit *model.Habit) error {
	query := `UPDATE habits
	          SET name = $1, emoji = $2, streak = $3, completed_today = $4, color = $5, type = $6, target_value = $7, current_value = $8
	          WHERE id = $9 AND user_id = $10`

	result, err := r.db.Exec(query,
		habit.Name,
		habit.Emoji,
		habit.Streak,
		habit.CompletedToday,
		habit.Color,
		habit.Type,
		habit.TargetValue,
		habit.CurrentValue,
		habit.ID,
		habit.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrHabitNotFound
	}

	return nil
}

func (r *habitRepository) Delete(userID, habitID string) error {
	query := `DELETE FROM habits WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, habitID, userID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrHabitNotFound
	}

	return nil
}
