package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/pulsedash/pulse/internal/model"
)

var (
	ErrGoalEntryNotFound = errors.New("goal entry not found")
)

type GoalEntryRepository interface {
	Create(entry *model.GoalEntry) error
	ByID(entryID string) (*model.GoalEntry, error)
	Entries(goalID string) ([]*model.GoalEntry, error)
	Delete(entryID string) error
	DeleteByGoal(goalID string) error
}

type goalEntryRepository struct {
	db *sqlx.DB
}

func NewGoalEntryRepository(db *sqlx.DB) GoalEntryRepository {
	return &goalEntryRepository{db: db}
}

func (r *goalEntryRepository) Create(entry *model.GoalEntry) error {
	query := `INSERT INTO goal_entries (id, goal_id, value, note, date)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query,
		entry.ID,
		entry.GoalID,
		entry.Value,
		entry.Note,
		entry.Date,
	)

	return err
}

func (r *goalEntryRepository) ByID(entryID string) (*model.GoalEntry, error) {
	entry := &model.GoalEntry{}
	query := `SELECT * FROM goal_entries WHERE id = $1`

	err := r.db.Get(entry, query, entryID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalEntryNotFound
	}

	return entry, err
}

func (r *goalEntryRepository) Entries(goalID string) ([]*model.GoalEntry, error) {
	var entries []*model.GoalEntry
	query := `SELECT * FROM goal_entries WHERE goal_id = $1 ORDER BY date DESC`

	err := r.db.Select(&entries, query, goalID)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *goalEntryRepository) Delete(entryID string) error {
	query := `DELETE FROM goal_entries WHERE id = $1`
	result, err := r.db.Exec(query, entryID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalEntryNotFound
	}

	return nil
}

// DeleteByGoal removes all entries for a goal. The schema also cascades on
// goal delete; this keeps the behavior driver-independent.
func (r *goalEntryRepository) DeleteByGoal(goalID string) error {
	_, err := r.db.Exec(`DELETE FROM goal_entries WHERE goal_id = $1`, goalID)
	return err
}
