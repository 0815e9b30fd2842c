package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/tutor-market/internal/models"
)

// ReferenceRepository reads the day and goal reference tables.
type ReferenceRepository struct {
	db *sqlx.DB
}

// NewReferenceRepository constructs the repository.
func NewReferenceRepository(db *sqlx.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

// ListDays returns weekdays in seeding order.
func (r *ReferenceRepository) ListDays(ctx context.Context) ([]models.Day, error) {
	const query = `SELECT id, key_en, value_ru, value_en FROM days ORDER BY id ASC`
	var days []models.Day
	if err := r.db.SelectContext(ctx, &days, query); err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}
	return days, nil
}

// ListGoals returns goals in seeding order.
func (r *ReferenceRepository) ListGoals(ctx context.Context) ([]models.Goal, error) {
	const query = `SELECT id, key_en, value_ru, icon FROM goals ORDER BY id ASC`
	var goals []models.Goal
	if err := r.db.SelectContext(ctx, &goals, query); err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}
