package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/tutor-market/internal/models"
)

// SeedRepository writes the reference tables and teacher roster in one transaction.
type SeedRepository struct {
	db *sqlx.DB
}

// NewSeedRepository constructs a SeedRepository.
func NewSeedRepository(db *sqlx.DB) *SeedRepository {
	return &SeedRepository{db: db}
}

// Apply upserts every row of the seed; running it twice leaves the same state.
func (r *SeedRepository) Apply(ctx context.Context, seed models.Seed) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}

	const dayQuery = `INSERT INTO days (key_en, value_ru, value_en)
VALUES (:key_en, :value_ru, :value_en)
ON CONFLICT (key_en) DO UPDATE SET value_ru = EXCLUDED.value_ru, value_en = EXCLUDED.value_en`
	for _, day := range seed.Days {
		if _, err := tx.NamedExecContext(ctx, dayQuery, day); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("seed day %s: %w", day.Code, err)
		}
	}

	const goalQuery = `INSERT INTO goals (key_en, value_ru, icon)
VALUES (:key_en, :value_ru, :icon)
ON CONFLICT (key_en) DO UPDATE SET value_ru = EXCLUDED.value_ru, icon = EXCLUDED.icon`
	for _, goal := range seed.Goals {
		if _, err := tx.NamedExecContext(ctx, goalQuery, goal); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("seed goal %s: %w", goal.Code, err)
		}
	}

	const teacherQuery = `INSERT INTO teachers (id, name, about, rating, picture, price, free)
VALUES (:id, :name, :about, :rating, :picture, :price, :free)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, about = EXCLUDED.about, rating = EXCLUDED.rating,
              picture = EXCLUDED.picture, price = EXCLUDED.price, free = EXCLUDED.free`
	const unlinkQuery = `DELETE FROM teachers_goals WHERE teacher_id = $1`
	const linkQuery = `INSERT INTO teachers_goals (teacher_id, goal_id)
SELECT $1, id FROM goals WHERE key_en = $2
ON CONFLICT DO NOTHING`
	for _, teacher := range seed.Teachers {
		if _, err := tx.NamedExecContext(ctx, teacherQuery, teacher.Teacher); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("seed teacher %d: %w", teacher.ID, err)
		}
		if _, err := tx.ExecContext(ctx, unlinkQuery, teacher.ID); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("unlink teacher %d goals: %w", teacher.ID, err)
		}
		for _, code := range teacher.GoalCodes {
			if _, err := tx.ExecContext(ctx, linkQuery, teacher.ID, code); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("link teacher %d to goal %s: %w", teacher.ID, code, err)
			}
		}
	}

	if len(seed.Teachers) > 0 {
		const sequenceQuery = `SELECT setval(pg_get_serial_sequence('teachers', 'id'), (SELECT MAX(id) FROM teachers))`
		if _, err := tx.ExecContext(ctx, sequenceQuery); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("advance teacher sequence: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
