package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/tutor-market/internal/models"
)

const teacherColumns = "t.id, t.name, t.about, t.rating, t.picture, t.price, t.free"

// TeacherRepository manages persistence for teachers.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// List returns teachers matching the filter in the requested order.
// Random order is re-sampled by the database on every call.
func (r *TeacherRepository) List(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, error) {
	var (
		conditions []string
		args       []interface{}
	)
	from := "FROM teachers t"
	if filter.GoalCode != "" {
		from += " JOIN teachers_goals tg ON tg.teacher_id = t.id JOIN goals g ON g.id = tg.goal_id"
		conditions = append(conditions, fmt.Sprintf("g.key_en = $%d", len(args)+1))
		args = append(args, filter.GoalCode)
	}

	allowedSorts := map[models.TeacherSort]string{
		models.SortRandom:         "random()",
		models.SortByRating:       "t.rating DESC, t.id ASC",
		models.SortExpensiveFirst: "t.price DESC, t.id ASC",
		models.SortCheapFirst:     "t.price ASC, t.id ASC",
	}
	order, ok := allowedSorts[filter.Sort]
	if !ok {
		order = allowedSorts[models.SortRandom]
	}

	query := fmt.Sprintf("SELECT %s %s", teacherColumns, from)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY " + order
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	var teachers []models.Teacher
	if err := r.db.SelectContext(ctx, &teachers, query, args...); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// FindByID fetches a teacher by ID.
func (r *TeacherRepository) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	query := fmt.Sprintf("SELECT %s FROM teachers t WHERE t.id = $1", teacherColumns)
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, id); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// ListGoals returns the goals a teacher is associated with.
func (r *TeacherRepository) ListGoals(ctx context.Context, teacherID int64) ([]models.Goal, error) {
	const query = `SELECT g.id, g.key_en, g.value_ru, g.icon FROM goals g
		JOIN teachers_goals tg ON tg.goal_id = g.id
		WHERE tg.teacher_id = $1 ORDER BY g.id ASC`
	var goals []models.Goal
	if err := r.db.SelectContext(ctx, &goals, query, teacherID); err != nil {
		return nil, fmt.Errorf("list teacher goals: %w", err)
	}
	return goals, nil
}
