package service

import (
	"context"
	"fmt"

	"github.com/noah-isme/tutor-market/internal/models"
)

type referenceRepository interface {
	ListDays(ctx context.Context) ([]models.Day, error)
	ListGoals(ctx context.Context) ([]models.Goal, error)
}

// Catalog is the read-only day and goal reference data. It is built once at
// start-up and never mutated afterwards.
type Catalog struct {
	days      []models.Day
	dayIndex  map[string]models.Day
	goals     []models.Goal
	goalIndex map[string]models.Goal
}

// LoadCatalog reads the reference tables.
func LoadCatalog(ctx context.Context, repo referenceRepository) (*Catalog, error) {
	days, err := repo.ListDays(ctx)
	if err != nil {
		return nil, fmt.Errorf("load days: %w", err)
	}
	goals, err := repo.ListGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("load goals: %w", err)
	}
	return NewCatalog(days, goals), nil
}

// NewCatalog builds a catalog from already loaded rows.
func NewCatalog(days []models.Day, goals []models.Goal) *Catalog {
	c := &Catalog{
		days:      append([]models.Day(nil), days...),
		dayIndex:  make(map[string]models.Day, len(days)),
		goals:     append([]models.Goal(nil), goals...),
		goalIndex: make(map[string]models.Goal, len(goals)),
	}
	for _, day := range c.days {
		c.dayIndex[day.Code] = day
	}
	for _, goal := range c.goals {
		c.goalIndex[goal.Code] = goal
	}
	return c
}

// Days returns the weekdays in reference order.
func (c *Catalog) Days() []models.Day {
	return append([]models.Day(nil), c.days...)
}

// DayByCode looks up a day by its three-letter code.
func (c *Catalog) DayByCode(code string) (models.Day, bool) {
	day, ok := c.dayIndex[code]
	return day, ok
}

// DayByToken resolves URL-facing day tokens like "monday" through their code.
func (c *Catalog) DayByToken(token string) (models.Day, bool) {
	return c.DayByCode(DayCode(token))
}

// Goals returns every goal in reference order.
func (c *Catalog) Goals() []models.Goal {
	return append([]models.Goal(nil), c.goals...)
}

// GoalByCode looks up a goal by its code.
func (c *Catalog) GoalByCode(code string) (models.Goal, bool) {
	goal, ok := c.goalIndex[code]
	return goal, ok
}
