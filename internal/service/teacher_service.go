package service

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/tutor-market/internal/models"
	appErrors "github.com/noah-isme/tutor-market/pkg/errors"
)

type teacherRepository interface {
	List(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, error)
	FindByID(ctx context.Context, id int64) (*models.Teacher, error)
	ListGoals(ctx context.Context, teacherID int64) ([]models.Goal, error)
}

// HomePage holds the data of the landing page.
type HomePage struct {
	Goals    []models.Goal
	Teachers []models.Teacher
}

// GoalListing holds the teachers of one learning goal.
type GoalListing struct {
	Goal models.Goal
	// GoalName is the whole label lower-cased for use mid-sentence.
	GoalName string
	Teachers []models.Teacher
}

// TeacherProfile is a teacher with goals and resolved weekly availability.
type TeacherProfile struct {
	Teacher  *models.Teacher
	Goals    []models.Goal
	Schedule models.Schedule
	Week     []models.ScheduleDay
}

// TeacherService lists and filters teachers.
type TeacherService struct {
	repo      teacherRepository
	catalog   *Catalog
	homeLimit int
	logger    *zap.Logger
}

// NewTeacherService constructs a TeacherService.
func NewTeacherService(repo teacherRepository, catalog *Catalog, homeLimit int, logger *zap.Logger) *TeacherService {
	if catalog == nil {
		catalog = NewCatalog(nil, nil)
	}
	if homeLimit <= 0 {
		homeLimit = 6
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{repo: repo, catalog: catalog, homeLimit: homeLimit, logger: logger}
}

// ParseListingQuery decides the order of the full listing. Without any query
// parameters the order is random; once parameters are present the sort value
// must be one of the known orders, otherwise ok is false and the caller should
// redirect to the canonical listing URL.
func ParseListingQuery(query url.Values) (sort models.TeacherSort, ok bool) {
	if len(query) == 0 {
		return models.SortRandom, true
	}
	return models.ParseTeacherSort(query.Get("sort"))
}

// Home returns all goals and a random sample of teachers.
func (s *TeacherService) Home(ctx context.Context) (*HomePage, error) {
	teachers, err := s.repo.List(ctx, models.TeacherFilter{Sort: models.SortRandom, Limit: s.homeLimit})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}
	return &HomePage{Goals: s.catalog.Goals(), Teachers: teachers}, nil
}

// List returns every teacher in the requested order.
func (s *TeacherService) List(ctx context.Context, sort models.TeacherSort) ([]models.Teacher, error) {
	teachers, err := s.repo.List(ctx, models.TeacherFilter{Sort: sort})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}
	return teachers, nil
}

// ByGoal returns the teachers associated with a goal. Unknown goals are not found.
func (s *TeacherService) ByGoal(ctx context.Context, code string) (*GoalListing, error) {
	goal, ok := s.catalog.GoalByCode(code)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "goal not found")
	}
	teachers, err := s.repo.List(ctx, models.TeacherFilter{GoalCode: goal.Code, Sort: models.SortRandom})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers by goal")
	}
	return &GoalListing{Goal: goal, GoalName: strings.ToLower(goal.Label), Teachers: teachers}, nil
}

// Get returns a teacher by id.
func (s *TeacherService) Get(ctx context.Context, id int64) (*models.Teacher, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}
	return teacher, nil
}

// Profile returns a teacher with goals and the open slots of each weekday.
func (s *TeacherService) Profile(ctx context.Context, id int64) (*TeacherProfile, error) {
	teacher, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	goals, err := s.repo.ListGoals(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher goals")
	}

	schedule := ResolveSchedule(teacher.Free)
	week := make([]models.ScheduleDay, 0, len(schedule))
	for _, day := range s.catalog.Days() {
		if _, present := schedule[day.Code]; !present {
			continue
		}
		week = append(week, models.ScheduleDay{Day: day, Times: schedule.Times(day.Code)})
	}
	if len(week) < len(schedule) {
		s.logger.Debug("availability holds unknown day codes", zap.Int64("teacher_id", id))
	}

	return &TeacherProfile{Teacher: teacher, Goals: goals, Schedule: schedule, Week: week}, nil
}
