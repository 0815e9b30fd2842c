package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/tutor-market/internal/models"
	appErrors "github.com/noah-isme/tutor-market/pkg/errors"
)

type mockTeacherRepo struct {
	items      map[int64]*models.Teacher
	goals      map[int64][]models.Goal
	listResult []models.Teacher
	listErr    error
	filters    []models.TeacherFilter
}

func (m *mockTeacherRepo) List(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, error) {
	m.filters = append(m.filters, filter)
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listResult, nil
}

func (m *mockTeacherRepo) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	if teacher, ok := m.items[id]; ok {
		cp := *teacher
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockTeacherRepo) ListGoals(ctx context.Context, teacherID int64) ([]models.Goal, error) {
	return m.goals[teacherID], nil
}

func TestParseListingQuery(t *testing.T) {
	cases := []struct {
		name  string
		query string
		sort  models.TeacherSort
		ok    bool
	}{
		{name: "no query", query: "", sort: models.SortRandom, ok: true},
		{name: "random", query: "sort=random", sort: models.SortRandom, ok: true},
		{name: "rating", query: "sort=by_rating", sort: models.SortByRating, ok: true},
		{name: "expensive", query: "sort=expensive_first", sort: models.SortExpensiveFirst, ok: true},
		{name: "cheap with extra param", query: "sort=cheap_first&page=2", sort: models.SortCheapFirst, ok: true},
		{name: "empty sort", query: "sort=", ok: false},
		{name: "garbage sort", query: "sort=price", ok: false},
		{name: "params without sort", query: "page=2", ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			query, err := url.ParseQuery(tc.query)
			require.NoError(t, err)
			sort, ok := ParseListingQuery(query)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.sort, sort)
			}
		})
	}
}

func TestTeacherServiceHome(t *testing.T) {
	repo := &mockTeacherRepo{listResult: []models.Teacher{{ID: 1}, {ID: 2}}}
	svc := NewTeacherService(repo, testCatalog(), 6, zap.NewNop())

	page, err := svc.Home(context.Background())
	require.NoError(t, err)
	assert.Len(t, page.Goals, 4)
	assert.Len(t, page.Teachers, 2)
	require.Len(t, repo.filters, 1)
	assert.Equal(t, models.TeacherFilter{Sort: models.SortRandom, Limit: 6}, repo.filters[0])
}

func TestTeacherServiceListPassesSort(t *testing.T) {
	repo := &mockTeacherRepo{}
	svc := NewTeacherService(repo, testCatalog(), 6, zap.NewNop())

	_, err := svc.List(context.Background(), models.SortCheapFirst)
	require.NoError(t, err)
	assert.Equal(t, models.SortCheapFirst, repo.filters[0].Sort)
	assert.Zero(t, repo.filters[0].Limit)
}

func TestTeacherServiceListFailure(t *testing.T) {
	repo := &mockTeacherRepo{listErr: errors.New("db down")}
	svc := NewTeacherService(repo, testCatalog(), 6, zap.NewNop())

	_, err := svc.List(context.Background(), models.SortRandom)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, appErrors.FromError(err).Status)
}

func TestTeacherServiceByGoal(t *testing.T) {
	repo := &mockTeacherRepo{listResult: []models.Teacher{{ID: 3}}}
	svc := NewTeacherService(repo, testCatalog(), 6, zap.NewNop())

	listing, err := svc.ByGoal(context.Background(), "travel")
	require.NoError(t, err)
	assert.Equal(t, "для путешествий", listing.GoalName)
	assert.Equal(t, "⛱", listing.Goal.Icon)
	assert.Equal(t, "travel", repo.filters[0].GoalCode)
	assert.Len(t, listing.Teachers, 1)
}

func TestTeacherServiceByGoalLowercasesWholeLabel(t *testing.T) {
	catalog := NewCatalog(testDays(), []models.Goal{{ID: 9, Code: "it", Label: "Для работы в IT", Icon: "💻"}})
	svc := NewTeacherService(&mockTeacherRepo{}, catalog, 6, zap.NewNop())

	listing, err := svc.ByGoal(context.Background(), "it")
	require.NoError(t, err)
	assert.Equal(t, "для работы в it", listing.GoalName)
	assert.Equal(t, "Для работы в IT", listing.Goal.Label)
}

func TestTeacherServiceByUnknownGoalIsNotFound(t *testing.T) {
	repo := &mockTeacherRepo{}
	svc := NewTeacherService(repo, testCatalog(), 6, zap.NewNop())

	listing, err := svc.ByGoal(context.Background(), "fun")
	assert.Nil(t, listing)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	assert.Empty(t, repo.filters)
}

func TestTeacherServiceProfile(t *testing.T) {
	repo := &mockTeacherRepo{
		items: map[int64]*models.Teacher{
			1: {ID: 1, Name: "Morris", Free: []byte(`{"tue": {"10:00": true, "8:00": true}, "mon": {"8:00": false}, "xyz": {"8:00": true}}`)},
		},
		goals: map[int64][]models.Goal{1: {testGoals()[0]}},
	}
	svc := NewTeacherService(repo, testCatalog(), 6, zap.NewNop())

	profile, err := svc.Profile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Morris", profile.Teacher.Name)
	assert.Len(t, profile.Goals, 1)
	require.Len(t, profile.Week, 2)
	assert.Equal(t, "mon", profile.Week[0].Day.Code)
	assert.Empty(t, profile.Week[0].Times)
	assert.Equal(t, "tue", profile.Week[1].Day.Code)
	assert.Equal(t, []string{"8:00", "10:00"}, profile.Week[1].Times)
	assert.Contains(t, profile.Schedule, "xyz")
}

func TestTeacherServiceProfileNotFound(t *testing.T) {
	svc := NewTeacherService(&mockTeacherRepo{}, testCatalog(), 6, zap.NewNop())

	_, err := svc.Profile(context.Background(), 42)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}
