package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/tutor-market/internal/models"
	"github.com/noah-isme/tutor-market/internal/service"
	appErrors "github.com/noah-isme/tutor-market/pkg/errors"
	"github.com/noah-isme/tutor-market/pkg/render"
	"github.com/noah-isme/tutor-market/pkg/response"
)

type fakeTeacherCatalog struct {
	sorts      []models.TeacherSort
	teachers   []models.Teacher
	profileIDs []int64
	err        error
}

func (f *fakeTeacherCatalog) Home(ctx context.Context) (*service.HomePage, error) {
	return &service.HomePage{Teachers: f.teachers}, f.err
}

func (f *fakeTeacherCatalog) List(ctx context.Context, sort models.TeacherSort) ([]models.Teacher, error) {
	f.sorts = append(f.sorts, sort)
	return f.teachers, f.err
}

func (f *fakeTeacherCatalog) ByGoal(ctx context.Context, code string) (*service.GoalListing, error) {
	if code != "travel" {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "goal not found")
	}
	return &service.GoalListing{Goal: models.Goal{Code: "travel", Label: "Для путешествий"}, GoalName: "для путешествий"}, nil
}

func (f *fakeTeacherCatalog) Profile(ctx context.Context, id int64) (*service.TeacherProfile, error) {
	f.profileIDs = append(f.profileIDs, id)
	if id != 1 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}
	return &service.TeacherProfile{Teacher: &models.Teacher{ID: 1, Name: "Morris"}}, nil
}

func newCatalogRouter(teachers *fakeTeacherCatalog, pages pageRenderer) http.Handler {
	h := NewCatalogHandler(teachers, pages)
	r := newTestEngine()
	r.GET("/", h.Home)
	r.GET("/all/", h.All)
	r.GET("/goals/:goal/", h.Goal)
	r.GET("/profiles/:id/", h.Profile)
	return r
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestCatalogAllSortPolicy(t *testing.T) {
	cases := []struct {
		target   string
		status   int
		sort     models.TeacherSort
		redirect bool
	}{
		{target: "/all/", status: http.StatusOK, sort: models.SortRandom},
		{target: "/all/?sort=by_rating", status: http.StatusOK, sort: models.SortByRating},
		{target: "/all/?sort=cheap_first", status: http.StatusOK, sort: models.SortCheapFirst},
		{target: "/all/?sort=name", status: http.StatusFound, redirect: true},
		{target: "/all/?sort=", status: http.StatusFound, redirect: true},
		{target: "/all/?page=2", status: http.StatusFound, redirect: true},
	}
	for _, tc := range cases {
		t.Run(tc.target, func(t *testing.T) {
			teachers := &fakeTeacherCatalog{}
			pages := &fakeRenderer{}
			w := serve(newCatalogRouter(teachers, pages), http.MethodGet, tc.target)

			assert.Equal(t, tc.status, w.Code)
			if tc.redirect {
				assert.Equal(t, "/all/", w.Header().Get("Location"))
				assert.Empty(t, teachers.sorts)
				return
			}
			require.Len(t, teachers.sorts, 1)
			assert.Equal(t, tc.sort, teachers.sorts[0])
			assert.Equal(t, render.PageAll, pages.name)
			listing := pages.view.Data.(AllListing)
			assert.Equal(t, tc.sort, listing.Sort)
			assert.Len(t, listing.SortChoices, 4)
		})
	}
}

func TestCatalogUnknownGoalIsNotFound(t *testing.T) {
	pages := &fakeRenderer{}
	w := serve(newCatalogRouter(&fakeTeacherCatalog{}, pages), http.MethodGet, "/goals/fun/")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, response.MessageNotFound, w.Body.String())
	assert.Zero(t, pages.calls)
}

func TestCatalogGoalRenders(t *testing.T) {
	pages := &fakeRenderer{}
	w := serve(newCatalogRouter(&fakeTeacherCatalog{}, pages), http.MethodGet, "/goals/travel/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, render.PageGoal, pages.name)
	assert.Equal(t, "Для путешествий", pages.view.Title)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}

func TestCatalogProfile(t *testing.T) {
	teachers := &fakeTeacherCatalog{}
	pages := &fakeRenderer{}
	router := newCatalogRouter(teachers, pages)

	w := serve(router, http.MethodGet, "/profiles/1/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Morris", pages.view.Title)

	w = serve(router, http.MethodGet, "/profiles/abc/")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(router, http.MethodGet, "/profiles/0/")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(router, http.MethodGet, "/profiles/2/")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, []int64{1, 2}, teachers.profileIDs)
}

func TestCatalogStoreFailureIsInternal(t *testing.T) {
	teachers := &fakeTeacherCatalog{err: appErrors.Wrap(errBoom, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")}
	w := serve(newCatalogRouter(teachers, &fakeRenderer{}), http.MethodGet, "/")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, response.MessageInternal, w.Body.String())
}

func TestCatalogRenderFailureIsInternal(t *testing.T) {
	w := serve(newCatalogRouter(&fakeTeacherCatalog{}, &fakeRenderer{err: errBoom}), http.MethodGet, "/all/")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
