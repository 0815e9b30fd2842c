package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tutor-market/internal/models"
	"github.com/noah-isme/tutor-market/internal/service"
	"github.com/noah-isme/tutor-market/pkg/render"
	"github.com/noah-isme/tutor-market/pkg/response"
)

type teacherCatalog interface {
	Home(ctx context.Context) (*service.HomePage, error)
	List(ctx context.Context, sort models.TeacherSort) ([]models.Teacher, error)
	ByGoal(ctx context.Context, code string) (*service.GoalListing, error)
	Profile(ctx context.Context, id int64) (*service.TeacherProfile, error)
}

// CatalogHandler serves the read-only teacher pages.
type CatalogHandler struct {
	teachers teacherCatalog
	pages    pageRenderer
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(teachers teacherCatalog, pages pageRenderer) *CatalogHandler {
	return &CatalogHandler{teachers: teachers, pages: pages}
}

// AllListing is the data of the full teacher listing.
type AllListing struct {
	Sort        models.TeacherSort
	SortChoices []models.Choice
	Teachers    []models.Teacher
}

// Home godoc
// @Summary Landing page with goals and random teachers
// @Tags Pages
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *CatalogHandler) Home(c *gin.Context) {
	page, err := h.teachers.Home(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	renderOK(c, h.pages, render.PageIndex, render.View{Data: page})
}

// All godoc
// @Summary Every teacher in the requested order
// @Tags Pages
// @Produce html
// @Param sort query string false "random, by_rating, expensive_first or cheap_first"
// @Success 200 {string} string "HTML page"
// @Success 302 {string} string "Redirect to /all/ for unknown sort values"
// @Router /all/ [get]
func (h *CatalogHandler) All(c *gin.Context) {
	sort, ok := service.ParseListingQuery(c.Request.URL.Query())
	if !ok {
		response.Redirect(c, "/all/")
		return
	}
	teachers, err := h.teachers.List(c.Request.Context(), sort)
	if err != nil {
		response.Error(c, err)
		return
	}
	renderOK(c, h.pages, render.PageAll, render.View{
		Title: "Все репетиторы",
		Data:  AllListing{Sort: sort, SortChoices: models.TeacherSortChoices, Teachers: teachers},
	})
}

// Goal godoc
// @Summary Teachers for one learning goal
// @Tags Pages
// @Produce html
// @Param goal path string true "Goal code"
// @Success 200 {string} string "HTML page"
// @Failure 404 {string} string "Unknown goal"
// @Router /goals/{goal}/ [get]
func (h *CatalogHandler) Goal(c *gin.Context) {
	listing, err := h.teachers.ByGoal(c.Request.Context(), c.Param("goal"))
	if err != nil {
		response.Error(c, err)
		return
	}
	renderOK(c, h.pages, render.PageGoal, render.View{Title: listing.Goal.Label, Data: listing})
}

// Profile godoc
// @Summary Teacher profile with weekly availability
// @Tags Pages
// @Produce html
// @Param id path int true "Teacher ID"
// @Success 200 {string} string "HTML page"
// @Failure 404 {string} string "Unknown teacher"
// @Router /profiles/{id}/ [get]
func (h *CatalogHandler) Profile(c *gin.Context) {
	id, err := teacherIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	profile, err := h.teachers.Profile(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	renderOK(c, h.pages, render.PageProfile, render.View{Title: profile.Teacher.Name, Data: profile})
}
