package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"

	"github.com/noah-isme/tutor-market/pkg/render"
	"github.com/noah-isme/tutor-market/pkg/response"
	appErrors "github.com/noah-isme/tutor-market/pkg/errors"
)

type pageRenderer interface {
	Render(name string, view render.View) ([]byte, error)
}

// renderPage renders the page with the request's CSRF field and writes it.
func renderPage(c *gin.Context, pages pageRenderer, status int, name string, view render.View) {
	view.CSRFField = csrf.TemplateField(c.Request)
	body, err := pages.Render(name, view)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.HTML(c, status, body)
}

// teacherIDParam parses the :id path segment. Anything but a positive integer
// is not found.
func teacherIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("invalid teacher id %q", c.Param("id")))
	}
	return id, nil
}

func renderOK(c *gin.Context, pages pageRenderer, name string, view render.View) {
	renderPage(c, pages, http.StatusOK, name, view)
}
