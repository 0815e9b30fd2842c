package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/tutor-market/pkg/render"
)

type fakeRenderer struct {
	name  string
	view  render.View
	calls int
	err   error
}

func (f *fakeRenderer) Render(name string, view render.View) ([]byte, error) {
	f.calls++
	f.name = name
	f.view = view
	if f.err != nil {
		return nil, f.err
	}
	return []byte("<html>" + name + "</html>"), nil
}

var errBoom = errors.New("boom")

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
