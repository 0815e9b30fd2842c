package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names accepted by Render.
const (
	PageIndex       = "index"
	PageAll         = "all"
	PageGoal        = "goal"
	PageProfile     = "profile"
	PageRequest     = "request"
	PageRequestDone = "request_done"
	PageBooking     = "booking"
	PageBookingDone = "booking_done"
)

var pageNames = []string{
	PageIndex, PageAll, PageGoal, PageProfile,
	PageRequest, PageRequestDone, PageBooking, PageBookingDone,
}

// View is the data every page receives. Data carries the page specific values.
type View struct {
	Title     string
	CSRFField template.HTML
	Errors    map[string]string
	Data      interface{}
}

// Renderer turns a page name and view into HTML.
type Renderer struct {
	pages map[string]*template.Template
	md    goldmark.Markdown
}

// New parses every embedded page against the shared layout.
func New() (*Renderer, error) {
	r := &Renderer{
		pages: make(map[string]*template.Template, len(pageNames)),
		// raw HTML in bios stays escaped; WithUnsafe is not set
		md: goldmark.New(goldmark.WithRendererOptions(goldmarkHTML.WithHardWraps())),
	}
	funcs := template.FuncMap{
		"markdown": r.markdown,
		"hour":     hour,
	}
	for _, name := range pageNames {
		tpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = tpl
	}
	return r, nil
}

// Render executes the named page.
func (r *Renderer) Render(name string, view View) ([]byte, error) {
	tpl, ok := r.pages[name]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", name)
	}
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "layout", view); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

// hour turns a "14:00" slot key into the "14" path segment of booking links.
func hour(slot string) string {
	h, _, _ := strings.Cut(slot, ":")
	return h
}
