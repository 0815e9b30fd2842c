package render

import (
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type card struct {
	ID      int64
	Name    string
	Picture string
	Rating  float64
	Price   float64
	About   string
}

func TestRenderGoalPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	body, err := r.Render(PageGoal, View{
		Title: "Для работы",
		Data: map[string]interface{}{
			"Goal":     map[string]string{"Icon": "🏢"},
			"GoalName": "для работы",
			"Teachers": []card{{ID: 3, Name: "Morris", Rating: 4.5, Price: 900}},
		},
	})
	require.NoError(t, err)
	html := string(body)
	assert.Contains(t, html, "Репетиторы для работы")
	assert.Contains(t, html, `href="/profiles/3/"`)
	assert.Contains(t, html, "4.5")
}

func TestRenderProfileEscapesRawHTMLInBio(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	body, err := r.Render(PageProfile, View{Data: map[string]interface{}{
		"Teacher": card{ID: 1, Name: "Morris", About: "**Native** speaker <script>alert(1)</script>"},
		"Goals":   nil,
		"Week": []map[string]interface{}{
			{"Day": map[string]string{"Code": "mon", "Label": "Понедельник"}, "Times": []string{"8:00", "14:00"}},
		},
	}})
	require.NoError(t, err)
	html := string(body)
	assert.Contains(t, html, "<strong>Native</strong>")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, `href="/booking/1/mon/14/"`)
	assert.Contains(t, html, `href="/booking/1/mon/8/"`)
}

func TestRenderFormCarriesCSRFFieldAndErrors(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	body, err := r.Render(PageRequest, View{
		CSRFField: template.HTML(`<input type="hidden" name="gorilla.csrf.Token" value="tok">`),
		Errors:    map[string]string{"client_name": "Укажите ваше имя"},
		Data: map[string]interface{}{
			"Form":        map[string]string{"Goal": "travel", "Time": "5-7"},
			"GoalChoices": []map[string]string{{"Value": "travel", "Label": "Для путешествий"}},
			"TimeChoices": []map[string]string{{"Value": "5-7", "Label": "5-7 часов в неделю"}},
		},
	})
	require.NoError(t, err)
	html := string(body)
	assert.Contains(t, html, `name="gorilla.csrf.Token" value="tok"`)
	assert.Contains(t, html, "Укажите ваше имя")
	assert.Contains(t, html, `value="travel" checked`)
}

func TestRenderUnknownPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	_, err = r.Render("missing", View{})
	assert.Error(t, err)
}

func TestHour(t *testing.T) {
	assert.Equal(t, "14", hour("14:00"))
	assert.Equal(t, "8", hour("8"))
}
