package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/tutor-market/pkg/config"
)

func newCSRFRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CSRF(config.CSRFConfig{Key: "0123456789abcdef0123456789abcdef"}, nil))
	r.GET("/form/", func(c *gin.Context) {
		c.String(http.StatusOK, csrf.Token(c.Request))
	})
	r.POST("/form/", func(c *gin.Context) {
		c.String(http.StatusOK, "accepted")
	})
	return r
}

func TestCSRFRejectsPostWithoutToken(t *testing.T) {
	router := newCSRFRouter()
	req := httptest.NewRequest(http.MethodPost, "/form/", strings.NewReader("client_name=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "И кто это тут у нас про CSRF token забыл?", w.Body.String())
}

func TestCSRFAcceptsPostWithToken(t *testing.T) {
	router := newCSRFRouter()

	get := httptest.NewRecorder()
	router.ServeHTTP(get, httptest.NewRequest(http.MethodGet, "/form/", nil))
	require.Equal(t, http.StatusOK, get.Code)
	token := get.Body.String()
	require.NotEmpty(t, token)
	cookies := get.Result().Cookies()
	require.NotEmpty(t, cookies)

	form := url.Values{"gorilla.csrf.Token": {token}, "client_name": {"x"}}
	req := httptest.NewRequest(http.MethodPost, "/form/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "accepted", w.Body.String())
}

func TestCSRFRouterServesMixedRequests(t *testing.T) {
	router := newCSRFRouter()

	get := httptest.NewRecorder()
	router.ServeHTTP(get, httptest.NewRequest(http.MethodGet, "/form/", nil))
	require.Equal(t, http.StatusOK, get.Code)
	token := get.Body.String()
	cookies := get.Result().Cookies()

	post := func(withToken bool) *httptest.ResponseRecorder {
		form := url.Values{"client_name": {"x"}}
		if withToken {
			form.Set("gorilla.csrf.Token", token)
		}
		req := httptest.NewRequest(http.MethodPost, "/form/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		for _, cookie := range cookies {
			req.AddCookie(cookie)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	for i := 0; i < 3; i++ {
		ok := post(true)
		assert.Equal(t, http.StatusOK, ok.Code)
		assert.Equal(t, "accepted", ok.Body.String())

		rejected := post(false)
		assert.Equal(t, http.StatusBadRequest, rejected.Code)
		assert.NotContains(t, rejected.Body.String(), "accepted")
	}
}
