package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	"github.com/noah-isme/tutor-market/pkg/config"
	appErrors "github.com/noah-isme/tutor-market/pkg/errors"
	"github.com/noah-isme/tutor-market/pkg/response"
)

type ginContextKey struct{}

func ginContextFrom(r *http.Request) *gin.Context {
	c, _ := r.Context().Value(ginContextKey{}).(*gin.Context)
	return c
}

// CSRF guards unsafe methods with gorilla/csrf. Handlers read the token
// through csrf.Token or csrf.TemplateField on c.Request.
func CSRF(cfg config.CSRFConfig, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	protect := csrf.Protect([]byte(cfg.Key),
		csrf.Secure(cfg.Secure),
		csrf.Path("/"),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Warn("csrf check failed",
				zap.String("path", r.URL.Path),
				zap.Error(csrf.FailureReason(r)))
			c := ginContextFrom(r)
			response.Error(c, appErrors.ErrSecurityCheck)
			c.Abort()
		})),
	)
	next := protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := ginContextFrom(r)
		c.Request = r
		c.Next()
	}))

	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), ginContextKey{}, c))
		next.ServeHTTP(c.Writer, c.Request)
	}
}
