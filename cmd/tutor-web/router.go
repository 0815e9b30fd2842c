package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/tutor-market/api/swagger"
	"github.com/noah-isme/tutor-market/internal/handler"
	"github.com/noah-isme/tutor-market/internal/middleware"
	"github.com/noah-isme/tutor-market/internal/service"
	"github.com/noah-isme/tutor-market/pkg/config"
	"github.com/noah-isme/tutor-market/pkg/logger"
	appErrors "github.com/noah-isme/tutor-market/pkg/errors"
	reqidmiddleware "github.com/noah-isme/tutor-market/pkg/middleware/requestid"
	"github.com/noah-isme/tutor-market/pkg/response"
)

type routeHandlers struct {
	catalog  *handler.CatalogHandler
	bookings *handler.BookingHandler
	requests *handler.RequestHandler
	ops      *handler.MetricsHandler
}

func newRouter(cfg *config.Config, logr *zap.Logger, metrics *service.MetricsService, h routeHandlers) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.RedirectTrailingSlash = true
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", h.ops.Health)
	r.GET("/ready", h.ops.Ready)
	r.GET("/metrics", h.ops.Prometheus)
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	pages := r.Group("/")
	pages.Use(middleware.CSRF(cfg.CSRF, logr))
	{
		pages.GET("/", h.catalog.Home)
		pages.GET("/all/", h.catalog.All)
		pages.GET("/goals/:goal/", h.catalog.Goal)
		pages.GET("/profiles/:id/", h.catalog.Profile)

		pages.GET("/request/", h.requests.Form)
		pages.POST("/request/", h.requests.Submit)
		pages.GET("/request_done/", h.requests.Done)

		pages.GET("/booking/:id/:day/:time/", h.bookings.Form)
		pages.POST("/booking/:id/:day/:time/", h.bookings.Submit)
		pages.GET("/booking_done/", h.bookings.Done)
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "no route"))
	})

	return r
}
