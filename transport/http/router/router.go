package router

import (
	"crowd/config"
	"crowd/internal/handlers/admin"
	"crowd/internal/handlers/booking"
	"crowd/internal/handlers/center"
	"crowd/shared/metrics"
	"crowd/transport/http/middleware"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "crowd/docs"
)

type DomainHandlers struct {
	Center  center.Handler
	Booking booking.Handler
	Admin   admin.Handler
}

type Router struct {
	Config         *config.Config
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(chiMiddleware.RequestID)
	router.Use(r.Middleware.Recover)
	router.Use(r.Middleware.Tracing)

	if r.Config.Metrics.Enable {
		router.Use(r.Middleware.Metrics)
	}

	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   r.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   r.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   r.Config.App.CORS.AllowedHeaders,
			AllowCredentials: r.Config.App.CORS.AllowCredentials,
			MaxAge:           r.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	if r.Config.Metrics.Enable {
		router.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Middleware.RateLimit())

		r.DomainHandlers.Center.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
	})
}

func New(cfg *config.Config, domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		Config:         cfg,
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
	}
}
