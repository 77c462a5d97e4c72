package rest

import (
	"net/http"

	"opsboard-backend/infrastructure/di"
	"opsboard-backend/interfaces/http/rest/handlers"
	"opsboard-backend/interfaces/http/rest/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	container *di.Container
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(container *di.Container) *Router {
	return &Router{
		container: container,
		logger:    container.Logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	// CORS configuration
	if rt.container.Config.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// Metrics endpoint
	if rt.container.Config.EnableMetrics {
		router.Handle("/metrics", promhttp.HandlerFor(
			rt.container.Registry,
			promhttp.HandlerOpts{},
		))
	}

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		// User endpoints
		r.Route("/users", func(r chi.Router) {
			userHandler := handlers.NewUserHandler(rt.container.UserQueries, rt.container.UserService, rt.logger)
			r.Get("/", userHandler.ListUsers)
			r.Get("/{userID}", userHandler.GetUser)
			r.Put("/{userID}", userHandler.UpdateUser)
			r.Get("/{userID}/permissions", userHandler.GetPermissions)

			// Notification endpoints, scoped to their user
			notificationHandler := handlers.NewNotificationHandler(rt.container.NotificationQueries, rt.container.NotificationService, rt.logger)
			r.Get("/{userID}/notifications", notificationHandler.ListNotifications)
			r.Post("/{userID}/notifications", notificationHandler.CreateNotification)
			r.Post("/{userID}/notifications/{notificationID}/read", notificationHandler.MarkRead)
		})

		// Group endpoints
		r.Route("/groups", func(r chi.Router) {
			groupHandler := handlers.NewGroupHandler(rt.container.GroupQueries, rt.container.GroupService, rt.logger)
			r.Get("/", groupHandler.ListGroups)
			r.Get("/{groupID}", groupHandler.GetGroup)
			r.Put("/{groupID}/permissions", groupHandler.UpdatePermissions)
		})

		// Dashboard endpoints
		r.Get("/dashboard/stats", handlers.NewDashboardHandler(rt.container.DashboardQueries, rt.logger).GetStats)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck verifies the database is reachable. The cache store is
// deliberately excluded: the service degrades to direct reads when the cache
// is down, so a dead Redis must not fail readiness.
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	if err := rt.container.Pool.Ping(req.Context()); err != nil {
		rt.logger.Warn("readiness check failed", zap.Error(err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"unavailable"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
