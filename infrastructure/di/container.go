package di

import (
	"opsboard-backend/application/queries/handlers"
	"opsboard-backend/application/services"
	"opsboard-backend/infrastructure/cache"
	"opsboard-backend/infrastructure/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	Pool        *pgxpool.Pool
	Store       cache.Store
	Cache       *cache.Cache
	Invalidator *cache.Invalidator
	Registry    *prometheus.Registry

	UserQueries         *handlers.UserQueries
	GroupQueries        *handlers.GroupQueries
	DashboardQueries    *handlers.DashboardQueries
	NotificationQueries *handlers.NotificationQueries

	UserService         *services.UserService
	GroupService        *services.GroupService
	NotificationService *services.NotificationService
}

// Close releases the container's long-lived resources.
func (c *Container) Close() {
	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			c.Logger.Warn("cache store close failed", zap.Error(err))
		}
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
}
