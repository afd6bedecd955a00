// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"connkeeper/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler     *handler.LocationHandler
	NotificationHandler *handler.NotificationHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler     *handler.LocationHandler
	notificationHandler *handler.NotificationHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler:     params.LocationHandler,
		notificationHandler: params.NotificationHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Location sample ingestion and member positions
	locationGroup := e.Group("/locations")
	{
		locationGroup.POST("/samples", r.locationHandler.SubmitSample)
		locationGroup.GET("/members", r.locationHandler.GetMemberLocations)
	}

	// Notification feed
	notificationGroup := e.Group("/notifications")
	{
		notificationGroup.GET("", r.notificationHandler.ListNotifications)
		notificationGroup.GET("/unread-count", r.notificationHandler.UnreadCount)
		notificationGroup.POST("/:id/read", r.notificationHandler.MarkAsRead)
	}
}
