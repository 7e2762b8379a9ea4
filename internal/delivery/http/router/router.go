// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"simbridge/internal/delivery/http/router/handler"
	"simbridge/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HubHandler          *handler.HubHandler
	DashboardHandler    *handler.DashboardHandler
	ModemHandler        *handler.ModemHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	hubHandler          *handler.HubHandler
	dashboardHandler    *handler.DashboardHandler
	modemHandler        *handler.ModemHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
	loggerMiddleware    *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		hubHandler:          params.HubHandler,
		dashboardHandler:    params.DashboardHandler,
		modemHandler:        params.ModemHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
		loggerMiddleware:    params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Hub-facing agent protocol. Every request carries an action field,
	// so one dispatching handler serves the base URL and the per-action
	// aliases alike.
	e.POST("/api/smshub", r.hubHandler.Handle)
	hubGroup := e.Group("/api/smshub")
	{
		hubGroup.POST("/services", r.hubHandler.Handle)
		hubGroup.POST("/number", r.hubHandler.Handle)
		hubGroup.POST("/finish", r.hubHandler.Handle)
	}

	// Modem maintenance actions
	e.POST("/api/modems/reconnect", r.modemHandler.Reconnect)

	// Operator dashboard, read only
	dashboardGroup := e.Group("/api/dashboard")
	{
		dashboardGroup.GET("/modems", r.dashboardHandler.ListModems)
		dashboardGroup.GET("/activations", r.dashboardHandler.ListActivations)
		dashboardGroup.GET("/activations/:id", r.dashboardHandler.GetActivation)
		dashboardGroup.GET("/sms", r.dashboardHandler.ListSMS)
		dashboardGroup.GET("/sms/:id", r.dashboardHandler.GetSMS)
		dashboardGroup.GET("/stats", r.dashboardHandler.Stats)
	}
}
