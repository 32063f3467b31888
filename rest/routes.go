package rest

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/weaversoft/snapwatch/docs"
)

func (h *Handler) SetupRoutes(engine *echo.Echo) {
	engine.GET("/health", h.echoHandler(h.HealthCheck))
	engine.GET("/version", h.echoHandler(h.Version))
	engine.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	docs.SwaggerInfo.BasePath = "/"
	engine.GET("/swagger/*", echoSwagger.WrapHandler)

	api := engine.Group("/api", echo.WrapMiddleware(LoggerMiddleware))
	// v1 routes
	{
		apiV1 := api.Group("/v1")
		// auth routes
		apiV1.POST("/auth/login", h.echoHandler(h.Login))
		apiV1.PUT("/users/self/password", h.echoHandler(h.ChangePassword), echo.WrapMiddleware(h.GetAuthMiddleware()))

		// watcher routes, status queries stay open
		apiV1.GET("/watchers", h.echoHandler(h.ListWatcherStatuses))
		apiV1.GET("/watchers/:name", h.echoHandlerWithParams(h.GetWatcherStatus))
		apiV1.POST("/watchers", h.echoHandler(h.CreateWatcher), echo.WrapMiddleware(h.GetAuthMiddleware()))
		apiV1.PUT("/watchers/:name", h.echoHandlerWithParams(h.UpdateWatcher), echo.WrapMiddleware(h.GetAuthMiddleware()))
		apiV1.DELETE("/watchers/:name", h.echoHandlerWithParams(h.DeleteWatcher), echo.WrapMiddleware(h.GetAuthMiddleware()))
		apiV1.POST("/watchers/:name/start", h.echoHandlerWithParams(h.StartWatcher), echo.WrapMiddleware(h.GetAuthMiddleware()))
		apiV1.POST("/watchers/:name/stop", h.echoHandlerWithParams(h.StopWatcher), echo.WrapMiddleware(h.GetAuthMiddleware()))
	}
}

func (h *Handler) echoHandler(handlerFunc func(w http.ResponseWriter, r *http.Request)) echo.HandlerFunc {
	return echo.WrapHandler(http.HandlerFunc(handlerFunc))
}

// echoHandlerWithParams wraps a handler function and injects path parameters into request context
func (h *Handler) echoHandlerWithParams(handlerFunc func(w http.ResponseWriter, r *http.Request)) echo.HandlerFunc {
	return func(c echo.Context) error {
		r := c.Request()
		// Store path params in request context
		for _, name := range c.ParamNames() {
			r = r.WithContext(context.WithValue(r.Context(), pathParamKey(name), c.Param(name)))
		}
		handlerFunc(c.Response().Writer, r)
		return nil
	}
}
