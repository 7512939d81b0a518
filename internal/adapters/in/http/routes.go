package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"mangoshop/internal/generated/servers"
	"mangoshop/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// BasePath prefixes every API route.
const BasePath = "/api/v1"

// RegisterRoutes mounts the API under BasePath next to the health, metrics and
// documentation endpoints.
func RegisterRoutes(e *echo.Echo, server *Server, m *metrics.Metrics) error {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return fmt.Errorf("load API description: %w", err)
	}

	e.HTTPErrorHandler = ErrorHandler(e)

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(BasePath, MetricsMiddleware(m))
	api.GET("/openapi.json", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, swagger)
	})
	servers.RegisterHandlers(api, server)

	return nil
}

// MetricsMiddleware counts requests and their latency per route template.
func MetricsMiddleware(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			code := ctx.Response().Status
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				code = httpErr.Code
			} else if err != nil {
				code = http.StatusInternalServerError
			}

			m.ObserveRequest(ctx.Path(), ctx.Request().Method, strconv.Itoa(code), time.Since(start).Seconds())
			return err
		}
	}
}

// ErrorHandler renders errors returned past the handlers, such as parameter binding
// failures and unknown routes, in the API error format.
func ErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			message = fmt.Sprint(httpErr.Message)
		} else {
			e.Logger.Error(err)
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = errorJSON(ctx, code, message)
		}
		if err != nil {
			e.Logger.Error(err)
		}
	}
}
