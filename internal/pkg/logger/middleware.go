package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware returns request-logging middleware for Echo.
func EchoMiddleware(l *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)

			fields := []Field{
				String("method", c.Request().Method),
				String("path", path),
				Int("status", c.Response().Status),
				String("client_ip", c.RealIP()),
				Duration("latency", time.Since(start)),
				String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			}
			if err != nil {
				fields = append(fields, Err(err))
				l.Error("request failed", fields...)
				return err
			}

			l.Info("request completed", fields...)
			return nil
		}
	}
}
