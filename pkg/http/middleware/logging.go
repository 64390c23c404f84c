package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"WebHub/pkg/logger"
)

// RequestLogging logs one line per request. Handler errors are passed to
// c.Error first so the logged status is the one sent.
func RequestLogging(l *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			fields := []logger.Field{
				logger.String("method", req.Method),
				logger.String("uri", req.RequestURI),
				logger.String("remote_ip", c.RealIP()),
				logger.Int("status", res.Status),
				logger.Int64("bytes", res.Size),
				logger.Duration("latency_ms", time.Since(start)),
			}
			if err != nil {
				l.Warn("request", append(fields, logger.Error(err))...)
				return nil
			}
			l.Debug("request", fields...)
			return nil
		}
	}
}
