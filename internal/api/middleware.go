package api

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
)

// requestLogger logs end-to-end request duration and response size.
// Handler errors are rendered first so the logged status is the one the
// client received.
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			r := c.Request()
			res := c.Response()
			duration := time.Since(start).Milliseconds()

			log.Printf(
				"method=%s path=%s status=%d bytes=%d dur=%dms",
				r.Method, r.URL.RequestURI(), res.Status, res.Size, duration,
			)
			return nil
		}
	}
}
