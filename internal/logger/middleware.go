package logger

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/wichananm65/social-graph-backend/internal/auth"
)

// Middleware logs one line per request once the handler chain returns. When
// the request carried an accepted token its subject is logged too.
func Middleware(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Method()),
			zap.String("path", c.OriginalURL()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.IP()),
		}
		if sub, err := auth.SubjectFromCtx(c); err == nil {
			fields = append(fields, zap.String("subject", sub))
		}
		if status >= fiber.StatusInternalServerError {
			log.Error("HTTP Request", append(fields, zap.Error(err))...)
		} else {
			log.Info("HTTP Request", fields...)
		}
		return err
	}
}
